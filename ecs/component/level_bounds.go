package component

// LevelBounds stores the world-space bounds of the current level. Walkers
// falling below KillHeight are lost.
type LevelBounds struct {
	Left       float64
	Right      float64
	KillHeight float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
