package component

// ChangeDirection is a sensor that forces touching walkers into Direction.
type ChangeDirection struct {
	Direction Direction
}

var ChangeDirectionComponent = NewComponent[ChangeDirection]()
