package component

// Direction is the horizontal heading of a walker.
type Direction int

const (
	DirectionLeft Direction = iota
	DirectionRight
)

// Reversed returns the opposite heading.
func (d Direction) Reversed() Direction {
	if d == DirectionLeft {
		return DirectionRight
	}
	return DirectionLeft
}

// Sign is -1 for left and 1 for right.
func (d Direction) Sign() float64 {
	if d == DirectionLeft {
		return -1
	}
	return 1
}

func (d Direction) String() string {
	if d == DirectionLeft {
		return "left"
	}
	return "right"
}

// Walker is an autonomous unit walking in Direction. Serial is the spawn
// sequence number within the current level and decides matriarch succession.
type Walker struct {
	Direction Direction
	Serial    uint64
}

var WalkerComponent = NewComponent[Walker]()

// Matriarch marks the walker the camera follows. Interventions ignore it until
// its age has moved GracePeriod past AgeWhenPromoted.
type Matriarch struct {
	AgeWhenPromoted float64
}

var MatriarchComponent = NewComponent[Matriarch]()
