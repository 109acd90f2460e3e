package component

// LaunchArea is a lift sensor; walkers inside it are thrown up and along
// Direction.
type LaunchArea struct {
	Direction Direction
}

var LaunchAreaComponent = NewComponent[LaunchArea]()
