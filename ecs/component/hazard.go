package component

// Hazard kills walkers that touch its sensor.
type Hazard struct{}

var HazardComponent = NewComponent[Hazard]()

// Exit is the level's way out; walkers touching its sensor are saved.
type Exit struct{}

var ExitComponent = NewComponent[Exit]()
