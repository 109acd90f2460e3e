package component

// ConstantVelocity overrides the body velocity every tick regardless of the
// forces the physics step applied.
type ConstantVelocity struct {
	X       float64
	Y       float64
	Angular float64
}

var ConstantVelocityComponent = NewComponent[ConstantVelocity]()
