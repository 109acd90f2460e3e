package component

// Transform is a world-space placement. Z is only meaningful for the camera,
// where it is the depth used for zoom. Rotation is in radians.
type Transform struct {
	X, Y, Z  float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
