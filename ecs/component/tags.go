package component

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()
