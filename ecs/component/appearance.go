package component

import "image/color"

// Color is a cosmetic tint read by the renderer.
type Color struct {
	RGBA color.RGBA
}

var ColorComponent = NewComponent[Color]()

type ShapeKind string

const (
	ShapeBox  ShapeKind = "box"
	ShapeCone ShapeKind = "cone"
)

// Shape is a cosmetic mesh hint read by the renderer.
type Shape struct {
	Kind   ShapeKind
	ScaleX float64
	ScaleY float64
}

var ShapeComponent = NewComponent[Shape]()
