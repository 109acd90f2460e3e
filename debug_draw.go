package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/matriarch/ecs"
	"github.com/milk9111/matriarch/ecs/component"
	"github.com/milk9111/matriarch/game"
)

// referenceDepth is the camera depth at which one world unit is one pixel.
const referenceDepth = 600.0

var (
	colliderColor  = color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
	sensorColor    = color.RGBA{R: 0xff, G: 0xcc, B: 0x00, A: 0xff}
	matriarchColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	staticColor    = color.RGBA{R: 0x60, G: 0x60, B: 0x70, A: 0xff}
)

// viewport maps world space (y up) onto the screen around the camera.
type viewport struct {
	camX, camY float64
	scale      float64
	halfW      float64
	halfH      float64
}

func newViewport(g *game.Game, width, height int) viewport {
	v := viewport{scale: 1, halfW: float64(width) / 2, halfH: float64(height) / 2}
	if t, ok := ecs.Get(g.World(), g.Camera(), component.TransformComponent); ok {
		v.camX, v.camY = t.X, t.Y
		if t.Z > 0 {
			v.scale = referenceDepth / t.Z
		}
	}
	return v
}

func (v viewport) toScreen(x, y float64) (float32, float32) {
	return float32((x-v.camX)*v.scale + v.halfW), float32(v.halfH - (y-v.camY)*v.scale)
}

// drawShapes fills every entity that has a transform and a shape or a
// collider, tinted by its Color when present.
func drawShapes(screen *ebiten.Image, g *game.Game, v viewport) {
	w := g.World()
	pw := g.Physics()
	for _, e := range w.Query(component.ColliderComponent.Kind()) {
		col, _ := ecs.Get(w, e, component.ColliderComponent)
		if col.Sensor {
			continue
		}
		bb, ok := pw.Bounds(col.Collider)
		if !ok {
			continue
		}
		clr := color.Color(staticColor)
		if c, ok := ecs.Get(w, e, component.ColorComponent); ok {
			clr = c.RGBA
		}
		x0, y0 := v.toScreen(bb.L, bb.T)
		x1, y1 := v.toScreen(bb.R, bb.B)
		vector.DrawFilledRect(screen, x0, y0, x1-x0, y1-y0, clr, false)
		if ecs.Has(w, e, component.MatriarchComponent) {
			vector.StrokeRect(screen, x0-2, y0-2, x1-x0+4, y1-y0+4, 2, matriarchColor, false)
		}
	}
}

// drawColliders outlines every collider's bounding box.
func drawColliders(screen *ebiten.Image, g *game.Game, v viewport) {
	pw := g.Physics()
	for _, h := range pw.Colliders() {
		bb, ok := pw.Bounds(h)
		if !ok {
			continue
		}
		clr := colliderColor
		if pw.IsSensor(h) {
			clr = sensorColor
		}
		x0, y0 := v.toScreen(bb.L, bb.T)
		x1, y1 := v.toScreen(bb.R, bb.B)
		vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 1, clr, false)
	}
}
