package entity

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/matriarch/config"
	"github.com/milk9111/matriarch/ecs"
	"github.com/milk9111/matriarch/ecs/component"
	"golang.org/x/image/colornames"
)

// ErrNoPhysics is returned by builders that need a physics world when none is
// attached.
var ErrNoPhysics = errors.New("entity: no physics world attached")

var walkerPalette = []color.RGBA{
	colornames.Coral,
	colornames.Gold,
	colornames.Mediumseagreen,
	colornames.Skyblue,
	colornames.Orchid,
}

// WalkerColor returns the palette color for a spawn serial.
func WalkerColor(serial uint64) color.RGBA {
	return walkerPalette[serial%uint64(len(walkerPalette))]
}

// NewWalker creates a walker body at pos heading dir. Rotation is locked so
// walkers stay upright.
func NewWalker(w *ecs.World, pawn config.PawnConfig, pos cp.Vector, dir component.Direction, serial uint64) (ecs.Entity, error) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return 0, fmt.Errorf("walker: %w", ErrNoPhysics)
	}

	body, collider := pw.CreateDynamicBox(pos, cp.Vector{X: pawn.Width * 0.5, Y: pawn.Height * 0.5}, 0, pawn.Density)
	pw.LockRotation(body)

	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.ColliderComponent, component.Collider{Collider: collider, Body: body}); err != nil {
		pw.RemoveCollider(collider)
		return 0, fmt.Errorf("walker: add collider: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{X: pos.X, Y: pos.Y}); err != nil {
		return 0, destroyOnError(w, e, fmt.Errorf("walker: add transform: %w", err))
	}
	if err := ecs.Add(w, e, component.WalkerComponent, component.Walker{Direction: dir, Serial: serial}); err != nil {
		return 0, destroyOnError(w, e, fmt.Errorf("walker: add walker: %w", err))
	}
	if err := ecs.Add(w, e, component.AgeComponent, component.Age{}); err != nil {
		return 0, destroyOnError(w, e, fmt.Errorf("walker: add age: %w", err))
	}
	if err := ecs.Add(w, e, component.ColorComponent, component.Color{RGBA: WalkerColor(serial)}); err != nil {
		return 0, destroyOnError(w, e, fmt.Errorf("walker: add color: %w", err))
	}
	if err := ecs.Add(w, e, component.ShapeComponent, component.Shape{Kind: component.ShapeBox, ScaleX: pawn.Width, ScaleY: pawn.Height}); err != nil {
		return 0, destroyOnError(w, e, fmt.Errorf("walker: add shape: %w", err))
	}
	return e, nil
}

func destroyOnError(w *ecs.World, e ecs.Entity, err error) error {
	w.DestroyEntity(e)
	return err
}
