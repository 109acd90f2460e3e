package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/matriarch/config"
	"github.com/milk9111/matriarch/ecs"
	"github.com/milk9111/matriarch/ecs/component"
)

// directionChangerRotation turns the changer sensor upright.
const directionChangerRotation = 90.0

// NewLift creates a launch sensor at pos throwing walkers along dir.
func NewLift(w *ecs.World, cfg config.PhysicsConfig, pos cp.Vector, dir component.Direction) (ecs.Entity, error) {
	e, err := newSensor(w, pos, cp.Vector{X: cfg.LiftWidth * 0.5, Y: cfg.LiftHeight * 0.5}, 0)
	if err != nil {
		return 0, fmt.Errorf("lift: %w", err)
	}
	if err := ecs.Add(w, e, component.LaunchAreaComponent, component.LaunchArea{Direction: dir}); err != nil {
		return 0, destroyOnError(w, e, fmt.Errorf("lift: add launch area: %w", err))
	}
	if err := ecs.Add(w, e, component.ShapeComponent, component.Shape{Kind: component.ShapeBox, ScaleX: cfg.LiftWidth, ScaleY: cfg.LiftHeight}); err != nil {
		return 0, destroyOnError(w, e, fmt.Errorf("lift: add shape: %w", err))
	}
	return e, nil
}

// NewDirectionChanger creates an upright sensor at pos that forces walkers
// into dir.
func NewDirectionChanger(w *ecs.World, cfg config.PhysicsConfig, pos cp.Vector, dir component.Direction) (ecs.Entity, error) {
	half := cp.Vector{X: cfg.ChangeDirectionWidth * 0.5, Y: cfg.ChangeDirectionHeight * 0.5}
	e, err := newSensor(w, pos, half, directionChangerRotation)
	if err != nil {
		return 0, fmt.Errorf("direction changer: %w", err)
	}
	if err := ecs.Add(w, e, component.ChangeDirectionComponent, component.ChangeDirection{Direction: dir}); err != nil {
		return 0, destroyOnError(w, e, fmt.Errorf("direction changer: add change direction: %w", err))
	}
	if err := ecs.Add(w, e, component.ShapeComponent, component.Shape{Kind: component.ShapeCone, ScaleX: 2, ScaleY: 2}); err != nil {
		return 0, destroyOnError(w, e, fmt.Errorf("direction changer: add shape: %w", err))
	}
	return e, nil
}

// RamLook is the cosmetic state copied from the matriarch onto a ram so the
// ram reads as the matriarch charging.
type RamLook struct {
	Color *component.Color
	Shape *component.Shape
}

// NewRam creates a short-lived body at pos pushed along dir at the configured
// velocity.
func NewRam(w *ecs.World, cfg config.PhysicsConfig, pos cp.Vector, dir component.Direction, look RamLook) (ecs.Entity, error) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return 0, fmt.Errorf("ram: %w", ErrNoPhysics)
	}

	half := cp.Vector{X: cfg.RamSize.X * 0.5, Y: cfg.RamSize.Y * 0.5}
	body, collider := pw.CreateDynamicBox(pos, half, 0, cfg.RamDensity)
	velocity := component.ConstantVelocity{X: cfg.RamVelocity.X * dir.Sign(), Y: cfg.RamVelocity.Y}
	pw.SetVelocity(body, cp.Vector{X: velocity.X, Y: velocity.Y}, velocity.Angular)

	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.ColliderComponent, component.Collider{Collider: collider, Body: body}); err != nil {
		pw.RemoveCollider(collider)
		return 0, fmt.Errorf("ram: add collider: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{X: pos.X, Y: pos.Y}); err != nil {
		return 0, destroyOnError(w, e, fmt.Errorf("ram: add transform: %w", err))
	}
	life := cfg.RamLife
	if err := ecs.Add(w, e, component.AgeComponent, component.Age{Max: &life}); err != nil {
		return 0, destroyOnError(w, e, fmt.Errorf("ram: add age: %w", err))
	}
	if err := ecs.Add(w, e, component.ConstantVelocityComponent, velocity); err != nil {
		return 0, destroyOnError(w, e, fmt.Errorf("ram: add constant velocity: %w", err))
	}
	if look.Color != nil {
		if err := ecs.Add(w, e, component.ColorComponent, *look.Color); err != nil {
			return 0, destroyOnError(w, e, fmt.Errorf("ram: add color: %w", err))
		}
	}
	if look.Shape != nil {
		if err := ecs.Add(w, e, component.ShapeComponent, *look.Shape); err != nil {
			return 0, destroyOnError(w, e, fmt.Errorf("ram: add shape: %w", err))
		}
	}
	return e, nil
}

func newSensor(w *ecs.World, pos, half cp.Vector, rotationDeg float64) (ecs.Entity, error) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return 0, ErrNoPhysics
	}
	collider := pw.CreateSensorBox(pos, half, rotationDeg)

	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.ColliderComponent, component.Collider{Collider: collider, Sensor: true}); err != nil {
		pw.RemoveCollider(collider)
		return 0, fmt.Errorf("add collider: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{
		X:        pos.X,
		Y:        pos.Y,
		Rotation: degToRad(rotationDeg),
	}); err != nil {
		return 0, destroyOnError(w, e, fmt.Errorf("add transform: %w", err))
	}
	return e, nil
}
