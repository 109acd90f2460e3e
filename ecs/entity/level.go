package entity

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/matriarch/config"
	"github.com/milk9111/matriarch/ecs"
	"github.com/milk9111/matriarch/ecs/component"
)

// LoadLevelToWorld creates the level's geometry, hazards, exit, bounds and
// spawner.
func LoadLevelToWorld(w *ecs.World, cfg *config.Config, lvl config.LevelConfig, rng Sampler) error {
	pw := w.PhysicsWorld()
	if pw == nil {
		return fmt.Errorf("level %q: %w", lvl.Name, ErrNoPhysics)
	}

	boundsEntity := w.CreateEntity()
	if err := ecs.Add(w, boundsEntity, component.LevelBoundsComponent, component.LevelBounds{
		Left:       lvl.Left,
		Right:      lvl.Right,
		KillHeight: lvl.KillHeight,
	}); err != nil {
		return fmt.Errorf("level %q: add bounds: %w", lvl.Name, err)
	}

	for i, box := range lvl.Platforms {
		collider := pw.CreateStaticBox(boxCenter(box), boxHalf(box), box.Rotation)
		if _, err := newBoxEntity(w, box, component.Collider{Collider: collider}); err != nil {
			return fmt.Errorf("level %q: platform %d: %w", lvl.Name, i, err)
		}
	}

	for i, box := range lvl.Hazards {
		collider := pw.CreateSensorBox(boxCenter(box), boxHalf(box), box.Rotation)
		e, err := newBoxEntity(w, box, component.Collider{Collider: collider, Sensor: true})
		if err != nil {
			return fmt.Errorf("level %q: hazard %d: %w", lvl.Name, i, err)
		}
		if err := ecs.Add(w, e, component.HazardComponent, component.Hazard{}); err != nil {
			return fmt.Errorf("level %q: hazard %d: add hazard: %w", lvl.Name, i, err)
		}
	}

	exitCollider := pw.CreateSensorBox(boxCenter(lvl.Exit), boxHalf(lvl.Exit), lvl.Exit.Rotation)
	exit, err := newBoxEntity(w, lvl.Exit, component.Collider{Collider: exitCollider, Sensor: true})
	if err != nil {
		return fmt.Errorf("level %q: exit: %w", lvl.Name, err)
	}
	if err := ecs.Add(w, exit, component.ExitComponent, component.Exit{}); err != nil {
		return fmt.Errorf("level %q: exit: add exit: %w", lvl.Name, err)
	}

	if _, err := NewSpawner(w, cfg.SpawnerFor(lvl), lvl.Spawn.X, lvl.Spawn.Y, rng); err != nil {
		return fmt.Errorf("level %q: %w", lvl.Name, err)
	}
	return nil
}

func newBoxEntity(w *ecs.World, box config.BoxConfig, collider component.Collider) (ecs.Entity, error) {
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.ColliderComponent, collider); err != nil {
		w.PhysicsWorld().RemoveCollider(collider.Collider)
		return 0, fmt.Errorf("add collider: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{
		X:        box.X,
		Y:        box.Y,
		Rotation: degToRad(box.Rotation),
	}); err != nil {
		return 0, destroyOnError(w, e, fmt.Errorf("add transform: %w", err))
	}
	return e, nil
}

func boxCenter(box config.BoxConfig) cp.Vector {
	return cp.Vector{X: box.X, Y: box.Y}
}

func boxHalf(box config.BoxConfig) cp.Vector {
	return cp.Vector{X: box.Width * 0.5, Y: box.Height * 0.5}
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
