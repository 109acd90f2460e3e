package system

import (
	"github.com/milk9111/matriarch/ecs"
	"github.com/milk9111/matriarch/ecs/component"
)

// PhysicsSystem steps the shared physics world and copies dynamic body
// placement back onto transforms.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	pw.Step(w.Delta())
	ps.syncTransforms(w, pw)
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World, pw *ecs.PhysicsWorld) {
	for _, e := range w.Query(component.ColliderComponent.Kind(), component.TransformComponent.Kind()) {
		col, _ := ecs.Get(w, e, component.ColliderComponent)
		if col.Body == 0 {
			continue
		}
		pos, angle, ok := pw.Position(col.Body)
		if !ok {
			continue
		}
		transform, _ := ecs.Get(w, e, component.TransformComponent)
		transform.X = pos.X
		transform.Y = pos.Y
		transform.Rotation = angle
		_ = ecs.Add(w, e, component.TransformComponent, transform)
	}
}
