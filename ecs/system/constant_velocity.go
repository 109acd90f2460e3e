package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/matriarch/ecs"
	"github.com/milk9111/matriarch/ecs/component"
)

// ConstantVelocitySystem re-applies fixed velocities so collisions cannot slow
// the body down.
type ConstantVelocitySystem struct{}

func NewConstantVelocitySystem() *ConstantVelocitySystem {
	return &ConstantVelocitySystem{}
}

func (s *ConstantVelocitySystem) Update(w *ecs.World) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}
	for _, e := range w.Query(component.ConstantVelocityComponent.Kind(), component.ColliderComponent.Kind()) {
		cv, _ := ecs.Get(w, e, component.ConstantVelocityComponent)
		col, _ := ecs.Get(w, e, component.ColliderComponent)
		pw.SetVelocity(col.Body, cp.Vector{X: cv.X, Y: cv.Y}, cv.Angular)
	}
}
