package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/matriarch/config"
	"github.com/milk9111/matriarch/ecs"
	"github.com/milk9111/matriarch/ecs/component"
)

// LaunchSystem throws every walker touching a lift along the lift's direction.
type LaunchSystem struct {
	cfg *config.Config
}

func NewLaunchSystem(cfg *config.Config) *LaunchSystem {
	return &LaunchSystem{cfg: cfg}
}

func (s *LaunchSystem) Update(w *ecs.World) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}
	lv := s.cfg.Physics.LiftVelocity
	for _, e := range w.Query(component.LaunchAreaComponent.Kind(), component.ColliderComponent.Kind()) {
		area, _ := ecs.Get(w, e, component.LaunchAreaComponent)
		col, _ := ecs.Get(w, e, component.ColliderComponent)
		for _, prox := range pw.ProximityOf(col.Collider) {
			target, ok := pw.EntityOf(prox)
			if !ok || !ecs.Has(w, target, component.WalkerComponent) {
				continue
			}
			body, ok := pw.BodyOf(prox)
			if !ok {
				continue
			}
			_, angular, _ := pw.Velocity(body)
			pw.SetVelocity(body, cp.Vector{X: lv.X * area.Direction.Sign(), Y: lv.Y}, angular)
		}
	}
}
