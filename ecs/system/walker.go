package system

import (
	"math"

	"github.com/milk9111/matriarch/config"
	"github.com/milk9111/matriarch/ecs"
	"github.com/milk9111/matriarch/ecs/component"
)

// WalkerSystem accelerates each walker's horizontal velocity toward the walk
// speed in its direction. Vertical velocity belongs to the physics step.
type WalkerSystem struct {
	cfg *config.Config
}

func NewWalkerSystem(cfg *config.Config) *WalkerSystem {
	return &WalkerSystem{cfg: cfg}
}

func (s *WalkerSystem) Update(w *ecs.World) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}
	maxDelta := s.cfg.Pawn.Acceleration * w.Delta()
	for _, e := range w.Query(component.WalkerComponent.Kind(), component.ColliderComponent.Kind()) {
		walker, _ := ecs.Get(w, e, component.WalkerComponent)
		col, _ := ecs.Get(w, e, component.ColliderComponent)
		v, angular, ok := pw.Velocity(col.Body)
		if !ok {
			continue
		}
		target := s.cfg.Pawn.WalkSpeed * walker.Direction.Sign()
		diff := target - v.X
		if math.Abs(diff) > maxDelta {
			diff = math.Copysign(maxDelta, diff)
		}
		v.X += diff
		pw.SetVelocity(col.Body, v, angular)
	}
}
