package system

import (
	"github.com/milk9111/matriarch/ecs"
	"github.com/milk9111/matriarch/ecs/component"
	"github.com/milk9111/matriarch/logger"
)

// ChangeDirectionSystem turns walkers touching a ChangeDirection sensor to
// the sensor's heading. Only walkers still heading the other way are touched;
// their horizontal speed is zeroed while vertical and angular motion is kept.
type ChangeDirectionSystem struct{}

func NewChangeDirectionSystem() *ChangeDirectionSystem {
	return &ChangeDirectionSystem{}
}

func (s *ChangeDirectionSystem) Update(w *ecs.World) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}
	for _, e := range w.Query(component.ChangeDirectionComponent.Kind(), component.ColliderComponent.Kind()) {
		change, _ := ecs.Get(w, e, component.ChangeDirectionComponent)
		col, _ := ecs.Get(w, e, component.ColliderComponent)
		for _, prox := range pw.ProximityOf(col.Collider) {
			target, ok := pw.EntityOf(prox)
			if !ok {
				continue
			}
			walker, ok := ecs.Get(w, target, component.WalkerComponent)
			if !ok || walker.Direction == change.Direction {
				continue
			}
			walker.Direction = change.Direction
			_ = ecs.Add(w, target, component.WalkerComponent, walker)

			if body, ok := pw.BodyOf(prox); ok {
				if v, angular, ok := pw.Velocity(body); ok {
					v.X = 0
					pw.SetVelocity(body, v, angular)
				}
			}
			logger.Log.WithFields(map[string]any{"entity": target, "direction": walker.Direction}).Debug("walker turned")
		}
	}
}
