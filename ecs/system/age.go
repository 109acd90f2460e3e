package system

import (
	"github.com/milk9111/matriarch/ecs"
	"github.com/milk9111/matriarch/ecs/component"
	"github.com/milk9111/matriarch/logger"
)

// AgeSystem advances every Age by the tick's simulated seconds and destroys
// entities whose bounded age ran out.
type AgeSystem struct{}

func NewAgeSystem() *AgeSystem {
	return &AgeSystem{}
}

func (s *AgeSystem) Update(w *ecs.World) {
	dt := w.Delta()
	ecs.ForEach(w, component.AgeComponent, func(e ecs.Entity, age component.Age) {
		age.Seconds += dt
		if age.Expired() {
			logger.Log.WithField("entity", e).Debug("age expired")
			w.DestroyEntity(e)
			return
		}
		_ = ecs.Add(w, e, component.AgeComponent, age)
	})
}
