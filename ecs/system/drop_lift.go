package system

import (
	"github.com/milk9111/matriarch/config"
	"github.com/milk9111/matriarch/ecs"
	"github.com/milk9111/matriarch/ecs/component"
	"github.com/milk9111/matriarch/ecs/entity"
)

// DropLiftSystem places a launch sensor under each eligible matriarch.
type DropLiftSystem struct {
	dropper
}

func NewDropLiftSystem(commands *ecs.Channel[component.Command], cfg *config.Config) *DropLiftSystem {
	return &DropLiftSystem{dropper: newDropper(component.CommandDropLift, commands, cfg)}
}

func (s *DropLiftSystem) Update(w *ecs.World) {
	s.each(w, func(w *ecs.World, m eligibleMatriarch) (ecs.Entity, error) {
		return entity.NewLift(w, s.cfg.Physics, m.position, m.direction)
	})
}
