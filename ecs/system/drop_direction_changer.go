package system

import (
	"github.com/milk9111/matriarch/config"
	"github.com/milk9111/matriarch/ecs"
	"github.com/milk9111/matriarch/ecs/component"
	"github.com/milk9111/matriarch/ecs/entity"
)

// DropDirectionChangerSystem plants a sensor at each eligible matriarch that
// turns walkers back the way they came.
type DropDirectionChangerSystem struct {
	dropper
}

func NewDropDirectionChangerSystem(commands *ecs.Channel[component.Command], cfg *config.Config) *DropDirectionChangerSystem {
	return &DropDirectionChangerSystem{dropper: newDropper(component.CommandDropDirectionChanger, commands, cfg)}
}

func (s *DropDirectionChangerSystem) Update(w *ecs.World) {
	s.each(w, func(w *ecs.World, m eligibleMatriarch) (ecs.Entity, error) {
		return entity.NewDirectionChanger(w, s.cfg.Physics, m.position, m.direction.Reversed())
	})
}
