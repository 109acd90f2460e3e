package system

import (
	"github.com/milk9111/matriarch/config"
	"github.com/milk9111/matriarch/ecs"
	"github.com/milk9111/matriarch/ecs/component"
	"github.com/milk9111/matriarch/ecs/entity"
)

// DropRamSystem launches a short-lived ram from each eligible matriarch in
// the direction it is walking. The ram borrows the matriarch's look.
type DropRamSystem struct {
	dropper
}

func NewDropRamSystem(commands *ecs.Channel[component.Command], cfg *config.Config) *DropRamSystem {
	return &DropRamSystem{dropper: newDropper(component.CommandDropRam, commands, cfg)}
}

func (s *DropRamSystem) Update(w *ecs.World) {
	s.each(w, func(w *ecs.World, m eligibleMatriarch) (ecs.Entity, error) {
		var look entity.RamLook
		if c, ok := ecs.Get(w, m.entity, component.ColorComponent); ok {
			look.Color = &c
		}
		if sh, ok := ecs.Get(w, m.entity, component.ShapeComponent); ok {
			look.Shape = &sh
		}
		return entity.NewRam(w, s.cfg.Physics, m.position, m.direction, look)
	})
}
