package system

import (
	"github.com/milk9111/matriarch/ecs"
	"github.com/milk9111/matriarch/ecs/component"
	"github.com/milk9111/matriarch/logger"
)

// MatriarchSystem keeps exactly one matriarch while walkers exist. The
// successor is the living walker with the lowest spawn serial, i.e. the one
// spawned first. It must run after every system that destroys walkers.
type MatriarchSystem struct{}

func NewMatriarchSystem() *MatriarchSystem {
	return &MatriarchSystem{}
}

func (s *MatriarchSystem) Update(w *ecs.World) {
	var current []ecs.Entity
	for _, e := range w.Query(component.MatriarchComponent.Kind()) {
		if !ecs.Has(w, e, component.WalkerComponent) {
			ecs.Remove(w, e, component.MatriarchComponent)
			continue
		}
		current = append(current, e)
	}

	if len(current) > 1 {
		keep := oldestWalker(w, current)
		logger.Log.WithField("matriarchs", len(current)).Error("invariant violated: more than one matriarch, demoting extras")
		for _, e := range current {
			if e != keep {
				ecs.Remove(w, e, component.MatriarchComponent)
			}
		}
		return
	}
	if len(current) == 1 {
		return
	}

	walkers := w.Query(component.WalkerComponent.Kind())
	if len(walkers) == 0 {
		return
	}
	successor := oldestWalker(w, walkers)
	age, _ := ecs.Get(w, successor, component.AgeComponent)
	if err := ecs.Add(w, successor, component.MatriarchComponent, component.Matriarch{AgeWhenPromoted: age.Seconds}); err != nil {
		logger.Log.WithError(err).Error("promote matriarch")
		return
	}
	logger.Log.WithFields(map[string]any{"entity": successor, "age": age.Seconds}).Debug("matriarch promoted")
}

// oldestWalker returns the walker with the lowest serial; ties, which only
// happen for hand-built walkers, go to the lowest slot.
func oldestWalker(w *ecs.World, candidates []ecs.Entity) ecs.Entity {
	var best ecs.Entity
	var bestSerial uint64
	for _, e := range candidates {
		walker, _ := ecs.Get(w, e, component.WalkerComponent)
		if best == 0 || walker.Serial < bestSerial || (walker.Serial == bestSerial && e.Index() < best.Index()) {
			best = e
			bestSerial = walker.Serial
		}
	}
	return best
}
