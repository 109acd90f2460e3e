package system

import (
	"github.com/milk9111/matriarch/ecs"
	"github.com/milk9111/matriarch/ecs/component"
)

// updateStats applies fn to the SpawnStats singleton, if present.
func updateStats(w *ecs.World, fn func(stats *component.SpawnStats)) {
	e, ok := w.First(component.SpawnStatsComponent.Kind())
	if !ok {
		return
	}
	stats, _ := ecs.Get(w, e, component.SpawnStatsComponent)
	fn(&stats)
	_ = ecs.Add(w, e, component.SpawnStatsComponent, stats)
}

// Stats returns the current SpawnStats singleton.
func Stats(w *ecs.World) (component.SpawnStats, bool) {
	e, ok := w.First(component.SpawnStatsComponent.Kind())
	if !ok {
		return component.SpawnStats{}, false
	}
	return ecs.Get(w, e, component.SpawnStatsComponent)
}
