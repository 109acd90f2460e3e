package entity

import (
	"fmt"

	"github.com/milk9111/matriarch/ecs"
	"github.com/milk9111/matriarch/ecs/component"
)

const statsPersistentID = "spawn_stats"

// NewSpawnStats creates the persistent counter singleton.
func NewSpawnStats(w *ecs.World) (ecs.Entity, error) {
	stats := w.CreateEntity()
	if err := ecs.Add(w, stats, component.SpawnStatsComponent, component.SpawnStats{}); err != nil {
		return 0, fmt.Errorf("spawn stats: add counters: %w", err)
	}
	if err := ecs.Add(w, stats, component.PersistentComponent, component.Persistent{
		ID:                statsPersistentID,
		KeepOnLevelChange: true,
		KeepOnReload:      true,
	}); err != nil {
		return 0, fmt.Errorf("spawn stats: add persistent: %w", err)
	}
	return stats, nil
}

// ResetSpawnStats zeroes the counters and records the level's spawn cap.
func ResetSpawnStats(w *ecs.World, total uint64) error {
	stats, ok := w.First(component.SpawnStatsComponent.Kind())
	if !ok {
		var err error
		if stats, err = NewSpawnStats(w); err != nil {
			return err
		}
	}
	if err := ecs.Add(w, stats, component.SpawnStatsComponent, component.SpawnStats{Total: total}); err != nil {
		return fmt.Errorf("spawn stats: reset: %w", err)
	}
	return nil
}
