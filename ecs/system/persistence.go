package system

import (
	"github.com/milk9111/matriarch/ecs"
	"github.com/milk9111/matriarch/ecs/component"
)

// PersistenceMode says why the level is being torn down.
type PersistenceMode int

const (
	PersistenceOnLevelChange PersistenceMode = iota
	PersistenceOnReload
)

func (m PersistenceMode) String() string {
	if m == PersistenceOnReload {
		return "reload"
	}
	return "level_change"
}

// PruneLevel applies pending deferred work, then destroys every entity not
// kept by its Persistent flags for mode. Physics teardown runs synchronously
// through the collider hooks. It returns the number of destroyed entities.
func PruneLevel(w *ecs.World, mode PersistenceMode) int {
	if w == nil {
		return 0
	}
	w.Flush()

	toDestroy := make([]ecs.Entity, 0)
	for _, e := range w.Entities() {
		persistent, ok := ecs.Get(w, e, component.PersistentComponent)
		if !ok || !shouldKeep(persistent, mode) {
			toDestroy = append(toDestroy, e)
		}
	}

	destroyed := 0
	for _, e := range toDestroy {
		if w.DestroyEntity(e) {
			destroyed++
		}
	}
	return destroyed + resolvePersistentSingletons(w)
}

// resolvePersistentSingletons keeps the first entity per Persistent ID and
// destroys later duplicates.
func resolvePersistentSingletons(w *ecs.World) int {
	seen := make(map[string]ecs.Entity)
	toDestroy := make([]ecs.Entity, 0)
	ecs.ForEach(w, component.PersistentComponent, func(e ecs.Entity, persistent component.Persistent) {
		if persistent.ID == "" {
			return
		}
		if existing, ok := seen[persistent.ID]; ok && existing != e {
			toDestroy = append(toDestroy, e)
			return
		}
		seen[persistent.ID] = e
	})

	destroyed := 0
	for _, e := range toDestroy {
		if w.DestroyEntity(e) {
			destroyed++
		}
	}
	return destroyed
}

func shouldKeep(persistent component.Persistent, mode PersistenceMode) bool {
	if mode == PersistenceOnReload {
		return persistent.KeepOnReload
	}
	return persistent.KeepOnLevelChange
}
