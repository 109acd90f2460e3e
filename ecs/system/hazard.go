package system

import (
	"github.com/milk9111/matriarch/ecs"
	"github.com/milk9111/matriarch/ecs/component"
	"github.com/milk9111/matriarch/logger"
)

type walkerFate int

const (
	fateKilled walkerFate = iota + 1
	fateSaved
)

// HazardSystem removes walkers that touched a hazard or fell out of the level
// (killed) and walkers that reached the exit (saved).
type HazardSystem struct{}

func NewHazardSystem() *HazardSystem { return &HazardSystem{} }

func (s *HazardSystem) Update(w *ecs.World) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	fates := make(map[ecs.Entity]walkerFate)
	var order []ecs.Entity
	mark := func(e ecs.Entity, f walkerFate) {
		if _, seen := fates[e]; seen {
			return
		}
		fates[e] = f
		order = append(order, e)
	}

	touching := func(sensor ecs.Entity, f walkerFate) {
		col, ok := ecs.Get(w, sensor, component.ColliderComponent)
		if !ok {
			return
		}
		for _, prox := range pw.ProximityOf(col.Collider) {
			e, ok := pw.EntityOf(prox)
			if !ok || !ecs.Has(w, e, component.WalkerComponent) {
				continue
			}
			mark(e, f)
		}
	}

	for _, e := range w.Query(component.HazardComponent.Kind(), component.ColliderComponent.Kind()) {
		touching(e, fateKilled)
	}
	for _, e := range w.Query(component.ExitComponent.Kind(), component.ColliderComponent.Kind()) {
		touching(e, fateSaved)
	}
	if bounds, ok := w.First(component.LevelBoundsComponent.Kind()); ok {
		lb, _ := ecs.Get(w, bounds, component.LevelBoundsComponent)
		for _, e := range w.Query(component.WalkerComponent.Kind(), component.TransformComponent.Kind()) {
			t, _ := ecs.Get(w, e, component.TransformComponent)
			if t.Y < lb.KillHeight {
				mark(e, fateKilled)
			}
		}
	}

	if len(order) == 0 {
		return
	}

	var killed, saved uint64
	for _, e := range order {
		if !w.DestroyEntity(e) {
			continue
		}
		switch fates[e] {
		case fateKilled:
			killed++
			logger.Log.WithField("entity", e).Debug("walker killed")
		case fateSaved:
			saved++
			logger.Log.WithField("entity", e).Debug("walker saved")
		}
	}
	updateStats(w, func(stats *component.SpawnStats) {
		stats.Killed += killed
		stats.Saved += saved
	})
}
