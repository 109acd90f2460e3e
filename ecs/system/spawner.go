package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/matriarch/config"
	"github.com/milk9111/matriarch/ecs"
	"github.com/milk9111/matriarch/ecs/component"
	"github.com/milk9111/matriarch/ecs/entity"
	"github.com/milk9111/matriarch/logger"
)

// Rand is the randomness the spawner needs.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// SpawnerSystem creates walkers at each spawner's pace until its cap. Only the
// lowest spawner entity feeds SpawnStats; more than one spawner is a
// configuration error and is reported once per level.
type SpawnerSystem struct {
	cfg    *config.Config
	rng    Rand
	serial uint64
	warned bool
}

func NewSpawnerSystem(cfg *config.Config, rng Rand) *SpawnerSystem {
	return &SpawnerSystem{cfg: cfg, rng: rng}
}

// ResetLevel restarts walker serials and re-arms the multiple-spawner report.
// Call it when a level loads.
func (s *SpawnerSystem) ResetLevel() {
	s.serial = 0
	s.warned = false
}

func (s *SpawnerSystem) Update(w *ecs.World) {
	spawners := w.Query(component.SpawnerComponent.Kind(), component.TransformComponent.Kind())
	if len(spawners) > 1 && !s.warned {
		logger.Log.WithField("spawners", len(spawners)).Error("more than one spawner in level; only the first drives spawn stats")
		s.warned = true
	}

	dt := w.Delta()
	for i, e := range spawners {
		sp, _ := ecs.Get(w, e, component.SpawnerComponent)
		authoritative := i == 0
		if authoritative {
			updateStats(w, func(stats *component.SpawnStats) { stats.Total = sp.MaxCount })
		}
		if sp.Spawned >= sp.MaxCount {
			continue
		}

		sp.Elapsed += dt
		if sp.Elapsed >= sp.Frequency {
			t, _ := ecs.Get(w, e, component.TransformComponent)
			if s.spawn(w, sp, t) {
				sp.Spawned++
				if authoritative {
					updateStats(w, func(stats *component.SpawnStats) { stats.Spawned++ })
				}
			}
			sp.Elapsed = 0
			sp.Frequency = entity.DrawFrequency(config.Range{Min: sp.FrequencyMin, Max: sp.FrequencyMax}, s.rng)
		}
		_ = ecs.Add(w, e, component.SpawnerComponent, sp)
	}
}

func (s *SpawnerSystem) spawn(w *ecs.World, sp component.Spawner, t component.Transform) bool {
	pos := cp.Vector{
		X: t.X + (s.rng.Float64()-0.5)*sp.Width,
		Y: t.Y + (s.rng.Float64()-0.5)*sp.Height,
	}
	dir := component.DirectionLeft
	if s.rng.IntN(2) == 1 {
		dir = component.DirectionRight
	}
	s.serial++
	e, err := entity.NewWalker(w, s.cfg.Pawn, pos, dir, s.serial)
	if err != nil {
		logger.Log.WithError(err).Error("spawn walker")
		return false
	}
	logger.Log.WithFields(map[string]any{"entity": e, "serial": s.serial, "direction": dir}).Debug("walker spawned")
	return true
}
