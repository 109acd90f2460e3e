package entity

import (
	"fmt"

	"github.com/milk9111/matriarch/config"
	"github.com/milk9111/matriarch/ecs"
	"github.com/milk9111/matriarch/ecs/component"
)

// Sampler yields uniform values in [0, 1).
type Sampler interface {
	Float64() float64
}

// DrawFrequency picks a spawn interval uniformly from r.
func DrawFrequency(r config.Range, rng Sampler) float64 {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// NewSpawner creates a spawner centred at (x, y).
func NewSpawner(w *ecs.World, cfg config.SpawnerConfig, x, y float64, rng Sampler) (ecs.Entity, error) {
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("spawner: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SpawnerComponent, component.Spawner{
		Width:        cfg.Width,
		Height:       cfg.Height,
		MaxCount:     cfg.MaxCount,
		FrequencyMin: cfg.Frequency.Min,
		FrequencyMax: cfg.Frequency.Max,
		Frequency:    DrawFrequency(cfg.Frequency, rng),
	}); err != nil {
		return 0, destroyOnError(w, e, fmt.Errorf("spawner: add spawner: %w", err))
	}
	return e, nil
}
