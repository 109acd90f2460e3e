package system

import (
	"testing"

	"github.com/milk9111/matriarch/config"
	"github.com/milk9111/matriarch/ecs"
	"github.com/milk9111/matriarch/ecs/component"
	"github.com/milk9111/matriarch/ecs/entity"
)

func TestSpawnerReachesCapAndStops(t *testing.T) {
	cfg := testConfig(t)
	spawnerCfg := config.SpawnerConfig{Width: 10, Height: 10, MaxCount: 100, Frequency: config.Range{Min: 1, Max: 2}}

	w := newTestWorld(t)
	rng := testRand()
	sp, err := entity.NewSpawner(w, spawnerCfg, 50, 50, rng)
	if err != nil {
		t.Fatal(err)
	}
	sys := NewSpawnerSystem(cfg, rng)

	const dt = 0.1
	w.SetDelta(dt)
	for tick := 0; tick < 3000; tick++ { // 300 simulated seconds
		sys.Update(w)
		w.Flush()

		s, _ := ecs.Get(w, sp, component.SpawnerComponent)
		stats := mustStats(t, w)
		if s.Spawned != stats.Spawned {
			t.Fatalf("tick %d: spawner count %d differs from stats %d", tick, s.Spawned, stats.Spawned)
		}
		if s.Spawned > s.MaxCount {
			t.Fatalf("tick %d: spawned %d exceeds cap %d", tick, s.Spawned, s.MaxCount)
		}
		if s.Frequency < spawnerCfg.Frequency.Min || s.Frequency > spawnerCfg.Frequency.Max {
			t.Fatalf("frequency %g outside configured range", s.Frequency)
		}
	}

	s, _ := ecs.Get(w, sp, component.SpawnerComponent)
	if s.Spawned != 100 {
		t.Fatalf("expected 100 spawned after 300s, got %d", s.Spawned)
	}
	if got := walkerCount(w); got != 100 {
		t.Fatalf("expected 100 walkers, got %d", got)
	}
	if stats := mustStats(t, w); stats.Total != 100 {
		t.Fatalf("expected total 100, got %d", stats.Total)
	}

	for tick := 0; tick < 100; tick++ {
		sys.Update(w)
	}
	if got := walkerCount(w); got != 100 {
		t.Fatalf("no walkers may be created past the cap, got %d", got)
	}
}

func TestSpawnerPlacesWalkersInsideArea(t *testing.T) {
	cfg := testConfig(t)
	spawnerCfg := config.SpawnerConfig{Width: 20, Height: 6, MaxCount: 30, Frequency: config.Range{Min: 0.1, Max: 0.1}}

	w := newTestWorld(t)
	rng := testRand()
	if _, err := entity.NewSpawner(w, spawnerCfg, 100, 200, rng); err != nil {
		t.Fatal(err)
	}
	sys := NewSpawnerSystem(cfg, rng)
	w.SetDelta(0.1)
	for i := 0; i < 40; i++ {
		sys.Update(w)
	}

	var serials []uint64
	for _, e := range w.Query(component.WalkerComponent.Kind(), component.TransformComponent.Kind()) {
		tr, _ := ecs.Get(w, e, component.TransformComponent)
		if tr.X < 90 || tr.X > 110 || tr.Y < 197 || tr.Y > 203 {
			t.Fatalf("walker at (%g, %g) outside spawn area", tr.X, tr.Y)
		}
		walker, _ := ecs.Get(w, e, component.WalkerComponent)
		serials = append(serials, walker.Serial)
	}
	if len(serials) != 30 {
		t.Fatalf("expected 30 walkers, got %d", len(serials))
	}
	seen := map[uint64]bool{}
	for _, s := range serials {
		if seen[s] {
			t.Fatalf("duplicate serial %d", s)
		}
		seen[s] = true
	}
}

func TestOnlyFirstSpawnerDrivesStats(t *testing.T) {
	cfg := testConfig(t)
	w := newTestWorld(t)
	rng := testRand()

	first, err := entity.NewSpawner(w, config.SpawnerConfig{MaxCount: 3, Frequency: config.Range{Min: 1, Max: 1}}, 0, 0, rng)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := entity.NewSpawner(w, config.SpawnerConfig{MaxCount: 50, Frequency: config.Range{Min: 0.5, Max: 0.5}}, 0, 0, rng); err != nil {
		t.Fatal(err)
	}

	sys := NewSpawnerSystem(cfg, rng)
	w.SetDelta(1)
	for i := 0; i < 5; i++ {
		sys.Update(w)
	}

	s, _ := ecs.Get(w, first, component.SpawnerComponent)
	stats := mustStats(t, w)
	if stats.Total != 3 {
		t.Fatalf("total must come from the first spawner, got %d", stats.Total)
	}
	if stats.Spawned != s.Spawned {
		t.Fatalf("stats.Spawned %d must track the first spawner's %d", stats.Spawned, s.Spawned)
	}
}

func TestSpawnerResetLevelRestartsSerials(t *testing.T) {
	cfg := testConfig(t)
	rng := testRand()
	sys := NewSpawnerSystem(cfg, rng)
	spawnerCfg := config.SpawnerConfig{MaxCount: 3, Frequency: config.Range{Min: 1, Max: 1}}

	firstSerial := func(w *ecs.World) uint64 {
		t.Helper()
		var lowest uint64
		for _, e := range w.Query(component.WalkerComponent.Kind()) {
			walker, _ := ecs.Get(w, e, component.WalkerComponent)
			if lowest == 0 || walker.Serial < lowest {
				lowest = walker.Serial
			}
		}
		return lowest
	}
	run := func() *ecs.World {
		w := newTestWorld(t)
		if _, err := entity.NewSpawner(w, spawnerCfg, 0, 0, rng); err != nil {
			t.Fatal(err)
		}
		w.SetDelta(1)
		for i := 0; i < 5; i++ {
			sys.Update(w)
		}
		return w
	}

	if got := firstSerial(run()); got != 1 {
		t.Fatalf("expected first serial 1, got %d", got)
	}
	if got := firstSerial(run()); got != 4 {
		t.Fatalf("serials should carry on without a reset, got %d", got)
	}
	sys.ResetLevel()
	if got := firstSerial(run()); got != 1 {
		t.Fatalf("expected serials to restart at 1 after ResetLevel, got %d", got)
	}
}
