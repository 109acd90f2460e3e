package system

import (
	"math/rand/v2"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/matriarch/config"
	"github.com/milk9111/matriarch/ecs"
	"github.com/milk9111/matriarch/ecs/component"
	"github.com/milk9111/matriarch/ecs/entity"
)

// newTestWorld returns a world with a gravity-free physics world and the
// stats singleton.
func newTestWorld(t *testing.T) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	ecs.NewPhysicsWorld(cp.Vector{}).Attach(w)
	if _, err := entity.NewSpawnStats(w); err != nil {
		t.Fatal(err)
	}
	return w
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Default()
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func addWalker(t *testing.T, w *ecs.World, cfg *config.Config, x, y float64, dir component.Direction, serial uint64) ecs.Entity {
	t.Helper()
	e, err := entity.NewWalker(w, cfg.Pawn, cp.Vector{X: x, Y: y}, dir, serial)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func setAge(t *testing.T, w *ecs.World, e ecs.Entity, seconds float64) {
	t.Helper()
	age, _ := ecs.Get(w, e, component.AgeComponent)
	age.Seconds = seconds
	if err := ecs.Add(w, e, component.AgeComponent, age); err != nil {
		t.Fatal(err)
	}
}

func matriarchCount(w *ecs.World) int {
	return w.Count(component.MatriarchComponent.Kind())
}

func walkerCount(w *ecs.World) int {
	return w.Count(component.WalkerComponent.Kind())
}

func mustStats(t *testing.T, w *ecs.World) component.SpawnStats {
	t.Helper()
	stats, ok := Stats(w)
	if !ok {
		t.Fatalf("missing spawn stats")
	}
	return stats
}
