package system

import (
	"math"
	"testing"

	"github.com/milk9111/matriarch/config"
	"github.com/milk9111/matriarch/ecs"
	"github.com/milk9111/matriarch/ecs/component"
	"github.com/milk9111/matriarch/ecs/entity"
)

type fixedLevel struct {
	level config.LevelConfig
}

func (f fixedLevel) Level() (config.LevelConfig, bool) { return f.level, true }

func newCamera(t *testing.T, w *ecs.World, x, y, z float64) ecs.Entity {
	t.Helper()
	e, err := entity.NewCamera(w, x, y, z)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func cameraAt(w *ecs.World, e ecs.Entity) component.Transform {
	tr, _ := ecs.Get(w, e, component.TransformComponent)
	return tr
}

func TestCameraStillWithoutTargets(t *testing.T) {
	cfg := testConfig(t)
	w := newTestWorld(t)
	commands := ecs.NewChannel[component.Command](0)
	cam := newCamera(t, w, 5, 6, 700)
	sys := NewCameraSystem(cfg, nil, commands)

	commands.Publish(component.Command{Kind: component.CommandZoom, Amount: 1})
	w.SetDelta(1.0 / 60)
	sys.Update(w)

	tr := cameraAt(w, cam)
	if tr.X != 5 || tr.Y != 6 || tr.Z != 700 {
		t.Fatalf("camera must not move without targets, got %+v", tr)
	}
}

func TestCameraFollowsMatriarchWithOffset(t *testing.T) {
	cfg := testConfig(t)
	cfg.Camera.Offset = config.Vec2{X: 10, Y: 5}
	cfg.Camera.ConvergenceSpeed = 1
	w := newTestWorld(t)
	commands := ecs.NewChannel[component.Command](0)
	cam := newCamera(t, w, 0, 0, 700)

	addWalker(t, w, cfg, 100, 20, component.DirectionLeft, 1)
	NewMatriarchSystem().Update(w)

	sys := NewCameraSystem(cfg, nil, commands)
	w.SetDelta(0.5)
	sys.Update(w)

	// target = (100 - 10, 20 + 5); half the gap is closed.
	tr := cameraAt(w, cam)
	if tr.X != 45 || tr.Y != 12.5 {
		t.Fatalf("expected (45, 12.5), got (%g, %g)", tr.X, tr.Y)
	}
	if tr.Z != 700 {
		t.Fatalf("depth only changes with zoom while following, got %g", tr.Z)
	}
}

func TestCameraZoomLatestWinsAndClamps(t *testing.T) {
	cfg := testConfig(t)
	cfg.Camera.ZoomSpeed = 100
	cfg.Camera.ZMin = 200
	cfg.Camera.ZMax = 1000
	w := newTestWorld(t)
	commands := ecs.NewChannel[component.Command](0)
	cam := newCamera(t, w, 0, 0, 500)
	addWalker(t, w, cfg, 0, 0, component.DirectionRight, 1)
	NewMatriarchSystem().Update(w)

	sys := NewCameraSystem(cfg, nil, commands)
	w.SetDelta(1)

	commands.Publish(component.Command{Kind: component.CommandZoom, Amount: 3})
	commands.Publish(component.Command{Kind: component.CommandZoom, Amount: -1})
	sys.Update(w)
	if z := cameraAt(w, cam).Z; z != 400 {
		t.Fatalf("latest zoom (-1) should win: expected 400, got %g", z)
	}

	commands.Publish(component.Command{Kind: component.CommandZoom, Amount: -10})
	sys.Update(w)
	if z := cameraAt(w, cam).Z; z != 200 {
		t.Fatalf("expected clamp to z_min 200, got %g", z)
	}
}

func TestCameraConvergesToFinalPosition(t *testing.T) {
	cfg := testConfig(t)
	cfg.Camera.ConvergenceSpeed = 2
	w := newTestWorld(t)
	commands := ecs.NewChannel[component.Command](0)
	cam := newCamera(t, w, 0, 0, 700)

	// A matriarch far away must not pull the camera.
	addWalker(t, w, cfg, -5000, -5000, component.DirectionLeft, 1)
	NewMatriarchSystem().Update(w)
	updateStats(w, func(s *component.SpawnStats) { s.Saved = 1 })

	final := config.Vec3{X: 960, Y: 80, Z: 400}
	sys := NewCameraSystem(cfg, fixedLevel{config.LevelConfig{FinalPosition: &final}}, commands)
	w.SetDelta(1.0 / 60)
	for i := 0; i < 60*15; i++ {
		sys.Update(w)
	}

	tr := cameraAt(w, cam)
	const eps = 1e-3
	if math.Abs(tr.X-final.X) > eps || math.Abs(tr.Y-final.Y) > eps || math.Abs(tr.Z-final.Z) > eps {
		t.Fatalf("expected camera at %+v, got %+v", final, tr)
	}
}
