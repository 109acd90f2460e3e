package system

import (
	"github.com/milk9111/matriarch/common"
	"github.com/milk9111/matriarch/config"
	"github.com/milk9111/matriarch/ecs"
	"github.com/milk9111/matriarch/ecs/component"
)

// LevelSource yields the level currently being played.
type LevelSource interface {
	Level() (config.LevelConfig, bool)
}

// CameraSystem follows the matriarchs, or the level's final position once a
// walker has been saved. Zoom commands drive depth while following; the latest
// command of a tick wins.
type CameraSystem struct {
	cfg       *config.Config
	levels    LevelSource
	commands  *ecs.Channel[component.Command]
	reader    ecs.ReaderID
	camEntity ecs.Entity
}

func NewCameraSystem(cfg *config.Config, levels LevelSource, commands *ecs.Channel[component.Command]) *CameraSystem {
	return &CameraSystem{
		cfg:      cfg,
		levels:   levels,
		commands: commands,
		reader:   commands.Register(),
	}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	zoom := 0.0
	for _, cmd := range cs.commands.Read(cs.reader) {
		if cmd.Kind == component.CommandZoom {
			zoom = cmd.Amount
		}
	}

	if !w.IsAlive(cs.camEntity) {
		camEntity, ok := w.First(component.CameraTagComponent.Kind(), component.TransformComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
	}

	tx, ty, tz, final, ok := cs.target(w)
	if !ok {
		return
	}

	t, ok := ecs.Get(w, cs.camEntity, component.TransformComponent)
	if !ok {
		return
	}
	step := w.Delta() * cs.cfg.Camera.ConvergenceSpeed
	t.X = common.Lerp(t.X, tx, step)
	t.Y = common.Lerp(t.Y, ty, step)
	if final {
		t.Z = common.Lerp(t.Z, tz, step)
	} else {
		t.Z += zoom * w.Delta() * cs.cfg.Camera.ZoomSpeed
		t.Z = common.Clamp(t.Z, cs.cfg.Camera.ZMin, cs.cfg.Camera.ZMax)
	}
	_ = ecs.Add(w, cs.camEntity, component.TransformComponent, t)
}

// target returns where the camera should head and whether depth follows it.
func (cs *CameraSystem) target(w *ecs.World) (x, y, z float64, final, ok bool) {
	if stats, found := Stats(w); found && stats.Saved > 0 {
		var fp *config.Vec3
		if cs.levels != nil {
			if lvl, has := cs.levels.Level(); has {
				fp = cs.cfg.FinalPositionFor(lvl)
			}
		} else {
			fp = cs.cfg.Camera.FinalPosition
		}
		if fp != nil {
			return fp.X, fp.Y, fp.Z, true, true
		}
	}

	matriarchs := w.Query(
		component.MatriarchComponent.Kind(),
		component.WalkerComponent.Kind(),
		component.TransformComponent.Kind(),
	)
	if len(matriarchs) == 0 {
		return 0, 0, 0, false, false
	}
	offset := cs.cfg.Camera.Offset
	for _, e := range matriarchs {
		t, _ := ecs.Get(w, e, component.TransformComponent)
		walker, _ := ecs.Get(w, e, component.WalkerComponent)
		x += t.X + offset.X*walker.Direction.Sign()
		y += t.Y + offset.Y
	}
	n := float64(len(matriarchs))
	return x / n, y / n, 0, false, true
}
