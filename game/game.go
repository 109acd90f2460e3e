package game

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/matriarch/config"
	"github.com/milk9111/matriarch/ecs"
	"github.com/milk9111/matriarch/ecs/component"
	"github.com/milk9111/matriarch/ecs/entity"
	"github.com/milk9111/matriarch/ecs/system"
	"github.com/milk9111/matriarch/hud"
	"github.com/milk9111/matriarch/levels"
	"github.com/milk9111/matriarch/logger"
)

// ErrQuit is returned by Update once a Quit command has been read.
var ErrQuit = errors.New("game: quit")

type Options struct {
	// ConfigPath is reread on reload. Empty means the embedded default.
	ConfigPath string
	// Seed makes spawning reproducible.
	Seed uint64
	// CommandCapacity is the command bus ring size; zero uses the default.
	CommandCapacity int
}

// Game owns the world and drives one simulation tick per Update: drain
// commands, step level progression, then run the systems and flush.
type Game struct {
	opts Options
	cfg  *config.Config

	world       *ecs.World
	physics     *ecs.PhysicsWorld
	commands    *ecs.Channel[component.Command]
	reader      ecs.ReaderID
	progression *levels.Progression
	scheduler   *ecs.Scheduler
	spawner     *system.SpawnerSystem
	board       *hud.Board
	camera      ecs.Entity
	rng         *rand.Rand

	mode    system.PersistenceMode
	reloads <-chan string
}

// New builds a game around cfg. The first level loads over the first few
// updates.
func New(cfg *config.Config, opts Options) (*Game, error) {
	if cfg == nil {
		return nil, fmt.Errorf("game: %w: nil config", config.ErrInvalid)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	owned := *cfg

	g := &Game{
		opts:     opts,
		cfg:      &owned,
		world:    ecs.NewWorld(),
		physics:  ecs.NewPhysicsWorld(gravity(&owned)),
		commands: ecs.NewChannel[component.Command](opts.CommandCapacity),
		board:    hud.NewBoard(),
		mode:     system.PersistenceOnReload,
	}
	g.reader = g.commands.Register()
	g.physics.Attach(g.world)
	logger.SetLevel(owned.LogLevel)

	camera, err := entity.NewCamera(g.world, 0, 0, owned.Camera.ZMax)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	g.camera = camera
	if _, err := entity.NewSpawnStats(g.world); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	g.progression = levels.NewProgression(owned.Levels)
	g.spawner = system.NewSpawnerSystem(g.cfg, rng)
	g.scheduler = ecs.NewScheduler(
		system.NewPhysicsSystem(),
		system.NewConstantVelocitySystem(),
		system.NewAgeSystem(),
		system.NewHazardSystem(),
		g.spawner,
		system.NewWalkerSystem(g.cfg),
		system.NewMatriarchSystem(),
		system.NewLaunchSystem(g.cfg),
		system.NewDropLiftSystem(g.commands, g.cfg),
		system.NewDropRamSystem(g.commands, g.cfg),
		system.NewDropDirectionChangerSystem(g.commands, g.cfg),
		system.NewChangeDirectionSystem(),
		system.NewCameraSystem(g.cfg, g.progression, g.commands),
		system.NewHUDSystem(g.board),
	)
	g.rng = rng
	return g, nil
}

func gravity(cfg *config.Config) cp.Vector {
	return cp.Vector{X: cfg.Physics.Gravity.X, Y: cfg.Physics.Gravity.Y}
}

func (g *Game) Commands() *ecs.Channel[component.Command] { return g.commands }
func (g *Game) World() *ecs.World                         { return g.world }
func (g *Game) Physics() *ecs.PhysicsWorld                { return g.physics }
func (g *Game) Board() *hud.Board                         { return g.board }
func (g *Game) Progression() *levels.Progression          { return g.progression }
func (g *Game) Config() *config.Config                    { return g.cfg }

// Camera returns the camera entity.
func (g *Game) Camera() ecs.Entity { return g.camera }

// WatchConfig makes every name received on events trigger a reload at the
// start of the next tick.
func (g *Game) WatchConfig(events <-chan string) {
	g.reloads = events
}

// Update advances the simulation by dt simulated seconds.
func (g *Game) Update(dt float64) error {
	g.drainWatcher()

	quit := false
	for _, cmd := range g.commands.Read(g.reader) {
		switch cmd.Kind {
		case component.CommandQuit:
			quit = true
		case component.CommandReloadConfig:
			_ = g.Reload()
		case component.CommandNextLevel:
			g.Next()
		}
	}
	if quit {
		return ErrQuit
	}

	g.world.SetDelta(dt)
	switch g.progression.Update() {
	case levels.ActionUnload:
		g.unload()
	case levels.ActionLoad:
		if err := g.load(); err != nil {
			return err
		}
	}

	if g.progression.State() == levels.StateLoaded {
		g.scheduler.Update(g.world)
		return nil
	}
	// No level to act on; systems must not replay these once one loads.
	g.commands.Discard()
	g.world.Flush()
	return nil
}

// Reload rereads the configuration and, if it is valid, applies it. A bad
// file is logged and the running configuration stays in effect.
func (g *Game) Reload() error {
	cfg, err := config.Load(g.opts.ConfigPath)
	if err != nil {
		logger.Log.WithError(err).Error("config reload failed, keeping previous configuration")
		return err
	}
	g.ApplyConfig(cfg)
	return nil
}

// ApplyConfig swaps in cfg and reloads the current level. Systems hold the
// same *config.Config, so they see the new values from the next tick.
func (g *Game) ApplyConfig(cfg *config.Config) {
	*g.cfg = *cfg
	logger.SetLevel(g.cfg.LogLevel)
	g.physics.SetGravity(gravity(g.cfg))
	g.mode = system.PersistenceOnReload
	g.progression.Initialise(g.cfg.Levels)
	logger.Log.WithFields(map[string]any{
		"levels":  len(g.cfg.Levels),
		"current": g.progression.Current(),
	}).Info("configuration reloaded")
}

// Next advances to the following level, if any.
func (g *Game) Next() bool {
	if !g.progression.Next() {
		logger.Log.Info("no more levels")
		return false
	}
	g.mode = system.PersistenceOnLevelChange
	return true
}

func (g *Game) drainWatcher() {
	if g.reloads == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.reloads:
			if !ok {
				g.reloads = nil
				return
			}
			logger.Log.WithField("file", name).Debug("config changed on disk")
			g.commands.Publish(component.Command{Kind: component.CommandReloadConfig})
		default:
			return
		}
	}
}

func (g *Game) unload() {
	destroyed := system.PruneLevel(g.world, g.mode)
	g.physics.Reset()
	logger.Log.WithFields(map[string]any{
		"mode":      g.mode,
		"destroyed": destroyed,
	}).Debug("level unloaded")
}

func (g *Game) load() error {
	lvl, ok := g.progression.Level()
	if !ok {
		return fmt.Errorf("game: %w: %d", levels.ErrLevelOutOfRange, g.progression.Current())
	}
	if err := entity.LoadLevelToWorld(g.world, g.cfg, lvl, g.rng); err != nil {
		return fmt.Errorf("game: load level: %w", err)
	}
	if err := entity.ResetSpawnStats(g.world, g.cfg.SpawnerFor(lvl).MaxCount); err != nil {
		return fmt.Errorf("game: load level: %w", err)
	}
	g.spawner.ResetLevel()

	if t, ok := ecs.Get(g.world, g.camera, component.TransformComponent); ok {
		t.X, t.Y = lvl.Spawn.X, lvl.Spawn.Y
		_ = ecs.Add(g.world, g.camera, component.TransformComponent, t)
	}
	g.board.SetText(hud.SlotName, lvl.Name)
	g.board.SetText(hud.SlotDescription, lvl.Description)

	g.progression.MarkLoaded()
	g.mode = system.PersistenceOnLevelChange
	logger.Log.WithFields(map[string]any{
		"level": g.progression.Current(),
		"name":  lvl.Name,
	}).Info("level loaded")
	return nil
}
