package main

import (
	"errors"
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/matriarch/config"
	"github.com/milk9111/matriarch/game"
	"github.com/milk9111/matriarch/logger"
	"github.com/pkg/profile"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the game configuration (embedded default when missing)")
	seed := flag.Uint64("seed", 1, "random seed for spawning")
	watch := flag.Bool("watch", true, "reload the configuration when it changes on disk")
	debug := flag.Bool("debug", false, "draw collider bounds")
	cpuProfile := flag.Bool("profile", false, "write a CPU profile to the working directory")
	flag.Parse()

	logger.Init()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("load configuration")
	}

	g, err := game.New(cfg, game.Options{ConfigPath: *configPath, Seed: *seed})
	if err != nil {
		logger.Log.WithError(err).Fatal("create game")
	}

	if *watch {
		watcher, err := config.WatchFile(*configPath)
		if err != nil {
			logger.Log.WithError(err).Warn("config watcher disabled")
		} else {
			defer watcher.Close()
			g.WatchConfig(watcher.Events)
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("matriarch")

	if err := ebiten.RunGame(NewShell(g, NewInput(), *debug)); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Log.WithError(err).Error("game exited")
	}
}
