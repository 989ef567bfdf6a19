package main

import (
	"errors"
	"flag"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/driftwork/driftfield/internal/config"
	game_log "github.com/driftwork/driftfield/internal/log"
	"github.com/driftwork/driftfield/internal/ui"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a TOML config file")
		logLevel   = flag.String("log-level", "", "DEBUG, INFO, WARN, ERROR or NONE (overrides config)")
		width      = flag.Int("width", 0, "window width (overrides config)")
		height     = flag.Int("height", 0, "window height (overrides config)")
		seed       = flag.Int64("seed", 0, "simulation seed; 0 uses the current time")
		demo       = flag.Int64("demo", 0, "run this many frames, then exit")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		game_log.Default().Errorf("%v", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}

	logger := game_log.New(os.Stderr, game_log.LevelFromString(cfg.LogLevel))

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	g := ui.New(logger, cfg, s)
	if *demo > 0 {
		g.SetDemoFrames(*demo)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Errorf("run: %v", err)
		os.Exit(1)
	}
}
