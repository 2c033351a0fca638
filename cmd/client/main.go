package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cbodonnell/balloonpop/client/audio"
	"github.com/cbodonnell/balloonpop/client/game"
	"github.com/cbodonnell/balloonpop/pkg/config"
	gametypes "github.com/cbodonnell/balloonpop/pkg/game/types"
	"github.com/cbodonnell/balloonpop/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	envFile := flag.String("env-file", ".env", "Path to an optional .env file")
	logLevel := flag.String("log-level", config.DefaultLogLevel, "Log level")
	debug := flag.Bool("debug", false, "Show the debug overlay")
	mute := flag.Bool("mute", false, "Disable sound")
	width := flag.Int("width", config.DefaultScreenWidth, "Initial window width")
	height := flag.Int("height", config.DefaultScreenHeight, "Initial window height")
	maxBalloons := flag.Int("max-balloons", 0, "Maximum number of balloons on screen")
	speedMin := flag.Float64("speed-min", 0, "Minimum balloon rise speed in pixels per frame")
	speedMax := flag.Float64("speed-max", 0, "Maximum balloon rise speed in pixels per frame")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// flags given on the command line win over the environment
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.LogLevel = *logLevel
		case "debug":
			cfg.Debug = *debug
		case "mute":
			cfg.Mute = *mute
		case "width":
			cfg.ScreenWidth = *width
		case "height":
			cfg.ScreenHeight = *height
		case "max-balloons":
			cfg.MaxBalloons = *maxBalloons
		case "speed-min":
			cfg.SpeedMin = *speedMin
		case "speed-max":
			cfg.SpeedMax = *speedMax
		}
	})

	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("Invalid config: %v", err))
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	soundManager := audio.NewSoundManager(cfg.Mute)
	if err := soundManager.Initialize(); err != nil {
		log.Warn("Continuing without sound: %v", err)
	}
	defer soundManager.Cleanup()

	g, err := game.NewGame(game.NewGameOptions{
		Debug:  cfg.Debug,
		Sound:  soundManager,
		Tuning: cfg.Tuning(),
		Viewport: gametypes.Viewport{
			Width:  float64(cfg.ScreenWidth),
			Height: float64(cfg.ScreenHeight),
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Balloon Pop")
	ebiten.SetRunnableOnUnfocused(true)
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
}
