package main

import (
	"flag"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"retro-snake/game"
	"retro-snake/game/manager"
	"retro-snake/game/types"
	"retro-snake/ui"
)

type options struct {
	assetsDir string
	seed      uint64
}

func main() {
	_ = godotenv.Load()

	assetsDir := flag.String("assets", getEnv("SNAKE_ASSETS", "."), "Directory containing graphics/ and sounds/")
	level := flag.String("log-level", getEnv("LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")
	seed := flag.Uint64("seed", 0, "Food placement seed (0 = time based)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	lvl, err := logLevel(*level)
	zerolog.SetGlobalLevel(lvl)
	if err != nil {
		log.Warn().Err(err).Str("log-level", *level).Msg("unknown log level, using info")
	}

	if err := run(options{assetsDir: *assetsDir, seed: *seed}); err != nil {
		log.Fatal().Err(err).Msg("retro snake exited")
	}
}

// logLevel parses name, falling back to info when it is not a level.
func logLevel(name string) (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.InfoLevel, err
	}
	if lvl == zerolog.NoLevel {
		return zerolog.InfoLevel, errors.Errorf("empty log level %q", name)
	}
	return lvl, nil
}

// run owns the window and assets so their cleanup always runs before
// main reports an error.
func run(opts options) error {
	cfg := types.DefaultConfig()

	// Fail before opening a window if anything is missing.
	if err := ui.CheckAssets(opts.assetsDir); err != nil {
		return errors.Wrapf(err, "assets not found in %s", opts.assetsDir)
	}

	if opts.seed == 0 {
		opts.seed = uint64(time.Now().UnixNano())
	}
	g, err := game.NewGame(cfg,
		game.WithLogger(log.Logger),
		game.WithRand(rand.New(rand.NewSource(opts.seed))),
	)
	if err != nil {
		return errors.Wrap(err, "failed to create game")
	}

	size := int32(cfg.WindowPixels())
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(size, size, ui.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.TargetFPS))

	assets, err := ui.LoadAssets(opts.assetsDir)
	if err != nil {
		return errors.Wrap(err, "failed to load assets")
	}
	defer assets.Unload()

	renderer := ui.NewRenderer(cfg, assets)
	ticker := manager.NewTickManager(cfg.TickInterval)

	log.Info().Str("game", g.ID()).Uint64("seed", opts.seed).Msg("starting retro snake")

	for !rl.WindowShouldClose() {
		// Update game state at fixed interval
		now := time.Duration(rl.GetTime() * float64(time.Second))
		if ticker.Ready(now) {
			assets.Play(g.Update())
		}

		for _, dir := range ui.PressedDirections() {
			g.ChangeDirection(dir)
		}

		renderer.Draw(g)
	}

	log.Info().Int("best", g.HighScore()).Int("rounds", g.Rounds()).Msg("bye")
	return nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
