// Command breakout plays Breakout headlessly and writes rendered frames as PNG files.
//
// An autopilot drives the paddle, so a run exercises the menu, the physics,
// power-ups and post-processing without a window. Level files are watched and
// reloaded between frames when -watch is set.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gogpu/breakout"
	"github.com/gogpu/breakout/audio"
	"github.com/gogpu/breakout/internal/config"
	"github.com/gogpu/breakout/render"
	"github.com/gogpu/breakout/resource"
)

// dt is the fixed simulation step.
const dt = float32(1) / 60

type options struct {
	config  string
	assets  string
	frames  int
	out     string
	every   int
	seed    uint64
	verbose bool
	watch   bool
	sound   bool
}

func main() {
	var opts options
	flag.StringVar(&opts.config, "config", "", "TOML config file")
	flag.StringVar(&opts.assets, "assets", "assets", "assets directory (textures/ and audio/)")
	flag.IntVar(&opts.frames, "frames", 600, "frames to simulate")
	flag.StringVar(&opts.out, "out", "frames", "output directory for PNG frames")
	flag.IntVar(&opts.every, "every", 10, "write every Nth frame, 0 disables output")
	flag.Uint64Var(&opts.seed, "seed", 1, "random seed")
	flag.BoolVar(&opts.verbose, "v", false, "debug logging")
	flag.BoolVar(&opts.watch, "watch", false, "reload level files when they change")
	flag.BoolVar(&opts.sound, "sound", false, "play audio through the default output device")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	written, err := run(ctx, opts)
	if err != nil {
		log.Fatalf("breakout: %v", err)
	}
	log.Printf("Simulated %d frames, wrote %d to %s\n", opts.frames, written, opts.out)
}

func run(ctx context.Context, opts options) (int, error) {
	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	breakout.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	logger := breakout.Logger()

	cfg, err := config.Load(opts.config)
	if err != nil {
		return 0, err
	}

	textures := resource.NewManager()
	if n, err := textures.LoadDir(filepath.Join(opts.assets, "textures")); err != nil {
		logger.Warn("loading textures", "loaded", n, "err", err)
	}
	addFallbackTextures(textures, int(cfg.Width), int(cfg.Height))

	gameOpts := []breakout.Option{
		breakout.WithRand(rand.New(rand.NewPCG(opts.seed, opts.seed))),
	}
	if opts.sound {
		engine, err := audio.NewSpeaker(audio.DefaultSampleRate)
		if err != nil {
			return 0, err
		}
		defer audio.Stop()
		if n, err := engine.LoadDir(filepath.Join(opts.assets, "audio")); err != nil {
			logger.Warn("loading sounds", "loaded", n, "err", err)
		}
		gameOpts = append(gameOpts, breakout.WithSound(engine))
	}

	game := breakout.New(cfg, gameOpts...)
	if err := game.Init(); err != nil {
		logger.Error("init", "err", err)
	}

	frame, err := render.NewFrame(int(cfg.Width), int(cfg.Height))
	if err != nil {
		return 0, err
	}
	defer func() { _ = frame.Close() }()
	post := render.NewPostProcessor()

	var seq *render.Sequence
	if opts.every > 0 {
		if seq, err = render.NewSequence(opts.out); err != nil {
			return 0, err
		}
	}

	reload := make(chan string, 16)
	if opts.watch {
		watchLevels(ctx, cfg.Levels, reload)
	}

	var pilot autopilot
	var elapsed float64
	for i := 0; i < opts.frames; i++ {
		if ctx.Err() != nil {
			logger.Info("interrupted", "frame", i)
			break
		}
		drainReloads(game, reload)

		game.ProcessInput(dt, pilot.input(game))
		game.Update(dt)
		elapsed += float64(dt)

		if seq == nil || i%opts.every != 0 {
			continue
		}
		frame.Begin()
		game.Draw(frame, frame, textures)
		img := post.Apply(frame.Image(), game.Effects(), elapsed)
		if _, err := seq.Write(img); err != nil {
			return seq.Count(), err
		}
	}

	logger.Info("session over", "state", game.State(), "level", game.LevelIndex(), "lives", game.Lives())
	if seq == nil {
		return 0, nil
	}
	return seq.Count(), nil
}

// watchLevels starts one watcher per directory holding a configured level.
func watchLevels(ctx context.Context, levels []string, changed chan<- string) {
	seen := make(map[string]bool)
	for _, path := range levels {
		dir := filepath.Dir(path)
		if seen[dir] {
			continue
		}
		seen[dir] = true
		go func() {
			if err := resource.WatchLevels(ctx, dir, changed); err != nil {
				breakout.Logger().Warn("level watcher stopped", "dir", dir, "err", err)
			}
		}()
	}
}

// drainReloads applies every pending level change without blocking.
func drainReloads(g *breakout.Game, changed <-chan string) {
	for {
		select {
		case path := <-changed:
			if g.ReloadLevel(path) {
				breakout.Logger().Info("level reloaded", "path", path)
			}
		default:
			return
		}
	}
}
