// Command diorama runs the animated island diorama, windowed or headless.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Carmen-Shannon/oxy-diorama/common"
	"github.com/Carmen-Shannon/oxy-diorama/engine"
	"github.com/Carmen-Shannon/oxy-diorama/engine/animator"
	"github.com/Carmen-Shannon/oxy-diorama/engine/camera"
	"github.com/Carmen-Shannon/oxy-diorama/engine/clock"
	"github.com/Carmen-Shannon/oxy-diorama/engine/config"
	"github.com/Carmen-Shannon/oxy-diorama/engine/daynight"
	"github.com/Carmen-Shannon/oxy-diorama/engine/input"
	"github.com/Carmen-Shannon/oxy-diorama/engine/loader"
	"github.com/Carmen-Shannon/oxy-diorama/engine/logging"
	"github.com/Carmen-Shannon/oxy-diorama/engine/profiler"
	"github.com/Carmen-Shannon/oxy-diorama/engine/renderer"
	"github.com/Carmen-Shannon/oxy-diorama/engine/scene"
	"github.com/Carmen-Shannon/oxy-diorama/engine/window"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "diorama:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := pflag.StringP("config", "c", "", "config file (toml, json or yaml)")
	headless := pflag.Bool("headless", false, "run without a window")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *headless {
		cfg.Headless = true
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	desc, err := loadDescription(cfg.Scene.File)
	if err != nil {
		return err
	}
	sc := scene.NewScene(desc.Name)
	pending := scene.Populate(sc, desc)
	logger.Info().Str("scene", desc.Name).Int("placements", len(desc.Placements)).Int("assets", len(pending)).Msg("scene described")

	step, err := cfg.StepMode()
	if err != nil {
		return err
	}

	l := loader.NewLoader(
		loader.WithAssetDir(cfg.Assets.Dir),
		loader.WithWorkers(cfg.Assets.Workers),
		loader.WithQueueSize(cfg.Assets.QueueSize),
		loader.WithLogger(logger),
	)
	defer l.Close()

	cam := camera.NewCamera(
		camera.WithAspect(float32(cfg.Window.Width)/float32(cfg.Window.Height)),
		camera.WithController(camera.NewCameraController(
			camera.WithEyePosition(camera.DefaultEyePosition[0], camera.DefaultEyePosition[1], camera.DefaultEyePosition[2]),
			camera.WithDamping(cfg.Camera.Damping),
		)),
	)

	toggle := daynight.NewToggle(sc, daynight.WithLogger(logger))

	options := []engine.EngineBuilderOption{
		engine.WithLogger(logger),
		engine.WithScene(sc),
		engine.WithLoader(l),
		engine.WithCamera(cam),
		engine.WithTickRate(float64(cfg.TickRate)),
		engine.WithWave(animator.NewWaveSimulator(sc, animator.WithWaveStep(step, 0, 0))),
		engine.WithOrbit(animator.NewOrbitAnimator(sc, animator.WithOrbitStep(step, 0, 0))),
		engine.WithSpinner(animator.NewSpinner(sc, animator.WithSpinnerStep(step, 0, 0))),
		engine.WithClipPlayer(animator.NewClipPlayer(sc)),
		engine.WithDriveLoops(animator.NewDriveLoop(sc)),
		engine.WithDayNight(toggle),
		engine.WithProfiling(cfg.Profiling),
		engine.WithProfiler(profiler.NewProfiler(
			profiler.WithLogger(logger),
			profiler.WithInterval(cfg.ProfileInterval),
		)),
	}

	var win window.Window
	if !cfg.Headless {
		w, r, err := openWindow(cfg, sc, cam, logger)
		if err != nil {
			return err
		}
		defer func() {
			r.Release()
			if err := w.Close(); err != nil {
				logger.Warn().Err(err).Msg("window close")
			}
		}()
		win = w
		options = append(options,
			engine.WithWindow(w),
			engine.WithRenderCallback(func(clock.Frame) {
				if err := r.RenderScene(sc); err != nil {
					logger.Warn().Err(err).Msg("render failed")
				}
			}),
		)
	}

	eng := engine.NewEngine(options...)
	if win != nil {
		controls := input.NewControls(cam.Controller())
		controls.Bind(common.KeyT, eng.ToggleDayNight)
		controls.BindUp(common.KeyEsc, win.RequestClose)
		controls.Attach(win)
	}

	if err := eng.Spawn(pending); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().Bool("headless", cfg.Headless).Str("step", step.String()).Msg("diorama started")
	err = eng.Run(ctx)
	logger.Info().Uint64("frames", eng.Clock().Frame().Index).Dur("elapsed", eng.Clock().Elapsed()).Msg("diorama stopped")
	return err
}

// newLogger builds the process logger. With a logs directory set, output is
// also written to a per-session file.
func newLogger(cfg *config.Config) (zerolog.Logger, func(), error) {
	if cfg.LogsDir == "" {
		return logging.New(cfg.LogLevel, cfg.LogPretty, os.Stdout), func() {}, nil
	}

	if err := os.MkdirAll(cfg.LogsDir, 0o755); err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("error creating logs dir: %w", err)
	}
	path := logging.FilePath(cfg.LogsDir, "diorama", time.Now())
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("error opening log file: %w", err)
	}
	return logging.New(cfg.LogLevel, cfg.LogPretty, os.Stdout, f), func() { _ = f.Close() }, nil
}

func loadDescription(path string) (*scene.Description, error) {
	if path == "" {
		return scene.DefaultDescription()
	}
	return scene.LoadDescription(path)
}

// openWindow creates the window and its backdrop renderer, and keeps the
// renderer surface and camera aspect in step with window resizes.
func openWindow(cfg *config.Config, sc scene.Scene, cam camera.Camera, logger zerolog.Logger) (window.Window, renderer.Renderer, error) {
	win, err := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
		window.WithLimits(cfg.Window.MinWidth, cfg.Window.MinHeight, cfg.Window.MaxWidth, cfg.Window.MaxHeight),
	)
	if err != nil {
		return nil, nil, err
	}

	r, err := renderer.NewRenderer(win.SurfaceDescriptor(), win.Width(), win.Height(),
		renderer.WithPresentMode(renderer.PresentModeVSync),
	)
	if err != nil {
		_ = win.Close()
		return nil, nil, err
	}

	win.SetResizeCallback(func(width, height int) {
		if err := r.Resize(width, height); err != nil {
			logger.Warn().Err(err).Int("width", width).Int("height", height).Msg("resize failed")
			return
		}
		if height > 0 {
			cam.SetAspect(float32(width) / float32(height))
		}
	})
	logger.Info().Str("scene", sc.Name()).Int("width", win.Width()).Int("height", win.Height()).Msg("window opened")
	return win, r, nil
}
