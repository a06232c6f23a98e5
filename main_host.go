package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"wireframe/app"
	"wireframe/hal"
	"wireframe/internal/buildinfo"
	"wireframe/internal/logflag"
	"wireframe/scene"
)

func main() {
	var (
		headless     bool
		hc           hal.HeadlessConfig
		configPath   string
		snapshotPath string
		snapshotDir  string
		logFile      string
		scale        float64
		hud          bool
		version      bool
	)
	level := logflag.NewLevel(slog.LevelInfo)
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.IntVar(&hc.Hz, "hz", 60, "Frame rate.")
	flag.Uint64Var(&hc.Ticks, "ticks", 0, "Stop after N frames in headless mode (0 = run until interrupted).")
	flag.StringVar(&configPath, "config", "", "Scene YAML file (default: built-in scene).")
	flag.StringVar(&snapshotPath, "snapshot", "", "Write the last frame as PNG to this path on exit.")
	flag.StringVar(&snapshotDir, "snapdir", "", "Directory for F3 snapshots (default: working directory).")
	flag.Var(level, "loglevel", "Log level: debug, info, warn, error.")
	flag.StringVar(&logFile, "logfile", "", "Write logs to this rotating file instead of stderr.")
	flag.Float64Var(&scale, "scale", 1, "Window scale factor.")
	flag.BoolVar(&hud, "hud", true, "Show the editing panel overlay.")
	flag.BoolVar(&version, "version", false, "Print the build stamp and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}

	closer := logflag.Setup(level.Level(), logFile)
	defer closer.Close()

	if err := run(headless, hc, configPath, snapshotPath, app.Config{SnapshotDir: snapshotDir, HUD: hud}, scale); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		closer.Close()
		os.Exit(1)
	}
}

func run(headless bool, hc hal.HeadlessConfig, configPath, snapshotPath string, cfg app.Config, scale float64) error {
	sc := scene.Default()
	if configPath != "" {
		var err error
		if sc, err = scene.LoadFile(configPath); err != nil {
			return err
		}
	}
	cfg.Scene = sc
	slog.Info("starting", "version", buildinfo.Short(), "headless", headless, "config", configPath)

	var a *app.App
	newApp := app.Factory(cfg, func(x *app.App) { a = x })

	var err error
	if headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		hc.Width, hc.Height = sc.Viewport.Width, sc.Viewport.Height
		err = hal.RunHeadless(ctx, newApp, hc)
		if errors.Is(err, context.Canceled) {
			err = nil
		}
	} else {
		err = hal.RunWindow(newApp, hal.WindowConfig{
			Title:  "wireframe",
			Width:  sc.Viewport.Width,
			Height: sc.Viewport.Height,
			Scale:  scale,
			Hz:     hc.Hz,
		})
	}
	if err != nil {
		return err
	}

	if a != nil {
		st := a.Stats()
		slog.Info("stopped", "frames", a.Frames(), "lines", st.Emitted, "skipped", st.Skipped)
		if snapshotPath != "" {
			return a.SaveSnapshot(snapshotPath)
		}
	}
	return nil
}
