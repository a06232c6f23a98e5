// Command wiresnap renders a scene file to PNG without opening a window.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/dustin/go-humanize"

	"wireframe/internal/logflag"
	"wireframe/scene"
	"wireframe/snapshot"
	"wireframe/wiregl"
)

const defaultOutPath = "wireframe.png"

func main() {
	var configPath string
	var outPath string
	var orbit int
	var logFile string
	level := logflag.NewLevel(slog.LevelWarn)
	flag.StringVar(&configPath, "config", "", "Scene YAML file (default: built-in scene).")
	flag.StringVar(&outPath, "out", defaultOutPath, "Output PNG path, or output directory with -orbit.")
	flag.IntVar(&orbit, "orbit", 0, "Render N frames orbiting the camera around the Y axis.")
	flag.Var(level, "loglevel", "Log level: debug, info, warn, error.")
	flag.StringVar(&logFile, "logfile", "", "Write logs to this rotating file instead of stderr.")
	flag.Parse()

	if outPath == "" {
		fmt.Fprintln(os.Stderr, "error: -out is required")
		os.Exit(2)
	}
	if orbit < 0 {
		fmt.Fprintln(os.Stderr, "error: -orbit must be >= 0")
		os.Exit(2)
	}

	closer := logflag.Setup(level.Level(), logFile)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stdout, configPath, outPath, orbit)
	stop()
	closer.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, w io.Writer, configPath, outPath string, orbit int) error {
	c := scene.Default()
	if configPath != "" {
		var err error
		if c, err = scene.LoadFile(configPath); err != nil {
			return err
		}
	}

	if orbit > 0 {
		if err := os.MkdirAll(outPath, 0o755); err != nil {
			return fmt.Errorf("create out dir %q: %w", outPath, err)
		}
		frames, err := snapshot.Orbit(ctx, c, orbit, outPath)
		if err != nil {
			return err
		}
		var total uint64
		for _, f := range frames {
			size := fileSize(f.Path)
			total += size
			fmt.Fprintf(w, "%s  %s  %s lines  %016x\n", f.Path, humanize.Bytes(size), humanize.Comma(int64(f.Stats.Emitted)), f.Sum64)
		}
		fmt.Fprintf(w, "%d frames, %s\n", len(frames), humanize.Bytes(total))
		return nil
	}

	s, err := scene.New(c)
	if err != nil {
		return err
	}
	var rec wiregl.LineRecorder
	s.Render(&rec)
	st, err := snapshot.WriteFile(s, outPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s  %s  %s lines (%d skipped)  %016x\n",
		outPath, humanize.Bytes(fileSize(outPath)), humanize.Comma(int64(st.Emitted)), st.Skipped, rec.Sum64())
	return nil
}

func fileSize(path string) uint64 {
	st, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return uint64(st.Size())
}
