package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"time"

	"github.com/pkg/profile"

	"particles/internal/config"
	"particles/internal/game"
)

func init() {
	// glfw and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

// run returns instead of exiting so the profiler is always stopped. All log
// output goes to logOut whatever the format.
func run(args []string, logOut io.Writer) error {
	fs := flag.NewFlagSet("particles", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := fs.Uint64("seed", 0, "RNG seed (0 = $PARTICLES_SEED or time-based)")
	headless := fs.Bool("headless", false, "Run the simulation without a window")
	realtime := fs.Bool("realtime", false, "Headless: pace ticks on the system clock instead of one per frame")
	maxTicks := fs.Int("max-ticks", 0, "Stop after N simulation ticks (0 = unlimited)")
	statsCSV := fs.String("stats-csv", "", "Write per-interval stats to this CSV file")
	dumpConfig := fs.String("dump-config", "", "Write the effective config to this YAML file")
	profMode := fs.String("profile", "", "Profile the run: cpu or mem")
	debug := fs.Bool("debug", false, "Enable debug logging")
	logJSON := fs.Bool("log-json", false, "Log as JSON instead of text")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(logOut, handlerOpts)
	if *logJSON {
		handler = slog.NewJSONHandler(logOut, handlerOpts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *dumpConfig != "" {
		if err := cfg.WriteYAML(*dumpConfig); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
	}

	switch *profMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q", *profMode)
	}

	opts := game.Options{
		Seed:     resolveSeed(*seed),
		MaxTicks: *maxTicks,
		StatsCSV: *statsCSV,
		Realtime: *realtime,
		Logger:   logger,
	}

	var sum game.Summary
	if *headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		sum, err = game.RunHeadless(ctx, cfg, opts)
		stop()
	} else {
		sum, err = game.RunDesktop(cfg, opts)
	}
	if err != nil {
		return err
	}
	logger.Info("exit", "run_id", sum.RunID, "ticks", sum.Ticks, "frames", sum.Frames, "live", sum.Live)
	return nil
}

func resolveSeed(flagSeed uint64) uint64 {
	if flagSeed != 0 {
		return flagSeed
	}
	if s := os.Getenv("PARTICLES_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			return v
		}
	}
	return uint64(time.Now().UnixNano())
}
