package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"fittracker/internal/collector"
	"fittracker/internal/config"
	"fittracker/internal/ratelimit"
	"fittracker/internal/tracker"
	"fittracker/internal/training"
)

const (
	ExitSuccess = 0
	ExitFailed  = 1 // at least one reading produced no summary
	ExitError   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fittracker", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to YAML config file")
	input := fs.String("input", "", "CSV or JSON file with readings (types: "+strings.Join(training.Kinds(), ", ")+")")
	selectPath := fs.String("select", "", "JSONPath to the readings array in a JSON input")
	output := fs.String("output", "", "output format: text, json")
	rate := fs.Float64("rate", -1, "replay pace in readings per second (0 = unpaced)")
	verbose := fs.Bool("verbose", false, "log every processed reading")
	if err := fs.Parse(args); err != nil {
		return ExitError
	}

	cfg, err := loadConfig(*configPath, *input, *selectPath)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitError
	}

	// CLI flags override config file values
	if *output != "" {
		cfg.Output = *output
	}
	if *rate >= 0 {
		cfg.Replay.Rate = *rate
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitError
	}

	readings, err := cfg.Readings()
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitError
	}

	logger := newLogger(stderr, *verbose)
	defer logger.Sync() //nolint:errcheck

	coll := collector.NewCollector()
	opts := []tracker.Option{tracker.WithLogger(logger)}
	var limiter *ratelimit.RateLimiter
	if cfg.Replay.Rate > 0 {
		limiter = ratelimit.NewRateLimiter(cfg.Replay.Rate)
		opts = append(opts, tracker.WithLimiter(limiter))
	}
	tr := tracker.New(coll, opts...)

	logger.Debugw("processing batch", "readings", len(readings), "rate", limiter.Rate())
	if err := tr.Process(ctx, readings); err != nil {
		// interrupted: still report what was processed
		fmt.Fprintf(stderr, "\n%v\n", err)
	}

	if cfg.Output == config.OutputJSON {
		if err := coll.PrintJSON(stdout); err != nil {
			fmt.Fprintf(stderr, "error: writing output: %v\n", err)
			return ExitError
		}
	} else {
		coll.PrintText(stdout)
	}

	if coll.Failed() > 0 {
		return ExitFailed
	}
	return ExitSuccess
}

// loadConfig picks the config source: a file, a bare input file, or the demo batch.
func loadConfig(configPath, input, selectPath string) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case configPath != "":
		c, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = c
	case input != "":
		cfg = &config.Config{Output: config.OutputText}
	default:
		return config.Default(), nil
	}

	if input != "" {
		// a flag path is relative to the working directory, not the config file
		cfg.Input = &config.InputConfig{Path: input, Select: selectPath}
		cfg.Dir = ""
	}
	return cfg, nil
}

func newLogger(w io.Writer, verbose bool) *zap.SugaredLogger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		level,
	)
	return zap.New(core).Sugar()
}
