package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Dicklesworthstone/compactview/pkg/config"
	"github.com/Dicklesworthstone/compactview/pkg/host"
	"github.com/Dicklesworthstone/compactview/pkg/updater"
	"github.com/Dicklesworthstone/compactview/pkg/viewport"
)

// env is what the commands need from the process. Tests swap the host.
type env struct {
	out     io.Writer
	errOut  io.Writer
	host    func() viewport.Host
	updates func() *updater.Checker
}

func defaultEnv() env {
	return env{
		out:     os.Stdout,
		errOut:  os.Stderr,
		host:    func() viewport.Host { return host.NewTerminal(os.Stdout) },
		updates: updater.NewChecker,
	}
}

type rootOptions struct {
	configPath  string
	threshold   int
	debounce    time.Duration
	orientation bool
	logLevel    string
}

func newRootCmd(e env) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "compactview",
		Short: "Report whether the terminal is compact",
		Long: `compactview classifies the terminal as compact or regular by comparing its
width (and, with --orientation, its height) against a threshold. Resizes are
debounced so a drag produces one update once the size settles.`,
		SilenceUsage: true,
	}
	cmd.SetOut(e.out)
	cmd.SetErr(e.errOut)

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", ".compactview.yaml", "Path to the YAML config file")
	flags.IntVar(&opts.threshold, "threshold", viewport.DefaultThreshold, "Width below which the viewport is compact")
	flags.DurationVar(&opts.debounce, "debounce", viewport.DefaultDebounceDelay, "Quiet period after a resize before reclassifying")
	flags.BoolVar(&opts.orientation, "orientation", false, "Also treat a height below the threshold as compact")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	cmd.AddCommand(
		newProbeCmd(e, opts),
		newWatchCmd(e, opts),
		newTUICmd(opts),
		newVersionCmd(e),
	)
	return cmd
}

// loadConfig reads the config file and applies any flags set explicitly on
// the command line.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}
	return applyFlags(cmd, opts, cfg)
}

func applyFlags(cmd *cobra.Command, opts *rootOptions, cfg config.Config) (config.Config, error) {
	flags := cmd.Flags()
	if flags.Changed("threshold") {
		cfg.Threshold = opts.threshold
	}
	if flags.Changed("debounce") {
		cfg.Debounce = config.Duration(opts.debounce)
	}
	if flags.Changed("orientation") {
		cfg.Orientation = opts.orientation
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg.Normalize(), nil
}

// newLogger builds a console logger on w at the given level.
func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	if level == "" {
		level = "info"
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(lvl),
	)
	return zap.New(core), nil
}
