package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/advent/internal/config"
	"github.com/katalvlaran/advent/internal/puzzle"
)

var (
	verbose    bool
	configPath string

	cfg    *config.Config
	logger = zap.NewNop()
)

// Execute runs the aoc command line until it finishes or is interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	if err != nil {
		logger.Error("command failed", zap.Error(err))
	}

	return err
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "aoc",
		Short:        "Puzzle solvers for Advent of Code 2025",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg = config.Default()
			if configPath != "" {
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
			}
			if err = cfg.Validate(); err != nil {
				return err
			}

			logger, err = buildLogger(cfg.Logging, verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")

	root.AddCommand(
		dialCmd(), productsCmd(), joltageCmd(), forkliftCmd(), ingredientsCmd(),
		homeworkCmd(), beamCmd(), circuitCmd(), tilesCmd(),
		batchCmd(), listCmd(),
	)
	return root
}

// buildLogger turns the logging section into a production zap logger.
func buildLogger(lc config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Encoding = lc.Format
	if lc.Format == "console" {
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	level, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}

// solve answers one puzzle and prints the result on the command's stdout.
func solve(cmd *cobra.Command, name, path string, p puzzle.Params) error {
	start := time.Now()
	answer, err := puzzle.Solve(cmd.Context(), name, path, p)
	if err != nil {
		return err
	}
	logger.Debug("solved",
		zap.String("puzzle", name),
		zap.String("input", path),
		zap.Int("answer", answer),
		zap.Duration("elapsed", time.Since(start)))

	fmt.Fprintln(cmd.OutOrStdout(), answer)
	return nil
}
