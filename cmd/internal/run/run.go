// Package run holds the shared entrypoint of the pgn2csv binaries. The
// three commands differ only in the classifier they construct.
package run

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/pgn2csv/internal/app"
	"github.com/okian/pgn2csv/internal/config"
	"github.com/okian/pgn2csv/internal/domain/classify"
	"github.com/okian/pgn2csv/pkg/logger"
)

// Main parses the command line, loads config and runs the pipeline with the
// given classifier factory. It returns the process exit code.
func Main(name string, newClassifier classify.Factory) int {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return 1
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}()

	// One or two positional arguments: the PGN directory, and optionally
	// the CSV directory; CSVs land next to the PGNs when omitted.
	args := os.Args[1:]
	if len(args) != 1 && len(args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <pgn dir> [csv dir]\n", name)
		return 2
	}
	pgnDir := args[0]
	csvDir := pgnDir
	if len(args) == 2 {
		csvDir = args[1]
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return 1
	}

	log := logger.Get().Named(name)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	runner := app.New(
		app.WithLogger(log),
		app.WithWorkerCount(cfg.WorkerCount),
		app.WithMetricsAddr(cfg.MetricsAddr),
		app.WithProgress(cfg.Progress),
	)
	if err := runner.Run(ctx, pgnDir, csvDir, newClassifier); err != nil {
		log.Error(ctx, "run failed", logger.Error(err))
		return 1
	}
	return 0
}
