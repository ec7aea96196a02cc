// Package app wires sources, classifiers and sinks into the file pipeline.
package app

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"

	"github.com/okian/pgn2csv/internal/adapters/pgn"
	"github.com/okian/pgn2csv/internal/adapters/sink"
	"github.com/okian/pgn2csv/internal/adapters/source"
	"github.com/okian/pgn2csv/internal/domain/classify"
	"github.com/okian/pgn2csv/pkg/logger"
	"github.com/okian/pgn2csv/pkg/metrics"
)

// Runner fans input files out across workers. Each worker owns one
// classifier instance and one sink at a time; files never share state, so
// workers need no coordination beyond the job channel.
type Runner struct {
	workerCount int
	metricsAddr string
	progress    bool
	logger      logger.Logger
}

// Option applies a configuration option to the Runner.
type Option func(*Runner)

// WithWorkerCount sets the number of concurrent file workers.
func WithWorkerCount(count int) Option {
	return func(r *Runner) {
		if count > 0 {
			r.workerCount = count
		}
	}
}

// WithMetricsAddr exposes Prometheus metrics on addr for the duration of
// the run.
func WithMetricsAddr(addr string) Option {
	return func(r *Runner) {
		r.metricsAddr = addr
	}
}

// WithProgress toggles the terminal progress bar.
func WithProgress(enabled bool) Option {
	return func(r *Runner) {
		r.progress = enabled
	}
}

// WithLogger sets a custom logger for the runner.
func WithLogger(l logger.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// New constructs a Runner with default configuration.
func New(opts ...Option) *Runner {
	r := &Runner{
		workerCount: runtime.NumCPU(),
		progress:    true,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = logger.Get().Named("runner")
	}
	return r
}

// Run converts every PGN file in pgnDir into a CSV in csvDir using
// classifiers built by newClassifier. csvDir is created if missing. A fatal
// error on one file aborts only that file; Run reports how many files
// failed.
func (r *Runner) Run(ctx context.Context, pgnDir, csvDir string, newClassifier classify.Factory) error {
	start := time.Now()
	runID := uuid.NewString()
	log := r.logger
	log.Info(ctx, "starting run", logger.String("run_id", runID),
		logger.String("pgn_dir", pgnDir), logger.String("csv_dir", csvDir),
		logger.Int("workers", r.workerCount))

	if err := os.MkdirAll(csvDir, 0o755); err != nil {
		return fmt.Errorf("create csv dir: %w", err)
	}

	sources, err := source.Discover(pgnDir)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		log.Warn(ctx, "no pgn files found", logger.String("pgn_dir", pgnDir))
		return nil
	}

	if r.metricsAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, r.metricsAddr); err != nil {
				log.Error(ctx, "metrics listener failed", logger.Error(err))
			}
		}()
	}

	var bar *progressbar.ProgressBar
	if r.progress {
		bar = progressbar.Default(int64(len(sources)), "processing pgns")
	}

	jobs := make(chan source.Source, len(sources))
	for _, src := range sources {
		jobs <- src
	}
	close(jobs)

	var failed sync.Map
	var wg sync.WaitGroup
	for i := 0; i < r.workerCount; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			wlog := log.Named(fmt.Sprintf("worker-%d", id))
			for src := range jobs {
				if ctx.Err() != nil {
					return
				}
				if err := r.processFile(ctx, wlog, src, csvDir, newClassifier); err != nil {
					metrics.RecordFileError()
					failed.Store(src.Path(), err)
					wlog.Error(ctx, "file aborted",
						logger.String("path", src.Path()), logger.Error(err))
				} else {
					metrics.RecordFile()
				}
				if bar != nil {
					_ = bar.Add(1)
				}
			}
		}(i)
	}
	wg.Wait()

	failures := 0
	failed.Range(func(_, _ any) bool {
		failures++
		return true
	})

	log.Info(ctx, "run finished", logger.String("run_id", runID),
		logger.Int("files", len(sources)), logger.Int("failed", failures),
		logger.Duration("elapsed", time.Since(start)))

	if err := ctx.Err(); err != nil {
		return err
	}
	if failures > 0 {
		return fmt.Errorf("%w: %d of %d files", ErrFilesFailed, failures, len(sources))
	}
	return nil
}

// processFile runs one source through one classifier into one sink.
func (r *Runner) processFile(ctx context.Context, log logger.Logger, src source.Source, csvDir string, newClassifier classify.Factory) error {
	start := time.Now()
	defer func() {
		metrics.ObserveFileDuration(time.Since(start))
	}()

	rc, err := src.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	csvPath := src.CSVPath(csvDir)
	out, err := sink.NewCSV(csvPath)
	if err != nil {
		return err
	}

	log.Info(ctx, "processing", logger.String("path", src.Path()))

	reader := pgn.NewReader(rc)
	c := newClassifier()

	games, rows := 0, 0
	for {
		ok, err := reader.ReadGame(c)
		if err != nil {
			_ = out.Close()
			return err
		}
		if !ok {
			break
		}
		games++
		metrics.RecordGame()

		row, accepted := c.Finalize()
		if !accepted {
			metrics.RecordSkip()
			continue
		}
		if err := out.Append(row); err != nil {
			_ = out.Close()
			return err
		}
		rows++
		metrics.RecordRow()
	}

	if err := out.Close(); err != nil {
		return err
	}

	log.Info(ctx, "wrote csv", logger.String("path", csvPath),
		logger.Int("games", games), logger.Int("rows", rows),
		logger.Duration("elapsed", time.Since(start)))
	return nil
}
