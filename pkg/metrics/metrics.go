// Package metrics provides Prometheus metrics for the pgn2csv pipeline.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "pgn2csv"

// HTTP server timeouts for the optional metrics listener.
const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

var (
	gamesSeen = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "games_total",
		Help:      "Total games read from PGN sources.",
	})

	gamesSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "games_skipped_total",
		Help:      "Games rejected by the classifier.",
	})

	rowsWritten = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rows_total",
		Help:      "Accepted rows written to CSV sinks.",
	})

	filesProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "files_total",
		Help:      "Input files fully processed.",
	})

	fileErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "file_errors_total",
		Help:      "Input files aborted by a fatal per-file error.",
	})

	fileDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "file_duration_seconds",
		Help:      "Wall time spent processing a single input file.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 14),
	})
)

// RecordGame counts a game read from a source.
func RecordGame() { gamesSeen.Inc() }

// RecordSkip counts a game rejected by the classifier.
func RecordSkip() { gamesSkipped.Inc() }

// RecordRow counts an accepted row written to a sink.
func RecordRow() { rowsWritten.Inc() }

// RecordFile counts a fully processed input file.
func RecordFile() { filesProcessed.Inc() }

// RecordFileError counts a file aborted by a fatal error.
func RecordFileError() { fileErrors.Inc() }

// ObserveFileDuration records the wall time spent on one input file.
func ObserveFileDuration(d time.Duration) { fileDuration.Observe(d.Seconds()) }

// Serve exposes /metrics on addr until ctx is canceled. Bulk dumps can run
// for hours, so long-lived runs are worth scraping.
func Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
