// Package engine runs the concurrent map/shuffle/reduce pipeline that
// counts n-gram frequencies across a directory tree.
package engine

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/zeebo/xxh3"
	"go.uber.org/zap"

	"NGramCount/internal/ngram"
	"NGramCount/internal/types"
	"NGramCount/internal/walker"
)

// topN is the number of result slots each worker reports.
const topN = 5

// Config holds the engine parameters. It is immutable once the engine
// is constructed.
type Config struct {
	RootDir   string // directory tree to scan
	Workers   uint   // number of worker goroutines, >= 1
	N         uint   // n-gram length, >= 1
	Extension string // file extension to include, e.g. ".txt"
}

// Validate checks the configuration invariants.
func (c Config) Validate() error {
	if c.RootDir == "" {
		return fmt.Errorf("root directory must not be empty")
	}
	if c.Workers < 1 {
		return fmt.Errorf("worker count must be at least 1, got %d", c.Workers)
	}
	if c.N < 1 {
		return fmt.Errorf("n-gram length must be at least 1, got %d", c.N)
	}
	return nil
}

// Engine executes one counting run per call to Run. All run state (the
// file cursor, the shuffle matrix) is scoped to the call, so a single
// engine can be reused.
type Engine struct {
	cfg Config
	log *zap.SugaredLogger

	outMu sync.Mutex
	out   io.Writer
}

// New creates an engine with a validated configuration. A nil logger
// disables logging. Reports are written to stdout unless SetOutput is
// called.
func New(cfg Config, log *zap.SugaredLogger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Engine{cfg: cfg, log: log, out: os.Stdout}, nil
}

// SetOutput redirects the per-worker report blocks.
func (e *Engine) SetOutput(w io.Writer) {
	e.out = w
}

// Run lists the files under the configured root, counts n-grams across
// them with the configured number of workers, prints each worker's top
// five as it finishes, and returns the reports ordered by worker index.
//
// Canceling ctx aborts the run: workers stop claiming files and stop
// waiting on shuffle handoffs, and Run returns the context's error.
func (e *Engine) Run(ctx context.Context) ([]types.WorkerReport, error) {
	files, err := walker.ListFiles(e.cfg.RootDir, func(ext string) bool {
		return ext == e.cfg.Extension
	})
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	e.log.Infow("starting run",
		"run", runID,
		"files", len(files),
		"workers", e.cfg.Workers,
		"n", e.cfg.N,
	)

	workers := int(e.cfg.Workers)

	// matrix[to][from] is the single-fire handoff slot carrying the
	// partition owned by worker `to` out of worker `from`'s local
	// counts. Capacity 1 means a write never blocks, so a worker always
	// completes all outgoing writes before it starts reading; each slot
	// is written once and read once.
	matrix := make([][]chan []types.Pair, workers)
	for to := range matrix {
		matrix[to] = make([]chan []types.Pair, workers)
		for from := range matrix[to] {
			matrix[to][from] = make(chan []types.Pair, 1)
		}
	}

	// Shared cursor for dynamic load balancing: each worker claims the
	// file at the pre-increment value until the list is exhausted.
	var cursor atomic.Uint64

	reports := make([]types.WorkerReport, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for id := 0; id < workers; id++ {
		go func(id int) {
			defer wg.Done()
			reports[id], errs[id] = e.sweep(ctx, id, files, &cursor, matrix)
		}(id)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("run %s aborted: %w", runID, err)
		}
	}

	e.log.Infow("run complete", "run", runID)
	return reports, nil
}

// sweep is one worker's whole lifecycle: map its claimed files,
// shuffle, reduce its owned partition, and report the top five.
func (e *Engine) sweep(ctx context.Context, id int, files []string, cursor *atomic.Uint64, matrix [][]chan []types.Pair) (types.WorkerReport, error) {
	workers := len(matrix)

	// Map phase: exclusive local table, no locking.
	local := make(map[string]uint64)
	for {
		if err := ctx.Err(); err != nil {
			return types.WorkerReport{}, err
		}
		idx := cursor.Add(1) - 1
		if idx >= uint64(len(files)) {
			break
		}
		if err := e.processFile(files[idx], local); err != nil {
			// Skip unreadable files so this worker still performs every
			// outgoing handoff write below.
			e.log.Warnw("skipping unreadable file", "path", files[idx], "error", err)
		}
	}

	// Partition the local table: bucket j holds the pairs owned by
	// worker j.
	buckets := make([][]types.Pair, workers)
	for g, c := range local {
		j := owner(g, workers)
		buckets[j] = append(buckets[j], types.Pair{Ngram: g, Count: c})
	}
	for j := 0; j < workers; j++ {
		matrix[j][id] <- buckets[j]
	}

	// Reduce phase: collect this worker's partition from every
	// producer, self included. Receiving blocks until the producer has
	// written, which makes the shuffle a full barrier between phases.
	reduced := make(map[string]uint64)
	for from := 0; from < workers; from++ {
		select {
		case pairs := <-matrix[id][from]:
			for _, p := range pairs {
				reduced[p.Ngram] += p.Count
			}
		case <-ctx.Done():
			return types.WorkerReport{}, ctx.Err()
		}
	}

	top := topFive(reduced)
	e.printReport(id, top)

	return types.WorkerReport{Worker: id, Top: top, Counts: reduced}, nil
}

// processFile reads path in full and adds its n-gram counts to local.
func (e *Engine) processFile(path string, local map[string]uint64) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	ngram.Count(content, int(e.cfg.N), local)
	return nil
}

// owner maps an n-gram to the worker that owns its hash partition.
func owner(g string, workers int) int {
	return int(xxh3.HashString(g) % uint64(workers))
}

// printReport writes one worker's block. The mutex keeps blocks from
// different workers from interleaving.
func (e *Engine) printReport(id int, top []types.Pair) {
	e.outMu.Lock()
	defer e.outMu.Unlock()

	fmt.Fprintf(e.out, "worker %d:\n", id)
	for _, p := range top {
		if p.Count == 0 {
			fmt.Fprintln(e.out, "       ...")
		} else {
			fmt.Fprintf(e.out, "       %s: %d\n", p.Ngram, p.Count)
		}
	}
}
