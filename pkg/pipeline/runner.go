package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/LGimbel/boggle-solver/pkg/boggle"
	"github.com/LGimbel/boggle-solver/pkg/cache"
	"github.com/LGimbel/boggle-solver/pkg/dictionary"
	"github.com/LGimbel/boggle-solver/pkg/errors"
	"github.com/LGimbel/boggle-solver/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache and logger - it doesn't
// hold pipeline results. The HTTP API keeps a loaded Dict alongside a
// Runner and solves many boards against it; each solve builds its own
// solver, so concurrent requests do not share mutable state.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Close releases the runner's cache backend.
func (r *Runner) Close() error {
	return r.Cache.Close()
}

// Execute runs the complete load → solve → rank pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	loadStart := time.Now()
	dict, err := r.LoadDictionary(ctx, opts.Dictionary)
	if err != nil {
		return nil, err
	}
	loadTime := time.Since(loadStart)

	r.Logger.Info("loaded dictionary",
		"path", opts.Dictionary,
		"words", dict.Trie.Len(),
		"duration", loadTime)

	result, err := r.SolveBoard(ctx, dict, opts.Rows, opts.Refresh)
	if err != nil {
		return nil, err
	}
	result.Stats.DictWords = dict.Trie.Len()
	result.Stats.LoadTime = loadTime

	r.Logger.Info("solved board",
		"found", result.Total,
		"cached", result.CacheInfo.SolveHit,
		"duration", result.Stats.SolveTime)

	return result, nil
}

// LoadDictionary reads and indexes the word list at path. The returned
// Dict carries the content hash used to scope cache keys.
func (r *Runner) LoadDictionary(ctx context.Context, path string) (*Dict, error) {
	start := time.Now()
	observability.Solve().OnDictionaryLoadStart(ctx, path)

	data, err := os.ReadFile(path)
	if err != nil {
		err = errors.Wrap(errors.ErrCodeDictionaryNotFound, err, "open dictionary %s", path)
		observability.Solve().OnDictionaryLoadComplete(ctx, path, 0, time.Since(start), err)
		return nil, err
	}

	tr, err := dictionary.Load(bytes.NewReader(data))
	if err != nil {
		observability.Solve().OnDictionaryLoadComplete(ctx, path, 0, time.Since(start), err)
		return nil, err
	}

	observability.Solve().OnDictionaryLoadComplete(ctx, path, tr.Len(), time.Since(start), nil)
	return &Dict{Trie: tr, Hash: cache.Hash(data)}, nil
}

// SolveBoard solves rows against an already-loaded dictionary, checking
// the result cache first unless refresh is set.
func (r *Runner) SolveBoard(ctx context.Context, dict *Dict, rows []string, refresh bool) (*Result, error) {
	board, err := boggle.NewBoard(rows)
	if err != nil {
		return nil, err
	}

	cacheKey := r.Keyer.SolveKey(board.RowStrings(), dict.Hash)

	if !refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached boggle.Result
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "solve")
				return &Result{
					Total:     cached.Total,
					Top:       cached.Top,
					Paths:     cached.Paths,
					CacheInfo: CacheInfo{SolveHit: true},
				}, nil
			}
			// Corrupt entry - recompute
			_ = r.Cache.Delete(ctx, cacheKey)
		}
		observability.Cache().OnCacheMiss(ctx, "solve")
	}

	start := time.Now()
	observability.Solve().OnSolveStart(ctx, board.Rows(), board.Cols())

	solved := boggle.NewSolver(board, dict.Trie).Solve()

	solveTime := time.Since(start)
	observability.Solve().OnSolveComplete(ctx, board.Rows(), board.Cols(), solved.Total, solveTime, nil)

	if data, err := json.Marshal(solved); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLSolve); err == nil {
			observability.Cache().OnCacheSet(ctx, "solve", len(data))
		}
	}

	return &Result{
		Total: solved.Total,
		Top:   solved.Top,
		Paths: solved.Paths,
		Stats: Stats{SolveTime: solveTime},
	}, nil
}
