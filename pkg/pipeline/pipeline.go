// Package pipeline provides the load → solve → rank pipeline shared by
// the CLI and the HTTP API.
//
// This package centralizes dictionary loading, board construction,
// solving, and result caching, so both entry points behave identically.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Rows:       []string{"srps", "euim", "eahw", "wdzr"},
//	    Dictionary: "words.txt",
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Total, result.Top)
//
// A server that keeps the dictionary in memory loads it once and solves
// many boards against it:
//
//	dict, err := runner.LoadDictionary(ctx, "words.txt")
//	// ...
//	result, err := runner.SolveBoard(ctx, dict, rows, false)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/LGimbel/boggle-solver/pkg/boggle"
	"github.com/LGimbel/boggle-solver/pkg/errors"
	"github.com/LGimbel/boggle-solver/pkg/trie"
)

// DefaultDictionary is the word list used when no path is configured.
const DefaultDictionary = "words.txt"

// Options contains all configuration for a pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Rows are the board rows, case-insensitive.
	Rows []string `json:"rows"`

	// Dictionary is the word list path. Defaults to DefaultDictionary.
	Dictionary string `json:"dictionary,omitempty"`

	// Refresh bypasses the solve-result cache.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// Dict pairs a loaded dictionary trie with the content hash of its
// source, which scopes cache keys to that exact word list.
type Dict struct {
	Trie *trie.Trie
	Hash string
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Total is the number of distinct words found.
	Total int `json:"total"`

	// Top holds the longest words, at most boggle.TopWords of them.
	Top []string `json:"top"`

	// Paths holds one witness cell path per found word.
	Paths map[string][]boggle.Cell `json:"paths,omitempty"`

	// Stats contains timing and size information.
	Stats Stats `json:"stats"`

	// CacheInfo tracks whether the solve came from cache.
	CacheInfo CacheInfo `json:"cache_info"`
}

// Stats contains pipeline execution statistics.
type Stats struct {
	DictWords int           `json:"dict_words,omitempty"`
	LoadTime  time.Duration `json:"load_time,omitempty"`
	SolveTime time.Duration `json:"solve_time,omitempty"`
}

// CacheInfo tracks cache hits for the pipeline.
type CacheInfo struct {
	SolveHit bool `json:"solve_hit"` // Whether the solve result came from cache
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if err := errors.ValidateBoardRows(o.Rows); err != nil {
		return err
	}
	if o.Dictionary == "" {
		o.Dictionary = DefaultDictionary
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}
