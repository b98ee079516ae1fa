// Package observability provides hooks for metrics and tracing.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register
// hooks at startup to receive events about solve runs and cache
// operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This avoids import cycles (hooks are registered by main, not by
// libraries) and keeps the core free of observability frameworks.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetSolveHooks(&mySolveHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Solve().OnSolveStart(ctx, rows, cols)
//	// ... run search ...
//	observability.Solve().OnSolveComplete(ctx, rows, cols, found, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// SolveHooks receives events from the solve pipeline.
type SolveHooks interface {
	// Dictionary events
	OnDictionaryLoadStart(ctx context.Context, source string)
	OnDictionaryLoadComplete(ctx context.Context, source string, words int, duration time.Duration, err error)

	// Solve events
	OnSolveStart(ctx context.Context, rows, cols int)
	OnSolveComplete(ctx context.Context, rows, cols, found int, duration time.Duration, err error)
}

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// NoopSolveHooks is a no-op implementation of SolveHooks.
type NoopSolveHooks struct{}

func (NoopSolveHooks) OnDictionaryLoadStart(context.Context, string) {}
func (NoopSolveHooks) OnDictionaryLoadComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopSolveHooks) OnSolveStart(context.Context, int, int)                              {}
func (NoopSolveHooks) OnSolveComplete(context.Context, int, int, int, time.Duration, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

var (
	solveHooks SolveHooks = NoopSolveHooks{}
	cacheHooks CacheHooks = NoopCacheHooks{}
	hooksMu    sync.RWMutex
)

// SetSolveHooks registers custom solve hooks.
// This should be called once at application startup before any solve runs.
func SetSolveHooks(h SolveHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		solveHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Solve returns the registered solve hooks.
func Solve() SolveHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return solveHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	solveHooks = NoopSolveHooks{}
	cacheHooks = NoopCacheHooks{}
}
