package observability

import (
	"context"
	"testing"
	"time"
)

type testSolveHooks struct {
	NoopSolveHooks
	solves int
}

func (h *testSolveHooks) OnSolveStart(ctx context.Context, rows, cols int) {
	h.solves++
}

type testCacheHooks struct {
	NoopCacheHooks
	hits int
}

func (h *testCacheHooks) OnCacheHit(ctx context.Context, keyType string) {
	h.hits++
}

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	s := NoopSolveHooks{}
	s.OnDictionaryLoadStart(ctx, "words.txt")
	s.OnDictionaryLoadComplete(ctx, "words.txt", 170000, time.Second, nil)
	s.OnSolveStart(ctx, 4, 4)
	s.OnSolveComplete(ctx, 4, 4, 42, time.Millisecond, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "solve")
	c.OnCacheMiss(ctx, "solve")
	c.OnCacheSet(ctx, "solve", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	// Defaults are noop
	if _, ok := Solve().(NoopSolveHooks); !ok {
		t.Error("Solve() should return NoopSolveHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	customSolve := &testSolveHooks{}
	SetSolveHooks(customSolve)
	if Solve() != customSolve {
		t.Error("SetSolveHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	Solve().OnSolveStart(context.Background(), 4, 4)
	if customSolve.solves != 1 {
		t.Errorf("custom hook not invoked: solves = %d", customSolve.solves)
	}

	Reset()
	if _, ok := Solve().(NoopSolveHooks); !ok {
		t.Error("Reset() should restore NoopSolveHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testSolveHooks{}
	SetSolveHooks(custom)
	SetSolveHooks(nil)
	if Solve() != custom {
		t.Error("SetSolveHooks(nil) should be ignored")
	}

	Reset()
}
