package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_UsesStoredValueAfterFirstLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return "stored", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("first GetOrLoad error: %v", err)
	}
	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_IdleExpiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2026, 8, 20, 21, 0, 0, 0, time.UTC)
	store := NewStore(time.Minute)
	store.now = func() time.Time { return now }

	load := func(v string) func(context.Context) (any, error) {
		return func(context.Context) (any, error) { return v, nil }
	}

	if _, err := store.GetOrLoad(ctx, "busy", load("busy")); err != nil {
		t.Fatalf("GetOrLoad error: %v", err)
	}
	if _, err := store.GetOrLoad(ctx, "idle", load("idle")); err != nil {
		t.Fatalf("GetOrLoad error: %v", err)
	}

	// Touching "busy" every 40s keeps it alive past the TTL.
	for i := 0; i < 3; i++ {
		now = now.Add(40 * time.Second)
		if _, ok := store.Get(ctx, "busy"); !ok {
			t.Fatalf("busy entry expired after %d touches", i)
		}
	}
	if _, ok := store.Get(ctx, "idle"); ok {
		t.Fatalf("idle entry should have expired")
	}
}

func TestStore_SweepsExpiredEntriesOnInsert(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := time.Date(2026, 8, 20, 21, 0, 0, 0, time.UTC)
	store := NewStore(time.Minute)
	store.now = func() time.Time { return now }

	for _, key := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
		if _, err := store.GetOrLoad(ctx, key, func(context.Context) (any, error) { return key, nil }); err != nil {
			t.Fatalf("GetOrLoad error: %v", err)
		}
	}
	if store.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", store.Len())
	}

	now = now.Add(2 * time.Minute)
	if _, err := store.GetOrLoad(ctx, "10.0.0.9", func(context.Context) (any, error) { return "new", nil }); err != nil {
		t.Fatalf("GetOrLoad error: %v", err)
	}
	if store.Len() != 1 {
		t.Fatalf("expected expired entries to be swept, got %d", store.Len())
	}
}

func TestStore_GetOrLoad_PropagatesLoaderError(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	boom := errors.New("boom")

	if _, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (any, error) {
		return nil, boom
	}); !errors.Is(err, boom) {
		t.Fatalf("expected loader error, got %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("failed load must not be stored")
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
