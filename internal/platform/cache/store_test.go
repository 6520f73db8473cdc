package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_SharesConcurrentLoads(t *testing.T) {
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

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	boom := errors.New("boom")

	loader := func(context.Context) (any, error) {
		if calls.Add(1) == 1 {
			return nil, boom
		}
		return 42, nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); !errors.Is(err, boom) {
		t.Fatalf("expected loader error, got %v", err)
	}
	got, err := Load(context.Background(), store, "k", func(ctx context.Context) (int, error) {
		v, err := loader(ctx)
		if err != nil {
			return 0, err
		}
		return v.(int), nil
	})
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if got != 42 {
		t.Fatalf("unexpected value: %d", got)
	}
}

func TestStore_ExpiryAndPrefixDelete(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	store.Set(ctx, "playerstats:league:1", "a")
	store.Set(ctx, "playerstats:club:4", "b")
	store.Set(ctx, "clubstats:league:1", "c")

	if removed := store.DeletePrefix(ctx, "playerstats:"); removed != 2 {
		t.Fatalf("expected 2 removed keys, got %d", removed)
	}
	if _, ok := store.Get(ctx, "playerstats:club:4"); ok {
		t.Fatalf("expected prefix key to be gone")
	}
	if _, ok := store.Get(ctx, "clubstats:league:1"); !ok {
		t.Fatalf("expected unrelated key to survive")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := store.Get(ctx, "clubstats:league:1"); ok {
		t.Fatalf("expected key to expire")
	}

	stats := store.Stats()
	if stats.Entries != 0 || stats.Hits != 1 || stats.Misses != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestLoad_TypeMismatch(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	store.Set(context.Background(), "k", "text")

	if _, err := Load(context.Background(), store, "k", func(context.Context) (int, error) { return 1, nil }); err == nil {
		t.Fatalf("expected type mismatch error")
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
