package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestBreaker(threshold int) (*CircuitBreaker, *time.Time) {
	b := NewCircuitBreaker("postgres", CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: threshold,
		OpenTimeout:      5 * time.Second,
		HalfOpenMaxReq:   1,
	})
	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }
	return b, &now
}

func TestCircuitBreaker_BasicTransitions(t *testing.T) {
	b, now := newTestBreaker(2)

	var transitions []CircuitState
	b.OnStateChange(func(name string, _, to CircuitState) {
		if name != "postgres" {
			t.Errorf("unexpected breaker name %q", name)
		}
		transitions = append(transitions, to)
	})

	if err := b.Allow(); err != nil {
		t.Fatalf("expected allow in closed state: %v", err)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}

	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}

	*now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	if state := b.State(); state != CircuitStateHalfOpen {
		t.Fatalf("expected half-open state, got %s", state)
	}

	b.RecordSuccess()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful half-open probe, got %s", state)
	}

	want := []CircuitState{CircuitStateOpen, CircuitStateHalfOpen, CircuitStateClosed}
	if len(transitions) != len(want) {
		t.Fatalf("unexpected transitions: %v", transitions)
	}
	for i := range want {
		if transitions[i] != want[i] {
			t.Fatalf("transition %d: got %s want %s", i, transitions[i], want[i])
		}
	}
}

func TestCircuitBreaker_Do(t *testing.T) {
	ctx := context.Background()
	dbDown := errors.New("connection refused")

	t.Run("opens after failures and short-circuits", func(t *testing.T) {
		b, _ := newTestBreaker(1)
		if err := b.Do(ctx, func(context.Context) error { return dbDown }); !errors.Is(err, dbDown) {
			t.Fatalf("expected dependency error, got %v", err)
		}

		called := false
		err := b.Do(ctx, func(context.Context) error {
			called = true
			return nil
		})
		if !errors.Is(err, ErrCircuitOpen) {
			t.Fatalf("expected circuit open, got %v", err)
		}
		if called {
			t.Fatalf("fn must not run while open")
		}
	})

	t.Run("cancellation is not a failure", func(t *testing.T) {
		b, _ := newTestBreaker(1)
		_ = b.Do(ctx, func(context.Context) error { return context.Canceled })
		if state := b.State(); state != CircuitStateClosed {
			t.Fatalf("expected closed, got %s", state)
		}
	})

	t.Run("nil breaker runs fn", func(t *testing.T) {
		var b *CircuitBreaker
		if err := b.Do(ctx, func(context.Context) error { return nil }); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
	t.Run("caller errors are not failures", func(t *testing.T) {
		errDuplicate := errors.New("duplicate fbref id")
		b := NewCircuitBreaker("postgres", CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 1,
			IsCallerError:    func(err error) bool { return errors.Is(err, errDuplicate) },
		})
		if err := b.Do(ctx, func(context.Context) error { return errDuplicate }); !errors.Is(err, errDuplicate) {
			t.Fatalf("expected duplicate error passed through, got %v", err)
		}
		if state := b.State(); state != CircuitStateClosed {
			t.Fatalf("expected closed, got %s", state)
		}
	})

	t.Run("disabled breaker never opens", func(t *testing.T) {
		b := NewCircuitBreaker("postgres", CircuitBreakerConfig{FailureThreshold: 1})
		for i := 0; i < 3; i++ {
			_ = b.Do(ctx, func(context.Context) error { return errors.New("connection refused") })
		}
		if state := b.State(); state != CircuitStateClosed {
			t.Fatalf("expected closed, got %s", state)
		}
	})
}
