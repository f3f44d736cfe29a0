// internal/realtime/realtime_test.go
package realtime

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestRunExecutesCallback(t *testing.T) {
	t.Parallel()

	ctx := New(Hints{Period: 10 * time.Millisecond})
	ran := false
	if err := ctx.Run(func() error {
		ran = true
		return nil
	}); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !ran {
		t.Fatal("callback did not run")
	}
	if ctx.Grant().Policy == "" {
		t.Fatal("expected a scheduling grant after Run")
	}
}

func TestRunReturnsCallbackError(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("processor broke")
	ctx := New(Hints{})
	err := ctx.Run(func() error { return sentinel })
	if !errors.Is(err, sentinel) {
		t.Fatalf("Run error = %v, want %v", err, sentinel)
	}
}

func TestRunTrapsPanic(t *testing.T) {
	t.Parallel()

	ctx := New(Hints{Period: time.Millisecond})
	err := ctx.Run(func() error {
		panic("buffer size mismatch")
	})
	if err == nil {
		t.Fatal("expected error from panicking callback")
	}
	if !strings.Contains(err.Error(), "buffer size mismatch") {
		t.Fatalf("panic description missing from error: %v", err)
	}
}

func TestContextIsOneShot(t *testing.T) {
	t.Parallel()

	ctx := New(Hints{})
	if err := ctx.Run(func() error { return nil }); err != nil {
		t.Fatalf("first Run returned error: %v", err)
	}
	if err := ctx.Run(func() error { return nil }); !errors.Is(err, ErrSpent) {
		t.Fatalf("second Run error = %v, want ErrSpent", err)
	}
}

func TestRunBlocksUntilCompletion(t *testing.T) {
	t.Parallel()

	ctx := New(Hints{})
	finished := false
	if err := ctx.Run(func() error {
		time.Sleep(20 * time.Millisecond)
		finished = true
		return nil
	}); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !finished {
		t.Fatal("Run returned before the callback completed")
	}
}
