package stream

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ib-77/rail/pkg/rail"
)

func TestRun_SingleLine(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out := Run(ctx,
		Pump(ctx, []int{1, 2, 3, 4, 5}),
		Map(func(ctx context.Context, n int) int { return n * 2 }),
		1)

	var values []int
	for _, r := range Collect(ctx, out) {
		if r.IsFailure() {
			t.Fatalf("unexpected failure: %v", r.Err())
		}
		values = append(values, r.Value())
	}

	if len(values) != 5 {
		t.Fatalf("expected 5 results, got %d", len(values))
	}
	// A single line preserves order.
	for i, v := range values {
		if v != (i+1)*2 {
			t.Fatalf("expected %d at %d, got %d", (i+1)*2, i, v)
		}
	}
}

func TestTurnout_ParallelLines(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	ctx = WithLines(ctx, 3)
	lines := Lines(ctx, 1)
	if lines != 3 {
		t.Fatalf("expected 3 lines from context, got %d", lines)
	}

	out := Turnout(ctx,
		Pump(ctx, []int{3, 1, 2}),
		ThenTry(func(ctx context.Context, n int) (string, error) {
			return strconv.Itoa(n), nil
		}),
		lines)

	var values []string
	for _, r := range Collect(ctx, out) {
		if r.IsFailure() {
			t.Fatalf("unexpected failure: %v", r.Err())
		}
		values = append(values, r.Value())
	}

	sort.Strings(values)
	if len(values) != 3 || values[0] != "1" || values[2] != "3" {
		t.Fatalf("unexpected values %v", values)
	}
}

func TestRun_GuardFailuresFlowThrough(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	var transformed atomic.Int32
	out := Run(ctx,
		Run(ctx,
			Pump(ctx, []int{10, 5, 1, 20}),
			FailIf(func(ctx context.Context, n int) (bool, error) {
				return n == 1, nil
			}, "ONE", "value should not be 1"),
			2),
		Tap(func(ctx context.Context, n int) error {
			transformed.Add(1)
			return nil
		}),
		2)

	failures := 0
	for _, r := range Collect(ctx, out) {
		if r.IsFailure() {
			failures++
			if r.Err().Code() != "ONE" {
				t.Fatalf("unexpected failure code %q", r.Err().Code())
			}
		}
	}

	if failures != 1 {
		t.Fatalf("expected exactly 1 failure, got %d", failures)
	}
	if got := transformed.Load(); got != 3 {
		t.Fatalf("tap must run only for the 3 successes, ran %d times", got)
	}
}

func TestFinalize_CollapsesToValues(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out := Finalize(ctx,
		Run(ctx,
			Emit(ctx, "a", "", "c"),
			FailIf(func(ctx context.Context, s string) (bool, error) {
				return s == "", nil
			}, "EMPTY", "blank entry"),
			1),
		func(s string) string { return s },
		func(e *rail.Error) string { return "invalid" })

	var values []string
	for v := range out {
		values = append(values, v)
	}

	sort.Strings(values)
	if len(values) != 3 || values[0] != "a" || values[1] != "c" || values[2] != "invalid" {
		t.Fatalf("unexpected finalized values %v", values)
	}
}

func TestThenTryStage_FaultCaptured(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out := Turnout(ctx,
		Emit(ctx, "8", "x"),
		ThenTry(func(ctx context.Context, s string) (int, error) {
			return strconv.Atoi(s)
		}),
		1)

	results := Collect(ctx, out)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	ok, failed := 0, 0
	for _, r := range results {
		if r.IsSuccess() {
			ok++
			if r.Value() != 8 {
				t.Fatalf("unexpected value %d", r.Value())
			}
			continue
		}
		failed++
		var numErr *strconv.NumError
		if !errors.As(r.Err(), &numErr) {
			t.Fatalf("expected the parse fault as cause, got %v", r.Err())
		}
	}

	if ok != 1 || failed != 1 {
		t.Fatalf("expected 1 success and 1 failure, got %d/%d", ok, failed)
	}
}

func TestPump_StopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := Collect(context.Background(), Pump(ctx, []int{1, 2, 3}))
	if len(results) != 0 {
		t.Fatalf("a canceled pump must emit nothing, got %d", len(results))
	}
}
