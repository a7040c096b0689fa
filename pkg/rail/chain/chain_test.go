package chain

import (
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/rail/pkg/rail"
)

func TestChain_GuardStopsPipeline(t *testing.T) {
	t.Parallel()

	thirdRan := false
	res := From(5).
		Map(func(n int) int { return n * 2 }).
		FailIf(func(n int) bool { return n == 10 }, "BLOCK", "Stop").
		Map(func(n int) int {
			thirdRan = true
			return n + 1
		}).
		Result()

	if !res.IsFailure() {
		t.Fatal("expected the guard to stop the pipeline")
	}
	if res.Err().Code() != "BLOCK" || res.Err().Message() != "Stop" {
		t.Fatalf("unexpected error %v", res.Err())
	}
	if thirdRan {
		t.Fatal("steps after the guard must never execute")
	}
}

func TestChain_TypeChangingFreeFunctions(t *testing.T) {
	t.Parallel()

	res := Map(
		ThenTry(From("8"), func(s string) (int, error) { return strconv.Atoi(s) }),
		func(n int) string { return strconv.Itoa(n * 2) },
	).Result()

	if !res.IsSuccess() || res.Value() != "16" {
		t.Fatalf("expected '16', got %v / %v", res.IsSuccess(), res.Err())
	}
}

func TestChain_Then_BindForm(t *testing.T) {
	t.Parallel()

	res := Then(From(3), func(n int) rail.Result[string] {
		if n < 0 {
			return rail.FailMsg[string]("negative")
		}
		return rail.Success(strconv.Itoa(n))
	}).Result()

	if !res.IsSuccess() || res.Value() != "3" {
		t.Fatalf("expected '3', got %v", res)
	}
}

func TestChain_TapAndTapInto(t *testing.T) {
	t.Parallel()

	var mid rail.Result[int]
	seen := 0

	res := From(4).
		TapInto(&mid).
		Tap(func(n int) error {
			seen = n
			return nil
		}).
		Result()

	if !res.IsSuccess() || seen != 4 {
		t.Fatalf("expected tap to observe 4, saw %d", seen)
	}
	if !mid.IsSuccess() || mid.Value() != 4 {
		t.Fatal("expected the intermediate result to be captured")
	}
}

func TestChain_RecoveryAndFinalize(t *testing.T) {
	t.Parallel()

	logged := 0
	res := Start(rail.FailMsg[int]("step 2 failed")).
		OnFailure(func(e *rail.Error) rail.Result[int] {
			return rail.Fail[int](rail.NewCode("REPLACED", "replaced"))
		}).
		OnFinallyDo(func(r rail.Result[int]) { logged++ }).
		Result()

	if res.Err().Code() != "REPLACED" {
		t.Fatalf("expected REPLACED, got %v", res.Err())
	}
	if logged != 1 {
		t.Fatalf("finally hook must run exactly once, ran %d times", logged)
	}
}

func TestChain_Finally(t *testing.T) {
	t.Parallel()

	got := Finally(
		From(2).ThenTry(func(n int) (int, error) {
			if n == 2 {
				return 0, errors.New("two is unlucky")
			}
			return n, nil
		}),
		func(n int) string { return "ok" },
		func(e *rail.Error) string { return e.Message() },
	)

	if got != "two is unlucky" {
		t.Fatalf("unexpected final value %q", got)
	}
}
