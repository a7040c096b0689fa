package rail

import (
	"errors"
	"testing"
)

func TestSuccess_Failure_Exclusive(t *testing.T) {
	t.Parallel()

	s := Success(42)
	if !s.IsSuccess() || s.IsFailure() {
		t.Fatalf("expected success, got success=%v failure=%v", s.IsSuccess(), s.IsFailure())
	}
	if s.Err() != nil {
		t.Fatalf("expected no error on success, got %v", s.Err())
	}
	if v, ok := s.Get(); !ok || v != 42 {
		t.Fatalf("expected (42, true), got (%v, %v)", v, ok)
	}

	f := FailMsg[int]("boom")
	if f.IsSuccess() || !f.IsFailure() {
		t.Fatalf("expected failure, got success=%v failure=%v", f.IsSuccess(), f.IsFailure())
	}
	if f.Err() == nil || f.Err().Message() != "boom" {
		t.Fatalf("expected error 'boom', got %v", f.Err())
	}
	if v, ok := f.Get(); ok || v != 0 {
		t.Fatalf("expected (0, false), got (%v, %v)", v, ok)
	}
}

func TestValue_PanicsOnFailure(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected Value on a failure to panic")
		}
	}()

	_ = FailMsg[string]("no value").Value()
}

func TestSuccess_NilValueIsValid(t *testing.T) {
	t.Parallel()

	var p *int
	r := Success(p)
	if !r.IsSuccess() {
		t.Fatal("a nil payload is still a valid success")
	}
	if v := r.Value(); v != nil {
		t.Fatalf("expected nil value, got %v", v)
	}
}

func TestFail_NilErrorGuard(t *testing.T) {
	t.Parallel()

	r := Fail[int](nil)
	if !r.IsFailure() || r.Err() == nil {
		t.Fatalf("expected a failure with a substituted error, got %v", r.Err())
	}
}

func TestFailMsg_DefaultCode(t *testing.T) {
	t.Parallel()

	r := FailMsg[int]("oops")
	if got := r.Err().Code(); got != DefaultCode {
		t.Fatalf("expected code %q, got %q", DefaultCode, got)
	}
}

type timeoutFault struct{ msg string }

func (e timeoutFault) Error() string { return e.msg }

func TestFailCause_CodeFromTypeName(t *testing.T) {
	t.Parallel()

	cause := timeoutFault{msg: "took too long"}
	r := FailCause[int](cause)

	if got := r.Err().Code(); got != "timeoutFault" {
		t.Fatalf("expected code timeoutFault, got %q", got)
	}
	if got := r.Err().Message(); got != "took too long" {
		t.Fatalf("unexpected message %q", got)
	}
	if !errors.Is(r.Err(), cause) {
		t.Fatal("expected the cause to be reachable via errors.Is")
	}
}

func TestFrom_TupleInterop(t *testing.T) {
	t.Parallel()

	ok := From(7, nil)
	if !ok.IsSuccess() || ok.Value() != 7 {
		t.Fatalf("expected success 7, got %v", ok)
	}

	bad := From(0, errors.New("nope"))
	if !bad.IsFailure() || bad.Err().Message() != "nope" {
		t.Fatalf("expected failure 'nope', got %v", bad.Err())
	}
}

func TestFailFrom_CarriesErrorAndMeta(t *testing.T) {
	t.Parallel()

	meta := NewMeta().WithAdditional("trace", "abc")
	from := Fail[int](NewCode("BAD", "broken")).WithMeta(meta)

	to := FailFrom[int, string](from)
	if !to.IsFailure() {
		t.Fatal("expected a failure")
	}
	if to.Err() != from.Err() {
		t.Fatal("expected the same error value to be carried")
	}
	if to.Meta() == nil || to.Meta().Additional()["trace"] != "abc" {
		t.Fatal("expected metadata to be carried")
	}
	if to.Id() != from.Id() {
		t.Fatal("expected identity to be carried")
	}
}

func TestFailFrom_PanicsOnSuccess(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("expected FailFrom on a success to panic")
		}
	}()

	_ = FailFrom[int, string](Success(1))
}

func TestWithMeta_DoesNotMutate(t *testing.T) {
	t.Parallel()

	r := Success("v")
	r2 := r.WithMeta(NewMeta().WithAdditional("k", 1))

	if r.Meta() != nil {
		t.Fatal("original result must stay without meta")
	}
	if r2.Meta() == nil || r2.Meta().Additional()["k"] != 1 {
		t.Fatal("copy must carry the meta")
	}
}

func TestResult_IdentitySet(t *testing.T) {
	t.Parallel()

	a, b := Success(1), Success(1)
	if a.Id() == b.Id() {
		t.Fatal("expected distinct result ids")
	}
	if a.CreatedAt().IsZero() {
		t.Fatal("expected createdAt to be set")
	}
}
