package dispatch

import (
	"errors"
	"strings"
	"testing"
)

func TestStrict_FirstMatchWins(t *testing.T) {
	t.Parallel()
	number := 2
	v, err := Strict(number,
		Case(number < 0, func() string { return "Negative" }),
		Case(number == 0, func() string { return "Zero" }),
		Case(number > 0, func() string { return "Positive" }),
	)
	if err != nil || v != "Positive" {
		t.Fatalf("expected 'Positive', got: val=%q, err=%v", v, err)
	}
}

func TestStrict_LaterProducersNeverRun(t *testing.T) {
	t.Parallel()
	var ran []string
	producer := func(name string) func() string {
		return func() string {
			ran = append(ran, name)
			return name
		}
	}

	v, err := Strict(1,
		Case(true, producer("first")),
		Case(true, producer("second")),
		Case(false, producer("third")),
	)
	if err != nil || v != "first" {
		t.Fatalf("expected 'first', got: val=%q, err=%v", v, err)
	}
	if len(ran) != 1 || ran[0] != "first" {
		t.Fatalf("only the selected producer may run, ran=%v", ran)
	}
}

func TestStrict_NoMatch(t *testing.T) {
	t.Parallel()
	number := 0
	_, err := Strict(number,
		Case(number < 0, func() string { return "Negative" }),
		Case(number > 0, func() string { return "Positive" }),
	)
	if err == nil {
		t.Fatalf("expected unexpected-case failure")
	}
	if !errors.Is(err, ErrUnexpectedCase) {
		t.Fatalf("expected errors.Is match on ErrUnexpectedCase, got: %v", err)
	}

	var uc *UnexpectedCaseError
	if !errors.As(err, &uc) || uc.Subject != 0 {
		t.Fatalf("expected UnexpectedCaseError carrying the subject, got: %#v", err)
	}
	if !strings.Contains(err.Error(), "0") {
		t.Fatalf("diagnostic must include the subject representation: %q", err.Error())
	}
}

func TestStrict_NoBranches(t *testing.T) {
	t.Parallel()
	_, err := Strict[string]("subject")
	if !errors.Is(err, ErrUnexpectedCase) {
		t.Fatalf("empty branch list must fail strictly, got: %v", err)
	}
}

func TestConditions_CapturedAtConstruction(t *testing.T) {
	t.Parallel()
	number := 1
	b := Case(number > 0, func() string { return "Positive" })
	number = -1 // re-inspecting the subject later must not change the branch

	v, err := Strict(number, b)
	if err != nil || v != "Positive" {
		t.Fatalf("condition must be fixed at construction, got: val=%q, err=%v", v, err)
	}
}

func TestFirst_MatchAndAbsence(t *testing.T) {
	t.Parallel()
	v, ok := First(
		Case(false, func() int { return 1 }),
		Case(true, func() int { return 2 }),
	)
	if !ok || v != 2 {
		t.Fatalf("expected (2, true), got: (%v, %v)", v, ok)
	}

	v, ok = First(
		Case(false, func() int { return 1 }),
	)
	if ok || v != 0 {
		t.Fatalf("expected absent zero value, got: (%v, %v)", v, ok)
	}
}

func TestFirstOr_Default(t *testing.T) {
	t.Parallel()
	number := -1
	v := FirstOr("Negative",
		Case(number == 0, func() string { return "Zero" }),
		Case(number > 0, func() string { return "Positive" }),
	)
	if v != "Negative" {
		t.Fatalf("expected default 'Negative', got: %q", v)
	}
}

func TestFirstOr_ZeroValueDefaultCounts(t *testing.T) {
	t.Parallel()
	// a zero-valued default is still a supplied default
	v := FirstOr(0,
		Case(false, func() int { return 99 }),
	)
	if v != 0 {
		t.Fatalf("expected supplied zero default, got: %v", v)
	}

	v = FirstOr(0,
		Case(true, func() int { return 99 }),
	)
	if v != 99 {
		t.Fatalf("matched branch must win over the default, got: %v", v)
	}
}

func TestFirstOrElse_ProducerInvokedOnceOnNoMatch(t *testing.T) {
	t.Parallel()
	calls := 0
	produce := func() string {
		calls++
		return "Negative"
	}

	v := FirstOrElse(produce,
		Case(false, func() string { return "Zero" }),
	)
	if v != "Negative" || calls != 1 {
		t.Fatalf("expected one producer call yielding 'Negative': val=%q, calls=%d", v, calls)
	}

	v = FirstOrElse(produce,
		Case(true, func() string { return "Zero" }),
	)
	if v != "Zero" || calls != 1 {
		t.Fatalf("producer must not run when a branch matches: val=%q, calls=%d", v, calls)
	}
}

func TestCaseValue(t *testing.T) {
	t.Parallel()
	v, err := Strict(10,
		CaseValue(false, "small"),
		CaseValue(true, "big"),
	)
	if err != nil || v != "big" {
		t.Fatalf("expected 'big', got: val=%q, err=%v", v, err)
	}
}
