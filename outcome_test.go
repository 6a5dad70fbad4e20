// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kouka_test

import (
	"testing"

	"code.hybscloud.com/kouka"
)

func TestOutcomeAccessors(t *testing.T) {
	s := kouka.Success[int, string](42)
	if !s.IsSuccess() || s.IsFailure() {
		t.Fatal("Success misclassified")
	}
	if v, ok := s.Value(); !ok || v != 42 {
		t.Fatalf("Value() = (%d, %v), want (42, true)", v, ok)
	}
	if _, failed := s.Err(); failed {
		t.Fatal("Err() reported failure on success")
	}

	f := kouka.Failure[int, string]("nope")
	if f.IsSuccess() || !f.IsFailure() {
		t.Fatal("Failure misclassified")
	}
	if e, failed := f.Err(); !failed || e != "nope" {
		t.Fatalf("Err() = (%q, %v), want (\"nope\", true)", e, failed)
	}
	if _, ok := f.Value(); ok {
		t.Fatal("Value() reported success on failure")
	}
}

func TestMatchOutcome(t *testing.T) {
	got := kouka.MatchOutcome(
		kouka.Success[int, string](21),
		func(v int) int { return v * 2 },
		func(string) int { return -1 },
	)
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}

	got = kouka.MatchOutcome(
		kouka.Failure[int, string]("x"),
		func(v int) int { return v },
		func(string) int { return -1 },
	)
	if got != -1 {
		t.Fatalf("got %d, want -1", got)
	}
}

func TestMapOutcome(t *testing.T) {
	got := kouka.MapOutcome(kouka.Success[int, string](21), func(v int) int { return v * 2 })
	if v, ok := got.Value(); !ok || v != 42 {
		t.Fatalf("got %v, want Success(42)", got)
	}

	got = kouka.MapOutcome(kouka.Failure[int, string]("e"), func(v int) int { return v * 2 })
	if e, failed := got.Err(); !failed || e != "e" {
		t.Fatalf("got %v, want Failure(\"e\")", got)
	}
}

func TestFlatMapOutcome(t *testing.T) {
	got := kouka.FlatMapOutcome(
		kouka.Success[int, string](21),
		func(v int) kouka.Outcome[int, string] {
			return kouka.Success[int, string](v * 2)
		},
	)
	if v, ok := got.Value(); !ok || v != 42 {
		t.Fatalf("got %v, want Success(42)", got)
	}

	got = kouka.FlatMapOutcome(
		kouka.Success[int, string](0),
		func(int) kouka.Outcome[int, string] {
			return kouka.Failure[int, string]("mid")
		},
	)
	if e, failed := got.Err(); !failed || e != "mid" {
		t.Fatalf("got %v, want Failure(\"mid\")", got)
	}
}

func TestMapFailure(t *testing.T) {
	got := kouka.MapFailure(kouka.Failure[int, string]("raw"), func(s string) int { return len(s) })
	if e, failed := got.Err(); !failed || e != 3 {
		t.Fatalf("got %v, want Failure(3)", got)
	}

	kept := kouka.MapFailure(kouka.Success[int, string](5), func(s string) int { return 0 })
	if v, ok := kept.Value(); !ok || v != 5 {
		t.Fatalf("got %v, want Success(5)", kept)
	}
}
