// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kouka_test

import (
	"testing"

	"code.hybscloud.com/kouka"
)

// persist is a fake host primitive standing in for a real save operation.
type persist struct{ dest string }

// tagged is a domain error wrapping a raw host diagnostic.
type tagged struct{ reason string }

// noPrimitives is a runner for tasks that must complete without host
// interaction.
var noPrimitives = kouka.RunnerFunc(func(op kouka.Operation) (kouka.Resumed, bool) {
	panic("should not be called")
})

func TestAttemptOkInvokesCallbackOnce(t *testing.T) {
	calls := 0
	kouka.Attempt(kouka.Ok[struct{}, string](struct{}{}), noPrimitives, func(o kouka.Outcome[struct{}, string]) {
		calls++
		if !o.IsSuccess() {
			t.Fatalf("got failure, want success")
		}
	})
	if calls != 1 {
		t.Fatalf("callback invoked %d times, want 1", calls)
	}
}

func TestAndThenShortCircuits(t *testing.T) {
	// A failing task must yield its failure unchanged and never invoke
	// the continuation.
	for _, errVal := range []string{"disk full", "", "boom"} {
		invoked := false
		task := kouka.AndThen(
			kouka.Err[int, string](errVal),
			func(int) kouka.Task[int, string] {
				invoked = true
				return kouka.Ok[int, string](0)
			},
		)

		var got kouka.Outcome[int, string]
		kouka.Attempt(task, noPrimitives, func(o kouka.Outcome[int, string]) { got = o })

		if invoked {
			t.Fatal("continuation invoked after failure")
		}
		e, failed := got.Err()
		if !failed || e != errVal {
			t.Fatalf("got %v, want Failure(%q)", got, errVal)
		}
	}
}

func TestAndThenSuccessRunsContinuation(t *testing.T) {
	task := kouka.AndThen(
		kouka.Ok[int, string](20),
		func(v int) kouka.Task[int, string] {
			return kouka.Ok[int, string](v + 22)
		},
	)

	var got kouka.Outcome[int, string]
	kouka.Attempt(task, noPrimitives, func(o kouka.Outcome[int, string]) { got = o })

	v, ok := got.Value()
	if !ok || v != 42 {
		t.Fatalf("got %v, want Success(42)", got)
	}
}

func TestAndThenSuccessYieldsContinuationFailure(t *testing.T) {
	task := kouka.AndThen(
		kouka.Ok[int, string](1),
		func(int) kouka.Task[int, string] {
			return kouka.Err[int, string]("late failure")
		},
	)

	var got kouka.Outcome[int, string]
	kouka.Attempt(task, noPrimitives, func(o kouka.Outcome[int, string]) { got = o })

	e, failed := got.Err()
	if !failed || e != "late failure" {
		t.Fatalf("got %v, want Failure(%q)", got, "late failure")
	}
}

func TestMapErrLeavesSuccessUntouched(t *testing.T) {
	task := kouka.MapErr(
		kouka.Ok[int, string](7),
		func(s string) tagged { return tagged{reason: s} },
	)

	var got kouka.Outcome[int, tagged]
	kouka.Attempt(task, noPrimitives, func(o kouka.Outcome[int, tagged]) { got = o })

	v, ok := got.Value()
	if !ok || v != 7 {
		t.Fatalf("got %v, want Success(7)", got)
	}
}

func TestRecoverHandlesFailure(t *testing.T) {
	task := kouka.Recover(
		kouka.Err[int, string]("transient"),
		func(e string) kouka.Task[int, string] {
			if e != "transient" {
				t.Fatalf("handler got %q, want %q", e, "transient")
			}
			return kouka.Ok[int, string](42)
		},
	)

	var got kouka.Outcome[int, string]
	kouka.Attempt(task, noPrimitives, func(o kouka.Outcome[int, string]) { got = o })

	v, ok := got.Value()
	if !ok || v != 42 {
		t.Fatalf("got %v, want Success(42)", got)
	}
}

func TestRecoverSkipsSuccess(t *testing.T) {
	task := kouka.Recover(
		kouka.Ok[int, string](1),
		func(string) kouka.Task[int, string] {
			t.Fatal("handler invoked on success")
			return kouka.Ok[int, string](0)
		},
	)

	var got kouka.Outcome[int, string]
	kouka.Attempt(task, noPrimitives, func(o kouka.Outcome[int, string]) { got = o })

	if !got.IsSuccess() {
		t.Fatalf("got %v, want success", got)
	}
}

// saveTask mirrors the domain pattern: lift the host primitive, wrap raw
// failure strings in a domain tag, leave success untouched.
func saveTask(dest string) kouka.Task[struct{}, tagged] {
	eff := kouka.Perform[kouka.Outcome[struct{}, string]](persist{dest: dest})
	return kouka.MapErr(kouka.FromEffect(eff), func(reason string) tagged {
		return tagged{reason: reason}
	})
}

func TestEndToEndHostFailure(t *testing.T) {
	runner := kouka.RunnerFunc(func(op kouka.Operation) (kouka.Resumed, bool) {
		switch op.(type) {
		case persist:
			return kouka.Failure[struct{}, string]("disk full"), true
		default:
			panic("unhandled operation")
		}
	})

	calls := 0
	kouka.Attempt(saveTask("out.bin"), runner, func(o kouka.Outcome[struct{}, tagged]) {
		calls++
		e, failed := o.Err()
		if !failed {
			t.Fatalf("got %v, want failure", o)
		}
		if e.reason != "disk full" {
			t.Fatalf("got reason %q, want %q", e.reason, "disk full")
		}
	})
	if calls != 1 {
		t.Fatalf("callback invoked %d times, want 1", calls)
	}
}

func TestEndToEndHostSuccess(t *testing.T) {
	var seen persist
	runner := kouka.RunnerFunc(func(op kouka.Operation) (kouka.Resumed, bool) {
		switch o := op.(type) {
		case persist:
			seen = o
			return kouka.Success[struct{}, string](struct{}{}), true
		default:
			panic("unhandled operation")
		}
	})

	var got kouka.Outcome[struct{}, tagged]
	kouka.Attempt(saveTask("out.bin"), runner, func(o kouka.Outcome[struct{}, tagged]) { got = o })

	if !got.IsSuccess() {
		t.Fatalf("got %v, want success", got)
	}
	if seen.dest != "out.bin" {
		t.Fatalf("host saw destination %q, want %q", seen.dest, "out.bin")
	}
}
