// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kouka

// Task is an effect whose eventual value is an [Outcome] over a domain
// value and a domain error type. This is the most common effect type in
// host-facing code.
//
// The caller that constructs a task owns it exclusively until it passes
// it to [Attempt]; tasks are not shared or re-entered.
type Task[A, E any] = Effect[Outcome[A, E]]

// Ok lifts a value into an immediately succeeding task.
func Ok[A, E any](a A) Task[A, E] {
	return Return(Success[A, E](a))
}

// Err lifts an error value into an immediately failing task.
func Err[A, E any](e E) Task[A, E] {
	return Return(Failure[A, E](e))
}

// FromEffect lifts an outcome-producing effect (e.g. a host primitive)
// into the task type. This is a pure re-tagging; behavior is unchanged.
func FromEffect[A, E any](m Effect[Outcome[A, E]]) Task[A, E] {
	return m
}

// AndThen sequences a task with a continuation, short-circuiting on
// failure: if t produces Failure(e), the failure is yielded unchanged and
// f is never invoked; if t produces Success(v), the composed task yields
// exactly the outcome produced by f(v).
//
// This short-circuit rule is the one piece of policy the task layer adds
// on top of the unconditional effect-layer [Bind].
func AndThen[A, B, E any](t Task[A, E], f func(A) Task[B, E]) Task[B, E] {
	return Bind(t, func(o Outcome[A, E]) Effect[Outcome[B, E]] {
		v, ok := o.Value()
		if !ok {
			e, _ := o.Err()
			return Err[B, E](e)
		}
		return f(v)
	})
}

// MapOk applies a pure function to the success channel of a task.
// Failures pass through untouched.
func MapOk[A, B, E any](t Task[A, E], f func(A) B) Task[B, E] {
	return Map(t, func(o Outcome[A, E]) Outcome[B, E] {
		return MapOutcome(o, f)
	})
}

// MapErr applies a pure function to the failure channel of a task.
// Successes pass through untouched.
func MapErr[A, E, F any](t Task[A, E], f func(E) F) Task[A, F] {
	return Map(t, func(o Outcome[A, E]) Outcome[A, F] {
		return MapFailure(o, f)
	})
}

// Recover handles a failure by running the task produced by h.
// Successes pass through untouched.
func Recover[A, E any](t Task[A, E], h func(E) Task[A, E]) Task[A, E] {
	return Bind(t, func(o Outcome[A, E]) Effect[Outcome[A, E]] {
		if e, failed := o.Err(); failed {
			return h(e)
		}
		return Return(o)
	})
}

// Attempt drives a task fully and synchronously to a final outcome and
// invokes done with it, exactly once. This is the single entry point by
// which any task executes; it returns only after the entire composed
// descriptor tree has been driven.
func Attempt[A, E any](t Task[A, E], r Runner, done func(Outcome[A, E])) {
	done(Handle(t, r))
}
