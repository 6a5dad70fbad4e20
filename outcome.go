// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kouka

// Outcome represents the two-variant result of a driven task: success
// with a value of type A, or failure with an error value of type E.
// No other states exist; execution is synchronous relative to the driver,
// so there is nothing pending to represent.
type Outcome[A, E any] struct {
	ok    bool
	value A
	err   E
}

// Success creates a success outcome.
func Success[A, E any](a A) Outcome[A, E] {
	return Outcome[A, E]{ok: true, value: a}
}

// Failure creates a failure outcome.
func Failure[A, E any](e E) Outcome[A, E] {
	return Outcome[A, E]{err: e}
}

// IsSuccess returns true if this is a success outcome.
func (o Outcome[A, E]) IsSuccess() bool {
	return o.ok
}

// IsFailure returns true if this is a failure outcome.
func (o Outcome[A, E]) IsFailure() bool {
	return !o.ok
}

// Value returns the success value and true, or zero and false.
func (o Outcome[A, E]) Value() (A, bool) {
	if o.ok {
		return o.value, true
	}
	var zero A
	return zero, false
}

// Err returns the failure value and true, or zero and false.
func (o Outcome[A, E]) Err() (E, bool) {
	if !o.ok {
		return o.err, true
	}
	var zero E
	return zero, false
}

// MatchOutcome pattern matches on the outcome, calling onSuccess or
// onFailure.
func MatchOutcome[A, E, T any](o Outcome[A, E], onSuccess func(A) T, onFailure func(E) T) T {
	if o.ok {
		return onSuccess(o.value)
	}
	return onFailure(o.err)
}

// MapOutcome applies a function to the success value.
func MapOutcome[A, B, E any](o Outcome[A, E], f func(A) B) Outcome[B, E] {
	if o.ok {
		return Success[B, E](f(o.value))
	}
	return Failure[B, E](o.err)
}

// FlatMapOutcome sequences two outcome computations.
func FlatMapOutcome[A, B, E any](o Outcome[A, E], f func(A) Outcome[B, E]) Outcome[B, E] {
	if o.ok {
		return f(o.value)
	}
	return Failure[B, E](o.err)
}

// MapFailure applies a function to the failure value.
func MapFailure[A, E, F any](o Outcome[A, E], f func(E) F) Outcome[A, F] {
	if o.ok {
		return Success[A, F](o.value)
	}
	return Failure[A, F](f(o.err))
}
