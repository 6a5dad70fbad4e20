// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kouka

import "sync/atomic"

// Stepping boundary for hosts that own the drive loop.
// Step provides shallow one-primitive-at-a-time evaluation, unlike
// [Handle] which runs a synchronous trampoline to completion.

// Suspension represents a computation suspended on a primitive operation.
// It holds the pending operation and a one-shot resumption handle.
//
// Suspension enforces affine semantics: Resume may be called at most once.
// Calling Resume twice panics. Use Discard to explicitly abandon a
// suspension.
type Suspension[A any] struct {
	used atomic.Uintptr
	op   Operation
	m    *machine
}

// Op returns the primitive operation that caused the suspension.
func (s *Suspension[A]) Op() Operation { return s.op }

// Resume advances the computation with the value the host produced for
// the pending operation. Returns either a completed value (with nil
// suspension) or the next suspension. Panics if the suspension has
// already been resumed or discarded.
func (s *Suspension[A]) Resume(v Resumed) (A, *Suspension[A]) {
	if s.used.Add(1) != 1 {
		panic("kouka: suspension resumed twice")
	}
	val, op, done := s.m.feed(v)
	return classifyStep[A](s.m, val, op, done)
}

// TryResume attempts to advance the computation.
// Returns (value, suspension, true) on success, or (zero, nil, false) if
// the suspension was already used.
func (s *Suspension[A]) TryResume(v Resumed) (A, *Suspension[A], bool) {
	if s.used.Add(1) != 1 {
		var zero A
		return zero, nil, false
	}
	val, op, done := s.m.feed(v)
	a, next := classifyStep[A](s.m, val, op, done)
	return a, next, true
}

// Discard marks the suspension as consumed without resuming.
// This is the supported way to stop driving an indefinite [Forever]
// computation from a host loop.
func (s *Suspension[A]) Discard() {
	s.used.Store(1)
	s.m = nil
}

// Step drives an effect until it either completes or suspends on a
// primitive operation.
// Returns (value, nil) if the computation completed, or (zero,
// suspension) if pending.
//
// Example:
//
//	result, susp := Step(effect)
//	for susp != nil {
//	    v := executeOp(susp.Op())
//	    result, susp = susp.Resume(v)
//	}
func Step[A any](m Effect[A]) (A, *Suspension[A]) {
	mach := &machine{cur: m.n}
	val, op, done := mach.advance()
	return classifyStep[A](mach, val, op, done)
}

// classifyStep unpacks a driver advance: completed value or suspension
// carrying the reified trampoline state.
func classifyStep[A any](m *machine, val Erased, op Operation, done bool) (A, *Suspension[A]) {
	if done {
		return cast[A](val), nil
	}
	var zero A
	return zero, &Suspension[A]{op: op, m: m}
}
