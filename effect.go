// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kouka

// Erased represents a type-erased value flowing through the descriptor
// tree. Variant structs use Erased fields so heterogeneous value types can
// move through a homogeneous evaluation pipeline; concrete types are
// recovered via type assertions at combinator boundaries.
type Erased = any

// Operation is the interface for primitive host operations.
// All values passed to [Runner.Dispatch] implement this interface.
type Operation any

// Resumed is the interface for values a runner produces when executing a
// primitive operation.
type Resumed any

// Effect describes a deferred computation producing a value of type A.
//
// An Effect is a finite, inert value: constructing one performs no host
// interaction. It is consumed exactly once by a driver ([Handle], [Step]
// or, via the task layer, [Attempt]) and must not be driven again.
type Effect[A any] struct {
	n node
}

// node is the closed tagged union of descriptor variants.
// Dispatch uses type switches, not tags — node is a pure marker interface.
type node interface {
	node() // unexported marker method
}

// constNode yields a value with no host interaction.
type constNode struct{ value Erased }

func (constNode) node() {}

// primNode is an atomic host operation awaiting dispatch.
type primNode struct{ op Operation }

func (*primNode) node() {}

// mapNode runs inner, then applies a pure transform to its result.
type mapNode struct {
	inner node
	fn    func(Erased) Erased
}

func (*mapNode) node() {}

// bindNode runs inner, then uses its result to construct the next node.
type bindNode struct {
	inner node
	next  func(Erased) node
}

func (*bindNode) node() {}

// loopNode repeatedly runs step, feeding each Continue state back in,
// until a Done tag is observed.
type loopNode struct {
	seed Erased
	step func(Erased) node
}

func (*loopNode) node() {}

// foreverNode repeats body indefinitely, discarding results.
type foreverNode struct{ body node }

func (*foreverNode) node() {}

// Return lifts a pure value into an effect.
// The resulting descriptor yields the value without host interaction.
func Return[A any](a A) Effect[A] {
	return Effect[A]{n: constNode{value: a}}
}

// Perform describes a primitive host operation producing a value of type A.
// The operation is executed by whatever [Runner] drives the effect; until
// then it is data.
func Perform[A any](op Operation) Effect[A] {
	return Effect[A]{n: &primNode{op: op}}
}

// Map applies a pure function to the eventual result of an effect.
//
// f must be total over whatever m produces; no error semantics exist at
// this layer. Errors embedded in the result (e.g. an [Outcome]) flow
// through like any other value.
func Map[A, B any](m Effect[A], f func(A) B) Effect[B] {
	if c, ok := m.n.(constNode); ok {
		// Optimization: m is already a value, apply f directly
		return Return(f(c.value.(A)))
	}
	return Effect[B]{n: &mapNode{
		inner: m.n,
		fn:    func(v Erased) Erased { return f(v.(A)) },
	}}
}

// Bind sequences two effects (monadic bind).
// It runs m, then passes the result to f to construct the next effect.
// This is the only combinator that lets the value produced by one effect
// choose which effect runs next; everything else derives from it.
func Bind[A, B any](m Effect[A], f func(A) Effect[B]) Effect[B] {
	if c, ok := m.n.(constNode); ok {
		// Optimization: m is already a value, build the next effect directly
		return f(c.value.(A))
	}
	return Effect[B]{n: &bindNode{
		inner: m.n,
		next:  func(v Erased) node { return f(v.(A)).n },
	}}
}

// Then sequences two effects, discarding the first result.
// This is more efficient than Bind when the second computation does not
// depend on the first result.
func Then[A, B any](m Effect[A], n Effect[B]) Effect[B] {
	if _, ok := m.n.(constNode); ok {
		return n
	}
	second := n.n
	return Effect[B]{n: &bindNode{
		inner: m.n,
		next:  func(Erased) node { return second },
	}}
}

// Next is the tagged result of one [Loop] iteration: either continue with
// a new state, or done with a final value.
type Next[S, A any] struct {
	done  bool
	state S
	value A
}

// Continue tags a Loop iteration result as "run another iteration with
// this state".
func Continue[S, A any](state S) Next[S, A] {
	return Next[S, A]{state: state}
}

// Done tags a Loop iteration result as "stop, yielding this value".
func Done[S, A any](value A) Next[S, A] {
	return Next[S, A]{done: true, value: value}
}

// nextTag recovers a type-erased Next during driving.
// The driver inspects only this tag; result contents are never examined.
type nextTag interface {
	next() (state Erased, value Erased, done bool)
}

func (n Next[S, A]) next() (Erased, Erased, bool) {
	if n.done {
		return nil, n.value, true
	}
	return n.state, nil, false
}

// Loop repeatedly drives step(state), starting from seed, until the step
// yields [Done]; the final value is the loop's result.
//
// Driving is trampolined: the driver re-arms a single continuation frame
// per iteration, so stack usage is constant even when the descriptor
// represents millions of steps.
func Loop[S, A any](seed S, step func(S) Effect[Next[S, A]]) Effect[A] {
	return Effect[A]{n: &loopNode{
		seed: seed,
		step: func(s Erased) node { return step(s.(S)).n },
	}}
}

// Forever repeats an effect indefinitely, discarding intermediate results.
//
// A Forever descriptor never yields: driving it with [Handle] does not
// terminate unless the runner short-circuits or the process is torn down.
// Hosts that need to stop an indefinite loop should drive it through
// [Step] and stop resuming.
func Forever[A, B any](m Effect[A]) Effect[B] {
	return Effect[B]{n: &foreverNode{body: m.n}}
}
