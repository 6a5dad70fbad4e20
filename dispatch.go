// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kouka

// Runner executes primitive operations at the host boundary.
//
// Dispatch returns (resumeValue, true) to continue the computation with
// the produced value, or (finalResult, false) to short-circuit the drive
// and return immediately.
type Runner interface {
	Dispatch(op Operation) (Resumed, bool)
}

// runnerFunc wraps a dispatch function as a concrete Runner.
type runnerFunc struct {
	f func(op Operation) (Resumed, bool)
}

func (r *runnerFunc) Dispatch(op Operation) (Resumed, bool) {
	return r.f(op)
}

// RunnerFunc creates a runner from a dispatch function.
// The function receives each primitive operation and returns
// (resumeValue, true) to continue, or (finalResult, false) to
// short-circuit.
//
// Example:
//
//	RunnerFunc(func(op Operation) (Resumed, bool) {
//	    switch o := op.(type) {
//	    case Save:
//	        return persist(o.Path), true
//	    default:
//	        panic("unhandled operation")
//	    }
//	})
func RunnerFunc(f func(op Operation) (Resumed, bool)) Runner {
	return &runnerFunc{f: f}
}

// pureRunner is a sentinel runner for RunPure.
// Its Dispatch method unconditionally panics on any primitive operation.
type pureRunner struct{}

func (pureRunner) Dispatch(Operation) (Resumed, bool) {
	panic("kouka: primitive operation in pure computation - use Handle")
}

// frame kinds for the defunctionalized continuation stack.
const (
	frameMap uint8 = iota
	frameBind
	frameLoop
	frameForever
)

// driveFrame is one pending continuation on the trampoline stack.
// Exactly one of fn/bind/loop/body is set, selected by kind.
type driveFrame struct {
	kind uint8
	fn   func(Erased) Erased // frameMap
	bind func(Erased) node   // frameBind
	loop *loopNode           // frameLoop
	body node                // frameForever
}

// machine is the reified trampoline state: the node being descended and
// the stack of pending continuation frames. Reifying the state (rather
// than recursing) is what makes driving resumable at primitive boundaries
// and keeps stack usage constant for unbounded repetition.
type machine struct {
	cur   node
	stack []driveFrame
}

// advance descends cur until it reaches a value, then unwinds pending
// frames. Returns (final, nil, true) when the computation completed, or
// (nil, op, false) when suspended at a primitive operation.
func (m *machine) advance() (Erased, Operation, bool) {
	for {
		var val Erased
	descend:
		for {
			switch t := m.cur.(type) {
			case constNode:
				val = t.value
				break descend
			case *primNode:
				return nil, t.op, false
			case *mapNode:
				m.stack = append(m.stack, driveFrame{kind: frameMap, fn: t.fn})
				m.cur = t.inner
			case *bindNode:
				m.stack = append(m.stack, driveFrame{kind: frameBind, bind: t.next})
				m.cur = t.inner
			case *loopNode:
				m.stack = append(m.stack, driveFrame{kind: frameLoop, loop: t})
				m.cur = t.step(t.seed)
			case *foreverNode:
				m.stack = append(m.stack, driveFrame{kind: frameForever, body: t.body})
				m.cur = t.body
			default:
				panic("kouka: unknown effect node")
			}
		}
		final, again := m.unwind(val)
		if !again {
			return final, nil, true
		}
	}
}

// feed resumes after a primitive with the value the runner produced.
// Same return convention as advance.
func (m *machine) feed(v Resumed) (Erased, Operation, bool) {
	final, again := m.unwind(v)
	if !again {
		return final, nil, true
	}
	return m.advance()
}

// unwind applies pending frames to val. Returns (final, false) when the
// stack is exhausted, or (nil, true) after setting cur for further
// descent. Loop and forever frames stay on the stack while re-descending,
// so iteration never grows the stack.
func (m *machine) unwind(val Erased) (Erased, bool) {
	for {
		if len(m.stack) == 0 {
			return val, false
		}
		f := &m.stack[len(m.stack)-1]
		switch f.kind {
		case frameMap:
			val = f.fn(val)
			m.stack = m.stack[:len(m.stack)-1]
		case frameBind:
			next := f.bind(val)
			m.stack = m.stack[:len(m.stack)-1]
			m.cur = next
			return nil, true
		case frameLoop:
			state, value, done := val.(nextTag).next()
			if done {
				val = value
				m.stack = m.stack[:len(m.stack)-1]
				continue
			}
			m.cur = f.loop.step(state)
			return nil, true
		case frameForever:
			m.cur = f.body
			return nil, true
		default:
			panic("kouka: unknown continuation frame")
		}
	}
}

// cast recovers the typed final value from the driver.
// Nil completion convention: a nil final value becomes the zero value of A.
func cast[A any](v Erased) A {
	if v == nil {
		var zero A
		return zero
	}
	return v.(A)
}

// Handle drives an effect to completion with a runner.
//
// The trampoline loop dispatches each primitive operation to the runner
// and resumes with the produced value, or returns early when the runner
// short-circuits. Handle returns only after the entire descriptor tree
// has been driven; driving [Forever] with an always-resuming runner does
// not return.
func Handle[A any](m Effect[A], r Runner) A {
	mach := &machine{cur: m.n}
	val, op, done := mach.advance()
	for !done {
		v, resume := r.Dispatch(op)
		if !resume {
			return cast[A](v)
		}
		val, op, done = mach.feed(v)
	}
	return cast[A](val)
}

// RunPure drives a primitive-free effect to completion.
// It processes the descriptor iteratively without stack growth.
//
// Panics if the effect contains a primitive operation. Use [Handle] for
// effects with primitives.
func RunPure[A any](m Effect[A]) A {
	return Handle(m, pureRunner{})
}
