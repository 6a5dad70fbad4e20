// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package kouka provides deferred host effects as inert values in Go.
//
// The core type [Effect] describes "perform this primitive host operation,
// then do X with the result" without performing anything. Construction is
// pure; an effect interacts with the host only when a driver executes it.
// This separation of building a description from executing and observing
// the result is the architectural point of the package.
//
// # Design Philosophy
//
// kouka provides:
//   - A closed tagged union of descriptor variants, one per combinator
//   - Defunctionalized evaluation: an iterative trampoline over explicit
//     continuation frames, constant stack regardless of iteration count
//   - A single host boundary where primitive operations are dispatched
//
// # Core Combinators
//
//   - [Return]: Lift a pure value into an effect
//   - [Perform]: Describe a primitive host operation
//   - [Bind]: Sequence two effects — the result of the first chooses the next
//   - [Map]: Apply a pure function to the eventual result
//   - [Then]: Sequence, discarding the first result
//   - [Loop]: Repeat a step until it yields [Done], trampolined
//   - [Forever]: Repeat a step indefinitely, never yielding
//
// Combinators never inspect result contents except Loop's continue/done
// tag. Errors are ordinary values at this layer; short-circuiting is task
// policy, not effect policy.
//
// # Execution
//
//   - [Runner]: Executes primitive operations at the host boundary
//   - [RunnerFunc]: Create a runner from a dispatch function
//   - [Handle]: Drive an effect to completion with a runner
//   - [RunPure]: Drive a primitive-free effect (panics on primitives)
//
// A runner's Dispatch returns (resumeValue, true) to continue, or
// (finalResult, false) to short-circuit the drive. Driving [Forever] with
// a runner that always resumes does not terminate.
//
// Nil completion convention: a nil final value is delivered as the zero
// value of the result type. Computations whose result type is a pointer or
// interface should wrap results in a sum type (e.g. [Outcome]) if nil must
// be distinguished from zero.
//
// # Stepping Boundary
//
// [Step] and [Suspension] provide one-primitive-at-a-time evaluation for
// hosts that own the drive loop. Unlike [Handle], which runs a synchronous
// trampoline to completion, stepping yields control at each primitive.
// Affine semantics: each [Suspension] may be resumed at most once.
//
//   - [Step]: Drive until completion or the next primitive operation
//   - [Suspension.Op]: The pending operation
//   - [Suspension.Resume]: Advance (panics on reuse)
//   - [Suspension.TryResume]: Non-panicking variant
//   - [Suspension.Discard]: Drop without resuming
//
// # Tasks
//
// A [Task] is an effect whose eventual value is an [Outcome] — success
// with a value or failure with a typed error. The task layer adds the one
// policy the effect layer lacks: [AndThen] short-circuits on failure
// without invoking its continuation.
//
//   - [Ok], [Err]: Pure task constructors
//   - [FromEffect]: Lift an outcome-producing effect into the task type
//   - [AndThen]: Sequence with failure short-circuit
//   - [MapOk], [MapErr]: Transform the success or failure channel
//   - [Recover]: Handle a failure by running another task
//   - [Attempt]: Drive a task fully and hand the final outcome to a callback
//
// [Attempt] is the single entry point by which any task executes. Once it
// begins driving, the task runs to completion; no cancellation or timeout
// mechanism exists, and a task is consumed exactly once.
//
// # Example
//
//	type ReadLine struct{}
//
//	eff := kouka.Bind(
//		kouka.Perform[string](ReadLine{}),
//		func(s string) kouka.Effect[int] {
//			return kouka.Return(len(s))
//		},
//	)
//
//	n := kouka.Handle(eff, kouka.RunnerFunc(func(op kouka.Operation) (kouka.Resumed, bool) {
//		switch op.(type) {
//		case ReadLine:
//			return "hello", true
//		default:
//			panic("unhandled operation")
//		}
//	}))
//	// n == 5
package kouka
