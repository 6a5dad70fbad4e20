// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package boot translates the final outcome of a top-level task into a
// process exit signal.
//
// The classification is the last-resort policy of the program: success
// means exit 0, a failure carrying an explicit exit code means an orderly
// non-zero exit with that code, and any other failure is an unhandled
// programming error that aborts with a diagnostic. Expected domain
// failures must be handled inside the task; by the time an outcome
// reaches this package, anything that is not success or an explicit exit
// request is a bug.
package boot

import (
	"fmt"

	"code.hybscloud.com/kouka"
)

// signalKind discriminates the Signal variants.
type signalKind uint8

const (
	kindSuccess signalKind = iota
	kindExit
	kindFatal
)

// Signal is the process exit signal produced from a task's final outcome:
// success, an explicit exit code, or a fatal abort with a diagnostic.
type Signal struct {
	kind signalKind
	code int
	diag string
}

// SuccessSignal signals orderly process success (exit 0).
func SuccessSignal() Signal {
	return Signal{kind: kindSuccess}
}

// CodeSignal signals an orderly process exit with the given code.
func CodeSignal(code int) Signal {
	return Signal{kind: kindExit, code: code}
}

// FatalSignal signals an immediate abort with a diagnostic.
func FatalSignal(diag string) Signal {
	return Signal{kind: kindFatal, diag: diag}
}

// IsSuccess returns true for the success variant.
func (s Signal) IsSuccess() bool {
	return s.kind == kindSuccess
}

// Code returns the explicit exit code and true, or 0 and false.
func (s Signal) Code() (int, bool) {
	if s.kind == kindExit {
		return s.code, true
	}
	return 0, false
}

// Diagnostic returns the fatal diagnostic and true, or "" and false.
func (s Signal) Diagnostic() (string, bool) {
	if s.kind == kindFatal {
		return s.diag, true
	}
	return "", false
}

// ExitCoder is the structural marker for error values that request an
// orderly process exit with a specific code.
type ExitCoder interface {
	ExitCode() int
}

// ExitError is a ready-made error carrying an explicit exit code.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode implements [ExitCoder].
func (e *ExitError) ExitCode() int {
	return e.Code
}

// Classify maps a top-level task outcome to its exit signal.
//
// Success yields the success signal. A failure whose error value
// implements [ExitCoder] yields an orderly exit with that code, verbatim.
// Any other failure yields a fatal signal with a diagnostic derived from
// the error value.
func Classify[E any](o kouka.Outcome[struct{}, E]) Signal {
	if o.IsSuccess() {
		return SuccessSignal()
	}
	e, _ := o.Err()
	if coder, ok := any(e).(ExitCoder); ok {
		return CodeSignal(coder.ExitCode())
	}
	return FatalSignal(fmt.Sprintf("unhandled task failure: %v", e))
}

// Run drives the top-level task to completion and classifies its outcome.
func Run[E any](t kouka.Task[struct{}, E], r kouka.Runner) Signal {
	var sig Signal
	kouka.Attempt(t, r, func(o kouka.Outcome[struct{}, E]) {
		sig = Classify(o)
	})
	return sig
}
