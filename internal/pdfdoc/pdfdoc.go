// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pdfdoc is the host-side collaborator of the effect runtime: it
// owns the document content, implements the save primitive, and exposes
// the domain task that persists the document.
//
// The runtime core treats the [Save] operation as opaque; everything
// PDF-specific lives here.
package pdfdoc

import (
	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"

	"code.hybscloud.com/kouka"
)

// Save is the single primitive operation this host executes: persist the
// current document to Path. Content and format semantics are entirely
// this package's business; the runtime only carries the descriptor.
type Save struct {
	Path string
}

// SaveEffect describes the save primitive for a destination path.
// The produced outcome carries an empty success value or a raw
// diagnostic string.
func SaveEffect(path string) kouka.Effect[kouka.Outcome[struct{}, string]] {
	return kouka.Perform[kouka.Outcome[struct{}, string]](Save{Path: path})
}

// Document is a one-page PDF containing "Hello World!" in 48pt Courier.
//
// A Document is single-use: saving closes the underlying writer, so each
// Document can be persisted at most once — the same ownership discipline
// the runtime imposes on descriptors.
type Document struct {
	pdf *fpdf.Fpdf
}

// New builds the document: portrait A4 measured in points, Courier 48pt,
// text placed at (100, 600) in PDF user space. PDF user space puts y=0 at
// the bottom of the page while fpdf counts from the top, so the y
// coordinate is flipped against the page height.
func New() *Document {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Courier", "", 48)
	_, pageHeight := pdf.GetPageSize()
	pdf.Text(100, pageHeight-600, "Hello World!")
	return &Document{pdf: pdf}
}

// Save persists the document to path and closes it.
func (d *Document) Save(path string) error {
	return d.pdf.OutputFileAndClose(path)
}

// Host failure diagnostics. These are the raw strings carried by the
// save outcome; the underlying cause goes to the log, not the outcome.
const (
	diagNoDocument = "DOCUMENT NOT FOUND"
	diagSaveFailed = "ERROR SAVING DOCUMENT"
)

// Runner returns the runner executing this host's primitive set against
// doc. Unknown operations panic: reaching the boundary with an operation
// the host cannot execute is a programming error, not a task failure.
func Runner(doc *Document, logger *zap.Logger) kouka.Runner {
	return kouka.RunnerFunc(func(op kouka.Operation) (kouka.Resumed, bool) {
		switch o := op.(type) {
		case Save:
			return dispatchSave(doc, o, logger), true
		default:
			panic("pdfdoc: unhandled operation")
		}
	})
}

// dispatchSave executes one Save operation.
func dispatchSave(doc *Document, op Save, logger *zap.Logger) kouka.Outcome[struct{}, string] {
	if doc == nil {
		return kouka.Failure[struct{}, string](diagNoDocument)
	}
	if err := doc.Save(op.Path); err != nil {
		logger.Error("saving document failed",
			zap.String("path", op.Path),
			zap.Error(err),
		)
		return kouka.Failure[struct{}, string](diagSaveFailed)
	}
	logger.Info("document saved", zap.String("path", op.Path))
	return kouka.Success[struct{}, string](struct{}{})
}

// SaveError tags a failed save with the host's raw diagnostic.
type SaveError struct {
	Reason string
}

func (e *SaveError) Error() string {
	return "save failed: " + e.Reason
}

// SaveDocument builds the domain task: drive the save primitive and wrap
// a raw failure diagnostic into a [*SaveError]; success is untouched.
func SaveDocument(path string) kouka.Task[struct{}, error] {
	t := kouka.FromEffect(SaveEffect(path))
	return kouka.MapErr(t, func(reason string) error {
		return &SaveError{Reason: reason}
	})
}
