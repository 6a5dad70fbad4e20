// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cli wires the command-line surface: it builds the document,
// the host runner and the top-level save task, drives them through the
// boot layer, and translates the resulting signal into command errors.
package cli

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"code.hybscloud.com/kouka/internal/boot"
	"code.hybscloud.com/kouka/internal/pdfdoc"
)

// NewCommand builds the pdfhello root command.
//
// Signal translation: success returns nil, an explicit exit code becomes
// a [*boot.ExitError] for main to propagate verbatim, and a fatal signal
// becomes an ordinary error that main aborts on.
func NewCommand(logger *zap.Logger) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:           "pdfhello",
		Short:         "Write a one-page Hello World PDF",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := pdfdoc.New()
			runner := pdfdoc.Runner(doc, logger)

			sig := boot.Run(pdfdoc.SaveDocument(out), runner)
			switch {
			case sig.IsSuccess():
				return nil
			default:
				if code, ok := sig.Code(); ok {
					return &boot.ExitError{Code: code}
				}
				diag, _ := sig.Diagnostic()
				return errors.New(diag)
			}
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "out.pdf", "destination file for the generated PDF")
	return cmd
}
