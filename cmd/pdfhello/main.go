// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"code.hybscloud.com/kouka/internal/boot"
	"code.hybscloud.com/kouka/internal/cli"
)

// main translates the command result into the process exit: success is
// exit 0, an explicit exit code propagates verbatim, anything else is a
// fatal abort with a diagnostic.
func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := cli.NewCommand(logger).Execute(); err != nil {
		var exitErr *boot.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		logger.Fatal("aborting", zap.Error(err))
	}
}
