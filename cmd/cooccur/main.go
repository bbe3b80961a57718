// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/afcarl/correlations/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
