// contrastcheck - WCAG and SAPC contrast checker
//
// contrastcheck evaluates text, control and background colour combinations
// against WCAG 2.1 thresholds and the experimental SAPC/APCA metric.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/contrastcheck/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
