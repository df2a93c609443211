// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the probar command-line interface (CLI).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/probar"
	"github.com/matt-FFFFFF/probar/cmd/probar/demo"
	"github.com/matt-FFFFFF/probar/cmd/probar/each"
	"github.com/matt-FFFFFF/probar/internal/ctxlog"
	"github.com/matt-FFFFFF/probar/internal/signalbroker"
	"github.com/urfave/cli/v3"
)

// rootCmd is the root command for the CLI.
var rootCmd = &cli.Command{
	Commands: []*cli.Command{
		demo.DemoCmd,
		each.EachCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "probar",
	Description: `Probar draws a single-line progress bar in the terminal while it works
through a known number of items. The demo command shows the bar over a range of
numbers; the each command runs a command once per item read from a file.`,
	Usage:     "probar each items.txt -- ./process.sh",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)

	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, cancel)

	rootCmd.Version = fmt.Sprintf("%s (commit: %s)", probar.Version, probar.Commit)

	err := rootCmd.Run(ctx, os.Args)

	signalbroker.Stop(sigCh)

	if ctx.Err() != nil {
		ctxlog.Error(ctx, "command terminated due to cancellation", "error", ctx.Err())
		cancel()
		os.Exit(signalbroker.ExitCodeInterrupted)
	}

	cancel()

	if err != nil {
		ctxlog.Error(ctx, "command execution failed", "error", err)
		os.Exit(1)
	}

	ctxlog.Debug(ctx, "command completed successfully")
}
