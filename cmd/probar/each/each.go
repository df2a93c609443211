// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package each contains the command that works through the items listed in a file.
package each

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/matt-FFFFFF/probar"
	"github.com/matt-FFFFFF/probar/internal/ctxlog"
	"github.com/matt-FFFFFF/probar/internal/driver"
	"github.com/matt-FFFFFF/probar/internal/items"
	"github.com/urfave/cli/v3"
)

const (
	delayFlag = "delay"

	// FallbackWidth is used when stdout is not a terminal.
	FallbackWidth = 80
)

var (
	// ErrLoadItems is returned when the item file cannot be loaded.
	ErrLoadItems = errors.New("failed to load items")
	// ErrItemFailed wraps the failure of the command run for a single item.
	ErrItemFailed = errors.New("command failed for item")
)

// EachCmd runs a command once per item listed in a file.
var EachCmd = &cli.Command{
	Name:      "each",
	Usage:     "Work through the items in a file, optionally running a command for each",
	ArgsUsage: "FILE [-- COMMAND [ARGS...]]",
	Description: `Read items from FILE (one per line, or a YAML list if the name ends in .yaml or .yml;
"-" reads standard input) and draw a progress bar while working through them.
If COMMAND is given it is run once per item with the item appended as its last
argument. Failures are reported once every item has been attempted.`,
	Flags: []cli.Flag{
		&cli.DurationFlag{
			Name:    delayFlag,
			Aliases: []string{"d"},
			Usage:   "Time to wait after each item",
			Value:   0,
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() == 0 {
		return cli.Exit("Please provide a file of items", 1)
	}

	fileName := cmd.Args().First()

	list, err := items.Load(ctx, fileName)
	if err != nil {
		return cli.Exit(fmt.Sprintf("failed to load items from %s: %s", fileName, err.Error()), 1)
	}

	return run(ctx, cmd.Root().Writer, list, cmd.Args().Tail(), cmd.Duration(delayFlag),
		probar.WithFallbackWidth(FallbackWidth))
}

func run(
	ctx context.Context,
	w io.Writer,
	list []string,
	command []string,
	delay time.Duration,
	opts ...probar.Option,
) error {
	opts = append([]probar.Option{probar.WithWriter(w)}, opts...)

	t, err := probar.FromSlice(ctx, list, opts...)
	if err != nil {
		return err
	}

	return driver.Drive(ctx, t, w, func(ctx context.Context, step probar.Step) error {
		item := list[step.Current-1]

		if len(command) > 0 {
			if err := runCommand(ctx, command, item); err != nil {
				return err
			}
		}

		return driver.Sleep(ctx, delay)
	})
}

func runCommand(ctx context.Context, command []string, item string) error {
	args := append(append([]string{}, command[1:]...), item)

	out, err := exec.CommandContext(ctx, command[0], args...).CombinedOutput()
	if err != nil {
		ctxlog.Debug(ctx, "each", "detail", "command output", "item", item, "output", string(out))

		return fmt.Errorf("%w %q: %w: %s", ErrItemFailed, item, err, strings.TrimSpace(string(out)))
	}

	return nil
}
