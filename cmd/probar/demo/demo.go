// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package demo contains the command that draws a bar over a range of numbers.
package demo

import (
	"context"
	"io"
	"time"

	"github.com/matt-FFFFFF/probar"
	"github.com/matt-FFFFFF/probar/internal/driver"
	"github.com/matt-FFFFFF/probar/internal/items"
	"github.com/urfave/cli/v3"
)

const (
	totalFlag = "total"
	delayFlag = "delay"

	// FallbackWidth is used when stdout is not a terminal.
	FallbackWidth = 80
)

// DemoCmd iterates over a range of numbers, pausing on each one.
var DemoCmd = &cli.Command{
	Name:        "demo",
	Usage:       "Draw a progress bar over a range of numbers",
	Description: "Count from 1 to TOTAL, redrawing the bar and sleeping DELAY on each number.",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    totalFlag,
			Aliases: []string{"n"},
			Usage:   "Number of items to iterate over",
			Value:   500,
		},
		&cli.DurationFlag{
			Name:    delayFlag,
			Aliases: []string{"d"},
			Usage:   "Time to spend on each item",
			Value:   10 * time.Millisecond,
		},
	},
	Action: actionFunc,
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	total := int(cmd.Int(totalFlag))
	if total < 0 {
		return cli.Exit("--total must not be negative", 1)
	}

	return run(ctx, cmd.Root().Writer, total, cmd.Duration(delayFlag), probar.WithFallbackWidth(FallbackWidth))
}

func run(ctx context.Context, w io.Writer, total int, delay time.Duration, opts ...probar.Option) error {
	opts = append([]probar.Option{probar.WithWriter(w)}, opts...)

	t, err := probar.FromSeq(ctx, items.Range(total), opts...)
	if err != nil {
		return err
	}

	return driver.Drive(ctx, t, w, func(ctx context.Context, _ probar.Step) error {
		return driver.Sleep(ctx, delay)
	})
}
