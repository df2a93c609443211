// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package driver

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/probar"
	"github.com/matt-FFFFFF/probar/internal/ctxlog"
)

// ErrInterrupted is returned when the context is cancelled before every item was processed.
var ErrInterrupted = errors.New("interrupted before all items were processed")

// WorkFunc processes the item the step refers to. step.Current is 1-based.
type WorkFunc func(ctx context.Context, step probar.Step) error

// Drive advances t once per item and calls work after each redraw.
// w must be the stream t draws on; it receives the closing newline on cancellation.
func Drive(ctx context.Context, t *probar.Tracker, w io.Writer, work WorkFunc) error {
	var result *multierror.Error

	for step, err := range t.All() {
		if err != nil {
			return errors.Join(result.ErrorOrNil(), err)
		}

		werr := work(ctx, step)

		if ctx.Err() != nil && step.Current < step.Total {
			ctxlog.Warn(ctx, "driver", "detail", "stopped before completion",
				"current", step.Current, "total", step.Total)

			if _, err := io.WriteString(w, "\n"); err != nil {
				return errors.Join(result.ErrorOrNil(), probar.ErrOutputWrite, err)
			}

			return errors.Join(result.ErrorOrNil(), ErrInterrupted, ctx.Err())
		}

		if werr != nil {
			ctxlog.Debug(ctx, "driver", "detail", "item failed", "item", step.Current, "error", werr)
			result = multierror.Append(result, werr)
		}
	}

	return result.ErrorOrNil()
}

// Sleep waits for d or until ctx is done, whichever comes first.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
