// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package probar

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/matt-FFFFFF/probar/internal/ctxlog"
)

// Integer is the set of types a total may be given as.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Step describes the position of a tracker after a productive Advance.
type Step struct {
	Current uint64 // Items completed, including this one
	Total   uint64 // Items expected
	Percent uint64 // Whole percentage shown on the bar
}

// Tracker draws a progress bar for a fixed number of items.
// It is not safe for concurrent use.
type Tracker struct {
	current  uint64
	total    uint64
	width    int
	finished bool

	writer        io.Writer
	out           *bufio.Writer
	widthFn       WidthFunc
	fallbackWidth int
}

// New creates a tracker for total items.
// The terminal width is queried once, here. If the query fails and no
// fallback width was configured, ErrTerminalUnavailable is returned.
// A negative total returns ErrConversion.
func New[T Integer](ctx context.Context, total T, opts ...Option) (*Tracker, error) {
	if total < 0 {
		return nil, fmt.Errorf("%w: %d", ErrConversion, total)
	}

	t := &Tracker{
		total:  uint64(total),
		writer: os.Stdout,
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.widthFn == nil {
		f, ok := t.writer.(*os.File)
		if !ok {
			f = os.Stdout
		}

		t.widthFn = TerminalWidth(f)
	}

	width, err := t.widthFn()

	switch {
	case err == nil:
	case t.fallbackWidth > 0:
		ctxlog.Debug(ctx, "probar", "detail", "terminal width unavailable, using fallback",
			"width", t.fallbackWidth, "error", err)

		width = t.fallbackWidth
	default:
		return nil, errors.Join(ErrTerminalUnavailable, err)
	}

	t.width = max(width, 0)
	t.out = bufio.NewWriter(t.writer)

	if Interior(t.width, len(Status(t.total, t.total, 100))) == 0 {
		ctxlog.Debug(ctx, "probar", "detail", "terminal too narrow, drawing brackets only", "width", t.width)
	}

	ctxlog.Debug(ctx, "probar", "detail", "tracker created", "total", t.total, "width", t.width)

	return t, nil
}

// FromSeq creates a tracker for the number of items in seq.
// The sequence is drained to count it and the items are discarded,
// so a single-use sequence is exhausted afterwards.
func FromSeq[V any](ctx context.Context, seq iter.Seq[V], opts ...Option) (*Tracker, error) {
	var n uint64
	for range seq {
		n++
	}

	return New(ctx, n, opts...)
}

// FromSlice creates a tracker for the number of items in items.
// Unlike FromSeq it leaves the items available to the caller.
func FromSlice[S ~[]E, E any](ctx context.Context, items S, opts ...Option) (*Tracker, error) {
	return New(ctx, len(items), opts...)
}

// Advance records one more completed item and redraws the bar.
//
// Once every item has been recorded, the next call prints the trailing
// newline and returns ok == false. Calls after that return ok == false
// without writing anything.
func (t *Tracker) Advance() (Step, bool, error) {
	if t.current == t.total {
		if t.finished {
			return t.step(Percent(t.current, t.total)), false, nil
		}

		if err := t.write("\n"); err != nil {
			return Step{}, false, err
		}

		t.finished = true

		return t.step(Percent(t.current, t.total)), false, nil
	}

	t.current++

	line, percent := Render(t.current, t.total, t.width)
	if err := t.write("\r" + line); err != nil {
		return Step{}, false, err
	}

	return t.step(percent), true, nil
}

// All returns a sequence that advances the tracker on every pull.
// It yields one step per remaining item, then prints the trailing newline
// and stops. A write error is yielded once and ends the sequence.
func (t *Tracker) All() iter.Seq2[Step, error] {
	return func(yield func(Step, error) bool) {
		for {
			step, ok, err := t.Advance()
			if err != nil {
				yield(step, err)
				return
			}

			if !ok || !yield(step, nil) {
				return
			}
		}
	}
}

// Current returns the number of items recorded so far.
func (t *Tracker) Current() uint64 {
	return t.current
}

// Total returns the number of items the tracker was created for.
func (t *Tracker) Total() uint64 {
	return t.total
}

// Width returns the terminal width sampled at construction.
func (t *Tracker) Width() int {
	return t.width
}

// Finished reports whether the trailing newline has been printed.
func (t *Tracker) Finished() bool {
	return t.finished
}

func (t *Tracker) step(percent uint64) Step {
	return Step{
		Current: t.current,
		Total:   t.total,
		Percent: percent,
	}
}

func (t *Tracker) write(s string) error {
	if _, err := t.out.WriteString(s); err != nil {
		return errors.Join(ErrOutputWrite, err)
	}

	if err := t.out.Flush(); err != nil {
		return errors.Join(ErrOutputWrite, err)
	}

	return nil
}
