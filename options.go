// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package probar

import "io"

// Option implements a functional options pattern for Tracker.
type Option func(t *Tracker)

// WithWriter sets the stream the bar is drawn on. Default: os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(t *Tracker) {
		t.writer = w
	}
}

// WithWidthFunc replaces the terminal width query.
func WithWidthFunc(f WidthFunc) Option {
	return func(t *Tracker) {
		t.widthFn = f
	}
}

// WithWidth fixes the width at the given number of columns.
func WithWidth(cols int) Option {
	return WithWidthFunc(func() (int, error) {
		return cols, nil
	})
}

// WithFallbackWidth sets the width used when the width query fails.
// Without it, a failed query makes construction return ErrTerminalUnavailable.
func WithFallbackWidth(cols int) Option {
	return func(t *Tracker) {
		t.fallbackWidth = cols
	}
}
