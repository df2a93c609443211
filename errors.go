// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package probar

import "errors"

var (
	// ErrConversion is returned when the total does not fit in an unsigned count.
	ErrConversion = errors.New("total cannot be represented as an item count")
	// ErrTerminalUnavailable is returned when the terminal width cannot be determined
	// and no fallback width was configured.
	ErrTerminalUnavailable = errors.New("terminal size unavailable")
	// ErrOutputWrite is returned when the bar cannot be written to or flushed to the output.
	ErrOutputWrite = errors.New("error when writing progress bar to output")
)
