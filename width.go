// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package probar

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// WidthFunc reports the number of columns the bar may occupy.
type WidthFunc func() (int, error)

// TerminalWidth returns a WidthFunc that reads the column count of the terminal
// attached to f. It fails if f is not a terminal.
func TerminalWidth(f *os.File) WidthFunc {
	return func() (int, error) {
		fd := f.Fd()
		if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
			return 0, fmt.Errorf("%s is not a terminal", f.Name())
		}

		cols, _, err := term.GetSize(int(fd))
		if err != nil {
			return 0, fmt.Errorf("failed to get size of %s: %w", f.Name(), err)
		}

		return cols, nil
	}
}
