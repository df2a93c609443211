// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsColorCapable(t *testing.T) {
	t.Setenv(NoColor, "1")
	assert.False(t, isColorCapable(os.Stderr), "Expected color output to be disabled")

	t.Setenv(ForceColor, "1")
	assert.False(t, isColorCapable(os.Stderr), "Expected color output to be disabled as NO_COLOR is still set")

	t.Setenv(NoColor, "")
	assert.True(t, isColorCapable(os.Stderr), "Expected color output to be enabled as FORCE_COLOR is set and NO_COLOR is unset")
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		str   string
		codes []Code
		want  string
	}{
		{
			name: "no codes",
			str:  "plain",
			want: "plain",
		},
		{
			name:  "single code",
			str:   "cyan",
			codes: []Code{FgCyan},
			want:  "\033[36mcyan\033[0m",
		},
		{
			name:  "multiple codes",
			str:   "hi",
			codes: []Code{FgHiWhite, FgRed},
			want:  "\033[97;31mhi\033[0m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.str, tt.codes...))
		})
	}
}

func TestColorizeDisabled(t *testing.T) {
	orig := enabled
	defer func() { enabled = orig }()

	enabled = false
	assert.Equal(t, "text", Colorize("text", FgRed))

	enabled = true
	assert.Equal(t, "\033[31mtext\033[0m", Colorize("text", FgRed))
}
