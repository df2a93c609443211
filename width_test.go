// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package probar

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalWidth_NotATerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)

	defer f.Close() //nolint:errcheck

	cols, err := TerminalWidth(f)()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a terminal")
	assert.Zero(t, cols)
}

func TestNew_WriterFileIsQueried(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)

	defer f.Close() //nolint:errcheck

	_, err = New(t.Context(), 3, WithWriter(f))
	require.ErrorIs(t, err, ErrTerminalUnavailable)
	assert.Contains(t, err.Error(), f.Name())
}
