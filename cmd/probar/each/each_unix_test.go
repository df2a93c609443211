// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build unix

package each

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/probar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_WithCommand(t *testing.T) {
	var buf bytes.Buffer

	// The item becomes $0 of the script.
	command := []string{"sh", "-c", `test "$0" != bad || { echo "refusing $0"; exit 3; }`}

	err := run(context.Background(), &buf, []string{"good", "bad", "fine", "bad"}, command, 0, probar.WithWidth(50))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrItemFailed)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 2)
	assert.Contains(t, err.Error(), "refusing bad")

	assert.Equal(t, 4, strings.Count(buf.String(), "\r"), "every item should be attempted")
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestRunCommand(t *testing.T) {
	require.NoError(t, runCommand(context.Background(), []string{"true"}, "item"))

	err := runCommand(context.Background(), []string{"false"}, "item")
	require.ErrorIs(t, err, ErrItemFailed)
	assert.Contains(t, err.Error(), `"item"`)
}
