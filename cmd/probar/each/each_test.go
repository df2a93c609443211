// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package each

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matt-FFFFFF/probar"
	"github.com/matt-FFFFFF/probar/internal/items"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestRun_NoCommand(t *testing.T) {
	var buf bytes.Buffer

	err := run(context.Background(), &buf, []string{"a", "b", "c"}, nil, 0, probar.WithWidth(50))
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 3, strings.Count(out, "\r"))
	assert.Contains(t, out, "  current:   1/  3  33% ")
	assert.Contains(t, out, "  current:   2/  3  66% ")
	assert.True(t, strings.HasSuffix(out, "  current:   3/  3 100% \n"))
}

func TestRun_EmptyList(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, run(context.Background(), &buf, nil, nil, 0, probar.WithWidth(50)))
	assert.Equal(t, "\n", buf.String())
}

func TestEachCmd_MissingFile(t *testing.T) {
	stubs := gostub.Stub(&items.FsFactory, func() afero.Fs {
		return afero.NewMemMapFs()
	})
	defer stubs.Reset()

	root := &cli.Command{
		Name:     "probar",
		Writer:   &bytes.Buffer{},
		Commands: []*cli.Command{EachCmd},
		ExitErrHandler: func(context.Context, *cli.Command, error) {
			// keep cli.Exit from terminating the test binary
		},
	}

	err := root.Run(context.Background(), []string{"probar", "each", "missing.txt"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.txt")
}

func TestEachCmd_FromFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "jobs.yaml", []byte("- one\n- two\n"), 0o644))

	stubs := gostub.Stub(&items.FsFactory, func() afero.Fs {
		return fs
	})
	defer stubs.Reset()

	var buf bytes.Buffer

	root := &cli.Command{
		Name:     "probar",
		Writer:   &buf,
		Commands: []*cli.Command{EachCmd},
	}

	require.NoError(t, root.Run(context.Background(), []string{"probar", "each", "jobs.yaml"}))

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "\r"))
	assert.True(t, strings.HasSuffix(out, "  current:   2/  2 100% \n"))
}
