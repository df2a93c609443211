// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package items

import (
	"context"
	"strings"
	"testing"

	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		content  string
		want     []string
		wantErr  error
	}{
		{
			name:     "text file one item per line",
			fileName: "jobs.txt",
			content:  "alpha\nbeta\n\n  gamma  \n",
			want:     []string{"alpha", "beta", "gamma"},
		},
		{
			name:     "file without extension is text",
			fileName: "jobs",
			content:  "one\ntwo",
			want:     []string{"one", "two"},
		},
		{
			name:     "yaml sequence of scalars",
			fileName: "jobs.yaml",
			content:  "- alpha\n- 42\n- true\n",
			want:     []string{"alpha", "42", "true"},
		},
		{
			name:     "yml extension in upper case",
			fileName: "JOBS.YML",
			content:  "- a\n- b\n",
			want:     []string{"a", "b"},
		},
		{
			name:     "yaml mapping is rejected",
			fileName: "jobs.yaml",
			content:  "key: value\n",
			wantErr:  ErrParseYAML,
		},
		{
			name:     "yaml nested entry is rejected",
			fileName: "jobs.yaml",
			content:  "- a\n- [b, c]\n",
			wantErr:  ErrParseYAML,
		},
		{
			name:     "empty text file",
			fileName: "empty.txt",
			content:  "",
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, tt.fileName, []byte(tt.content), 0o644))

			stubs := gostub.Stub(&FsFactory, func() afero.Fs {
				return fs
			})
			defer stubs.Reset()

			got, err := Load(context.Background(), tt.fileName)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	stubs := gostub.Stub(&FsFactory, func() afero.Fs {
		return afero.NewMemMapFs()
	})
	defer stubs.Reset()

	_, err := Load(context.Background(), "missing.txt")
	require.ErrorIs(t, err, ErrReadFile)
}

func TestLoad_Stdin(t *testing.T) {
	stubs := gostub.Stub(&stdin, strings.NewReader("x\ny\nz\n"))
	defer stubs.Reset()

	got, err := Load(context.Background(), Stdin)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, got)
}

func TestRange(t *testing.T) {
	var got []int
	for i := range Range(5) {
		got = append(got, i)
	}

	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)

	count := 0
	for range Range(0) {
		count++
	}

	assert.Zero(t, count)
}

func TestRange_EarlyBreak(t *testing.T) {
	var got []int
	for i := range Range(500) {
		if i == 3 {
			break
		}

		got = append(got, i)
	}

	assert.Equal(t, []int{0, 1, 2}, got)
}
