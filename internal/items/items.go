// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package items

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/matt-FFFFFF/probar/internal/ctxlog"
	"github.com/spf13/afero"
)

// Stdin is the file name that selects standard input.
const Stdin = "-"

var (
	// ErrReadFile is returned when the item file cannot be read.
	ErrReadFile = errors.New("failed to read item file")
	// ErrParseYAML is returned when a YAML item file is not a sequence of scalars.
	ErrParseYAML = errors.New("failed to parse YAML item list")
)

// stdin is replaced in tests.
var stdin io.Reader = os.Stdin

// Load reads the items in the named file.
func Load(ctx context.Context, name string) ([]string, error) {
	if name == Stdin {
		ctxlog.Debug(ctx, "items", "detail", "reading items from stdin")

		return lines(stdin)
	}

	b, err := afero.ReadFile(FsFactory(), name)
	if err != nil {
		return nil, errors.Join(ErrReadFile, err)
	}

	var list []string

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		list, err = parseYAML(b)
	default:
		list, err = lines(strings.NewReader(string(b)))
	}

	if err != nil {
		return nil, err
	}

	ctxlog.Debug(ctx, "items", "detail", "loaded items", "file", name, "count", len(list))

	return list, nil
}

// Range returns the integers 0 to n-1 in order.
func Range(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range n {
			if !yield(i) {
				return
			}
		}
	}
}

func parseYAML(b []byte) ([]string, error) {
	var raw []any
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, errors.Join(ErrParseYAML, err)
	}

	list := make([]string, 0, len(raw))

	for i, v := range raw {
		switch v.(type) {
		case map[string]any, map[any]any, []any, nil:
			return nil, fmt.Errorf("%w: entry %d is not a scalar", ErrParseYAML, i)
		}

		list = append(list, fmt.Sprint(v))
	}

	return list, nil
}

func lines(r io.Reader) ([]string, error) {
	var list []string

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		list = append(list, line)
	}

	if err := sc.Err(); err != nil {
		return nil, errors.Join(ErrReadFile, err)
	}

	return list, nil
}
