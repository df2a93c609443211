// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package probar

import (
	"fmt"
	"strings"
)

const (
	statusFormat = "  current: %3d/%3d %3d%% "
	fillChar     = "#"
	emptyChar    = "."
	brackets     = 2
)

// Percent returns the whole percentage of total that current represents,
// truncated toward zero. An empty total counts as complete.
func Percent(current, total uint64) uint64 {
	if total == 0 {
		return 100
	}

	return uint64(float64(current) / float64(total) * 100)
}

// Status returns the text drawn to the right of the bar.
// Fields are three characters wide; larger values widen the text.
func Status(current, total, percent uint64) string {
	return fmt.Sprintf(statusFormat, current, total, percent)
}

// Interior returns the number of fill and empty characters that fit between
// the brackets once the status text has been placed. It is never negative.
func Interior(width, statusLen int) int {
	return max(width-statusLen-brackets, 0)
}

// Render formats the line drawn for current out of total items on a terminal
// width columns wide, without the leading carriage return.
// It also returns the percentage shown.
func Render(current, total uint64, width int) (string, uint64) {
	percent := Percent(current, total)
	status := Status(current, total, percent)
	available := Interior(width, len(status))
	filled := min(int(float64(percent)/100*float64(available)), available)

	sb := strings.Builder{}
	sb.Grow(available + brackets + len(status))
	sb.WriteString("[")
	sb.WriteString(strings.Repeat(fillChar, filled))
	sb.WriteString(strings.Repeat(emptyChar, available-filled))
	sb.WriteString("]")
	sb.WriteString(status)

	return sb.String(), percent
}
