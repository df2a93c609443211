// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package probar renders a single-line, self-updating progress bar while a
// caller works through a known number of items.
//
// A Tracker is created with the number of items up front, either directly
// with New or by counting an existing sequence with FromSeq or FromSlice.
// Every call to Advance moves the tracker on by one item and redraws the
// line in place:
//
//	[#########.........................]  current: 250/500  50%
//
// The terminal width is sampled once, when the tracker is created.
//
// # Usage
//
//	t, err := probar.New(ctx, len(jobs))
//	if err != nil {
//	    return err
//	}
//
//	for _, job := range jobs {
//	    if _, _, err := t.Advance(); err != nil {
//	        return err
//	    }
//	    job.Do()
//	}
//
//	_, _, err = t.Advance() // prints the trailing newline
//
// Or let the tracker drive the loop:
//
//	for step, err := range t.All() {
//	    if err != nil {
//	        return err
//	    }
//	    jobs[step.Current-1].Do()
//	}
//
// # Counting sequences
//
// FromSeq drains the sequence it is given in order to count it, and the
// items are thrown away. A single-use sequence cannot be ranged over again
// afterwards. Callers that need the items as well should collect them into
// a slice first and use FromSlice, which only reads the length.
package probar
