// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package driver runs a unit of work per item while a probar.Tracker draws progress.
//
// Work failures do not stop the run; they are collected and returned together
// once every item has been attempted. Cancelling the context stops the run after
// the current item, finishing the bar line with a newline.
package driver
