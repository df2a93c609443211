// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color colors log output with ANSI escape codes.
// The progress bar itself is never colored.
package color
