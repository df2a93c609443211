// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package items loads the bounded lists of work items the probar command iterates over.
//
// A file whose name ends in .yaml or .yml must contain a YAML sequence of scalars.
// Any other file is read as text with one item per line; blank lines are skipped.
// The name "-" reads text from standard input.
package items
