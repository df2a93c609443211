// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a *slog.Logger in a context.Context.
//
// The default logger writes pretty, optionally colored lines to stderr so that
// log output never lands on the line the progress bar is redrawing.
// The level is read from the PROBAR_LOG_LEVEL environment variable at start-up
// and may be "DEBUG", "INFO", "WARN" or "ERROR". Anything else means "WARN".
package ctxlog
