// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker turns termination signals into context cancellation.
// By default it listens for os.Interrupt, syscall.SIGINT, syscall.SIGTERM and syscall.SIGQUIT.
//
// The first signal of a kind cancels the context so that the caller stops
// advancing its progress bar and can finish the line cleanly. A second signal
// of the same kind exits the process straight away.
package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matt-FFFFFF/probar/internal/ctxlog"
)

// ExitCodeInterrupted is the status used when a second signal forces an exit.
const ExitCodeInterrupted = 130

var termSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
	syscall.SIGQUIT,
	os.Interrupt,
}

var exit = os.Exit

// New creates a channel subscribed to sigs, or to the termination signals if none are given.
func New(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	ch := make(chan os.Signal, 1)

	if len(sigs) == 0 {
		sigs = termSignals
	}

	ctxlog.Debug(ctx, "signalbroker", "detail", "creating signal broker", "signals", sigs)
	signal.Notify(ch, sigs...)

	return ch
}

// Stop unsubscribes ch and closes it, which ends any Watch reading from it.
func Stop(ch chan os.Signal) {
	signal.Stop(ch)
	close(ch)
}

// Watch reads signals from sigCh until it is closed.
// The first signal of a given type calls cancel; the second exits the process.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})

	for sig := range sigCh {
		if _, ok := seen[sig]; ok {
			ctxlog.Warn(ctx, "watchdog", "detail", "received second signal of type, exiting", "signal", sig.String())
			exit(ExitCodeInterrupted)

			return
		}

		ctxlog.Info(ctx, "watchdog", "detail", "received signal, stopping", "signal", sig.String())

		seen[sig] = struct{}{}

		cancel()
	}
}
