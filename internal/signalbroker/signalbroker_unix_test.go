// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build unix

package signalbroker

import (
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewAndStop(t *testing.T) {
	ctx, cancel := quietContext()
	defer cancel()

	ch := New(ctx, syscall.SIGUSR1)
	require.NotNil(t, ch)

	wg := startWatch(ctx, ch, cancel)

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGUSR1))

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context should be cancelled after SIGUSR1")
	}

	Stop(ch)
	wg.Wait()
}
