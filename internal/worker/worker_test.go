// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

package worker

import (
	"sync/atomic"
	"testing"
)

// TestGroupWaits tests that Wait blocks until every task ran.
func TestGroupWaits(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var count atomic.Int32
	g := pool.NewGroup()
	for i := 0; i < 64; i++ {
		g.Go(func() { count.Add(1) })
	}
	g.Wait()

	if got := count.Load(); got != 64 {
		t.Errorf("completed tasks = %d, want 64", got)
	}
}

// TestSubmitAfterClose tests that a closed pool still runs the task
// instead of deadlocking.
func TestSubmitAfterClose(t *testing.T) {
	pool := New(1)
	pool.Close()

	done := make(chan struct{})
	pool.Submit(func() { close(done) })
	<-done
}

// TestZeroLimitDefaults tests the GOMAXPROCS fallback.
func TestZeroLimitDefaults(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	done := make(chan struct{})
	pool.Submit(func() { close(done) })
	<-done
}
