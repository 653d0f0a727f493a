// Copyright 2026 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package worker provides the bounded worker pool the frame thread uses
// to fan out pipeline creation and barrier-matrix computation.
package worker

import (
	"runtime"
	"sync"
)

// Pool runs submitted functions on a fixed set of goroutines.
type Pool struct {
	tasks chan func()

	closeOnce sync.Once
	done      chan struct{}
}

// New creates a pool with the given number of workers. limit <= 0 uses
// GOMAXPROCS.
func New(limit int) *Pool {
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		tasks: make(chan func()),
		done:  make(chan struct{}),
	}
	for i := 0; i < limit; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for {
		select {
		case fn := <-p.tasks:
			fn()
		case <-p.done:
			return
		}
	}
}

// Submit schedules fn on the pool. It blocks while all workers are busy,
// which bounds the amount of in-flight work.
func (p *Pool) Submit(fn func()) {
	select {
	case p.tasks <- fn:
	case <-p.done:
		// Pool closed: run inline so callers never deadlock.
		fn()
	}
}

// Close stops the workers. Tasks already started run to completion;
// subsequent Submits run inline.
func (p *Pool) Close() {
	p.closeOnce.Do(func() { close(p.done) })
}

// Group tracks a batch of pool tasks so the caller can wait for the
// whole batch.
type Group struct {
	pool *Pool
	wg   sync.WaitGroup
}

// NewGroup creates a batch bound to the pool.
func (p *Pool) NewGroup() *Group {
	return &Group{pool: p}
}

// Go schedules fn as part of the batch.
func (g *Group) Go(fn func()) {
	g.wg.Add(1)
	g.pool.Submit(func() {
		defer g.wg.Done()
		fn()
	})
}

// Wait blocks until every function scheduled via Go has returned.
func (g *Group) Wait() {
	g.wg.Wait()
}
