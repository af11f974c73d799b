// Package parallel runs independent render jobs on a fixed set of goroutines.
//
// Jobs handed to a WorkerPool must not write to overlapping memory. The
// canvas helpers in this package split work into disjoint row bands so the
// result never depends on scheduling.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines for parallel rendering.
//
// All workers pull from one shared queue, so an idle worker always picks up
// the next band regardless of how long the others take.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int
	jobs    chan func()
	wg      sync.WaitGroup

	mu      sync.RWMutex // guards closing jobs against in-flight sends
	running atomic.Bool
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers: workers,
		jobs:    make(chan func(), max(workers*4, 8)),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				job()
			}
		}()
	}

	return p
}

// ExecuteAll runs every non-nil item of work and waits for all of them.
//
// If the pool is closed, the work runs on the calling goroutine instead, so
// ExecuteAll never returns with work left undone.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.running.Load() {
		for _, fn := range work {
			if fn != nil {
				fn()
			}
		}
		return
	}

	var completion sync.WaitGroup
	for _, fn := range work {
		if fn == nil {
			continue
		}
		completion.Add(1)
		p.jobs <- func() {
			defer completion.Done()
			fn()
		}
	}
	completion.Wait()
}

// Close waits for queued work to finish and stops all workers.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.jobs)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
