package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// =============================================================================
// WorkerPool Creation Tests
// =============================================================================

func TestWorkerPool_Create(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestWorkerPool_CreateDefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -5} {
		pool := NewWorkerPool(n)
		if got, want := pool.Workers(), runtime.GOMAXPROCS(0); got != want {
			t.Errorf("NewWorkerPool(%d).Workers() = %d, want %d (GOMAXPROCS)", n, got, want)
		}
		pool.Close()
	}
}

// =============================================================================
// Execution Tests
// =============================================================================

func TestWorkerPool_ExecuteAll(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int32
	work := make([]func(), 100)
	for i := range work {
		work[i] = func() { counter.Add(1) }
	}

	pool.ExecuteAll(work)

	if got := counter.Load(); got != 100 {
		t.Errorf("counter = %d, want 100", got)
	}
}

func TestWorkerPool_ExecuteAll_DisjointWrites(t *testing.T) {
	pool := NewWorkerPool(3)
	defer pool.Close()

	rows := make([]int, 1000)
	bands := SplitRows(len(rows), 4, 16)
	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() {
			for y := b.Y0; y < b.Y1; y++ {
				rows[y] = y * 2
			}
		}
	}

	pool.ExecuteAll(work)

	for y, v := range rows {
		if v != y*2 {
			t.Fatalf("rows[%d] = %d, want %d", y, v, y*2)
		}
	}
}

func TestWorkerPool_ExecuteAll_EmptyAndNil(t *testing.T) {
	pool := NewWorkerPool(2)
	defer pool.Close()

	pool.ExecuteAll(nil)
	pool.ExecuteAll([]func(){})

	var ran atomic.Bool
	pool.ExecuteAll([]func(){nil, func() { ran.Store(true) }, nil})
	if !ran.Load() {
		t.Error("non-nil work item did not run")
	}
}

func TestWorkerPool_ExecuteAllAfterCloseRunsInline(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Close()

	var counter atomic.Int32
	pool.ExecuteAll([]func(){
		func() { counter.Add(1) },
		func() { counter.Add(1) },
	})

	if got := counter.Load(); got != 2 {
		t.Errorf("counter = %d, want 2", got)
	}
}

// =============================================================================
// Lifecycle Tests
// =============================================================================

func TestWorkerPool_CloseIdempotent(t *testing.T) {
	pool := NewWorkerPool(2)

	pool.Close()
	pool.Close()

	if pool.IsRunning() {
		t.Error("Pool should not be running after Close")
	}
}

func TestWorkerPool_Concurrent(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	var counter atomic.Int64
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			work := make([]func(), 50)
			for i := range work {
				work[i] = func() { counter.Add(1) }
			}
			pool.ExecuteAll(work)
		}()
	}
	wg.Wait()

	if got := counter.Load(); got != 400 {
		t.Errorf("counter = %d, want 400", got)
	}
}

func TestWorkerPool_SlowJobsDoNotBlockOthers(t *testing.T) {
	pool := NewWorkerPool(4)
	defer pool.Close()

	// Every fourth item is slow; the rest still complete.
	var counter atomic.Int32
	work := make([]func(), 16)
	for i := range work {
		if i%4 == 0 {
			work[i] = func() {
				time.Sleep(5 * time.Millisecond)
				counter.Add(1)
			}
		} else {
			work[i] = func() { counter.Add(1) }
		}
	}

	pool.ExecuteAll(work)

	if got := counter.Load(); got != 16 {
		t.Errorf("counter = %d, want 16", got)
	}
}

func TestWorkerPool_CloseWhileExecuting(t *testing.T) {
	pool := NewWorkerPool(2)

	started := make(chan struct{})
	var counter atomic.Int32
	done := make(chan struct{})
	go func() {
		defer close(done)
		work := make([]func(), 20)
		for i := range work {
			work[i] = func() {
				if i == 0 {
					close(started)
				}
				time.Sleep(time.Millisecond)
				counter.Add(1)
			}
		}
		pool.ExecuteAll(work)
	}()

	<-started
	pool.Close()
	<-done

	if got := counter.Load(); got != 20 {
		t.Errorf("counter = %d, want 20", got)
	}
}

func TestWorkerPool_NoGoroutineLeak(t *testing.T) {
	before := runtime.NumGoroutine()

	for range 10 {
		pool := NewWorkerPool(4)
		pool.ExecuteAll([]func(){func() {}})
		pool.Close()
	}

	// Give exiting goroutines a moment to be reaped.
	deadline := time.Now().Add(time.Second)
	for runtime.NumGoroutine() > before && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if after := runtime.NumGoroutine(); after > before {
		t.Errorf("goroutines: before=%d after=%d", before, after)
	}
}
