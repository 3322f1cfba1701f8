package parallelism

import (
	"runtime"
	"sync"
)

// SIMDWork is the interface for SIMD workloads.
type SIMDWork interface {
	// Do is invoked by SIMD worker Goroutines. It provides the index of the
	// Goroutine in the worker array and the size of the array.
	Do(index, size int) error
}

// worker is the communication state for a single worker Goroutine.
type worker struct {
	// submit is used to submit workloads. It is closed to signal termination.
	submit chan SIMDWork
	// results is used to report workload completion. It is closed once the
	// worker Goroutine has exited.
	results chan error
}

// SIMDWorkerArray encapsulates an array of worker Goroutines that can perform
// SIMD-style workloads.
type SIMDWorkerArray struct {
	// lock serializes access to the worker array.
	lock sync.Mutex
	// workers are the array's workers.
	workers []worker
	// terminated tracks whether or not the array has been terminated.
	terminated bool
}

// NewSIMDWorkerArray creates a new worker array. If size is zero or negative, a
// size corresponding to the number of system CPUs is used.
func NewSIMDWorkerArray(size int) *SIMDWorkerArray {
	// Handle the case of a default size.
	if size < 1 {
		if size = runtime.NumCPU(); size < 1 {
			panic("invalid number of CPUs")
		}
	}

	// Create the array and start its workers.
	array := &SIMDWorkerArray{workers: make([]worker, size)}
	for i := range array.workers {
		array.workers[i] = worker{
			submit:  make(chan SIMDWork),
			results: make(chan error),
		}
		go array.work(i)
	}

	// Done.
	return array
}

// Size returns the number of workers in the array.
func (a *SIMDWorkerArray) Size() int {
	return len(a.workers)
}

// work is the work loop for worker Goroutines.
func (a *SIMDWorkerArray) work(index int) {
	w := a.workers[index]
	for work := range w.submit {
		w.results <- work.Do(index, len(a.workers))
	}
	close(w.results)
}

// Do performs SIMD-style work with the array, blocking until every worker has
// completed its share. This method is safe for concurrent invocation (though
// workloads will be serialized), but it must not be called concurrently with
// or after Terminate. It returns the first non-nil error by worker index.
func (a *SIMDWorkerArray) Do(work SIMDWork) error {
	a.lock.Lock()
	defer a.lock.Unlock()

	if a.terminated {
		panic("work submitted to terminated array")
	}

	for _, w := range a.workers {
		w.submit <- work
	}

	var firstErr error
	for _, w := range a.workers {
		if err := <-w.results; err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Terminate terminates the array's workers and waits for them to exit.
func (a *SIMDWorkerArray) Terminate() {
	a.lock.Lock()
	defer a.lock.Unlock()

	for _, w := range a.workers {
		close(w.submit)
		<-w.results
	}
	a.terminated = true
}
