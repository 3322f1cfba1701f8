package main

import (
	"runtime"

	"github.com/mutagen-io/winstat/pkg/parallelism"
	"github.com/mutagen-io/winstat/pkg/stat"
)

// queryResult is the outcome of a status query for a single path.
type queryResult struct {
	// status is the resulting status, if the query succeeded.
	status *stat.Status
	// err is the query error, if any.
	err error
}

// statter is the interface used to perform status queries. It is satisfied by
// *stat.Statter.
type statter interface {
	Stat(path string) (*stat.Status, error)
}

// query performs status queries for paths concurrently using up to
// concurrency workers (or one per CPU if concurrency is 0). Results are
// returned in the order of paths.
func query(s statter, paths []string, concurrency int) []queryResult {
	results := make([]queryResult, len(paths))
	if len(paths) == 0 {
		return results
	}

	// Size the worker array, avoiding idle workers.
	if concurrency < 1 {
		concurrency = runtime.NumCPU()
	}
	if concurrency > len(paths) {
		concurrency = len(paths)
	}
	workers := parallelism.NewSIMDWorkerArray(concurrency)
	defer workers.Terminate()

	// Perform the queries. Each result slot is written by exactly one worker,
	// so failures are recorded rather than returned.
	workers.Do(&parallelism.Striped{
		Count: len(paths),
		Process: func(item int) error {
			results[item].status, results[item].err = s.Stat(paths[item])
			return nil
		},
	})

	return results
}
