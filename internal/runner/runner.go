package runner

import (
	"sync"

	"github.com/panjf2000/ants/v2"
)

// Result is the outcome of processing one file.
type Result struct {
	Path string
	Err  error
}

// Run applies fn to every path on a fixed-size worker pool and returns one
// Result per path, in input order. fn receives the position of the path in
// the input slice. Each invocation must be self-contained: parses share
// nothing, so files can be processed concurrently.
func Run(paths []string, workers int, fn func(i int, path string) error) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	results := make([]Result, len(paths))
	var wg sync.WaitGroup
	for i, path := range paths {
		i, path := i, path
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			results[i] = Result{Path: path, Err: fn(i, path)}
		}); err != nil {
			wg.Done()
			results[i] = Result{Path: path, Err: err}
		}
	}
	wg.Wait()
	return results, nil
}
