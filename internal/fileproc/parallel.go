// Package fileproc provides the concurrent, work-stealing file traversal
// the engine drives its per-file analysis with, adapted from the conc/pool
// worker pattern panbanda-omen's fileproc package uses for its own file
// processing pipeline.
package fileproc

import (
	"context"
	"runtime"
	"sync"

	"github.com/sourcegraph/conc/pool"
)

// DefaultWorkerMultiplier is the multiplier applied to NumCPU for worker
// count; 2x keeps CPU-bound parsing and IO-bound reads both saturated.
const DefaultWorkerMultiplier = 2

// MapFilesWithContext applies fn to every path concurrently, honoring
// cancellation via ctx. Results are returned keyed by path; a path whose fn
// call errors or whose context is already done by the time its goroutine
// runs is omitted from the result map and its error recorded separately.
func MapFilesWithContext[T any](ctx context.Context, files []string, fn func(context.Context, string) (T, error)) (map[string]T, map[string]error) {
	results := make(map[string]T, len(files))
	errs := make(map[string]error)
	if len(files) == 0 {
		return results, errs
	}

	var mu sync.Mutex
	maxWorkers := runtime.NumCPU() * DefaultWorkerMultiplier

	p := pool.New().WithMaxGoroutines(maxWorkers).WithContext(ctx)
	for _, path := range files {
		p.Go(func(ctx context.Context) error {
			select {
			case <-ctx.Done():
				mu.Lock()
				errs[path] = ctx.Err()
				mu.Unlock()
				return nil
			default:
			}

			result, err := fn(ctx, path)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs[path] = err
				return nil
			}
			results[path] = result
			return nil
		})
	}
	_ = p.Wait()

	return results, errs
}
