package locpack

import (
	"context"
	"errors"
	"sync"
)

// ConvertFiles converts every path with ConvertFile using a bounded worker
// pool. A failing file does not stop the others. Results are returned in
// input order, each with its own Err. The returned error joins all per-file
// errors and is nil when every file converted.
//
// Cancelling ctx stops new files from starting; files not yet started get
// ctx.Err() as their result.
func ConvertFiles(ctx context.Context, paths []string, opts *Options) ([]Result, error) {
	results := make([]Result, len(paths))
	if len(paths) == 0 {
		return results, nil
	}

	numWorkers := opts.PoolSize(len(paths))
	jobs := make(chan int, numWorkers*2)
	onResult := opts.onResult()

	var (
		wg sync.WaitGroup
		mu sync.Mutex // serializes onResult
	)
	for range numWorkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				var res Result
				if err := ctx.Err(); err != nil {
					res = Result{Input: paths[i], Err: err}
				} else {
					res, _ = ConvertFile(paths[i], opts)
				}
				results[i] = res
				if onResult != nil {
					mu.Lock()
					onResult(res)
					mu.Unlock()
				}
			}
		}()
	}

feed:
	for i := range paths {
		select {
		case jobs <- i:
		case <-ctx.Done():
			for j := i; j < len(paths); j++ {
				results[j] = Result{Input: paths[j], Err: ctx.Err()}
			}
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	var errs []error
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
	}
	return results, errors.Join(errs...)
}
