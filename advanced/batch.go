package advanced

import (
	"context"
	"runtime"
	"sync"

	"github.com/pkg/errors"
)

// BatchResult is the outcome for one footprint of ComputeBatch.
type BatchResult struct {
	Skeleton *Skeleton
	Err      error
}

// ComputeBatch computes the skeletons of many independent footprints on up to
// `workers` goroutines (GOMAXPROCS when workers <= 0). Results line up with
// footprints. A failing footprint, even one that panics, only fails its own
// result. Footprints not yet started when ctx is cancelled get ctx's error.
func ComputeBatch(ctx context.Context, footprints [][]Contour, workers int, opts Options) []BatchResult {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]BatchResult, len(footprints))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = computeIsolated(footprints[i], opts)
			}
		}()
	}

	for i := range footprints {
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		select {
		case jobs <- i:
		case <-ctx.Done():
			results[i].Err = ctx.Err()
		}
	}
	close(jobs)
	wg.Wait()
	return results
}

func computeIsolated(contours []Contour, opts Options) (result BatchResult) {
	defer func() {
		if r := recover(); r != nil {
			result = BatchResult{Err: errors.Errorf("skeleton computation panicked: %v", r)}
		}
	}()
	sk, err := Compute(contours, opts)
	return BatchResult{Skeleton: sk, Err: err}
}
