package fillborders

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gogpu/fillborders/internal/parallel"
	"github.com/gogpu/fillborders/plane"
)

// ProcessAll processes src[i] into dst[i] for every i on a pool of workers
// (GOMAXPROCS when workers <= 0). Frames without a TraceID get one, so
// log records of one frame can be correlated. All frames are attempted;
// the returned error joins the failures in frame order.
func (f *Filter[T]) ProcessAll(src, dst []*plane.Frame[T], workers int) error {
	if len(src) != len(dst) {
		return fmt.Errorf("%w: %d sources, %d destinations", ErrFrameMismatch, len(src), len(dst))
	}
	if len(src) == 0 {
		return nil
	}

	pool := parallel.NewWorkerPool(min(workers, len(src)))
	defer pool.Close()

	logger := Logger()
	jobs := make([]parallel.Job, len(src))
	for i := range src {
		if src[i] != nil && src[i].TraceID == "" {
			src[i].TraceID = uuid.NewString()
		}
		jobs[i] = func() error {
			if err := f.Process(src[i], dst[i]); err != nil {
				id := ""
				if src[i] != nil {
					id = src[i].TraceID
				}
				return fmt.Errorf("frame %d (%s): %w", i, id, err)
			}
			return nil
		}
	}

	start := time.Now()
	logger.Info("fillborders: batch started",
		"frames", len(src), "workers", pool.Workers(), "mode", f.mode)
	err := pool.Run(jobs)
	logger.Info("fillborders: batch finished",
		"frames", len(src), "elapsed", time.Since(start), "failed", err != nil)
	return err
}
