// Package batch fetches the details of many issues with a bounded pool of
// workers, keeping results in listing order.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/brogergvhs/comicrev/internal/roundup"
)

type DetailSource interface {
	Details(ctx context.Context, url string) (roundup.ComicInfo, error)
}

// Progress receives counters after every finished issue.
type Progress interface {
	Update(done, failed, total int)
	MarkDone()
}

type Failure struct {
	URL string
	Err error
}

type Result struct {
	// Details holds the successful issues in the order of the input URLs.
	Details  []roundup.ComicInfo
	Failures []Failure
}

type Runner struct {
	src        DetailSource
	workers    int
	skipBroken bool
	log        *slog.Logger
}

func New(src DetailSource, workers int, skipBroken bool, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{src: src, workers: workers, skipBroken: skipBroken, log: log}
}

type runState struct {
	mu     sync.Mutex
	done   int
	failed int
	total  int
}

func (r *Runner) Run(ctx context.Context, urls []string, ph Progress) (Result, error) {
	if ph == nil {
		ph = noProgress{}
	}

	total := len(urls)
	maxParallel := r.workers
	if maxParallel < 1 {
		maxParallel = 1
	}
	if maxParallel > total && total > 0 {
		maxParallel = total
	}

	st := &runState{total: total}
	ph.Update(0, 0, total)

	slots := make([]slot, total)

	jobs := make(chan int)
	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		for i := range jobs {
			info, err := r.src.Details(ctx, urls[i])

			st.mu.Lock()
			slots[i] = slot{info: info, err: err, finished: true}
			if err != nil {
				r.log.ErrorContext(ctx, "issue failed", "url", urls[i], "err", err)
				st.failed++
			}
			st.done++
			ph.Update(st.done, st.failed, st.total)
			st.mu.Unlock()
		}
	}

	wg.Add(maxParallel)
	for w := 0; w < maxParallel; w++ {
		go worker()
	}

	cancelled := false
	for i := range urls {
		if ctx.Err() != nil {
			cancelled = true
			break
		}
		select {
		case <-ctx.Done():
			cancelled = true
		case jobs <- i:
		}
		if cancelled {
			break
		}
	}

	close(jobs)
	wg.Wait()
	ph.MarkDone()

	res := collect(urls, slots)
	if cancelled {
		return res, ctx.Err()
	}

	if len(res.Failures) > 0 && !r.skipBroken {
		return res, fmt.Errorf("failed %d/%d issues (use --skip-broken to continue)", len(res.Failures), total)
	}

	return res, nil
}

type slot struct {
	info     roundup.ComicInfo
	err      error
	finished bool
}

// collect skips slots that were never handed to a worker.
func collect(urls []string, slots []slot) Result {
	res := Result{Details: make([]roundup.ComicInfo, 0, len(slots))}
	for i, s := range slots {
		switch {
		case !s.finished:
		case s.err != nil:
			res.Failures = append(res.Failures, Failure{URL: urls[i], Err: s.err})
		default:
			res.Details = append(res.Details, s.info)
		}
	}
	return res
}

type noProgress struct{}

func (noProgress) Update(int, int, int) {}
func (noProgress) MarkDone()            {}
