package recommend

import (
	"context"
	"runtime"
	"sync"

	"mingus/internal/domain/catalog"
	"mingus/internal/domain/profile"
)

// scoreAll fans the candidate postings out over a bounded worker pool. Each
// worker scores independent (profile, posting) pairs with no shared mutable
// state and the single collector below merges the results, so no locking is
// needed beyond the channels themselves. Results come back sorted into the
// deterministic order the dedupe step relies on.
func (a *Assembler) scoreAll(ctx context.Context, p profile.Profile, postings []catalog.Posting, opts Options) ([]ScoredJob, error) {
	if len(postings) == 0 {
		return nil, ctx.Err()
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(postings) {
		workers = len(postings)
	}

	in := make(chan catalog.Posting)
	out := make(chan ScoredJob, len(postings))

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := range in {
				sj, ok := a.scoreOne(p, j, opts)
				if !ok {
					continue
				}
				select {
				case out <- sj:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(in)
		for _, j := range postings {
			select {
			case in <- j:
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	close(out)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scored := make([]ScoredJob, 0, len(postings))
	for sj := range out {
		scored = append(scored, sj)
	}
	sortScored(scored)
	return scored, nil
}
