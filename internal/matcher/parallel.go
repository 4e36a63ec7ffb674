package matcher

import (
	"context"
	"iter"

	"golang.org/x/sync/errgroup"

	"github.com/jsphpl/redirect-mapper/internal/types"
)

// result is a single evaluated source item waiting in the reorder buffer
type result struct {
	rec  types.Record
	keep bool
	err  error
}

// MatchParallel evaluates source items on the Matcher's worker pool and
// yields the records in source order. With a single worker it is identical
// to MatchContext. Breaking out of the sequence cancels outstanding work.
func (m *Matcher) MatchParallel(ctx context.Context, source []string) iter.Seq2[types.Record, error] {
	if m.workers <= 1 {
		return m.MatchContext(ctx, source)
	}

	return func(yield func(types.Record, error) bool) {
		ctx, cancel := context.WithCancel(ctx)

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(m.workers)

		// Each source item gets a one-slot future; futures are queued in
		// source order and the bounded queue caps how far workers run ahead.
		pending := make(chan chan result, m.workers*2)

		go func() {
			defer close(pending)
			for i, key := range source {
				if gctx.Err() != nil {
					return
				}
				future := make(chan result, 1)
				select {
				case pending <- future:
				case <-gctx.Done():
					return
				}
				g.Go(func() error {
					if err := gctx.Err(); err != nil {
						future <- result{err: err}
						return nil
					}
					rec, keep := m.evaluate(i, key)
					future <- result{rec: rec, keep: keep}
					return nil
				})
			}
		}()

		defer func() {
			cancel()
			for range pending {
			}
			_ = g.Wait()
		}()

		processed := 0
		for future := range pending {
			r := <-future
			if r.err != nil {
				yield(types.Record{}, r.err)
				return
			}
			processed++
			if !r.keep {
				continue
			}
			if !yield(r.rec, nil) {
				return
			}
		}

		if processed < len(source) {
			err := ctx.Err()
			if err == nil {
				err = context.Canceled
			}
			yield(types.Record{}, err)
		}
	}
}
