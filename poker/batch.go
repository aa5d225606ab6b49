package poker

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EvaluateBatch evaluates many (board, hole) pairs concurrently, fanning
// the work out across GOMAXPROCS workers. boards and holes must be the
// same length; a mismatch is a PreconditionError rather than a panic,
// since batch callers are expected to check errors rather than trust their
// own bookkeeping.
func EvaluateBatch(boards [][5]Card, holes [][2]Card) ([]HandRank, error) {
	if len(boards) != len(holes) {
		return nil, &PreconditionError{Msg: fmt.Sprintf("evaluate batch: %d boards but %d hole pairs", len(boards), len(holes))}
	}

	results := make([]HandRank, len(boards))
	if len(boards) == 0 {
		return results, nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(boards) {
		workers = len(boards)
	}

	g, _ := errgroup.WithContext(context.Background())
	chunk := (len(boards) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= len(boards) {
			break
		}
		end := start + chunk
		if end > len(boards) {
			end = len(boards)
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				results[i] = Evaluate(boards[i], holes[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
