package cfr

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/kaserollinss/oracle-solver/tree"
)

// traverseChance fans recursion into a chance node's children out across
// goroutines bounded by GOMAXPROCS, mirroring the bounded worker-pool
// pattern the corpus uses for parallel Monte Carlo equity evaluation. Each
// child's traversal is a pure function of immutable (tree, storage), so
// the fan-out needs no locks; results are written into a pre-sized slice
// at the child's own index and only concatenated, in fixed child order,
// after every goroutine has returned — this is what keeps the result
// deterministic regardless of scheduling (§5).
func traverseChance(t *tree.GameTree, storage *RegretStorage, utilities UtilityMap, n *tree.Node, reachIP, reachOOP float64, iteration int) (float64, []update, error) {
	childEV := make([]float64, len(n.Children))
	childUpdates := make([][]update, len(n.Children))

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.GOMAXPROCS(0))

	for a, childID := range n.Children {
		a, childID := a, childID
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			ev, updates, err := traverse(t, storage, utilities, childID, reachIP, reachOOP, iteration)
			if err != nil {
				return err
			}
			childEV[a] = ev
			childUpdates[a] = updates
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, nil, err
	}

	sum := 0.0
	for _, ev := range childEV {
		sum += ev
	}
	v := sum / float64(len(childEV))

	var all []update
	for _, updates := range childUpdates {
		all = append(all, updates...)
	}
	return v, all, nil
}
