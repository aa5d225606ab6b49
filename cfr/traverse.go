package cfr

import (
	"fmt"

	"github.com/kaserollinss/oracle-solver/tree"
)

// update is one per-infoset record produced by traverse: the counterfactual
// regret contribution, the current strategy it was computed against, and
// the iteration weight to apply to the strategy-sum accumulation. The
// driver applies a batch of these sequentially after traversal completes;
// traverse itself never touches RegretStorage's mutable rows.
type update struct {
	nodeID int
	cf     []float64
	sigma  []float64
	weight float64
}

// UtilityMap supplies the IP-perspective expected utility for every
// terminal node id reachable in the tree. A missing entry for a reachable
// terminal is a precondition violation (§6).
type UtilityMap map[int]float64

// traverse implements §4.2's traversal contract: given the node to start
// from and both players' reach probabilities into it, return the subgame
// expected value from IP's perspective and the updates collected along the
// way. It is a pure function of (t, storage, utilities) — storage is read
// only, which is what lets traverseChance (parallel.go) fan the
// recursion out across chance-node children with no shared mutable state.
func traverse(t *tree.GameTree, storage *RegretStorage, utilities UtilityMap, nodeID int, reachIP, reachOOP float64, iteration int) (float64, []update, error) {
	n := t.Node(nodeID)
	switch n.Kind {
	case tree.KindTerminal:
		ev, ok := utilities[nodeID]
		if !ok {
			return 0, nil, &PreconditionError{Msg: fmt.Sprintf("terminal node %d has no entry in the utility map", nodeID)}
		}
		return ev, nil, nil

	case tree.KindChance:
		return traverseChance(t, storage, utilities, n, reachIP, reachOOP, iteration)

	case tree.KindDecision:
		return traverseDecision(t, storage, utilities, n, reachIP, reachOOP, iteration)
	}
	return 0, nil, &PreconditionError{Msg: fmt.Sprintf("node %d has unknown kind %d", nodeID, n.Kind)}
}

func traverseDecision(t *tree.GameTree, storage *RegretStorage, utilities UtilityMap, n *tree.Node, reachIP, reachOOP float64, iteration int) (float64, []update, error) {
	sigma := storage.CurrentStrategy(n.ID)
	childEV := make([]float64, len(n.Children))
	var allUpdates []update

	for a, childID := range n.Children {
		childReachIP, childReachOOP := reachIP, reachOOP
		if n.Actor == tree.IP {
			childReachIP *= sigma[a]
		} else {
			childReachOOP *= sigma[a]
		}
		ev, updates, err := traverse(t, storage, utilities, childID, childReachIP, childReachOOP, iteration)
		if err != nil {
			return 0, nil, err
		}
		childEV[a] = ev
		allUpdates = append(allUpdates, updates...)
	}

	v := 0.0
	for a, ev := range childEV {
		v += sigma[a] * ev
	}

	cf := make([]float64, len(n.Children))
	for a, ev := range childEV {
		if n.Actor == tree.IP {
			cf[a] = reachOOP * (ev - v)
		} else {
			cf[a] = reachIP * (v - ev)
		}
	}

	// Own record first, then each child's updates in child order: this is
	// the pre-order traversal order of decision nodes §5 fixes as the
	// canonical apply order for deterministic floating-point summation.
	rec := update{nodeID: n.ID, cf: cf, sigma: sigma, weight: float64(iteration)}
	return v, append([]update{rec}, allUpdates...), nil
}
