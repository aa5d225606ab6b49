package cfr

import "github.com/kaserollinss/oracle-solver/tree"

// nodeRegret holds one decision node's cumulative regret and cumulative
// (linearly-weighted) strategy-sum rows. Width is the node's action count;
// Chance and Terminal nodes get a zero-width entry.
type nodeRegret struct {
	regret      []float64
	strategySum []float64
}

// RegretStorage is the two ragged arrays §3 specifies, indexed by node id.
// It is created once from a tree's action widths, zero-initialized, and
// mutated only by Solver's apply phase between traversals — traversal
// itself only reads it, which is what makes chance-node fan-out safe
// without locks (§5).
type RegretStorage struct {
	nodes []nodeRegret
}

// NewRegretStorage builds zero-initialized storage sized to t.
func NewRegretStorage(t *tree.GameTree) *RegretStorage {
	nodes := make([]nodeRegret, t.Len())
	for i := 0; i < t.Len(); i++ {
		w := t.ActionWidth(i)
		if w == 0 {
			continue
		}
		nodes[i] = nodeRegret{regret: make([]float64, w), strategySum: make([]float64, w)}
	}
	return &RegretStorage{nodes: nodes}
}

// CurrentStrategy is regret-matching+: positive regrets normalized, or
// uniform when none are positive.
func (s *RegretStorage) CurrentStrategy(id int) []float64 {
	regret := s.nodes[id].regret
	strat := make([]float64, len(regret))
	total := 0.0
	for i, r := range regret {
		if r > 0 {
			strat[i] = r
			total += r
		}
	}
	if total <= 0 {
		uniform(strat)
		return strat
	}
	for i := range strat {
		strat[i] /= total
	}
	return strat
}

// AverageStrategy normalizes the cumulative strategy-sum row, or returns
// uniform if nothing has accumulated yet (e.g. before any iteration runs).
func (s *RegretStorage) AverageStrategy(id int) []float64 {
	sum := s.nodes[id].strategySum
	strat := make([]float64, len(sum))
	total := 0.0
	for _, v := range sum {
		total += v
	}
	if total <= 0 {
		uniform(strat)
		return strat
	}
	for i, v := range sum {
		strat[i] = v / total
	}
	return strat
}

// Regrets exposes node id's raw cumulative regret row, for tests checking
// the non-negativity invariant.
func (s *RegretStorage) Regrets(id int) []float64 {
	return s.nodes[id].regret
}

// apply performs the CFR+ update for a single collected record: floor the
// post-sum regret at zero, and add the iteration-weighted current
// strategy into the running strategy sum. Called only from the driver's
// sequential apply phase, never during traversal.
func (s *RegretStorage) apply(u update) {
	n := &s.nodes[u.nodeID]
	for a := range u.cf {
		n.regret[a] = max(n.regret[a]+u.cf[a], 0)
		n.strategySum[a] += u.weight * u.sigma[a]
	}
}

func uniform(strat []float64) {
	if len(strat) == 0 {
		return
	}
	v := 1.0 / float64(len(strat))
	for i := range strat {
		strat[i] = v
	}
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
