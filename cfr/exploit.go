package cfr

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/kaserollinss/oracle-solver/tree"
)

// ConvergenceMetrics is the record §4.3 specifies for a single
// exploitability check, tagged with the solver run that produced it so
// concurrent runs can be told apart in logs.
type ConvergenceMetrics struct {
	Iteration      int
	ElapsedTime    time.Duration
	Exploitability float64
	IPBRValue      float64
	OOPBRValue     float64
	RunID          uuid.UUID
}

// ComputeExploitability runs one best-response walk per responder over the
// opponent's average strategy. Both walks return values expressed in IP's
// perspective (see bestResponseValue), so OOP's best-response value is the
// *minimum* attainable IP-perspective value — reporting exploitability as
// ipBR + oopBR would add two numbers in the same sign convention instead of
// measuring the gap between them. At Nash both walks converge to the same
// game value v*, so ipBR - oopBR -> 0, and away from Nash ipBR >= oopBR
// always (IP's best response can only do at least as well as OOP's worst
// case for IP), giving a non-negative scalar as required. Empty storage (no
// iterations run) is legal: AverageStrategy falls back to uniform, so the
// walk still produces a well-defined, if far from optimal, value.
func ComputeExploitability(t *tree.GameTree, storage *RegretStorage, utilities UtilityMap, iteration int, elapsed time.Duration, runID uuid.UUID) ConvergenceMetrics {
	ipBR := bestResponseValue(t, storage, utilities, tree.IP)
	oopBR := bestResponseValue(t, storage, utilities, tree.OOP)
	return ConvergenceMetrics{
		Iteration:      iteration,
		ElapsedTime:    elapsed,
		Exploitability: ipBR - oopBR,
		IPBRValue:      ipBR,
		OOPBRValue:     oopBR,
		RunID:          runID,
	}
}

// bestResponseValue walks the whole tree once, with responder playing the
// pure best action at their own decisions and the opponent playing their
// average strategy everywhere else. The walk is expressed from IP's
// perspective throughout (matching every other value in this package);
// when responder is OOP, the max/min at the responder's own decisions
// flips to a min, since OOP wants to minimize the IP-perspective value.
func bestResponseValue(t *tree.GameTree, storage *RegretStorage, utilities UtilityMap, responder tree.Player) float64 {
	memo := make(map[int]float64, t.Len())
	var walk func(nodeID int) float64
	walk = func(nodeID int) float64 {
		if v, ok := memo[nodeID]; ok {
			return v
		}
		n := t.Node(nodeID)
		var v float64
		switch n.Kind {
		case tree.KindTerminal:
			v = utilities[nodeID]

		case tree.KindChance:
			sum := 0.0
			for _, c := range n.Children {
				sum += walk(c)
			}
			v = sum / float64(len(n.Children))

		case tree.KindDecision:
			if n.Actor == responder {
				best := negativeInfinityFor(responder)
				for _, c := range n.Children {
					child := walk(c)
					if betterForResponder(child, best, responder) {
						best = child
					}
				}
				v = best
			} else {
				sigma := storage.AverageStrategy(n.ID)
				sum := 0.0
				for a, c := range n.Children {
					sum += sigma[a] * walk(c)
				}
				v = sum
			}
		}
		memo[nodeID] = v
		return v
	}
	return walk(t.Root().ID)
}

func negativeInfinityFor(responder tree.Player) float64 {
	if responder == tree.IP {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

func betterForResponder(candidate, best float64, responder tree.Player) bool {
	if responder == tree.IP {
		return candidate > best
	}
	return candidate < best
}
