package cfr

import (
	"fmt"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/kaserollinss/oracle-solver/tree"
)

// State names a position in the solver loop's Idle/Iterating/Checking
// state machine (§4.2). It exists mainly for logging and tests; the loop
// itself is a plain sequence of method calls, not an explicit FSM type.
type State uint8

const (
	StateIdle State = iota
	StateIterating
	StateChecking
)

func (s State) String() string {
	switch s {
	case StateIterating:
		return "iterating"
	case StateChecking:
		return "checking"
	default:
		return "idle"
	}
}

// Solver owns a tree and its regret storage, and drives sequential
// top-level iterations. Parallelism lives inside one traversal only (at
// chance nodes); run_iteration calls never overlap.
type Solver struct {
	tree      *tree.GameTree
	utilities UtilityMap
	storage   *RegretStorage
	iteration int
	clock     quartz.Clock
	startedAt time.Time
	runID     uuid.UUID
	state     State
}

// New builds a solver over an already-validated tree and terminal utility
// map, with zeroed storage and iteration 0. It uses the real wall clock;
// tests construct with NewWithClock and a quartz.Mock to exercise
// wall-clock caps deterministically.
func New(t *tree.GameTree, utilities UtilityMap) (*Solver, error) {
	return NewWithClock(t, utilities, quartz.NewReal())
}

// NewWithClock is New with an injectable clock.
func NewWithClock(t *tree.GameTree, utilities UtilityMap, clock quartz.Clock) (*Solver, error) {
	if err := t.Validate(); err != nil {
		return nil, &PreconditionError{Msg: err.Error()}
	}
	for id, n := range t.Nodes {
		if n.Kind == tree.KindTerminal {
			if _, ok := utilities[id]; !ok {
				return nil, &PreconditionError{Msg: fmt.Sprintf("terminal node %d is missing from the utility map", id)}
			}
		}
	}
	return &Solver{
		tree:      t,
		utilities: utilities,
		storage:   NewRegretStorage(t),
		clock:     clock,
		startedAt: clock.Now(),
		runID:     uuid.New(),
		state:     StateIdle,
	}, nil
}

// RunID identifies this solver instance across logs and metrics.
func (s *Solver) RunID() uuid.UUID {
	return s.runID
}

// Iteration returns the number of completed iterations.
func (s *Solver) Iteration() int {
	return s.iteration
}

// Tree returns the tree this solver runs against.
func (s *Solver) Tree() *tree.GameTree {
	return s.tree
}

// Storage returns the solver's regret storage.
func (s *Solver) Storage() *RegretStorage {
	return s.storage
}

// RunIteration performs one full CFR+ iteration: traverse from the root
// with unit reaches, then apply the collected updates sequentially. The
// state machine moves Idle -> Iterating -> Idle around the call.
func (s *Solver) RunIteration() error {
	s.state = StateIterating
	defer func() { s.state = StateIdle }()

	s.iteration++
	_, updates, err := traverse(s.tree, s.storage, s.utilities, s.tree.Root().ID, 1.0, 1.0, s.iteration)
	if err != nil {
		s.iteration--
		return err
	}
	for _, u := range updates {
		s.storage.apply(u)
	}
	return nil
}

// CurrentStrategy returns the regret-matching+ distribution at a decision
// node, as of the most recently applied iteration.
func (s *Solver) CurrentStrategy(nodeID int) []float64 {
	return s.storage.CurrentStrategy(nodeID)
}

// AverageStrategy returns the linearly-weighted average strategy at a
// decision node — the output strategy for downstream consumers.
func (s *Solver) AverageStrategy(nodeID int) []float64 {
	return s.storage.AverageStrategy(nodeID)
}

// Run drives run_iteration in a loop, stopping at whichever of three caps
// is hit first: the iteration cap, an exploitability threshold checked
// every checkEvery iterations (the Checking state), or the wall-clock cap.
// A threshold or iteration cap of 0 disables that check; a wall-clock cap
// of 0 disables the clock check. onMetrics, if non-nil, is called every
// time exploitability is computed, including the final check.
func (s *Solver) Run(maxIterations int, checkEvery int, threshold float64, wallClockCap time.Duration, onMetrics func(ConvergenceMetrics)) error {
	for maxIterations <= 0 || s.iteration < maxIterations {
		if err := s.RunIteration(); err != nil {
			return err
		}

		if wallClockCap > 0 && s.clock.Now().Sub(s.startedAt) >= wallClockCap {
			if onMetrics != nil {
				onMetrics(s.checkExploitability())
			}
			return nil
		}

		if checkEvery > 0 && s.iteration%checkEvery == 0 {
			metrics := s.checkExploitability()
			if onMetrics != nil {
				onMetrics(metrics)
			}
			if threshold > 0 && metrics.Exploitability < threshold {
				return nil
			}
		}
	}
	return nil
}

func (s *Solver) checkExploitability() ConvergenceMetrics {
	s.state = StateChecking
	defer func() { s.state = StateIdle }()
	return ComputeExploitability(s.tree, s.storage, s.utilities, s.iteration, s.clock.Now().Sub(s.startedAt), s.runID)
}
