package cfr

// PreconditionError reports a violated precondition at the solver's API
// boundary: an invalid node id, a tree that fails its own structural
// invariants, or a terminal reachable from the root with no entry in the
// supplied utility map. These are programmer errors the caller is
// responsible for, not recoverable failures.
type PreconditionError struct {
	Msg string
}

func (e *PreconditionError) Error() string {
	return "cfr: precondition violation: " + e.Msg
}
