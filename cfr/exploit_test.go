package cfr

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/kaserollinss/oracle-solver/tree"
)

func TestComputeExploitabilityOnEmptyStorageIsWellDefined(t *testing.T) {
	tr, utilities := tree.DegenerateNine()
	storage := NewRegretStorage(tr)
	metrics := ComputeExploitability(tr, storage, utilities, 0, 0, uuid.New())
	assert.False(t, isNaN(metrics.Exploitability))
	assert.GreaterOrEqual(t, metrics.Exploitability, 0.0)
}

func TestComputeExploitabilityCarriesRunID(t *testing.T) {
	tr, utilities := tree.DegenerateNine()
	storage := NewRegretStorage(tr)
	id := uuid.New()
	metrics := ComputeExploitability(tr, storage, utilities, 3, 0, id)
	assert.Equal(t, id, metrics.RunID)
	assert.Equal(t, 3, metrics.Iteration)
}

func isNaN(f float64) bool {
	return f != f
}
