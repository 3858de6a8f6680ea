package split

import (
	"github.com/fkhayef/splitledger/internal/money"
	"github.com/fkhayef/splitledger/internal/participant"
)

// =============================================================================
// ADJUSTMENT SPLIT STRATEGY
// Everyone gets an equal base share of what remains after the signed
// per-person adjustments are set aside, then their own adjustment on top.
// =============================================================================

// AdjustmentStrategy implements the Strategy interface for adjustment splits.
type AdjustmentStrategy struct{}

// Method returns the split method identifier.
func (s *AdjustmentStrategy) Method() Method {
	return MethodAdjustment
}

// Allocate sums the raw adjustments (which may be negative), splits the
// remaining total equally with the same remainder rule as the Equal
// strategy, and adds each participant's adjustment back to their base. The
// shares sum to totalCents exactly by construction.
func (s *AdjustmentStrategy) Allocate(totalCents money.Cents, ordered []participant.ID, raw RawInputs) map[participant.ID]money.Cents {
	adjustments := make(map[participant.ID]money.Cents, len(ordered))
	var adjTotal money.Cents
	for _, id := range ordered {
		adj := money.ParseAmount(raw[id])
		adjustments[id] = adj
		adjTotal += adj
	}

	shares := equalShares(totalCents-adjTotal, ordered)
	for _, id := range ordered {
		shares[id] += adjustments[id]
	}
	return shares
}
