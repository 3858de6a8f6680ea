package split

import (
	"math"

	"github.com/fkhayef/splitledger/internal/money"
	"github.com/fkhayef/splitledger/internal/participant"
)

// =============================================================================
// SHARES SPLIT STRATEGY
// Each participant owes a fraction of the total proportional to their share
// count.
// =============================================================================

// SharesStrategy implements the Strategy interface for share-count splits.
type SharesStrategy struct{}

// Method returns the split method identifier.
func (s *SharesStrategy) Method() Method {
	return MethodShares
}

// Allocate computes round(totalCents * shares_i / totalShares) per
// participant. Each share is rounded independently, so the sum can miss
// totalCents by a cent or two as the participant count grows; that drift is
// an accepted tolerance of this method, not corrected here.
func (s *SharesStrategy) Allocate(totalCents money.Cents, ordered []participant.ID, raw RawInputs) map[participant.ID]money.Cents {
	shares := make(map[participant.ID]money.Cents, len(ordered))

	counts := make(map[participant.ID]float64, len(ordered))
	var totalShares float64
	for _, id := range ordered {
		c := money.ParseNumber(raw[id])
		counts[id] = c
		totalShares += c
	}

	if totalShares == 0 {
		for _, id := range ordered {
			shares[id] = 0
		}
		return shares
	}

	for _, id := range ordered {
		shares[id] = money.Cents(math.Round(float64(totalCents) * counts[id] / totalShares))
	}
	return shares
}
