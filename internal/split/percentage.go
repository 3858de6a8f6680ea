package split

import (
	"math"

	"github.com/fkhayef/splitledger/internal/money"
	"github.com/fkhayef/splitledger/internal/participant"
)

// =============================================================================
// PERCENTAGE SPLIT STRATEGY
// Each participant owes a specified percentage of the total.
// =============================================================================

// PercentageStrategy implements the Strategy interface for percentage splits.
type PercentageStrategy struct{}

// Method returns the split method identifier.
func (s *PercentageStrategy) Method() Method {
	return MethodPercentage
}

// Allocate computes round(totalCents * p / 100) per participant. There is no
// remainder redistribution: when the entered percentages do not sum to 100
// the shares legitimately miss the total, and the validator is what surfaces
// that gap to the user.
func (s *PercentageStrategy) Allocate(totalCents money.Cents, ordered []participant.ID, raw RawInputs) map[participant.ID]money.Cents {
	shares := make(map[participant.ID]money.Cents, len(ordered))
	for _, id := range ordered {
		p := money.ParseNumber(raw[id])
		shares[id] = money.Cents(math.Round(float64(totalCents) * p / 100))
	}
	return shares
}
