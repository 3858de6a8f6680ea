package split

import (
	"github.com/fkhayef/splitledger/internal/money"
	"github.com/fkhayef/splitledger/internal/participant"
)

// =============================================================================
// EXACT AMOUNT SPLIT STRATEGY
// Each participant's raw input is their share, entered as decimal currency.
// =============================================================================

// ExactAmountStrategy implements the Strategy interface for exact splits.
type ExactAmountStrategy struct{}

// Method returns the split method identifier.
func (s *ExactAmountStrategy) Method() Method {
	return MethodExactAmount
}

// Allocate converts each participant's raw text directly to cents. No
// computation happens here; the validator enforces that the entries sum to
// the transaction total.
func (s *ExactAmountStrategy) Allocate(_ money.Cents, ordered []participant.ID, raw RawInputs) map[participant.ID]money.Cents {
	shares := make(map[participant.ID]money.Cents, len(ordered))
	for _, id := range ordered {
		shares[id] = money.ParseAmount(raw[id])
	}
	return shares
}
