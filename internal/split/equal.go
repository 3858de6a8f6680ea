package split

import (
	"github.com/fkhayef/splitledger/internal/money"
	"github.com/fkhayef/splitledger/internal/participant"
)

// =============================================================================
// EQUAL SPLIT STRATEGY
// Divides the total evenly; remainder cents go to the first participants in
// display-name order, one each.
// =============================================================================

// EqualStrategy implements the Strategy interface for equal splits.
type EqualStrategy struct{}

// Method returns the split method identifier.
func (s *EqualStrategy) Method() Method {
	return MethodEqual
}

// Allocate divides totalCents evenly among all participants. With n
// participants, base = total/n and the first total%n participants in order
// receive base+1, so the shares always sum to totalCents exactly.
func (s *EqualStrategy) Allocate(totalCents money.Cents, ordered []participant.ID, _ RawInputs) map[participant.ID]money.Cents {
	return equalShares(totalCents, ordered)
}

// equalShares is the remainder-distributing division shared by the Equal and
// Adjustment strategies.
func equalShares(totalCents money.Cents, ordered []participant.ID) map[participant.ID]money.Cents {
	shares := make(map[participant.ID]money.Cents, len(ordered))
	n := int64(len(ordered))
	if n == 0 {
		return shares
	}

	base := int64(totalCents) / n
	remainder := int64(totalCents) % n

	for i, id := range ordered {
		amount := base
		if int64(i) < remainder {
			amount++
		}
		shares[id] = money.Cents(amount)
	}

	return shares
}
