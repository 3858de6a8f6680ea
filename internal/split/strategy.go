// Package split implements the allocation strategies that turn a transaction
// total into per-participant shares. Each SplitMethod binds one Strategy;
// all arithmetic happens in integer cents.
package split

import (
	"fmt"

	"github.com/fkhayef/splitledger/internal/money"
	"github.com/fkhayef/splitledger/internal/participant"
)

// Method identifies the allocation algorithm for a transaction.
type Method string

const (
	MethodEqual       Method = "EQUAL"
	MethodPercentage  Method = "PERCENTAGE"
	MethodExactAmount Method = "EXACT_AMOUNT"
	MethodAdjustment  Method = "ADJUSTMENT"
	MethodShares      Method = "SHARES"
)

// RawInputs maps a participant to the method-specific text they entered:
// percentage points, an exact decimal amount, an adjustment amount, or a
// share count. Absence of a key means "no input yet" and parses as zero.
// Keys for participants no longer in the draft are ignored, not rejected.
type RawInputs map[participant.ID]string

// Strategy is the interface all allocation algorithms implement.
//
// Allocate computes each participant's share of totalCents. ordered is the
// participant set sorted by display name ascending — the fixed order used to
// hand out remainder cents — and the result has exactly one entry per id in
// it. Allocate assumes the draft already passed validation; it never fails.
type Strategy interface {
	Allocate(totalCents money.Cents, ordered []participant.ID, raw RawInputs) map[participant.ID]money.Cents

	// Method returns the method identifier for this strategy.
	Method() Method
}

// Factory creates split strategies based on the requested method.
type Factory struct{}

// NewFactory creates a new factory instance.
func NewFactory() *Factory {
	return &Factory{}
}

// Create returns the strategy implementation for the given method.
func (f *Factory) Create(method Method) (Strategy, error) {
	switch method {
	case MethodEqual:
		return &EqualStrategy{}, nil
	case MethodPercentage:
		return &PercentageStrategy{}, nil
	case MethodExactAmount:
		return &ExactAmountStrategy{}, nil
	case MethodAdjustment:
		return &AdjustmentStrategy{}, nil
	case MethodShares:
		return &SharesStrategy{}, nil
	default:
		return nil, fmt.Errorf("unknown split method: %s", method)
	}
}

// CreateFromString creates a strategy from a string method (useful when the
// method comes from persisted data).
func (f *Factory) CreateFromString(method string) (Strategy, error) {
	return f.Create(Method(method))
}
