package transaction

import (
	"math"

	"github.com/fkhayef/splitledger/internal/money"
	"github.com/fkhayef/splitledger/internal/split"
)

// percentTolerance is how far the entered percentages may drift from 100.0
// before the draft is rejected.
const percentTolerance = 0.1

// Validate decides whether a draft can be finalized. Rules run in a fixed
// order and the first failing rule wins, so the caller always gets a single
// specific reason. It is pure and cheap enough to run on every draft
// mutation to drive a live validity message; Finalize runs it once more,
// authoritatively.
//
// A nil return means the draft is valid. Title emptiness is owned by the
// caller and deliberately not checked here.
func Validate(d *Draft) error {
	if d.TotalAmount <= 0 {
		return ErrNonPositiveAmount
	}
	if len(d.Participants) == 0 {
		return ErrEmptyParticipants
	}
	if err := validatePayers(d); err != nil {
		return err
	}
	return validateMethod(d)
}

// validatePayers checks the multi-payer balance rule. With zero or one payer
// the contribution is auto-assigned, so only the multi-payer case can be
// unbalanced.
func validatePayers(d *Draft) error {
	if len(d.Payers) <= 1 {
		return nil
	}
	var sum money.Cents
	for id := range d.Payers {
		sum += money.ParseAmount(d.PayerRawAmounts[id])
	}
	if !money.WithinOneCent(sum, d.TotalAmount) {
		return ErrPayersUnbalanced
	}
	return nil
}

// validateMethod applies the method-specific rule over the raw inputs of the
// current participants. Stale entries for removed participants never count.
func validateMethod(d *Draft) error {
	switch d.Method {
	case split.MethodPercentage:
		var sum float64
		for id := range d.Participants {
			sum += money.ParseNumber(d.RawInputs[id])
		}
		if math.Abs(sum-100) > percentTolerance {
			return ErrPercentageMismatch
		}

	case split.MethodExactAmount:
		var sum money.Cents
		for id := range d.Participants {
			sum += money.ParseAmount(d.RawInputs[id])
		}
		if !money.WithinOneCent(sum, d.TotalAmount) {
			return ErrAmountMismatch
		}

	case split.MethodAdjustment:
		var sum money.Cents
		for id := range d.Participants {
			sum += money.ParseAmount(d.RawInputs[id])
		}
		if sum > d.TotalAmount {
			return ErrAdjustmentsExceedTotal
		}

	case split.MethodShares:
		var sum float64
		for id := range d.Participants {
			sum += money.ParseNumber(d.RawInputs[id])
		}
		if sum <= 0 {
			return ErrNoShares
		}
	}

	// Equal needs no per-participant input and is always valid here.
	return nil
}
