package transaction

import (
	"github.com/shopspring/decimal"

	"github.com/fkhayef/splitledger/internal/money"
	"github.com/fkhayef/splitledger/internal/participant"
	"github.com/fkhayef/splitledger/internal/split"
)

// DraftFromLedger reconstructs a re-editable draft from a persisted ledger,
// the inverse of Engine.Finalize for the non-equal methods.
//
// For Percentage, Shares and Adjustment the stored raw input is preferred
// over re-deriving it from the computed cents: re-derivation rounds, and
// every open/close cycle would silently snap "33.3" to "33.33". Only when a
// ledger predates raw-input storage is the value re-derived (percentage from
// the stored cents, share count defaulting to 1). ExactAmount goes the other
// way and always re-derives from the stored cents, which are the raw input
// by definition. Equal has no raw input at all.
func DraftFromLedger(l *Ledger) *Draft {
	d := &Draft{
		Title:           l.Title,
		Note:            l.Note,
		Date:            l.Date,
		TotalAmount:     l.TotalAmount,
		Method:          l.Method,
		Participants:    make(map[participant.ID]bool, len(l.OwedBy)),
		Payers:          make(map[participant.ID]bool, len(l.PaidBy)),
		PayerRawAmounts: make(map[participant.ID]string, len(l.PaidBy)),
		RawInputs:       make(split.RawInputs, len(l.OwedBy)),
	}

	for id, amount := range l.PaidBy {
		d.Payers[id] = true
		d.PayerRawAmounts[id] = money.FormatAmount(amount)
		// A sole payer doubles as the default payer on re-edit.
		if len(l.PaidBy) == 1 {
			d.Owner = id
		}
	}

	for id, share := range l.OwedBy {
		d.Participants[id] = true
		if raw := rawInputFor(l, share); raw != "" {
			d.RawInputs[id] = raw
		}
	}

	return d
}

// rawInputFor picks the raw text for one ledger entry per the method's
// prefer-stored / always-derive rule.
func rawInputFor(l *Ledger, share Share) string {
	switch l.Method {
	case split.MethodPercentage:
		if share.RawInput != "" {
			return share.RawInput
		}
		return derivePercent(share.Amount, l.TotalAmount)
	case split.MethodShares:
		if share.RawInput != "" {
			return share.RawInput
		}
		return "1"
	case split.MethodAdjustment:
		return share.RawInput
	case split.MethodExactAmount:
		return money.FormatAmount(share.Amount)
	default:
		return ""
	}
}

// derivePercent recovers a percentage from stored cents for ledgers that
// were persisted before raw inputs were stored alongside amounts.
func derivePercent(amount, total money.Cents) string {
	if total == 0 {
		return "0"
	}
	return decimal.New(int64(amount), 0).
		Mul(decimal.NewFromInt(100)).
		DivRound(decimal.New(int64(total), 0), 2).
		String()
}
