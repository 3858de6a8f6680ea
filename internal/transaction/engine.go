package transaction

import (
	"github.com/fkhayef/splitledger/internal/money"
	"github.com/fkhayef/splitledger/internal/participant"
	"github.com/fkhayef/splitledger/internal/split"
)

// Engine turns a valid draft into a finalized ledger. It is a pure function
// of the draft snapshot: no I/O, no retained state, and finalizing the same
// snapshot twice yields identical values.
type Engine struct {
	directory participant.Directory
	factory   *split.Factory
}

// NewEngine creates an engine that resolves display names through dir. The
// directory is only consulted for the deterministic participant ordering
// that drives remainder-cent distribution.
func NewEngine(dir participant.Directory) *Engine {
	return &Engine{
		directory: dir,
		factory:   split.NewFactory(),
	}
}

// Finalize validates the draft and, if it passes, produces the complete
// ledger: who paid what and who owes what, with each participant's raw
// input retained verbatim for later editing. On validation failure the
// specific ValidationError is returned and no partial ledger exists —
// finalize is atomic.
func (e *Engine) Finalize(d *Draft) (*Ledger, error) {
	if err := Validate(d); err != nil {
		return nil, err
	}

	strategy, err := e.factory.Create(d.Method)
	if err != nil {
		return nil, err
	}

	ordered := participant.SortByDisplayName(d.participantIDs(), e.directory)
	allocated := strategy.Allocate(d.TotalAmount, ordered, d.RawInputs)

	owedBy := make(map[participant.ID]Share, len(ordered))
	for _, id := range ordered {
		share := Share{Amount: allocated[id]}
		if d.Method != split.MethodEqual {
			share.RawInput = d.RawInputs[id]
		}
		owedBy[id] = share
	}

	return &Ledger{
		Title:       d.Title,
		Note:        d.Note,
		Date:        d.Date,
		TotalAmount: d.TotalAmount,
		Method:      d.Method,
		PaidBy:      e.paidBy(d),
		OwedBy:      owedBy,
	}, nil
}

// paidBy attributes the total across payers. No explicit payer means the
// draft's owner paid everything; exactly one explicit payer is auto-assigned
// the full total regardless of any stale amount text; multiple payers
// contribute exactly what they entered (already validated to balance).
func (e *Engine) paidBy(d *Draft) map[participant.ID]money.Cents {
	paid := make(map[participant.ID]money.Cents, len(d.Payers))

	switch len(d.Payers) {
	case 0:
		paid[d.Owner] = d.TotalAmount
	case 1:
		for id := range d.Payers {
			paid[id] = d.TotalAmount
		}
	default:
		for id := range d.Payers {
			paid[id] = money.ParseAmount(d.PayerRawAmounts[id])
		}
	}

	return paid
}
