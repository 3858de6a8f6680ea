// Package transaction holds the draft/ledger model, the validator, and the
// allocation engine that turns one into the other.
package transaction

import (
	"time"

	"github.com/fkhayef/splitledger/internal/money"
	"github.com/fkhayef/splitledger/internal/participant"
	"github.com/fkhayef/splitledger/internal/split"
)

// Draft is the mutable, exclusively-owned working state of one transaction
// being composed or edited. It has no persistence of its own: a draft is
// created empty or hydrated from a ledger, mutated freely, consumed by
// Engine.Finalize, and then discarded.
//
// Map entries keyed by a participant who has since been removed from the
// draft are tolerated and ignored, never treated as corruption.
type Draft struct {
	Title       string
	Note        string
	Date        time.Time
	TotalAmount money.Cents
	Method      split.Method

	// Owner is the implicit default payer, used when Payers is empty.
	Owner participant.ID

	Participants map[participant.ID]bool
	Payers       map[participant.ID]bool

	// PayerRawAmounts holds each payer's entered contribution as text. It is
	// only consulted when there is more than one payer; a single payer is
	// auto-assigned the full total.
	PayerRawAmounts map[participant.ID]string

	// RawInputs holds the method-specific text per participant: percentage
	// points, exact amount, adjustment, or share count. Unused for Equal.
	RawInputs split.RawInputs
}

// NewDraft creates an empty draft owned by the given user.
func NewDraft(owner participant.ID) *Draft {
	return &Draft{
		Owner:           owner,
		Method:          split.MethodEqual,
		Date:            time.Now(),
		Participants:    make(map[participant.ID]bool),
		Payers:          make(map[participant.ID]bool),
		PayerRawAmounts: make(map[participant.ID]string),
		RawInputs:       make(split.RawInputs),
	}
}

// AddParticipant includes id in the split.
func (d *Draft) AddParticipant(id participant.ID) {
	d.Participants[id] = true
}

// RemoveParticipant drops id from the split. Any raw input they entered is
// left in place and ignored until they are re-added.
func (d *Draft) RemoveParticipant(id participant.ID) {
	delete(d.Participants, id)
}

// AddPayer marks id as one of the payers.
func (d *Draft) AddPayer(id participant.ID) {
	d.Payers[id] = true
}

// RemovePayer unmarks id as a payer, keeping their entered amount around in
// case they are re-added.
func (d *Draft) RemovePayer(id participant.ID) {
	delete(d.Payers, id)
}

// SetRawInput records the method-specific text id entered.
func (d *Draft) SetRawInput(id participant.ID, text string) {
	d.RawInputs[id] = text
}

// SetPayerRawAmount records the contribution text id entered.
func (d *Draft) SetPayerRawAmount(id participant.ID, text string) {
	d.PayerRawAmounts[id] = text
}

// participantIDs returns the current participant set as a slice.
func (d *Draft) participantIDs() []participant.ID {
	ids := make([]participant.ID, 0, len(d.Participants))
	for id := range d.Participants {
		ids = append(ids, id)
	}
	return ids
}

// Share is one participant's finalized slice of a transaction: the computed
// cent amount plus the raw text that produced it. The raw input is kept
// verbatim so a later edit can recover exactly what the user typed.
type Share struct {
	Amount   money.Cents
	RawInput string
}

// Ledger is the finalized, immutable allocation of one transaction. PaidBy
// sums to the total; OwedBy sums to the total for the Equal and Adjustment
// methods by construction (Percentage, ExactAmount and Shares are held to
// the total by validation and rounding tolerance instead).
type Ledger struct {
	// ID is assigned by the transaction store on save; empty until then.
	ID string

	Title       string
	Note        string
	Date        time.Time
	TotalAmount money.Cents
	Method      split.Method

	PaidBy map[participant.ID]money.Cents
	OwedBy map[participant.ID]Share

	CreatedAt time.Time
}
