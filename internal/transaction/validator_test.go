package transaction

import (
	"testing"

	"github.com/fkhayef/splitledger/internal/money"
	"github.com/fkhayef/splitledger/internal/participant"
	"github.com/fkhayef/splitledger/internal/split"
)

// testDraft builds a draft with the given method, total and per-participant
// raw inputs.
func testDraft(total money.Cents, method split.Method, raw split.RawInputs) *Draft {
	d := NewDraft("owner")
	d.TotalAmount = total
	d.Method = method
	for id, text := range raw {
		d.AddParticipant(id)
		if text != "" {
			d.SetRawInput(id, text)
		}
	}
	return d
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		draft   *Draft
		mutate  func(d *Draft)
		wantErr error
	}{
		{
			name:  "valid equal draft",
			draft: testDraft(1000, split.MethodEqual, split.RawInputs{"alice": "", "bob": ""}),
		},
		{
			name:    "zero amount",
			draft:   testDraft(0, split.MethodEqual, split.RawInputs{"alice": ""}),
			wantErr: ErrNonPositiveAmount,
		},
		{
			name:    "negative amount",
			draft:   testDraft(-500, split.MethodEqual, split.RawInputs{"alice": ""}),
			wantErr: ErrNonPositiveAmount,
		},
		{
			name:    "amount checked before participants",
			draft:   testDraft(0, split.MethodEqual, nil),
			wantErr: ErrNonPositiveAmount,
		},
		{
			name:    "no participants",
			draft:   testDraft(1000, split.MethodEqual, nil),
			wantErr: ErrEmptyParticipants,
		},
		{
			name:  "multi payer balanced",
			draft: testDraft(1000, split.MethodEqual, split.RawInputs{"alice": "", "bob": ""}),
			mutate: func(d *Draft) {
				d.AddPayer("alice")
				d.AddPayer("bob")
				d.SetPayerRawAmount("alice", "6.00")
				d.SetPayerRawAmount("bob", "4.00")
			},
		},
		{
			name:  "multi payer off by one cent",
			draft: testDraft(1000, split.MethodEqual, split.RawInputs{"alice": "", "bob": ""}),
			mutate: func(d *Draft) {
				d.AddPayer("alice")
				d.AddPayer("bob")
				d.SetPayerRawAmount("alice", "5.00")
				d.SetPayerRawAmount("bob", "4.99")
			},
			wantErr: ErrPayersUnbalanced,
		},
		{
			name:  "single payer amount text ignored",
			draft: testDraft(1000, split.MethodEqual, split.RawInputs{"alice": "", "bob": ""}),
			mutate: func(d *Draft) {
				d.AddPayer("alice")
				d.SetPayerRawAmount("alice", "garbage")
			},
		},
		{
			name:  "percentages sum to 100",
			draft: testDraft(5000, split.MethodPercentage, split.RawInputs{"alice": "60", "bob": "40"}),
		},
		{
			name:  "percentages within tolerance",
			draft: testDraft(100, split.MethodPercentage, split.RawInputs{"alice": "33.33", "bob": "33.33", "carol": "33.33"}),
		},
		{
			name:    "percentages short of 100",
			draft:   testDraft(5000, split.MethodPercentage, split.RawInputs{"alice": "60", "bob": "30"}),
			wantErr: ErrPercentageMismatch,
		},
		{
			name:    "percentages over 100",
			draft:   testDraft(5000, split.MethodPercentage, split.RawInputs{"alice": "60", "bob": "41"}),
			wantErr: ErrPercentageMismatch,
		},
		{
			name:  "exact amounts match total",
			draft: testDraft(5000, split.MethodExactAmount, split.RawInputs{"alice": "30.00", "bob": "20.00"}),
		},
		{
			name:    "exact amounts off by one cent",
			draft:   testDraft(5000, split.MethodExactAmount, split.RawInputs{"alice": "30.00", "bob": "19.99"}),
			wantErr: ErrAmountMismatch,
		},
		{
			name:  "adjustments below total",
			draft: testDraft(9000, split.MethodAdjustment, split.RawInputs{"alice": "10", "bob": "", "carol": "-10"}),
		},
		{
			name:  "adjustments equal to total",
			draft: testDraft(1000, split.MethodAdjustment, split.RawInputs{"alice": "10.00"}),
		},
		{
			name:    "adjustments exceed total",
			draft:   testDraft(1000, split.MethodAdjustment, split.RawInputs{"alice": "10.01"}),
			wantErr: ErrAdjustmentsExceedTotal,
		},
		{
			name:  "shares positive",
			draft: testDraft(1000, split.MethodShares, split.RawInputs{"alice": "2", "bob": "1"}),
		},
		{
			name:    "no shares entered",
			draft:   testDraft(1000, split.MethodShares, split.RawInputs{"alice": "", "bob": ""}),
			wantErr: ErrNoShares,
		},
		{
			name:    "shares cancel out",
			draft:   testDraft(1000, split.MethodShares, split.RawInputs{"alice": "1", "bob": "-1"}),
			wantErr: ErrNoShares,
		},
		{
			name:  "stale raw input of removed participant ignored",
			draft: testDraft(5000, split.MethodPercentage, split.RawInputs{"alice": "60", "bob": "40"}),
			mutate: func(d *Draft) {
				d.SetRawInput("ghost", "25")
			},
		},
		{
			name:  "payer rule runs before method rule",
			draft: testDraft(5000, split.MethodPercentage, split.RawInputs{"alice": "60", "bob": "30"}),
			mutate: func(d *Draft) {
				d.AddPayer("alice")
				d.AddPayer("bob")
				d.SetPayerRawAmount("alice", "1.00")
			},
			wantErr: ErrPayersUnbalanced,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mutate != nil {
				tt.mutate(tt.draft)
			}
			err := Validate(tt.draft)
			if err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateIsPure(t *testing.T) {
	d := testDraft(1000, split.MethodShares, split.RawInputs{"alice": "1"})
	d.AddParticipant("bob")

	// Run twice on the same draft: same answer, no state carried over.
	if err := Validate(d); err != nil {
		t.Fatalf("first Validate() = %v", err)
	}
	if err := Validate(d); err != nil {
		t.Fatalf("second Validate() = %v", err)
	}
	if _, ok := d.RawInputs[participant.ID("bob")]; ok {
		t.Error("Validate must not write raw inputs")
	}
}
