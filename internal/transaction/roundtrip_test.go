package transaction

import (
	"reflect"
	"testing"
	"time"

	"github.com/fkhayef/splitledger/internal/money"
	"github.com/fkhayef/splitledger/internal/participant"
	"github.com/fkhayef/splitledger/internal/split"
)

// refinalize runs the edit flow: ledger -> draft -> ledger.
func refinalize(t *testing.T, e *Engine, l *Ledger) (*Draft, *Ledger) {
	t.Helper()
	d := DraftFromLedger(l)
	again, err := e.Finalize(d)
	if err != nil {
		t.Fatalf("Finalize() after round trip: %v", err)
	}
	return d, again
}

func TestRoundTripStableCents(t *testing.T) {
	e := NewEngine(testDirectory())

	drafts := map[string]*Draft{
		"equal":      testDraft(10000, split.MethodEqual, split.RawInputs{"alice": "", "bob": "", "carol": ""}),
		"exact":      testDraft(5000, split.MethodExactAmount, split.RawInputs{"alice": "30.00", "bob": "20.00"}),
		"adjustment": testDraft(9000, split.MethodAdjustment, split.RawInputs{"alice": "10", "bob": "", "carol": "-10"}),
	}

	for name, d := range drafts {
		t.Run(name, func(t *testing.T) {
			first, err := e.Finalize(d)
			if err != nil {
				t.Fatalf("Finalize() error: %v", err)
			}
			_, again := refinalize(t, e, first)
			if !reflect.DeepEqual(first.OwedBy, again.OwedBy) {
				t.Errorf("owed amounts changed across round trip:\nfirst: %v\nagain: %v", first.OwedBy, again.OwedBy)
			}
			if !reflect.DeepEqual(first.PaidBy, again.PaidBy) {
				t.Errorf("paid amounts changed across round trip:\nfirst: %v\nagain: %v", first.PaidBy, again.PaidBy)
			}
		})
	}
}

func TestRoundTripPreservesRawInputs(t *testing.T) {
	e := NewEngine(testDirectory())

	// "33.4" must survive the round trip as typed; re-deriving from cents
	// would snap it to a re-rounded value on every open/close cycle.
	d := testDraft(10000, split.MethodPercentage, split.RawInputs{"alice": "33.4", "bob": "33.3", "carol": "33.3"})
	l, err := e.Finalize(d)
	if err != nil {
		t.Fatalf("Finalize() error: %v", err)
	}

	edited, _ := refinalize(t, e, l)
	want := split.RawInputs{"alice": "33.4", "bob": "33.3", "carol": "33.3"}
	if !reflect.DeepEqual(edited.RawInputs, want) {
		t.Errorf("RawInputs = %v, want %v", edited.RawInputs, want)
	}
}

func TestRoundTripPreservesShareCounts(t *testing.T) {
	e := NewEngine(testDirectory())
	d := testDraft(1000, split.MethodShares, split.RawInputs{"alice": "2", "bob": "1"})

	l, err := e.Finalize(d)
	if err != nil {
		t.Fatalf("Finalize() error: %v", err)
	}
	edited := DraftFromLedger(l)
	if edited.RawInputs["alice"] != "2" || edited.RawInputs["bob"] != "1" {
		t.Errorf("share counts not preserved: %v", edited.RawInputs)
	}
}

func TestRoundTripExactAmountAlwaysRederives(t *testing.T) {
	e := NewEngine(testDirectory())
	d := testDraft(5000, split.MethodExactAmount, split.RawInputs{"alice": "30", "bob": "20"})

	l, err := e.Finalize(d)
	if err != nil {
		t.Fatalf("Finalize() error: %v", err)
	}
	edited := DraftFromLedger(l)
	// The user typed "30"; the reconstructed input is the canonical decimal
	// of the stored cents.
	if edited.RawInputs["alice"] != "30.00" || edited.RawInputs["bob"] != "20.00" {
		t.Errorf("RawInputs = %v, want 30.00/20.00", edited.RawInputs)
	}
}

func TestRoundTripLegacyLedgerWithoutRawInputs(t *testing.T) {
	l := &Ledger{
		Title:       "Old trip",
		Date:        time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC),
		TotalAmount: 10000,
		Method:      split.MethodPercentage,
		PaidBy:      map[participant.ID]money.Cents{"alice": 10000},
		OwedBy: map[participant.ID]Share{
			"alice": {Amount: 3334},
			"bob":   {Amount: 3333},
			"carol": {Amount: 3333},
		},
	}

	d := DraftFromLedger(l)
	if d.RawInputs["alice"] != "33.34" {
		t.Errorf("derived percent = %q, want 33.34", d.RawInputs["alice"])
	}
	if d.RawInputs["bob"] != "33.33" {
		t.Errorf("derived percent = %q, want 33.33", d.RawInputs["bob"])
	}

	l.Method = split.MethodShares
	d = DraftFromLedger(l)
	for _, id := range []participant.ID{"alice", "bob", "carol"} {
		if d.RawInputs[id] != "1" {
			t.Errorf("legacy share count for %s = %q, want 1", id, d.RawInputs[id])
		}
	}
}

func TestRoundTripCopiesPayers(t *testing.T) {
	e := NewEngine(testDirectory())
	d := testDraft(1000, split.MethodEqual, split.RawInputs{"alice": "", "bob": ""})
	d.AddPayer("alice")
	d.AddPayer("bob")
	d.SetPayerRawAmount("alice", "6.00")
	d.SetPayerRawAmount("bob", "4.00")

	l, err := e.Finalize(d)
	if err != nil {
		t.Fatalf("Finalize() error: %v", err)
	}
	edited, again := refinalize(t, e, l)

	if !edited.Payers["alice"] || !edited.Payers["bob"] {
		t.Errorf("payers not copied: %v", edited.Payers)
	}
	if edited.PayerRawAmounts["alice"] != "6.00" || edited.PayerRawAmounts["bob"] != "4.00" {
		t.Errorf("payer amounts = %v, want 6.00/4.00", edited.PayerRawAmounts)
	}
	if !reflect.DeepEqual(again.PaidBy, l.PaidBy) {
		t.Errorf("PaidBy changed across round trip: %v vs %v", again.PaidBy, l.PaidBy)
	}
}

func TestRoundTripEqualHasNoRawInputs(t *testing.T) {
	e := NewEngine(testDirectory())
	d := testDraft(10000, split.MethodEqual, split.RawInputs{"alice": "", "bob": "", "carol": ""})

	l, err := e.Finalize(d)
	if err != nil {
		t.Fatalf("Finalize() error: %v", err)
	}
	edited := DraftFromLedger(l)
	if len(edited.RawInputs) != 0 {
		t.Errorf("equal split reconstructed raw inputs: %v", edited.RawInputs)
	}
}
