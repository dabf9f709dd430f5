package pay

import (
	"testing"

	"matchify/models"
)

func settledTxn() models.Transaction {
	fees := Breakdown(1000)
	return models.Transaction{
		ID:           "txn1",
		MissionID:    "m1",
		Amount:       fees.RecruiterTotal,
		PlatformFee:  fees.PlatformFee,
		TalentAmount: fees.TalentPayout,
		Currency:     "EUR",
	}
}

func TestSettlementEntries(t *testing.T) {
	entries := settlementEntries(settledTxn(), "acc_platform", "acc_talent")
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}

	charge, payout := entries[0], entries[1]
	if charge.DebitAccount != "external:card" || charge.CreditAccount != "acc_platform" {
		t.Fatalf("charge accounts: %s -> %s", charge.DebitAccount, charge.CreditAccount)
	}
	if charge.Amount != 1030.0 {
		t.Fatalf("charge amount = %v, want 1030", charge.Amount)
	}
	if payout.DebitAccount != "acc_platform" || payout.CreditAccount != "acc_talent" {
		t.Fatalf("payout accounts: %s -> %s", payout.DebitAccount, payout.CreditAccount)
	}
	if payout.Amount != 970.0 {
		t.Fatalf("payout amount = %v, want 970", payout.Amount)
	}
	for _, e := range entries {
		if e.TxnID != "txn1" {
			t.Fatalf("entry not tied to transaction: %+v", e)
		}
	}
}

func TestReversalEntriesNetZero(t *testing.T) {
	entries := settlementEntries(settledTxn(), "acc_platform", "acc_talent")
	reversed := reversalEntries(entries)
	if len(reversed) != len(entries) {
		t.Fatalf("got %d reversals, want %d", len(reversed), len(entries))
	}

	// Net movement per account across settlement + reversal must be zero.
	net := map[string]float64{}
	for _, e := range append(append([]models.JournalEntry{}, entries...), reversed...) {
		net[e.DebitAccount] -= e.Amount
		net[e.CreditAccount] += e.Amount
	}
	for acc, v := range net {
		if v != 0 {
			t.Errorf("account %s nets %v, want 0", acc, v)
		}
	}

	for i, r := range reversed {
		if r.DebitAccount != entries[i].CreditAccount || r.CreditAccount != entries[i].DebitAccount {
			t.Fatalf("reversal %d does not swap accounts: %+v", i, r)
		}
		if r.Amount != entries[i].Amount {
			t.Fatalf("reversal %d amount = %v, want %v", i, r.Amount, entries[i].Amount)
		}
	}
}
