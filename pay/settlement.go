package pay

import (
	"time"

	"matchify/models"
	"matchify/utils"
)

// settlementEntries builds the double-entry journal for a captured mission
// charge: the recruiter total flows from the external card into the
// platform account, and the talent payout flows from the platform to the
// talent account.
func settlementEntries(txn models.Transaction, platformAccID, talentAccID string) []models.JournalEntry {
	now := time.Now()
	return []models.JournalEntry{
		{
			ID:            utils.GetUUID(),
			TxnID:         txn.ID,
			DebitAccount:  "external:card",
			CreditAccount: platformAccID,
			Amount:        txn.Amount,
			Currency:      txn.Currency,
			CreatedAt:     now,
			Meta:          models.Meta{"note": "mission charge", "missionid": txn.MissionID},
		},
		{
			ID:            utils.GetUUID(),
			TxnID:         txn.ID,
			DebitAccount:  platformAccID,
			CreditAccount: talentAccID,
			Amount:        txn.TalentAmount,
			Currency:      txn.Currency,
			CreatedAt:     now,
			Meta:          models.Meta{"note": "talent payout", "missionid": txn.MissionID},
		},
	}
}

// reversalEntries negates previously written settlement entries by
// swapping debit and credit, so a settlement that cannot be finalized
// leaves the ledger net zero per account.
func reversalEntries(entries []models.JournalEntry) []models.JournalEntry {
	now := time.Now()
	out := make([]models.JournalEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, models.JournalEntry{
			ID:            utils.GetUUID(),
			TxnID:         e.TxnID,
			DebitAccount:  e.CreditAccount,
			CreditAccount: e.DebitAccount,
			Amount:        e.Amount,
			Currency:      e.Currency,
			CreatedAt:     now,
			Meta:          models.Meta{"note": "reversal", "reverses": e.ID},
		})
	}
	return out
}
