package storage

import (
	"fmt"

	"github.com/dhanflow/dhanflow/internal/store"
)

// validateSnapshot checks every record in a loaded snapshot. Cascade
// deletion keeps accountId references live at runtime, so a persisted
// snapshot that violates that invariant was corrupted and is rejected.
func validateSnapshot(snap store.Snapshot) error {
	if snap.User != nil {
		if err := snap.User.Validate(); err != nil {
			return fmt.Errorf("session user: %w", err)
		}
	}

	accountIDs := make(map[string]bool, len(snap.Accounts))
	for i, a := range snap.Accounts {
		if a.ID == "" {
			return fmt.Errorf("account at index %d has no id", i)
		}
		if accountIDs[a.ID] {
			return fmt.Errorf("duplicate account id %s", a.ID)
		}
		if err := a.Validate(); err != nil {
			return fmt.Errorf("account %s: %w", a.ID, err)
		}
		accountIDs[a.ID] = true
	}

	txIDs := make(map[string]bool, len(snap.Transactions))
	for i, t := range snap.Transactions {
		if t.ID == "" {
			return fmt.Errorf("transaction at index %d has no id", i)
		}
		if txIDs[t.ID] {
			return fmt.Errorf("duplicate transaction id %s", t.ID)
		}
		if err := t.Validate(); err != nil {
			return fmt.Errorf("transaction %s: %w", t.ID, err)
		}
		if !accountIDs[t.AccountID] {
			return fmt.Errorf("transaction %s references unknown account %s", t.ID, t.AccountID)
		}
		txIDs[t.ID] = true
	}

	budgetIDs := make(map[string]bool, len(snap.Budgets))
	for i, b := range snap.Budgets {
		if b.ID == "" {
			return fmt.Errorf("budget at index %d has no id", i)
		}
		if budgetIDs[b.ID] {
			return fmt.Errorf("duplicate budget id %s", b.ID)
		}
		if err := b.Validate(); err != nil {
			return fmt.Errorf("budget %s: %w", b.ID, err)
		}
		budgetIDs[b.ID] = true
	}

	return nil
}
