package store

import (
	"fmt"

	"github.com/dhanflow/dhanflow/internal/model"
)

// AddAccount appends a new account with a fresh id.
func (s *Store) AddAccount(a model.Account) (model.Account, error) {
	if err := a.Validate(); err != nil {
		return model.Account{}, fmt.Errorf("invalid account: %w", err)
	}
	a.ID = s.newID()
	s.snap.Accounts = append(s.snap.Accounts, a)
	s.persistState()
	return a, nil
}

// UpdateAccount replaces the account matching a.ID in place.
// Unknown ids are a no-op, not an error.
func (s *Store) UpdateAccount(a model.Account) error {
	if err := validateID(a.ID); err != nil {
		return err
	}
	if err := a.Validate(); err != nil {
		return fmt.Errorf("invalid account: %w", err)
	}
	for i := range s.snap.Accounts {
		if s.snap.Accounts[i].ID == a.ID {
			s.snap.Accounts[i] = a
			s.persistState()
			return nil
		}
	}
	return nil
}

// DeleteAccount removes the account and every transaction referencing it,
// as one state transition. It returns the number of cascaded transactions.
func (s *Store) DeleteAccount(id string) (int, error) {
	if err := validateID(id); err != nil {
		return 0, err
	}

	accounts := s.snap.Accounts[:0]
	removed := false
	for _, a := range s.snap.Accounts {
		if a.ID == id {
			removed = true
			continue
		}
		accounts = append(accounts, a)
	}
	if !removed {
		return 0, nil
	}

	transactions := s.snap.Transactions[:0]
	cascaded := 0
	for _, t := range s.snap.Transactions {
		if t.AccountID == id {
			cascaded++
			continue
		}
		transactions = append(transactions, t)
	}

	s.snap.Accounts = accounts
	s.snap.Transactions = transactions
	s.persistState()
	return cascaded, nil
}
