package store

import (
	"fmt"

	"github.com/dhanflow/dhanflow/internal/common"
	"github.com/dhanflow/dhanflow/internal/model"
)

// AddTransaction appends a new transaction with a fresh id. The referenced
// account must exist at creation time; cascade deletion keeps references
// live from then on.
func (s *Store) AddTransaction(t model.Transaction) (model.Transaction, error) {
	if err := t.Validate(); err != nil {
		return model.Transaction{}, fmt.Errorf("invalid transaction: %w", err)
	}
	if _, ok := s.Account(t.AccountID); !ok {
		return model.Transaction{}, fmt.Errorf("%w: %s", common.ErrAccountNotFound, t.AccountID)
	}
	t.ID = s.newID()
	s.snap.Transactions = append(s.snap.Transactions, t)
	s.persistState()
	return t, nil
}

// UpdateTransaction replaces the transaction matching t.ID in place.
// Unknown ids are a no-op, not an error.
func (s *Store) UpdateTransaction(t model.Transaction) error {
	if err := validateID(t.ID); err != nil {
		return err
	}
	if err := t.Validate(); err != nil {
		return fmt.Errorf("invalid transaction: %w", err)
	}
	for i := range s.snap.Transactions {
		if s.snap.Transactions[i].ID == t.ID {
			s.snap.Transactions[i] = t
			s.persistState()
			return nil
		}
	}
	return nil
}

// DeleteTransaction removes the transaction with the given id, if present.
func (s *Store) DeleteTransaction(id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	for i := range s.snap.Transactions {
		if s.snap.Transactions[i].ID == id {
			s.snap.Transactions = append(s.snap.Transactions[:i], s.snap.Transactions[i+1:]...)
			s.persistState()
			return nil
		}
	}
	return nil
}
