package store

import (
	"fmt"

	"github.com/dhanflow/dhanflow/internal/model"
)

// AddBudget appends a new budget with a fresh id. Duplicate (category,
// month) pairs are allowed; each budget tracks its own progress.
func (s *Store) AddBudget(b model.Budget) (model.Budget, error) {
	if err := b.Validate(); err != nil {
		return model.Budget{}, fmt.Errorf("invalid budget: %w", err)
	}
	b.ID = s.newID()
	s.snap.Budgets = append(s.snap.Budgets, b)
	s.persistState()
	return b, nil
}

// UpdateBudget replaces the budget matching b.ID in place.
// Unknown ids are a no-op, not an error.
func (s *Store) UpdateBudget(b model.Budget) error {
	if err := validateID(b.ID); err != nil {
		return err
	}
	if err := b.Validate(); err != nil {
		return fmt.Errorf("invalid budget: %w", err)
	}
	for i := range s.snap.Budgets {
		if s.snap.Budgets[i].ID == b.ID {
			s.snap.Budgets[i] = b
			s.persistState()
			return nil
		}
	}
	return nil
}

// DeleteBudget removes the budget with the given id, if present.
func (s *Store) DeleteBudget(id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	for i := range s.snap.Budgets {
		if s.snap.Budgets[i].ID == id {
			s.snap.Budgets = append(s.snap.Budgets[:i], s.snap.Budgets[i+1:]...)
			s.persistState()
			return nil
		}
	}
	return nil
}
