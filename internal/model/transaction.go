// Package model defines the core entities of the finance tracker.
package model

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used throughout the application.
const DateLayout = "2006-01-02"

// MonthLayout is the calendar-month format used by budgets and summaries.
const MonthLayout = "2006-01"

// TransactionType indicates the direction of a money movement.
type TransactionType string

const (
	// TypeIncome adds money to an account.
	TypeIncome TransactionType = "INCOME"
	// TypeExpense removes money from an account.
	TypeExpense TransactionType = "EXPENSE"
)

// ParseTransactionType converts a string to a TransactionType, accepting any case.
func ParseTransactionType(s string) (TransactionType, error) {
	tt := TransactionType(strings.ToUpper(strings.TrimSpace(s)))
	switch tt {
	case TypeIncome, TypeExpense:
		return tt, nil
	}
	return "", fmt.Errorf("invalid transaction type %q (want INCOME or EXPENSE)", s)
}

// Transaction is a single dated money movement affecting exactly one account.
// Amount is always a non-negative magnitude; direction is carried by Type.
type Transaction struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Type      TransactionType `json:"type"`
	Category  Category        `json:"category"`
	AccountID string          `json:"accountId"`
	Date      string          `json:"date"`
	Notes     string          `json:"notes,omitempty"`
}

// Validate checks that the transaction is well formed.
func (t *Transaction) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("transaction title is required")
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("transaction amount must be positive, got %s", t.Amount)
	}
	if _, err := ParseTransactionType(string(t.Type)); err != nil {
		return err
	}
	if _, err := ParseCategory(string(t.Category)); err != nil {
		return err
	}
	if t.AccountID == "" {
		return fmt.Errorf("transaction account is required")
	}
	if _, err := time.Parse(DateLayout, t.Date); err != nil {
		return fmt.Errorf("invalid transaction date %q (want YYYY-MM-DD)", t.Date)
	}
	return nil
}

// Month returns the YYYY-MM prefix of the transaction date.
func (t *Transaction) Month() string {
	if len(t.Date) < len(MonthLayout) {
		return t.Date
	}
	return t.Date[:len(MonthLayout)]
}

// GenerateHash creates a content hash for duplicate detection during imports.
func (t *Transaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%s:%s:%s:%s",
		t.Date,
		t.Amount.String(),
		t.Type,
		t.Title,
		t.AccountID)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
