package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AccountType identifies the kind of money store an account represents.
type AccountType string

const (
	// AccountTypeCash is physical cash on hand.
	AccountTypeCash AccountType = "CASH"
	// AccountTypeBank is a bank account.
	AccountTypeBank AccountType = "BANK"
	// AccountTypeWallet is a digital wallet.
	AccountTypeWallet AccountType = "WALLET"
	// AccountTypeCard is a credit or debit card.
	AccountTypeCard AccountType = "CARD"
)

// AccountTypes lists every valid account type, in display order.
func AccountTypes() []AccountType {
	return []AccountType{AccountTypeCash, AccountTypeBank, AccountTypeWallet, AccountTypeCard}
}

// ParseAccountType converts a string to an AccountType, accepting any case.
func ParseAccountType(s string) (AccountType, error) {
	at := AccountType(strings.ToUpper(strings.TrimSpace(s)))
	switch at {
	case AccountTypeCash, AccountTypeBank, AccountTypeWallet, AccountTypeCard:
		return at, nil
	}
	return "", fmt.Errorf("invalid account type %q (want CASH, BANK, WALLET, or CARD)", s)
}

// Account is a named store of money with a starting balance.
// The current balance is never stored; it is always derived from the
// starting balance plus the account's transactions.
type Account struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Type            AccountType     `json:"type"`
	StartingBalance decimal.Decimal `json:"startingBalance"`
}

// Validate checks that the account is well formed.
func (a *Account) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("account name is required")
	}
	if _, err := ParseAccountType(string(a.Type)); err != nil {
		return err
	}
	return nil
}
