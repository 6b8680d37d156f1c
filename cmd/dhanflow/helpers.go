package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/dhanflow/dhanflow/internal/common"
	"github.com/dhanflow/dhanflow/internal/config"
	"github.com/dhanflow/dhanflow/internal/currency"
	"github.com/dhanflow/dhanflow/internal/model"
	"github.com/dhanflow/dhanflow/internal/storage"
	"github.com/dhanflow/dhanflow/internal/store"
)

// openStore loads the durable state and wires it into a Store that
// persists back through the same files.
func openStore() (*store.Store, error) {
	dir := viper.GetString("data.dir")
	if dir == "" {
		dir = config.DefaultDataDir()
	} else {
		dir = config.ExpandPath(dir)
	}

	js, err := storage.New(dir)
	if err != nil {
		return nil, err
	}

	snap, err := js.LoadState()
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	users, err := js.LoadUsers()
	if err != nil {
		return nil, fmt.Errorf("failed to load user registry: %w", err)
	}

	st := store.New(snap, users, js)
	st.SetAdminCredential(viper.GetString("admin.email"), viper.GetString("admin.secret"))
	return st, nil
}

// requireUser returns the session user or a friendly error.
func requireUser(st *store.Store) (*model.User, error) {
	user := st.CurrentUser()
	if user == nil {
		return nil, common.NewUserError("please run 'dhanflow login' first", common.ErrNotLoggedIn)
	}
	return user, nil
}

// money renders an amount in the snapshot's display currency.
func money(st *store.Store, amount decimal.Decimal) string {
	return currency.Format(amount, st.Snapshot().Currency)
}

// parseAmount reads a positive decimal amount from a CLI argument.
func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount must not be negative, got %s", s)
	}
	return amount, nil
}
