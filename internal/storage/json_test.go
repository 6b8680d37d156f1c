package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhanflow/dhanflow/internal/common"
	"github.com/dhanflow/dhanflow/internal/model"
	"github.com/dhanflow/dhanflow/internal/store"
)

func testSnapshot() store.Snapshot {
	return store.Snapshot{
		User: &model.User{
			ID:       "u-1",
			Email:    "aarav@dhanflow.in",
			Name:     "Aarav",
			Phone:    "111",
			JoinedAt: "2024-05-01",
		},
		Accounts: []model.Account{
			{ID: "a-1", Name: "Cash", Type: model.AccountTypeCash, StartingBalance: decimal.NewFromInt(1000)},
			{ID: "a-2", Name: "Bank", Type: model.AccountTypeBank, StartingBalance: decimal.NewFromFloat(2500.75)},
		},
		Transactions: []model.Transaction{
			{ID: "t-1", Title: "Groceries", Amount: decimal.NewFromFloat(200.50), Type: model.TypeExpense,
				Category: model.CategoryFood, AccountID: "a-1", Date: "2024-05-02"},
			{ID: "t-2", Title: "Salary", Amount: decimal.NewFromInt(500), Type: model.TypeIncome,
				Category: model.CategoryIncomeSource, AccountID: "a-2", Date: "2024-05-03", Notes: "May"},
		},
		Budgets: []model.Budget{
			{ID: "b-1", Category: model.CategoryFood, Limit: decimal.NewFromInt(1000), Month: "2024-05"},
		},
		Currency: "INR",
		DarkMode: true,
	}
}

func TestStateRoundTrip(t *testing.T) {
	js, err := New(t.TempDir())
	require.NoError(t, err)

	snap := testSnapshot()
	require.NoError(t, js.SaveState(snap))

	loaded, err := js.LoadState()
	require.NoError(t, err)

	require.Len(t, loaded.Accounts, 2)
	assert.Equal(t, "a-1", loaded.Accounts[0].ID, "ordering preserved")
	assert.True(t, loaded.Accounts[1].StartingBalance.Equal(decimal.NewFromFloat(2500.75)))
	require.Len(t, loaded.Transactions, 2)
	assert.Equal(t, snap.Transactions[0].ID, loaded.Transactions[0].ID)
	assert.True(t, loaded.Transactions[0].Amount.Equal(decimal.NewFromFloat(200.50)))
	assert.Equal(t, "May", loaded.Transactions[1].Notes)
	require.Len(t, loaded.Budgets, 1)
	require.NotNil(t, loaded.User)
	assert.Equal(t, "aarav@dhanflow.in", loaded.User.Email)
	assert.Equal(t, "INR", loaded.Currency)
	assert.True(t, loaded.DarkMode)
}

func TestUsersRoundTrip(t *testing.T) {
	js, err := New(t.TempDir())
	require.NoError(t, err)

	users := []model.User{
		{ID: "u-1", Email: "a@x.in", Name: "A", JoinedAt: "2024-01-01"},
		{ID: "u-2", Email: "b@x.in", Name: "B", JoinedAt: "2024-02-01", IsAdmin: true},
	}
	require.NoError(t, js.SaveUsers(users))

	loaded, err := js.LoadUsers()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "a@x.in", loaded[0].Email, "registration order preserved")
	assert.True(t, loaded[1].IsAdmin)
}

func TestLoadState_MissingFileIsPristine(t *testing.T) {
	js, err := New(t.TempDir())
	require.NoError(t, err)

	snap, err := js.LoadState()
	require.NoError(t, err)
	assert.Empty(t, snap.Accounts)
	assert.Nil(t, snap.User)
	assert.Equal(t, store.DefaultCurrency, snap.Currency)

	users, err := js.LoadUsers()
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestLoadState_MalformedFailsClosed(t *testing.T) {
	dir := t.TempDir()
	js, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "state.json"), []byte("{not json"), 0o600))
	_, err = js.LoadState()
	require.ErrorIs(t, err, common.ErrInvalidSnapshot)
}

func TestLoadState_WrongSchemaVersion(t *testing.T) {
	dir := t.TempDir()
	js, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "state.json"),
		[]byte(`{"schemaVersion": 99, "accounts": []}`), 0o600))
	_, err = js.LoadState()
	require.ErrorIs(t, err, common.ErrSchemaVersion)
}

func TestLoadState_DanglingReferenceRejected(t *testing.T) {
	dir := t.TempDir()
	js, err := New(dir)
	require.NoError(t, err)

	blob := `{
		"schemaVersion": 1,
		"user": null,
		"accounts": [],
		"transactions": [{"id":"t-1","title":"Ghost","amount":"10","type":"EXPENSE","category":"Food","accountId":"gone","date":"2024-05-01"}],
		"budgets": [],
		"currency": "INR",
		"isDarkMode": false
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "state.json"), []byte(blob), 0o600))
	_, err = js.LoadState()
	require.ErrorIs(t, err, common.ErrInvalidSnapshot)
	assert.Contains(t, err.Error(), "unknown account")
}

func TestSaveState_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	js, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, js.SaveState(testSnapshot()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "state.json", entries[0].Name())
}

func TestNew_RequiresDir(t *testing.T) {
	_, err := New("")
	require.ErrorIs(t, err, common.ErrMissingConfig)
}
