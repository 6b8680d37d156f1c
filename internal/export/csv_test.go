package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhanflow/dhanflow/internal/model"
)

func TestWriteCSV(t *testing.T) {
	txs := []model.Transaction{
		{
			ID:        "t-1",
			Title:     "Groceries",
			Amount:    decimal.NewFromFloat(200.50),
			Type:      model.TypeExpense,
			Category:  model.CategoryFood,
			AccountID: "a-1",
			Date:      "2024-05-02",
			Notes:     "weekly run",
		},
		{
			ID:        "t-2",
			Title:     "Dinner, drinks \"and more\"",
			Amount:    decimal.NewFromInt(80),
			Type:      model.TypeExpense,
			Category:  model.CategoryEntertainment,
			AccountID: "a-1",
			Date:      "2024-05-03",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, txs))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err, "output must stay parseable even with embedded delimiters")
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Date", "Title", "Type", "Category", "Amount", "Notes"}, records[0])
	assert.Equal(t, []string{"2024-05-02", "Groceries", "EXPENSE", "Food", "200.5", "weekly run"}, records[1])
	assert.Equal(t, "Dinner, drinks \"and more\"", records[2][1],
		"embedded commas and quotes survive a round trip")
	assert.Equal(t, "", records[2][5])
}

func TestWriteCSV_EmptyListStillHasHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Date", records[0][0])
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, 5, 7, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "dhanflow_export_2024-05-07.csv", Filename(now))
}
