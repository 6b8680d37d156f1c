package ofx

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhanflow/dhanflow/internal/model"
)

// Sample OFX data for testing.
const sampleBankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240115120000[0:GMT]
<TRNAMT>-25.50
<FITID>2024011501
<NAME>STARBUCKS STORE #1234
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20240120120000[0:GMT]
<TRNAMT>1500.00
<FITID>2024012001
<NAME>PAYROLL DEPOSIT
<MEMO>January salary
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

func TestParseFile_BankStatement(t *testing.T) {
	parser := NewParser()
	txs, err := parser.ParseFile(context.Background(), strings.NewReader(sampleBankOFX), "acc-1")
	require.NoError(t, err)
	require.Len(t, txs, 2)

	debit := txs[0]
	assert.Equal(t, "STARBUCKS STORE #1234", debit.Title)
	assert.Equal(t, model.TypeExpense, debit.Type)
	assert.Equal(t, model.CategoryOther, debit.Category)
	assert.True(t, debit.Amount.Equal(decimal.NewFromFloat(25.50)), "amount stored as magnitude, got %s", debit.Amount)
	assert.Equal(t, "acc-1", debit.AccountID)
	assert.Equal(t, "2024-01-15", debit.Date)

	credit := txs[1]
	assert.Equal(t, model.TypeIncome, credit.Type)
	assert.Equal(t, model.CategoryIncomeSource, credit.Category)
	assert.True(t, credit.Amount.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, "January salary", credit.Notes)

	for _, tx := range txs {
		tx := tx
		require.NoError(t, tx.Validate(), "imported transactions must pass model validation once an id is assigned")
	}
}

func TestParseFile_InvalidData(t *testing.T) {
	parser := NewParser()
	_, err := parser.ParseFile(context.Background(), strings.NewReader("this is not OFX"), "acc-1")
	require.Error(t, err)
}

func TestPreprocessOFX_FixesSeverityCase(t *testing.T) {
	parser := NewParser()
	fixed := parser.preprocessOFX("<SEVERITY>Info</SEVERITY>")
	assert.Equal(t, "<SEVERITY>INFO</SEVERITY>", fixed)
}
