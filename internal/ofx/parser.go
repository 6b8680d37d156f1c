// Package ofx imports bank statements in OFX/QFX format as transactions.
package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"

	"github.com/dhanflow/dhanflow/internal/model"
)

// Parser reads OFX/QFX statement files.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

// preprocessOFX fixes common formatting issues in real-world OFX files.
func (p *Parser) preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")

	// SEVERITY values must be upper case (INFO, WARN, ERROR)
	severityRegex := regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)

	// SGML-style files sometimes drop the closing angle bracket on a tag
	tagFixRegex := regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
	content = tagFixRegex.ReplaceAllString(content, "$1>")

	return content
}

// ParseFile parses an OFX/QFX file and returns transactions targeting the
// given application account. Statement amounts are signed; the sign becomes
// the transaction type and the stored amount is always a magnitude.
func (p *Parser) ParseFile(_ context.Context, reader io.Reader, accountID string) ([]model.Transaction, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var transactions []model.Transaction
	var bankStmts, ccStmts int

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			bankStmts++
			transactions = append(transactions, p.convertStatement(stmt.BankTranList, accountID)...)
		}
	}
	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			ccStmts++
			transactions = append(transactions, p.convertStatement(stmt.BankTranList, accountID)...)
		}
	}

	slog.Info("parsed OFX file",
		"transactions", len(transactions),
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return transactions, nil
}

func (p *Parser) convertStatement(list *ofxgo.TransactionList, accountID string) []model.Transaction {
	if list == nil {
		return nil
	}
	txs := make([]model.Transaction, 0, len(list.Transactions))
	for _, ofxTx := range list.Transactions {
		txs = append(txs, p.convertTransaction(ofxTx, accountID))
	}
	return txs
}

func (p *Parser) convertTransaction(ofxTx ofxgo.Transaction, accountID string) model.Transaction {
	amount := decimal.NewFromBigRat(&ofxTx.TrnAmt.Rat, 2)

	// OFX uses negative amounts for debits.
	txType := model.TypeIncome
	category := model.CategoryIncomeSource
	if amount.IsNegative() {
		txType = model.TypeExpense
		category = model.CategoryOther
		amount = amount.Neg()
	}

	return model.Transaction{
		Title:     p.extractTitle(ofxTx),
		Amount:    amount,
		Type:      txType,
		Category:  category,
		AccountID: accountID,
		Date:      ofxTx.DtPosted.Time.Format(model.DateLayout),
		Notes:     strings.TrimSpace(string(ofxTx.Memo)),
	}
}

// extractTitle picks the cleanest available description for a statement line.
func (p *Parser) extractTitle(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return strings.TrimSpace(string(tx.Payee.Name))
	}
	name := strings.TrimSpace(string(tx.Name))
	if name == "" {
		name = strings.TrimSpace(string(tx.Memo))
	}
	if name == "" {
		name = "Imported transaction"
	}
	return name
}
