package model

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		tx      Transaction
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid expense",
			tx: Transaction{
				Title:     "Groceries",
				Amount:    decimal.NewFromInt(250),
				Type:      TypeExpense,
				Category:  CategoryFood,
				AccountID: "acc-1",
				Date:      "2024-05-07",
			},
			wantErr: false,
		},
		{
			name: "valid income with notes",
			tx: Transaction{
				Title:     "Salary",
				Amount:    decimal.NewFromInt(50000),
				Type:      TypeIncome,
				Category:  CategoryIncomeSource,
				AccountID: "acc-1",
				Date:      "2024-05-01",
				Notes:     "May payroll",
			},
			wantErr: false,
		},
		{
			name: "empty title",
			tx: Transaction{
				Title:     "   ",
				Amount:    decimal.NewFromInt(10),
				Type:      TypeExpense,
				Category:  CategoryFood,
				AccountID: "acc-1",
				Date:      "2024-05-07",
			},
			wantErr: true,
			errMsg:  "title is required",
		},
		{
			name: "zero amount",
			tx: Transaction{
				Title:     "Groceries",
				Amount:    decimal.Zero,
				Type:      TypeExpense,
				Category:  CategoryFood,
				AccountID: "acc-1",
				Date:      "2024-05-07",
			},
			wantErr: true,
			errMsg:  "amount must be positive",
		},
		{
			name: "negative amount",
			tx: Transaction{
				Title:     "Groceries",
				Amount:    decimal.NewFromInt(-5),
				Type:      TypeExpense,
				Category:  CategoryFood,
				AccountID: "acc-1",
				Date:      "2024-05-07",
			},
			wantErr: true,
			errMsg:  "amount must be positive",
		},
		{
			name: "bad type",
			tx: Transaction{
				Title:     "Groceries",
				Amount:    decimal.NewFromInt(10),
				Type:      "TRANSFER",
				Category:  CategoryFood,
				AccountID: "acc-1",
				Date:      "2024-05-07",
			},
			wantErr: true,
			errMsg:  "invalid transaction type",
		},
		{
			name: "bad category",
			tx: Transaction{
				Title:     "Groceries",
				Amount:    decimal.NewFromInt(10),
				Type:      TypeExpense,
				Category:  "Gadgets",
				AccountID: "acc-1",
				Date:      "2024-05-07",
			},
			wantErr: true,
			errMsg:  "invalid category",
		},
		{
			name: "missing account",
			tx: Transaction{
				Title:    "Groceries",
				Amount:   decimal.NewFromInt(10),
				Type:     TypeExpense,
				Category: CategoryFood,
				Date:     "2024-05-07",
			},
			wantErr: true,
			errMsg:  "account is required",
		},
		{
			name: "bad date",
			tx: Transaction{
				Title:     "Groceries",
				Amount:    decimal.NewFromInt(10),
				Type:      TypeExpense,
				Category:  CategoryFood,
				AccountID: "acc-1",
				Date:      "07/05/2024",
			},
			wantErr: true,
			errMsg:  "invalid transaction date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errMsg)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestTransaction_Month(t *testing.T) {
	tx := Transaction{Date: "2024-05-07"}
	if got := tx.Month(); got != "2024-05" {
		t.Errorf("Month() = %q, want %q", got, "2024-05")
	}
}

func TestTransaction_GenerateHash(t *testing.T) {
	tx := Transaction{
		Title:     "Coffee",
		Amount:    decimal.NewFromFloat(4.50),
		Type:      TypeExpense,
		AccountID: "acc-1",
		Date:      "2024-05-07",
	}
	h1 := tx.GenerateHash()
	h2 := tx.GenerateHash()
	if h1 != h2 {
		t.Error("hash is not deterministic")
	}

	other := tx
	other.Amount = decimal.NewFromFloat(4.51)
	if other.GenerateHash() == h1 {
		t.Error("different amounts produced the same hash")
	}
}

func TestParseAccountType(t *testing.T) {
	tests := []struct {
		in      string
		want    AccountType
		wantErr bool
	}{
		{in: "cash", want: AccountTypeCash},
		{in: "BANK", want: AccountTypeBank},
		{in: " wallet ", want: AccountTypeWallet},
		{in: "Card", want: AccountTypeCard},
		{in: "crypto", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseAccountType(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseAccountType(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAccountType(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAccountType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseCategory(t *testing.T) {
	got, err := ParseCategory("income source")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != CategoryIncomeSource {
		t.Errorf("ParseCategory = %q, want %q", got, CategoryIncomeSource)
	}

	if _, err := ParseCategory("Rent"); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestBudgetCategories_ExcludesIncomeSource(t *testing.T) {
	for _, c := range BudgetCategories() {
		if c == CategoryIncomeSource {
			t.Fatal("BudgetCategories must not include Income Source")
		}
	}
	if len(BudgetCategories()) != len(Categories())-1 {
		t.Errorf("BudgetCategories() has %d entries, want %d", len(BudgetCategories()), len(Categories())-1)
	}
}
