package model

import (
	"fmt"
	"strings"
)

// Category classifies a transaction's purpose. The set is fixed.
type Category string

const (
	// CategoryFood covers groceries and dining.
	CategoryFood Category = "Food"
	// CategoryTravel covers transport and trips.
	CategoryTravel Category = "Travel"
	// CategoryBills covers recurring bills and utilities.
	CategoryBills Category = "Bills"
	// CategoryShopping covers retail purchases.
	CategoryShopping Category = "Shopping"
	// CategoryHealth covers medical and fitness spending.
	CategoryHealth Category = "Health"
	// CategoryEntertainment covers leisure spending.
	CategoryEntertainment Category = "Entertainment"
	// CategoryIncomeSource is the conventional category for income transactions.
	CategoryIncomeSource Category = "Income Source"
	// CategoryOther is the catch-all.
	CategoryOther Category = "Other"
)

// Categories lists every valid category, in display order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTravel,
		CategoryBills,
		CategoryShopping,
		CategoryHealth,
		CategoryEntertainment,
		CategoryIncomeSource,
		CategoryOther,
	}
}

// BudgetCategories lists the categories a budget may target.
// Income Source is excluded: budgets are spending ceilings.
func BudgetCategories() []Category {
	var cats []Category
	for _, c := range Categories() {
		if c != CategoryIncomeSource {
			cats = append(cats, c)
		}
	}
	return cats
}

// ParseCategory converts a string to a Category, ignoring case.
func ParseCategory(s string) (Category, error) {
	trimmed := strings.TrimSpace(s)
	for _, c := range Categories() {
		if strings.EqualFold(trimmed, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid category %q", s)
}
