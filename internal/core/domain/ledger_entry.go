package domain

import (
	"strings"

	"github.com/SscSPs/venue_ledger_app/internal/utils/validation"
	"github.com/shopspring/decimal"
)

// EntryType distinguishes the two financial ledger collections.
type EntryType string

const (
	EntryExpense EntryType = "EXPENSE"
	EntryIncome  EntryType = "INCOME"
)

// SuggestedExpenseCategories are offered to the expense form. Any non-blank
// category is accepted.
var SuggestedExpenseCategories = []string{"Rent", "Workers Salary", "Diesel", "Maintenance"}

// Expense is an outgoing ledger entry. Field order after ID is the validation order.
type Expense struct {
	ID       string          `json:"id"`
	Date     string          `json:"date" validate:"notblank"`
	Category string          `json:"category" validate:"notblank"`
	Amount   decimal.Decimal `json:"amount" validate:"decimal_gt0"`
}

// Type returns EntryExpense.
func (e Expense) Type() EntryType { return EntryExpense }

// Validate reports the first failing field in the order date, category, amount.
func (e Expense) Validate() error {
	return validation.Struct(e)
}

// Normalize trims the text fields before the entry is stored.
func (e Expense) Normalize() Expense {
	e.Date = strings.TrimSpace(e.Date)
	e.Category = strings.TrimSpace(e.Category)
	return e
}

// Income is an incoming ledger entry. Field order after ID is the validation order.
type Income struct {
	ID          string          `json:"id"`
	Date        string          `json:"date" validate:"notblank"`
	Description string          `json:"description" validate:"notblank"`
	Amount      decimal.Decimal `json:"amount" validate:"decimal_gt0"`
}

// Type returns EntryIncome.
func (i Income) Type() EntryType { return EntryIncome }

// Validate reports the first failing field in the order date, description, amount.
func (i Income) Validate() error {
	return validation.Struct(i)
}

// Normalize trims the text fields before the entry is stored.
func (i Income) Normalize() Income {
	i.Date = strings.TrimSpace(i.Date)
	i.Description = strings.TrimSpace(i.Description)
	return i
}
