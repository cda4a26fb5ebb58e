package services

import (
	"context"

	"github.com/SscSPs/venue_ledger_app/internal/core/domain"
)

// FinanceReaderSvc defines read operations for the financial ledger
type FinanceReaderSvc interface {
	// Totals recomputes income, expenses and net profit from all entries.
	Totals(ctx context.Context) (*domain.FinancialTotals, error)

	// ListExpenses returns expenses in insertion order.
	ListExpenses(ctx context.Context) ([]domain.Expense, error)

	// ListIncome returns income entries in insertion order.
	ListIncome(ctx context.Context) ([]domain.Income, error)

	// ExpenseCategories returns the categories suggested to the expense form.
	ExpenseCategories(ctx context.Context) []string
}

// FinanceWriterSvc defines append operations for the financial ledger
type FinanceWriterSvc interface {
	// AddExpense validates and appends an expense. A validation failure leaves the ledger unchanged.
	AddExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error)

	// AddIncome validates and appends an income entry. A validation failure leaves the ledger unchanged.
	AddIncome(ctx context.Context, income domain.Income) (*domain.Income, error)
}

// FinanceSvcFacade combines all finance-related service interfaces
type FinanceSvcFacade interface {
	FinanceReaderSvc
	FinanceWriterSvc
}
