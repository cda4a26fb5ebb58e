package repositories

import (
	"context"

	"github.com/SscSPs/venue_ledger_app/internal/core/domain"
)

// LedgerReader defines read operations for the income and expense collections
type LedgerReader interface {
	// ListExpenses returns all expenses in the order they were appended.
	ListExpenses(ctx context.Context) ([]domain.Expense, error)

	// ListIncome returns all income entries in the order they were appended.
	ListIncome(ctx context.Context) ([]domain.Income, error)
}

// LedgerWriter defines append operations. Entries are never updated or removed.
type LedgerWriter interface {
	AppendExpense(ctx context.Context, expense domain.Expense) error
	AppendIncome(ctx context.Context, income domain.Income) error
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
