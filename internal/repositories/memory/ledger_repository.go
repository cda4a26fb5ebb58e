package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/SscSPs/venue_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/venue_ledger_app/internal/core/ports/repositories"
)

// LedgerRepository holds the append-only expense and income collections.
type LedgerRepository struct {
	mu       sync.RWMutex
	expenses []domain.Expense
	income   []domain.Income
}

// newLedgerRepository creates an empty in-memory ledger.
func newLedgerRepository() *LedgerRepository {
	return &LedgerRepository{}
}

// Ensure implementation matches interface
var _ portsrepo.LedgerRepositoryFacade = (*LedgerRepository)(nil)

func (r *LedgerRepository) AppendExpense(_ context.Context, expense domain.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.expenses = append(r.expenses, expense)
	return nil
}

func (r *LedgerRepository) AppendIncome(_ context.Context, income domain.Income) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.income = append(r.income, income)
	return nil
}

// ListExpenses returns a copy of the expenses in insertion order.
func (r *LedgerRepository) ListExpenses(_ context.Context) ([]domain.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.expenses == nil {
		return []domain.Expense{}, nil
	}
	return slices.Clone(r.expenses), nil
}

// ListIncome returns a copy of the income entries in insertion order.
func (r *LedgerRepository) ListIncome(_ context.Context) ([]domain.Income, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.income == nil {
		return []domain.Income{}, nil
	}
	return slices.Clone(r.income), nil
}
