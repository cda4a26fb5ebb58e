package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/SscSPs/venue_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/venue_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/venue_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/venue_ledger_app/internal/utils"
	"github.com/SscSPs/venue_ledger_app/internal/utils/accounting"
	"github.com/google/uuid"
)

// financeService implements the append-only income and expense ledger.
type financeService struct {
	BaseService
	mu         sync.Mutex
	ledgerRepo portsrepo.LedgerRepositoryFacade
	newID      func() string
}

// FinanceServiceOption is a functional option for configuring the finance service
type FinanceServiceOption func(*financeService)

// WithEntryIDGenerator overrides how ledger entry IDs are generated.
func WithEntryIDGenerator(gen func() string) FinanceServiceOption {
	return func(s *financeService) {
		s.newID = gen
	}
}

// NewFinanceService creates a new finance service with the provided options
func NewFinanceService(ledgerRepo portsrepo.LedgerRepositoryFacade, options ...FinanceServiceOption) portssvc.FinanceSvcFacade {
	svc := &financeService{
		ledgerRepo: ledgerRepo,
		newID:      uuid.NewString,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

func (s *financeService) AddExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error) {
	if err := expense.Validate(); err != nil {
		s.LogDebug(ctx, "Rejected ledger entry", slog.String("entry_type", string(expense.Type())), slog.String("error", err.Error()))
		return nil, err
	}
	expense = expense.Normalize()
	expense.ID = s.newID()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ledgerRepo.AppendExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to append expense", slog.String("category", expense.Category))
		return nil, fmt.Errorf("failed to add expense: %w", err)
	}

	s.LogInfo(ctx, "Expense recorded",
		slog.String("entry_type", string(expense.Type())),
		slog.String("expense_id", expense.ID),
		slog.String("date", expense.Date),
		slog.String("category", expense.Category),
		slog.String("amount", utils.FormatAmount(expense.Amount)))
	return &expense, nil
}

func (s *financeService) AddIncome(ctx context.Context, income domain.Income) (*domain.Income, error) {
	if err := income.Validate(); err != nil {
		s.LogDebug(ctx, "Rejected ledger entry", slog.String("entry_type", string(income.Type())), slog.String("error", err.Error()))
		return nil, err
	}
	income = income.Normalize()
	income.ID = s.newID()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ledgerRepo.AppendIncome(ctx, income); err != nil {
		s.LogError(ctx, err, "Failed to append income", slog.String("description", income.Description))
		return nil, fmt.Errorf("failed to add income: %w", err)
	}

	s.LogInfo(ctx, "Income recorded",
		slog.String("entry_type", string(income.Type())),
		slog.String("income_id", income.ID),
		slog.String("date", income.Date),
		slog.String("amount", utils.FormatAmount(income.Amount)))
	return &income, nil
}

// Totals folds both collections on every call; nothing is cached between calls.
func (s *financeService) Totals(ctx context.Context) (*domain.FinancialTotals, error) {
	income, err := s.ListIncome(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}

	totals := accounting.CalculateTotals(income, expenses)
	s.LogDebug(ctx, "Totals computed",
		slog.Int("income_entries", len(income)),
		slog.Int("expense_entries", len(expenses)),
		slog.String("net_profit", utils.FormatAmount(totals.NetProfit)))
	return &totals, nil
}

func (s *financeService) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	expenses, err := s.ledgerRepo.ListExpenses(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses")
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

func (s *financeService) ListIncome(ctx context.Context) ([]domain.Income, error) {
	income, err := s.ledgerRepo.ListIncome(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list income")
		return nil, fmt.Errorf("failed to list income: %w", err)
	}
	if income == nil {
		return []domain.Income{}, nil
	}
	return income, nil
}

func (s *financeService) ExpenseCategories(_ context.Context) []string {
	return slices.Clone(domain.SuggestedExpenseCategories)
}
