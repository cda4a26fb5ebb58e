package dto

import (
	"github.com/SscSPs/venue_ledger_app/internal/core/domain"
	"github.com/SscSPs/venue_ledger_app/internal/utils"
	"github.com/shopspring/decimal"
)

const (
	ExpenseRecordedMessage = "Expense recorded successfully!"
	IncomeRecordedMessage  = "Income recorded successfully!"
)

// CreateExpenseRequest defines the data needed to record an expense.
type CreateExpenseRequest struct {
	Date     string          `json:"date" example:"2024-01-02"`
	Category string          `json:"category" example:"Rent"`
	Amount   decimal.Decimal `json:"amount" swaggertype:"string" example:"2000"`
}

// ToDomain converts the request into a ledger expense.
func (r CreateExpenseRequest) ToDomain() domain.Expense {
	return domain.Expense{Date: r.Date, Category: r.Category, Amount: r.Amount}
}

// CreateIncomeRequest defines the data needed to record income.
type CreateIncomeRequest struct {
	Date        string          `json:"date" example:"2024-01-01"`
	Description string          `json:"description" example:"Advance"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string" example:"5000"`
}

// ToDomain converts the request into a ledger income entry.
func (r CreateIncomeRequest) ToDomain() domain.Income {
	return domain.Income{Date: r.Date, Description: r.Description, Amount: r.Amount}
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"string"`
	AmountDisplay string          `json:"amountDisplay"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:            e.ID,
		Date:          e.Date,
		Category:      e.Category,
		Amount:        e.Amount,
		AmountDisplay: utils.FormatAmount(e.Amount),
	}
}

// ToListExpenseResponse converts a slice of domain.Expense to ExpenseResponse DTOs
func ToListExpenseResponse(expenses []domain.Expense) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		res[i] = ToExpenseResponse(&expenses[i])
	}
	return res
}

// IncomeResponse defines the data returned for an income entry.
type IncomeResponse struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount" swaggertype:"string"`
	AmountDisplay string          `json:"amountDisplay"`
}

// ToIncomeResponse converts a domain.Income to IncomeResponse DTO
func ToIncomeResponse(i *domain.Income) IncomeResponse {
	return IncomeResponse{
		ID:            i.ID,
		Date:          i.Date,
		Description:   i.Description,
		Amount:        i.Amount,
		AmountDisplay: utils.FormatAmount(i.Amount),
	}
}

// ToListIncomeResponse converts a slice of domain.Income to IncomeResponse DTOs
func ToListIncomeResponse(income []domain.Income) []IncomeResponse {
	res := make([]IncomeResponse, len(income))
	for i := range income {
		res[i] = ToIncomeResponse(&income[i])
	}
	return res
}

// ExpenseCreatedResponse is returned after an expense is recorded.
type ExpenseCreatedResponse struct {
	Message string          `json:"message"`
	Expense ExpenseResponse `json:"expense"`
}

// IncomeCreatedResponse is returned after income is recorded.
type IncomeCreatedResponse struct {
	Message string         `json:"message"`
	Income  IncomeResponse `json:"income"`
}

// FinancialSummaryResponse is the profit and loss summary.
type FinancialSummaryResponse struct {
	TotalIncome          decimal.Decimal `json:"totalIncome" swaggertype:"string"`
	TotalExpenses        decimal.Decimal `json:"totalExpenses" swaggertype:"string"`
	NetProfit            decimal.Decimal `json:"netProfit" swaggertype:"string"`
	TotalIncomeDisplay   string          `json:"totalIncomeDisplay"`
	TotalExpensesDisplay string          `json:"totalExpensesDisplay"`
	NetProfitDisplay     string          `json:"netProfitDisplay"`
}

// ToFinancialSummaryResponse converts domain.FinancialTotals to its DTO
func ToFinancialSummaryResponse(t *domain.FinancialTotals) FinancialSummaryResponse {
	return FinancialSummaryResponse{
		TotalIncome:          t.TotalIncome,
		TotalExpenses:        t.TotalExpenses,
		NetProfit:            t.NetProfit,
		TotalIncomeDisplay:   utils.FormatAmount(t.TotalIncome),
		TotalExpensesDisplay: utils.FormatAmount(t.TotalExpenses),
		NetProfitDisplay:     utils.FormatAmount(t.NetProfit),
	}
}

// ErrorResponse is the body of every failed request. Field is set for validation failures.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}
