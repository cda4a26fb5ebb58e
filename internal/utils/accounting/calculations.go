package accounting

import (
	"github.com/SscSPs/venue_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SumExpenses folds the amounts of all expenses.
func SumExpenses(expenses []domain.Expense) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range expenses {
		sum = sum.Add(e.Amount)
	}
	return sum
}

// SumIncome folds the amounts of all income entries.
func SumIncome(income []domain.Income) decimal.Decimal {
	sum := decimal.Zero
	for _, i := range income {
		sum = sum.Add(i.Amount)
	}
	return sum
}

// CalculateTotals recomputes the profit and loss summary from the full collections.
func CalculateTotals(income []domain.Income, expenses []domain.Expense) domain.FinancialTotals {
	totalIncome := SumIncome(income)
	totalExpenses := SumExpenses(expenses)
	return domain.FinancialTotals{
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		NetProfit:     totalIncome.Sub(totalExpenses),
	}
}

// SummarizeBookings aggregates booked amounts. RemainingAmount is the sum of
// per-booking remaining amounts, so overpayments reduce it.
func SummarizeBookings(bookings []domain.BookingRecord) domain.BookingSummary {
	summary := domain.BookingSummary{
		BookingCount:    len(bookings),
		TotalAmount:     decimal.Zero,
		AmountPaid:      decimal.Zero,
		RemainingAmount: decimal.Zero,
		StatusCounts: map[domain.PaymentStatus]int{
			domain.PaymentPaid:    0,
			domain.PaymentPartial: 0,
			domain.PaymentDue:     0,
		},
	}
	for _, b := range bookings {
		summary.TotalAmount = summary.TotalAmount.Add(b.TotalAmount)
		summary.AmountPaid = summary.AmountPaid.Add(b.AmountPaid)
		summary.StatusCounts[b.PaymentStatus]++
	}
	summary.RemainingAmount = summary.TotalAmount.Sub(summary.AmountPaid)
	return summary
}
