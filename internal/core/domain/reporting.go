package domain

import (
	"github.com/shopspring/decimal"
)

// FinancialTotals is the profit and loss summary of the financial ledger.
type FinancialTotals struct {
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetProfit     decimal.Decimal `json:"netProfit"` // TotalIncome - TotalExpenses
}
