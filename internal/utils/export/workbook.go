package export

import (
	"errors"
	"fmt"

	"github.com/SscSPs/venue_ledger_app/internal/core/domain"
	"github.com/SscSPs/venue_ledger_app/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Sheet names in the exported workbook.
const (
	SheetBookings = "Bookings"
	SheetIncome   = "Income"
	SheetExpenses = "Expenses"
	SheetSummary  = "Summary"
)

// ContentType is the MIME type of an .xlsx workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// LedgerSnapshot is everything written to one workbook.
type LedgerSnapshot struct {
	Bookings []domain.BookingRecord
	Income   []domain.Income
	Expenses []domain.Expense
	Totals   domain.FinancialTotals
}

// BuildWorkbook writes the bookings, both ledger collections and the profit summary
// into separate sheets. Amounts are written as numbers rounded to two places.
// The workbook is closed when any sheet fails to build.
func BuildWorkbook(snap LedgerSnapshot) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := fillWorkbook(f, snap); err != nil {
		if cerr := f.Close(); cerr != nil {
			return nil, errors.Join(err, fmt.Errorf("close workbook: %w", cerr))
		}
		return nil, err
	}
	return f, nil
}

func fillWorkbook(f *excelize.File, snap LedgerSnapshot) error {
	// NewFile starts with "Sheet1"; rename it so no empty sheet is left behind.
	if err := f.SetSheetName("Sheet1", SheetBookings); err != nil {
		return fmt.Errorf("rename default sheet: %w", err)
	}
	for _, name := range []string{SheetIncome, SheetExpenses, SheetSummary} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	bookingRows := make([][]any, 0, len(snap.Bookings))
	for _, b := range snap.Bookings {
		bookingRows = append(bookingRows, []any{
			b.Key().String(), b.ClientName, amount(b.TotalAmount), amount(b.AmountPaid),
			amount(b.RemainingAmount()), string(b.PaymentStatus), b.AdditionalDetails,
		})
	}
	if err := writeTable(f, SheetBookings,
		[]string{"Date", "Client", "Total", "Paid", "Remaining", "Status", "Details"}, bookingRows); err != nil {
		return err
	}

	incomeRows := make([][]any, 0, len(snap.Income))
	for _, i := range snap.Income {
		incomeRows = append(incomeRows, []any{i.Date, i.Description, amount(i.Amount)})
	}
	if err := writeTable(f, SheetIncome, []string{"Date", "Description", "Amount"}, incomeRows); err != nil {
		return err
	}

	expenseRows := make([][]any, 0, len(snap.Expenses))
	for _, e := range snap.Expenses {
		expenseRows = append(expenseRows, []any{e.Date, e.Category, amount(e.Amount)})
	}
	if err := writeTable(f, SheetExpenses, []string{"Date", "Category", "Amount"}, expenseRows); err != nil {
		return err
	}

	summaryRows := [][]any{
		{"Total Income", amount(snap.Totals.TotalIncome)},
		{"Total Expenses", amount(snap.Totals.TotalExpenses)},
		{"Net Profit", amount(snap.Totals.NetProfit)},
	}
	if err := writeTable(f, SheetSummary, []string{"Metric", "Amount"}, summaryRows); err != nil {
		return err
	}

	return nil
}

func writeTable(f *excelize.File, sheet string, headers []string, rows [][]any) error {
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("write %s header: %w", sheet, err)
		}
	}
	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, r+2, err)
		}
	}
	return nil
}

func amount(d decimal.Decimal) float64 {
	return d.Round(int32(utils.DisplayPrecision)).InexactFloat64()
}
