package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/venue_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/venue_ledger_app/internal/middleware"
	"github.com/SscSPs/venue_ledger_app/internal/utils/export"
	"github.com/gin-gonic/gin"
)

// exportHandler serves spreadsheet exports of both ledgers.
type exportHandler struct {
	bookingService portssvc.BookingReaderSvc
	financeService portssvc.FinanceReaderSvc
}

// RegisterExportRoutes registers the workbook export route.
func RegisterExportRoutes(rg *gin.RouterGroup, bookingService portssvc.BookingReaderSvc, financeService portssvc.FinanceReaderSvc) {
	h := &exportHandler{
		bookingService: bookingService,
		financeService: financeService,
	}
	rg.GET("/export", h.exportWorkbook)
}

// exportWorkbook godoc
// @Summary Export bookings and the financial ledger
// @Description Downloads an .xlsx workbook with Bookings, Income, Expenses and Summary sheets.
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} dto.ErrorResponse "Failed to export ledger"
// @Router /export [get]
func (h *exportHandler) exportWorkbook(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var snap export.LedgerSnapshot
	var err error
	if snap.Bookings, err = h.bookingService.ListBookings(ctx); err != nil {
		respondWithError(c, logger, err, "Failed to export ledger")
		return
	}
	if snap.Income, err = h.financeService.ListIncome(ctx); err != nil {
		respondWithError(c, logger, err, "Failed to export ledger")
		return
	}
	if snap.Expenses, err = h.financeService.ListExpenses(ctx); err != nil {
		respondWithError(c, logger, err, "Failed to export ledger")
		return
	}
	totals, err := h.financeService.Totals(ctx)
	if err != nil {
		respondWithError(c, logger, err, "Failed to export ledger")
		return
	}
	snap.Totals = *totals

	f, err := export.BuildWorkbook(snap)
	if err != nil {
		respondWithError(c, logger, err, "Failed to export ledger")
		return
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Warn("Failed to close workbook", slog.String("error", cerr.Error()))
		}
	}()

	buf, err := f.WriteToBuffer()
	if err != nil {
		respondWithError(c, logger, err, "Failed to write Excel file")
		return
	}

	fileName := fmt.Sprintf("venue_ledger_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())

	logger.Info("Ledger exported",
		slog.Int("bookings", len(snap.Bookings)),
		slog.Int("income_entries", len(snap.Income)),
		slog.Int("expense_entries", len(snap.Expenses)))
}
