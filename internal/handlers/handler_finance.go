package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/venue_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/venue_ledger_app/internal/dto"
	"github.com/SscSPs/venue_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// financeHandler handles HTTP requests for the income and expense ledger.
type financeHandler struct {
	financeService portssvc.FinanceSvcFacade
}

// newFinanceHandler creates a new financeHandler.
func newFinanceHandler(fs portssvc.FinanceSvcFacade) *financeHandler {
	return &financeHandler{
		financeService: fs,
	}
}

// RegisterFinanceRoutes registers routes related to the financial ledger.
func RegisterFinanceRoutes(rg *gin.RouterGroup, financeService portssvc.FinanceSvcFacade) {
	h := newFinanceHandler(financeService)

	finance := rg.Group("/finance")
	{
		finance.POST("/expenses", h.addExpense)
		finance.GET("/expenses", h.listExpenses)
		finance.POST("/income", h.addIncome)
		finance.GET("/income", h.listIncome)
		finance.GET("/summary", h.getSummary)
		finance.GET("/expense-categories", h.listExpenseCategories)
	}
}

// addExpense godoc
// @Summary Record an expense
// @Description Appends an expense. Fields are checked in the order date, category, amount and the first failure is reported.
// @Tags finance
// @Accept  json
// @Produce  json
// @Param   expense body dto.CreateExpenseRequest true "Expense"
// @Success 201 {object} dto.ExpenseCreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Failed to record expense"
// @Router /finance/expenses [post]
func (h *financeHandler) addExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	if !checkEntryDate(c, logger, req.Date) {
		return
	}

	expense, err := h.financeService.AddExpense(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondWithError(c, logger, err, "Failed to record expense")
		return
	}

	logger.Info("Expense created successfully", slog.String("expense_id", expense.ID))
	c.JSON(http.StatusCreated, dto.ExpenseCreatedResponse{
		Message: dto.ExpenseRecordedMessage,
		Expense: dto.ToExpenseResponse(expense),
	})
}

// addIncome godoc
// @Summary Record income
// @Description Appends an income entry. Fields are checked in the order date, description, amount and the first failure is reported.
// @Tags finance
// @Accept  json
// @Produce  json
// @Param   income body dto.CreateIncomeRequest true "Income"
// @Success 201 {object} dto.IncomeCreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Failed to record income"
// @Router /finance/income [post]
func (h *financeHandler) addIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddIncome", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	if !checkEntryDate(c, logger, req.Date) {
		return
	}

	income, err := h.financeService.AddIncome(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondWithError(c, logger, err, "Failed to record income")
		return
	}

	logger.Info("Income created successfully", slog.String("income_id", income.ID))
	c.JSON(http.StatusCreated, dto.IncomeCreatedResponse{
		Message: dto.IncomeRecordedMessage,
		Income:  dto.ToIncomeResponse(income),
	})
}

// listExpenses godoc
// @Summary List expenses
// @Tags finance
// @Produce  json
// @Success 200 {array} dto.ExpenseResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to list expenses"
// @Router /finance/expenses [get]
func (h *financeHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	expenses, err := h.financeService.ListExpenses(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list expenses")
		return
	}

	c.JSON(http.StatusOK, dto.ToListExpenseResponse(expenses))
}

// listIncome godoc
// @Summary List income
// @Tags finance
// @Produce  json
// @Success 200 {array} dto.IncomeResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to list income"
// @Router /finance/income [get]
func (h *financeHandler) listIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	income, err := h.financeService.ListIncome(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list income")
		return
	}

	c.JSON(http.StatusOK, dto.ToListIncomeResponse(income))
}

// getSummary godoc
// @Summary Profit and loss summary
// @Description Total income, total expenses and net profit, recomputed from every entry.
// @Tags finance
// @Produce  json
// @Success 200 {object} dto.FinancialSummaryResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to compute totals"
// @Router /finance/summary [get]
func (h *financeHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	totals, err := h.financeService.Totals(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute totals")
		return
	}

	c.JSON(http.StatusOK, dto.ToFinancialSummaryResponse(totals))
}

// listExpenseCategories godoc
// @Summary Suggested expense categories
// @Tags finance
// @Produce  json
// @Success 200 {array} string
// @Router /finance/expense-categories [get]
func (h *financeHandler) listExpenseCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.financeService.ExpenseCategories(c.Request.Context()))
}
