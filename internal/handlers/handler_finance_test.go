package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SscSPs/venue_ledger_app/internal/apperrors"
	"github.com/SscSPs/venue_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/venue_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/venue_ledger_app/internal/dto"
	"github.com/SscSPs/venue_ledger_app/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock FinanceService ---
type MockFinanceService struct {
	mock.Mock
}

func (m *MockFinanceService) Totals(ctx context.Context) (*domain.FinancialTotals, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialTotals), args.Error(1)
}
func (m *MockFinanceService) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}
func (m *MockFinanceService) ListIncome(ctx context.Context) ([]domain.Income, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Income), args.Error(1)
}
func (m *MockFinanceService) ExpenseCategories(ctx context.Context) []string {
	args := m.Called(ctx)
	return args.Get(0).([]string)
}
func (m *MockFinanceService) AddExpense(ctx context.Context, expense domain.Expense) (*domain.Expense, error) {
	args := m.Called(ctx, expense)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}
func (m *MockFinanceService) AddIncome(ctx context.Context, income domain.Income) (*domain.Income, error) {
	args := m.Called(ctx, income)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Income), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.FinanceSvcFacade = (*MockFinanceService)(nil)

// --- Test Suite ---
type FinanceHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockFinanceService *MockFinanceService
}

func (suite *FinanceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockFinanceService = new(MockFinanceService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterFinanceRoutes(v1, suite.mockFinanceService)
}

func (suite *FinanceHandlerTestSuite) TearDownTest() {
	suite.mockFinanceService.AssertExpectations(suite.T())
}

func (suite *FinanceHandlerTestSuite) post(url, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *FinanceHandlerTestSuite) get(url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *FinanceHandlerTestSuite) TestAddExpense_Created() {
	saved := &domain.Expense{ID: "exp-1", Date: "2024-01-02", Category: "Rent", Amount: decimal.NewFromInt(2000)}
	suite.mockFinanceService.On("AddExpense", mock.Anything, mock.MatchedBy(func(e domain.Expense) bool {
		return e.Date == "2024-01-02" && e.Category == "Rent" && e.Amount.Equal(decimal.NewFromInt(2000))
	})).Return(saved, nil).Once()

	w := suite.post("/api/v1/finance/expenses", `{"date":"2024-01-02","category":"Rent","amount":2000}`)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ExpenseCreatedResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(dto.ExpenseRecordedMessage, resp.Message)
	suite.Equal("exp-1", resp.Expense.ID)
	suite.Equal("2000.00", resp.Expense.AmountDisplay)
}

func (suite *FinanceHandlerTestSuite) TestAddExpense_EmptyDateReachesLedger() {
	suite.mockFinanceService.On("AddExpense", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewValidationError("date", "is required")).Once()

	w := suite.post("/api/v1/finance/expenses", `{"date":"","category":"Rent","amount":50}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("date", resp.Field)
}

func (suite *FinanceHandlerTestSuite) TestAddExpense_MalformedDateRejected() {
	w := suite.post("/api/v1/finance/expenses", `{"date":"Jan 2","category":"Rent","amount":50}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockFinanceService.AssertNotCalled(suite.T(), "AddExpense", mock.Anything, mock.Anything)
}

func (suite *FinanceHandlerTestSuite) TestAddIncome_Created() {
	saved := &domain.Income{ID: "inc-1", Date: "2024-01-01", Description: "Advance", Amount: decimal.NewFromInt(5000)}
	suite.mockFinanceService.On("AddIncome", mock.Anything, mock.Anything).Return(saved, nil).Once()

	w := suite.post("/api/v1/finance/income", `{"date":"2024-01-01","description":"Advance","amount":"5000"}`)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.IncomeCreatedResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(dto.IncomeRecordedMessage, resp.Message)
	suite.Equal("Advance", resp.Income.Description)
}

func (suite *FinanceHandlerTestSuite) TestAddIncome_NonNumericAmountRejected() {
	w := suite.post("/api/v1/finance/income", `{"date":"2024-01-01","description":"Advance","amount":"five"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockFinanceService.AssertNotCalled(suite.T(), "AddIncome", mock.Anything, mock.Anything)
}

func (suite *FinanceHandlerTestSuite) TestSummary() {
	suite.mockFinanceService.On("Totals", mock.Anything).Return(&domain.FinancialTotals{
		TotalIncome:   decimal.NewFromInt(5000),
		TotalExpenses: decimal.NewFromInt(2000),
		NetProfit:     decimal.NewFromInt(3000),
	}, nil).Once()

	w := suite.get("/api/v1/finance/summary")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.FinancialSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.NetProfit.Equal(decimal.NewFromInt(3000)))
	suite.Equal("3000.00", resp.NetProfitDisplay)
}

func (suite *FinanceHandlerTestSuite) TestListEntries() {
	suite.mockFinanceService.On("ListExpenses", mock.Anything).Return([]domain.Expense{
		{ID: "e1", Date: "2024-01-02", Category: "Diesel", Amount: decimal.RequireFromString("12.345")},
	}, nil).Once()
	suite.mockFinanceService.On("ListIncome", mock.Anything).Return([]domain.Income{}, nil).Once()

	w := suite.get("/api/v1/finance/expenses")
	suite.Equal(http.StatusOK, w.Code)
	var expenses []dto.ExpenseResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &expenses))
	suite.Require().Len(expenses, 1)
	suite.Equal("12.35", expenses[0].AmountDisplay)

	w = suite.get("/api/v1/finance/income")
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *FinanceHandlerTestSuite) TestExpenseCategories() {
	suite.mockFinanceService.On("ExpenseCategories", mock.Anything).
		Return([]string{"Rent", "Workers Salary", "Diesel", "Maintenance"}).Once()

	w := suite.get("/api/v1/finance/expense-categories")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`["Rent","Workers Salary","Diesel","Maintenance"]`, w.Body.String())
}

// --- Run Test Suite ---
func TestFinanceHandler(t *testing.T) {
	suite.Run(t, new(FinanceHandlerTestSuite))
}
