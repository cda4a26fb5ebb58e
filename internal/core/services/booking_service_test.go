package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/venue_ledger_app/internal/apperrors"
	"github.com/SscSPs/venue_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/venue_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/venue_ledger_app/internal/core/services"
	"github.com/SscSPs/venue_ledger_app/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mock BookingRepository ---
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) FindBookingByDate(ctx context.Context, date domain.DateKey) (*domain.BookingRecord, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingRecord), args.Error(1)
}

func (m *MockBookingRepository) ListBookings(ctx context.Context) ([]domain.BookingRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingRecord), args.Error(1)
}

func (m *MockBookingRepository) SaveBooking(ctx context.Context, booking domain.BookingRecord) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) DeleteBooking(ctx context.Context, date domain.DateKey) error {
	args := m.Called(ctx, date)
	return args.Error(0)
}

// --- Test Suite ---
type BookingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockBookingRepository
	service  portssvc.BookingSvcFacade
	date     time.Time
}

func (suite *BookingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockBookingRepository)
	suite.service = services.NewBookingService(suite.mockRepo)
	suite.date = time.Date(2024, time.June, 15, 14, 0, 0, 0, time.UTC)
}

func (suite *BookingServiceTestSuite) TestUpsertBooking_NewDate() {
	ctx := context.Background()
	details := domain.BookingDetails{
		ClientName:  "Nisha",
		TotalAmount: decimal.NewFromInt(100),
		AmountPaid:  decimal.NewFromInt(40),
	}

	suite.mockRepo.On("FindBookingByDate", ctx, domain.DateKey("2024-06-15")).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveBooking", ctx, mock.MatchedBy(func(b domain.BookingRecord) bool {
		return b.Key() == "2024-06-15" && b.ClientName == "Nisha" && b.PaymentStatus == domain.PaymentPartial
	})).Return(nil).Once()

	record, err := suite.service.UpsertBooking(ctx, suite.date, details)

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentPartial, record.PaymentStatus)
	suite.True(decimal.NewFromInt(60).Equal(record.RemainingAmount()))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestUpsertBooking_ValidationErrorDoesNotTouchRepo() {
	ctx := context.Background()

	record, err := suite.service.UpsertBooking(ctx, suite.date, domain.BookingDetails{ClientName: " "})

	suite.Require().Error(err)
	suite.Nil(record)
	suite.ErrorIs(err, apperrors.ErrValidation)
	field, _ := apperrors.FieldOf(err)
	suite.Equal("clientName", field)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveBooking", mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindBookingByDate", mock.Anything, mock.Anything)
}

func (suite *BookingServiceTestSuite) TestUpsertBooking_ZeroDate() {
	_, err := suite.service.UpsertBooking(context.Background(), time.Time{}, domain.BookingDetails{ClientName: "Nisha"})

	field, ok := apperrors.FieldOf(err)
	suite.Require().True(ok)
	suite.Equal("date", field)
}

func (suite *BookingServiceTestSuite) TestUpsertBooking_LookupErrorStillSaves() {
	ctx := context.Background()
	suite.mockRepo.On("FindBookingByDate", ctx, domain.DateKey("2024-06-15")).Return(nil, assert.AnError).Once()
	suite.mockRepo.On("SaveBooking", ctx, mock.MatchedBy(func(b domain.BookingRecord) bool {
		return b.ClientName == "Nisha" && b.Key() == domain.DateKey("2024-06-15")
	})).Return(nil).Once()

	record, err := suite.service.UpsertBooking(ctx, suite.date, domain.BookingDetails{ClientName: "Nisha"})

	suite.Require().NoError(err)
	suite.Require().NotNil(record)
	suite.Equal(domain.PaymentPaid, record.PaymentStatus)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestUpsertBooking_SaveError() {
	ctx := context.Background()
	suite.mockRepo.On("FindBookingByDate", ctx, domain.DateKey("2024-06-15")).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveBooking", ctx, mock.AnythingOfType("domain.BookingRecord")).Return(assert.AnError).Once()

	record, err := suite.service.UpsertBooking(ctx, suite.date, domain.BookingDetails{ClientName: "Nisha"})

	suite.Require().Error(err)
	suite.Nil(record)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestGetBooking_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindBookingByDate", ctx, domain.DateKey("2024-06-15")).Return(nil, apperrors.ErrNotFound).Once()

	record, err := suite.service.GetBooking(ctx, suite.date)

	suite.Nil(record)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestIsBooked() {
	ctx := context.Background()
	suite.mockRepo.On("FindBookingByDate", ctx, domain.DateKey("2024-06-15")).Return(&domain.BookingRecord{}, nil).Once()
	suite.mockRepo.On("FindBookingByDate", ctx, domain.DateKey("2024-06-16")).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindBookingByDate", ctx, domain.DateKey("2024-06-17")).Return(nil, assert.AnError).Once()

	booked, err := suite.service.IsBooked(ctx, suite.date)
	suite.NoError(err)
	suite.True(booked)

	booked, err = suite.service.IsBooked(ctx, suite.date.AddDate(0, 0, 1))
	suite.NoError(err)
	suite.False(booked)

	_, err = suite.service.IsBooked(ctx, suite.date.AddDate(0, 0, 2))
	suite.ErrorIs(err, assert.AnError)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestDeleteBooking() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteBooking", ctx, domain.DateKey("2024-06-15")).Return(nil).Once()

	suite.NoError(suite.service.DeleteBooking(ctx, suite.date))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestListBookings_Empty() {
	ctx := context.Background()
	suite.mockRepo.On("ListBookings", ctx).Return(nil, nil).Once()

	bookings, err := suite.service.ListBookings(ctx)

	suite.Require().NoError(err)
	suite.NotNil(bookings)
	suite.Empty(bookings)
}

func (suite *BookingServiceTestSuite) TestBookingSummary_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("ListBookings", ctx).Return(nil, assert.AnError).Once()

	summary, err := suite.service.BookingSummary(ctx)

	suite.Nil(summary)
	suite.ErrorIs(err, assert.AnError)
}

// --- Run Suite ---
func TestBookingService(t *testing.T) {
	suite.Run(t, new(BookingServiceTestSuite))
}

// The properties below run against the in-memory store used in production.

func newMemoryBookingService() portssvc.BookingSvcFacade {
	return services.NewBookingService(memory.NewRepositoryProvider().BookingRepo)
}

func TestBookingLedger_UpsertThenGetMatchesDerivation(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryBookingService()
	day := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)

	amounts := [][2]int64{{100, 100}, {100, 40}, {100, 0}, {100, 150}, {0, 0}, {250, -20}}
	for i, a := range amounts {
		date := day.AddDate(0, 0, i)
		total, paid := decimal.NewFromInt(a[0]), decimal.NewFromInt(a[1])

		_, err := svc.UpsertBooking(ctx, date, domain.BookingDetails{ClientName: "Client", TotalAmount: total, AmountPaid: paid})
		require.NoError(t, err)

		got, err := svc.GetBooking(ctx, date)
		require.NoError(t, err)
		assert.Equal(t, domain.DerivePaymentStatus(total, paid), got.PaymentStatus, "total=%d paid=%d", a[0], a[1])
	}
}

func TestBookingLedger_SecondUpsertFullyReplaces(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryBookingService()
	morning := time.Date(2024, time.August, 2, 9, 0, 0, 0, time.UTC)
	evening := time.Date(2024, time.August, 2, 21, 0, 0, 0, time.UTC)

	_, err := svc.UpsertBooking(ctx, morning, domain.BookingDetails{
		ClientName:        "First",
		TotalAmount:       decimal.NewFromInt(500),
		AmountPaid:        decimal.NewFromInt(500),
		AdditionalDetails: "Decorations included",
	})
	require.NoError(t, err)

	second, err := svc.UpsertBooking(ctx, evening, domain.BookingDetails{
		ClientName:  "Second",
		TotalAmount: decimal.NewFromInt(800),
		AmountPaid:  decimal.Zero,
	})
	require.NoError(t, err)

	got, err := svc.GetBooking(ctx, morning)
	require.NoError(t, err)
	assert.Equal(t, *second, *got)
	assert.Equal(t, "Second", got.ClientName)
	assert.Equal(t, domain.PaymentDue, got.PaymentStatus)
	assert.Empty(t, got.AdditionalDetails)

	all, err := svc.ListBookings(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestBookingLedger_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryBookingService()
	date := time.Date(2024, time.September, 9, 0, 0, 0, 0, time.UTC)

	require.NoError(t, svc.DeleteBooking(ctx, date))

	_, err := svc.UpsertBooking(ctx, date, domain.BookingDetails{ClientName: "Tara", TotalAmount: decimal.NewFromInt(10)})
	require.NoError(t, err)
	booked, err := svc.IsBooked(ctx, date)
	require.NoError(t, err)
	assert.True(t, booked)

	require.NoError(t, svc.DeleteBooking(ctx, date))
	require.NoError(t, svc.DeleteBooking(ctx, date))

	_, err = svc.GetBooking(ctx, date)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	booked, err = svc.IsBooked(ctx, date)
	require.NoError(t, err)
	assert.False(t, booked)
}

func TestBookingLedger_Summary(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryBookingService()
	day := time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.UpsertBooking(ctx, day, domain.BookingDetails{ClientName: "A", TotalAmount: decimal.NewFromInt(100), AmountPaid: decimal.NewFromInt(100)})
	require.NoError(t, err)
	_, err = svc.UpsertBooking(ctx, day.AddDate(0, 0, 1), domain.BookingDetails{ClientName: "B", TotalAmount: decimal.NewFromInt(300), AmountPaid: decimal.NewFromInt(50)})
	require.NoError(t, err)

	summary, err := svc.BookingSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.BookingCount)
	assert.Equal(t, "250", summary.RemainingAmount.String())
	assert.Equal(t, 1, summary.StatusCounts[domain.PaymentPaid])
	assert.Equal(t, 1, summary.StatusCounts[domain.PaymentPartial])
}
