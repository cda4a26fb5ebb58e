package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/venue_ledger_app/internal/apperrors"
	"github.com/SscSPs/venue_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/venue_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/venue_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/venue_ledger_app/internal/utils/accounting"
)

// bookingService implements the booking ledger on top of a BookingRepositoryFacade.
type bookingService struct {
	BaseService
	// mu serializes UpsertBooking and DeleteBooking so a date's record is replaced or
	// removed by one writer at a time.
	mu          sync.Mutex
	bookingRepo portsrepo.BookingRepositoryFacade
}

// NewBookingService creates a new booking ledger service.
func NewBookingService(bookingRepo portsrepo.BookingRepositoryFacade) portssvc.BookingSvcFacade {
	return &bookingService{
		bookingRepo: bookingRepo,
	}
}

func (s *bookingService) UpsertBooking(ctx context.Context, date time.Time, details domain.BookingDetails) (*domain.BookingRecord, error) {
	record, err := domain.NewBookingRecord(date, details)
	if err != nil {
		s.LogDebug(ctx, "Rejected booking details", slog.String("error", err.Error()))
		return nil, err
	}
	key := record.Key()

	s.mu.Lock()
	defer s.mu.Unlock()

	// The lookup only labels the log entry; the save replaces any record regardless.
	_, err = s.bookingRepo.FindBookingByDate(ctx, key)
	replaced := err == nil
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.GetLogger(ctx).Warn("Could not check for an existing booking",
			slog.String("date", key.String()), slog.String("error", err.Error()))
	}

	if err := s.bookingRepo.SaveBooking(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to save booking", slog.String("date", key.String()))
		return nil, fmt.Errorf("failed to save booking for %s: %w", key, err)
	}

	s.LogInfo(ctx, "Booking saved",
		slog.String("date", key.String()),
		slog.String("payment_status", string(record.PaymentStatus)),
		slog.Bool("replaced", replaced))
	return &record, nil
}

func (s *bookingService) GetBooking(ctx context.Context, date time.Time) (*domain.BookingRecord, error) {
	if date.IsZero() {
		return nil, apperrors.NewValidationError("date", "is required")
	}
	key := domain.NewDateKey(date)

	booking, err := s.bookingRepo.FindBookingByDate(ctx, key)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("no booking on %s: %w", key, apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to get booking", slog.String("date", key.String()))
		return nil, fmt.Errorf("failed to get booking for %s: %w", key, err)
	}
	return booking, nil
}

func (s *bookingService) IsBooked(ctx context.Context, date time.Time) (bool, error) {
	_, err := s.GetBooking(ctx, date)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		return false, nil
	}
	return false, err
}

func (s *bookingService) DeleteBooking(ctx context.Context, date time.Time) error {
	if date.IsZero() {
		return apperrors.NewValidationError("date", "is required")
	}
	key := domain.NewDateKey(date)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.bookingRepo.DeleteBooking(ctx, key); err != nil {
		s.LogError(ctx, err, "Failed to delete booking", slog.String("date", key.String()))
		return fmt.Errorf("failed to delete booking for %s: %w", key, err)
	}

	s.LogInfo(ctx, "Booking deleted", slog.String("date", key.String()))
	return nil
}

func (s *bookingService) ListBookings(ctx context.Context) ([]domain.BookingRecord, error) {
	bookings, err := s.bookingRepo.ListBookings(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bookings")
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	if bookings == nil {
		return []domain.BookingRecord{}, nil
	}
	return bookings, nil
}

func (s *bookingService) BookingSummary(ctx context.Context) (*domain.BookingSummary, error) {
	bookings, err := s.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	summary := accounting.SummarizeBookings(bookings)
	return &summary, nil
}
