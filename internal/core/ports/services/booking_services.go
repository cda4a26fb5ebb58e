package services

import (
	"context"
	"time"

	"github.com/SscSPs/venue_ledger_app/internal/core/domain"
)

// BookingReaderSvc defines read operations for bookings
type BookingReaderSvc interface {
	// GetBooking retrieves the booking for the calendar day of date.
	// Returns apperrors.ErrNotFound when the day is free.
	GetBooking(ctx context.Context, date time.Time) (*domain.BookingRecord, error)

	// IsBooked reports whether the calendar day of date holds a booking.
	IsBooked(ctx context.Context, date time.Time) (bool, error)

	// ListBookings retrieves all bookings ordered by date.
	ListBookings(ctx context.Context) ([]domain.BookingRecord, error)

	// BookingSummary aggregates booked, paid and remaining amounts.
	BookingSummary(ctx context.Context) (*domain.BookingSummary, error)
}

// BookingWriterSvc defines write operations for bookings
type BookingWriterSvc interface {
	// UpsertBooking validates details, derives the payment status and stores the
	// record for the calendar day of date, fully replacing any previous record.
	UpsertBooking(ctx context.Context, date time.Time, details domain.BookingDetails) (*domain.BookingRecord, error)

	// DeleteBooking frees the calendar day of date. Freeing a free day is a no-op.
	DeleteBooking(ctx context.Context, date time.Time) error
}

// BookingSvcFacade combines all booking-related service interfaces
type BookingSvcFacade interface {
	BookingReaderSvc
	BookingWriterSvc
}
