package repositories

import (
	"context"

	"github.com/SscSPs/venue_ledger_app/internal/core/domain"
)

// BookingReader defines read operations for booking data
type BookingReader interface {
	// FindBookingByDate retrieves the booking for a calendar day.
	// Returns apperrors.ErrNotFound when the day is not booked.
	FindBookingByDate(ctx context.Context, date domain.DateKey) (*domain.BookingRecord, error)

	// ListBookings retrieves all bookings ordered by date.
	ListBookings(ctx context.Context) ([]domain.BookingRecord, error)
}

// BookingWriter defines write operations for booking data
type BookingWriter interface {
	// SaveBooking stores the record under its date key, replacing any previous record.
	SaveBooking(ctx context.Context, booking domain.BookingRecord) error

	// DeleteBooking removes the booking for a calendar day. Deleting an absent day is not an error.
	DeleteBooking(ctx context.Context, date domain.DateKey) error
}

// BookingRepositoryFacade combines all booking-related repository interfaces
type BookingRepositoryFacade interface {
	BookingReader
	BookingWriter
}
