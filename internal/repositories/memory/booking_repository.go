package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/SscSPs/venue_ledger_app/internal/apperrors"
	"github.com/SscSPs/venue_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/venue_ledger_app/internal/core/ports/repositories"
)

// BookingRepository keeps at most one booking per calendar day for the lifetime of the process.
type BookingRepository struct {
	mu       sync.RWMutex
	bookings map[domain.DateKey]domain.BookingRecord
}

// newBookingRepository creates an empty in-memory booking store.
func newBookingRepository() *BookingRepository {
	return &BookingRepository{
		bookings: make(map[domain.DateKey]domain.BookingRecord),
	}
}

// Ensure implementation matches interface
var _ portsrepo.BookingRepositoryFacade = (*BookingRepository)(nil)

// SaveBooking stores the record under its date key, replacing any previous record.
func (r *BookingRepository) SaveBooking(_ context.Context, booking domain.BookingRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[booking.Key()] = booking
	return nil
}

// FindBookingByDate retrieves the booking for a calendar day.
func (r *BookingRepository) FindBookingByDate(_ context.Context, date domain.DateKey) (*domain.BookingRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	booking, ok := r.bookings[date]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &booking, nil
}

// DeleteBooking removes the booking for a calendar day if present.
func (r *BookingRepository) DeleteBooking(_ context.Context, date domain.DateKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.bookings, date)
	return nil
}

// ListBookings returns all bookings ordered by date.
func (r *BookingRepository) ListBookings(_ context.Context) ([]domain.BookingRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.BookingRecord, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, b)
	}
	// YYYY-MM-DD keys sort chronologically.
	slices.SortFunc(out, func(a, b domain.BookingRecord) int {
		return strings.Compare(string(a.Key()), string(b.Key()))
	})
	return out, nil
}
