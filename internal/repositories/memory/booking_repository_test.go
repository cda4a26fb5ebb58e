package memory

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/venue_ledger_app/internal/apperrors"
	"github.com/SscSPs/venue_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func booking(day int, client string) domain.BookingRecord {
	return domain.BookingRecord{
		Date:          time.Date(2024, time.May, day, 0, 0, 0, 0, time.UTC),
		ClientName:    client,
		TotalAmount:   decimal.NewFromInt(100),
		AmountPaid:    decimal.Zero,
		PaymentStatus: domain.PaymentDue,
	}
}

func TestBookingRepository_SaveFindDelete(t *testing.T) {
	ctx := context.Background()
	repo := newBookingRepository()

	_, err := repo.FindBookingByDate(ctx, "2024-05-01")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, repo.SaveBooking(ctx, booking(1, "Meera")))
	require.NoError(t, repo.SaveBooking(ctx, booking(1, "Kabir")))

	got, err := repo.FindBookingByDate(ctx, "2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, "Kabir", got.ClientName)

	require.NoError(t, repo.DeleteBooking(ctx, "2024-05-01"))
	require.NoError(t, repo.DeleteBooking(ctx, "2024-05-01"))
	_, err = repo.FindBookingByDate(ctx, "2024-05-01")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestBookingRepository_ListOrdered(t *testing.T) {
	ctx := context.Background()
	repo := newBookingRepository()
	for _, d := range []int{20, 3, 11} {
		require.NoError(t, repo.SaveBooking(ctx, booking(d, "client")))
	}

	list, err := repo.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, domain.DateKey("2024-05-03"), list[0].Key())
	assert.Equal(t, domain.DateKey("2024-05-11"), list[1].Key())
	assert.Equal(t, domain.DateKey("2024-05-20"), list[2].Key())
}

func TestBookingRepository_FindReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := newBookingRepository()
	require.NoError(t, repo.SaveBooking(ctx, booking(5, "Meera")))

	got, err := repo.FindBookingByDate(ctx, "2024-05-05")
	require.NoError(t, err)
	got.ClientName = "changed"

	again, err := repo.FindBookingByDate(ctx, "2024-05-05")
	require.NoError(t, err)
	assert.Equal(t, "Meera", again.ClientName)
}
