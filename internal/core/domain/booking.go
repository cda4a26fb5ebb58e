package domain

import (
	"strings"
	"time"

	"github.com/SscSPs/venue_ledger_app/internal/apperrors"
	"github.com/SscSPs/venue_ledger_app/internal/utils/validation"
	"github.com/shopspring/decimal"
)

// PaymentStatus is derived from a booking's total and paid amounts.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentDue     PaymentStatus = "Due"
	PaymentPartial PaymentStatus = "Partial"
)

// DerivePaymentStatus applies the booking status rule:
//
//	remaining == 0          -> Paid
//	remaining < totalAmount -> Partial (this includes overpayment, where remaining < 0)
//	otherwise               -> Due
func DerivePaymentStatus(totalAmount, amountPaid decimal.Decimal) PaymentStatus {
	remaining := totalAmount.Sub(amountPaid)
	switch {
	case remaining.IsZero():
		return PaymentPaid
	case remaining.LessThan(totalAmount):
		return PaymentPartial
	default:
		return PaymentDue
	}
}

// BookingDetails is the caller-supplied part of a booking. Field order is the
// validation order.
type BookingDetails struct {
	ClientName        string          `json:"clientName" validate:"notblank"`
	TotalAmount       decimal.Decimal `json:"totalAmount" validate:"decimal_gte0"`
	AmountPaid        decimal.Decimal `json:"amountPaid"`
	AdditionalDetails string          `json:"additionalDetails"`
}

// BookingRecord is the single event held for a calendar day.
type BookingRecord struct {
	Date              time.Time       `json:"date"` // Calendar day, midnight UTC
	ClientName        string          `json:"clientName"`
	TotalAmount       decimal.Decimal `json:"totalAmount"`
	AmountPaid        decimal.Decimal `json:"amountPaid"`
	PaymentStatus     PaymentStatus   `json:"paymentStatus"` // Always DerivePaymentStatus(TotalAmount, AmountPaid)
	AdditionalDetails string          `json:"additionalDetails"`
}

// NewBookingRecord validates details for date and builds a record with its
// payment status derived. The date is checked first, then the details in order.
func NewBookingRecord(date time.Time, details BookingDetails) (BookingRecord, error) {
	if date.IsZero() {
		return BookingRecord{}, apperrors.NewValidationError("date", "is required")
	}
	if err := validation.Struct(details); err != nil {
		return BookingRecord{}, err
	}

	return BookingRecord{
		Date:              CalendarDay(date),
		ClientName:        strings.TrimSpace(details.ClientName),
		TotalAmount:       details.TotalAmount,
		AmountPaid:        details.AmountPaid,
		PaymentStatus:     DerivePaymentStatus(details.TotalAmount, details.AmountPaid),
		AdditionalDetails: details.AdditionalDetails,
	}, nil
}

// Key returns the calendar-day key the record is stored under.
func (b BookingRecord) Key() DateKey {
	return NewDateKey(b.Date)
}

// RemainingAmount is TotalAmount - AmountPaid. It is negative on overpayment.
func (b BookingRecord) RemainingAmount() decimal.Decimal {
	return b.TotalAmount.Sub(b.AmountPaid)
}

// BookingSummary aggregates amounts across all booked dates.
type BookingSummary struct {
	BookingCount    int                   `json:"bookingCount"`
	TotalAmount     decimal.Decimal       `json:"totalAmount"`
	AmountPaid      decimal.Decimal       `json:"amountPaid"`
	RemainingAmount decimal.Decimal       `json:"remainingAmount"`
	StatusCounts    map[PaymentStatus]int `json:"statusCounts"`
}
