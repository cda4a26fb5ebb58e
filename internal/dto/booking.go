package dto

import (
	"github.com/SscSPs/venue_ledger_app/internal/core/domain"
	"github.com/SscSPs/venue_ledger_app/internal/utils"
	"github.com/shopspring/decimal"
)

// UpsertBookingRequest defines the event details submitted for a calendar day.
// Field checks (client name, non-negative total) are done by the booking ledger
// so errors name the failing field consistently.
type UpsertBookingRequest struct {
	ClientName        string          `json:"clientName" example:"Asha Verma"`
	TotalAmount       decimal.Decimal `json:"totalAmount" swaggertype:"string" example:"25000"`
	AmountPaid        decimal.Decimal `json:"amountPaid" swaggertype:"string" example:"10000"`
	AdditionalDetails string          `json:"additionalDetails" example:"Stage and lighting"`
}

// ToBookingDetails converts the request into the ledger's input type.
func (r UpsertBookingRequest) ToBookingDetails() domain.BookingDetails {
	return domain.BookingDetails{
		ClientName:        r.ClientName,
		TotalAmount:       r.TotalAmount,
		AmountPaid:        r.AmountPaid,
		AdditionalDetails: r.AdditionalDetails,
	}
}

// BookingResponse defines the data returned for a booking.
type BookingResponse struct {
	Date                   string               `json:"date"`
	ClientName             string               `json:"clientName"`
	TotalAmount            decimal.Decimal      `json:"totalAmount" swaggertype:"string"`
	AmountPaid             decimal.Decimal      `json:"amountPaid" swaggertype:"string"`
	RemainingAmount        decimal.Decimal      `json:"remainingAmount" swaggertype:"string"` // Derived, never stored
	PaymentStatus          domain.PaymentStatus `json:"paymentStatus"`
	AdditionalDetails      string               `json:"additionalDetails"`
	TotalAmountDisplay     string               `json:"totalAmountDisplay"`
	AmountPaidDisplay      string               `json:"amountPaidDisplay"`
	RemainingAmountDisplay string               `json:"remainingAmountDisplay"`
}

// ToBookingResponse converts a domain.BookingRecord to BookingResponse DTO
func ToBookingResponse(b *domain.BookingRecord) BookingResponse {
	remaining := b.RemainingAmount()
	return BookingResponse{
		Date:                   b.Key().String(),
		ClientName:             b.ClientName,
		TotalAmount:            b.TotalAmount,
		AmountPaid:             b.AmountPaid,
		RemainingAmount:        remaining,
		PaymentStatus:          b.PaymentStatus,
		AdditionalDetails:      b.AdditionalDetails,
		TotalAmountDisplay:     utils.FormatAmount(b.TotalAmount),
		AmountPaidDisplay:      utils.FormatAmount(b.AmountPaid),
		RemainingAmountDisplay: utils.FormatAmount(remaining),
	}
}

// ToListBookingResponse converts a slice of domain.BookingRecord to BookingResponse DTOs
func ToListBookingResponse(bookings []domain.BookingRecord) []BookingResponse {
	res := make([]BookingResponse, len(bookings))
	for i := range bookings {
		res[i] = ToBookingResponse(&bookings[i])
	}
	return res
}

// BookedResponse tells a calendar whether a day is taken.
type BookedResponse struct {
	Date   string `json:"date"`
	Booked bool   `json:"booked"`
}

// BookingSummaryResponse aggregates receivables across all bookings.
type BookingSummaryResponse struct {
	BookingCount           int                          `json:"bookingCount"`
	TotalAmount            decimal.Decimal              `json:"totalAmount" swaggertype:"string"`
	AmountPaid             decimal.Decimal              `json:"amountPaid" swaggertype:"string"`
	RemainingAmount        decimal.Decimal              `json:"remainingAmount" swaggertype:"string"`
	StatusCounts           map[domain.PaymentStatus]int `json:"statusCounts"`
	TotalAmountDisplay     string                       `json:"totalAmountDisplay"`
	AmountPaidDisplay      string                       `json:"amountPaidDisplay"`
	RemainingAmountDisplay string                       `json:"remainingAmountDisplay"`
}

// ToBookingSummaryResponse converts a domain.BookingSummary to its DTO
func ToBookingSummaryResponse(s *domain.BookingSummary) BookingSummaryResponse {
	return BookingSummaryResponse{
		BookingCount:           s.BookingCount,
		TotalAmount:            s.TotalAmount,
		AmountPaid:             s.AmountPaid,
		RemainingAmount:        s.RemainingAmount,
		StatusCounts:           s.StatusCounts,
		TotalAmountDisplay:     utils.FormatAmount(s.TotalAmount),
		AmountPaidDisplay:      utils.FormatAmount(s.AmountPaid),
		RemainingAmountDisplay: utils.FormatAmount(s.RemainingAmount),
	}
}
