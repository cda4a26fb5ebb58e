package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/venue_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/venue_ledger_app/internal/dto"
	"github.com/SscSPs/venue_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bookingHandler handles HTTP requests for the booking calendar.
type bookingHandler struct {
	bookingService portssvc.BookingSvcFacade
}

// newBookingHandler creates a new bookingHandler.
func newBookingHandler(bs portssvc.BookingSvcFacade) *bookingHandler {
	return &bookingHandler{
		bookingService: bs,
	}
}

// RegisterBookingRoutes registers routes related to bookings.
func RegisterBookingRoutes(rg *gin.RouterGroup, bookingService portssvc.BookingSvcFacade) {
	h := newBookingHandler(bookingService)

	bookings := rg.Group("/bookings")
	{
		bookings.GET("", h.listBookings)
		bookings.GET("/summary", h.getBookingSummary)
		bookings.GET("/:date", h.getBooking)
		bookings.PUT("/:date", h.upsertBooking)
		bookings.DELETE("/:date", h.deleteBooking)
		bookings.GET("/:date/booked", h.isBooked)
	}
}

// upsertBooking godoc
// @Summary Save the booking for a day
// @Description Creates or fully replaces the booking on a calendar day. The payment status is derived from the amounts.
// @Tags bookings
// @Accept  json
// @Produce  json
// @Param   date path string true "Calendar day (YYYY-MM-DD)"
// @Param   booking body dto.UpsertBookingRequest true "Event details"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Failed to save booking"
// @Router /bookings/{date} [put]
func (h *bookingHandler) upsertBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	date, ok := parseDateParam(c, logger)
	if !ok {
		return
	}

	var req dto.UpsertBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertBooking", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("date", c.Param("date")))
	logger.Info("Received request to save booking")

	booking, err := h.bookingService.UpsertBooking(c.Request.Context(), date, req.ToBookingDetails())
	if err != nil {
		respondWithError(c, logger, err, "Failed to save booking")
		return
	}

	logger.Info("Booking saved successfully", slog.String("payment_status", string(booking.PaymentStatus)))
	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// getBooking godoc
// @Summary Get the booking for a day
// @Tags bookings
// @Produce  json
// @Param   date path string true "Calendar day (YYYY-MM-DD)"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid date"
// @Failure 404 {object} dto.ErrorResponse "Day is not booked"
// @Router /bookings/{date} [get]
func (h *bookingHandler) getBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	date, ok := parseDateParam(c, logger)
	if !ok {
		return
	}

	booking, err := h.bookingService.GetBooking(c.Request.Context(), date)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve booking")
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// deleteBooking godoc
// @Summary Delete the booking for a day
// @Description Frees a calendar day. Deleting a free day succeeds.
// @Tags bookings
// @Param   date path string true "Calendar day (YYYY-MM-DD)"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid date"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete booking"
// @Router /bookings/{date} [delete]
func (h *bookingHandler) deleteBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	date, ok := parseDateParam(c, logger)
	if !ok {
		return
	}

	if err := h.bookingService.DeleteBooking(c.Request.Context(), date); err != nil {
		respondWithError(c, logger, err, "Failed to delete booking")
		return
	}

	logger.Info("Booking deleted", slog.String("date", c.Param("date")))
	c.Status(http.StatusNoContent)
}

// isBooked godoc
// @Summary Check whether a day is booked
// @Tags bookings
// @Produce  json
// @Param   date path string true "Calendar day (YYYY-MM-DD)"
// @Success 200 {object} dto.BookedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid date"
// @Router /bookings/{date}/booked [get]
func (h *bookingHandler) isBooked(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	date, ok := parseDateParam(c, logger)
	if !ok {
		return
	}

	booked, err := h.bookingService.IsBooked(c.Request.Context(), date)
	if err != nil {
		respondWithError(c, logger, err, "Failed to check booking")
		return
	}

	c.JSON(http.StatusOK, dto.BookedResponse{Date: c.Param("date"), Booked: booked})
}

// listBookings godoc
// @Summary List all bookings
// @Description Returns every booking ordered by date, used to mark booked days on the calendar.
// @Tags bookings
// @Produce  json
// @Success 200 {array} dto.BookingResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to list bookings"
// @Router /bookings [get]
func (h *bookingHandler) listBookings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	bookings, err := h.bookingService.ListBookings(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list bookings")
		return
	}

	logger.Info("Bookings listed successfully", slog.Int("count", len(bookings)))
	c.JSON(http.StatusOK, dto.ToListBookingResponse(bookings))
}

// getBookingSummary godoc
// @Summary Booking receivables summary
// @Description Totals booked, paid and remaining amounts with a count per payment status.
// @Tags bookings
// @Produce  json
// @Success 200 {object} dto.BookingSummaryResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to summarize bookings"
// @Router /bookings/summary [get]
func (h *bookingHandler) getBookingSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.bookingService.BookingSummary(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to summarize bookings")
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingSummaryResponse(summary))
}
