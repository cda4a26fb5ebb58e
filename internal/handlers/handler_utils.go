package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/venue_ledger_app/internal/apperrors"
	"github.com/SscSPs/venue_ledger_app/internal/core/domain"
	"github.com/SscSPs/venue_ledger_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// respondWithError maps service errors to HTTP responses.
// Validation failures carry the failing field; unknown errors are logged and hidden.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, failureMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		field, _ := apperrors.FieldOf(err)
		logger.Warn("Validation error", slog.String("error", err.Error()), slog.String("field", field))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Field: field})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	default:
		logger.Error(failureMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: failureMsg})
	}
}

// parseDateParam reads the :date path parameter (YYYY-MM-DD). It writes a 400
// response and returns false when the parameter is malformed.
func parseDateParam(c *gin.Context, logger *slog.Logger) (time.Time, bool) {
	raw := c.Param("date")
	_, date, err := domain.ParseDateKey(raw)
	if err != nil {
		logger.Warn("Invalid date parameter", slog.String("date", raw), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid date format. Use YYYY-MM-DD", Field: "date"})
		return time.Time{}, false
	}
	return date, true
}

// checkEntryDate rejects non-empty dates that are not YYYY-MM-DD. Empty dates
// are left to the ledger, which reports them as a missing field.
func checkEntryDate(c *gin.Context, logger *slog.Logger, date string) bool {
	if date == "" {
		return true
	}
	if _, _, err := domain.ParseDateKey(date); err != nil {
		logger.Warn("Invalid entry date", slog.String("date", date))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid date format. Use YYYY-MM-DD", Field: "date"})
		return false
	}
	return true
}
