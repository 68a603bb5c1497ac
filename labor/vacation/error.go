package vacation

import (
	"net/http"

	"github.com/Abraxas-365/laboral/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("VACATION")

// Error codes
var (
	CodeInvalidRange        = ErrRegistry.Register("INVALID_RANGE", errx.TypeValidation, http.StatusBadRequest, "Select a complete date range")
	CodeNoBusinessDays      = ErrRegistry.Register("NO_BUSINESS_DAYS", errx.TypeBusiness, http.StatusUnprocessableEntity, "The selected range has no business days")
	CodeInsufficientBalance = ErrRegistry.Register("INSUFFICIENT_BALANCE", errx.TypeBusiness, http.StatusUnprocessableEntity, "Not enough vacation days available")
	CodeOverlappingBooking  = ErrRegistry.Register("OVERLAPPING_BOOKING", errx.TypeConflict, http.StatusConflict, "The range overlaps an existing vacation")
	CodeBookingNotFound     = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Vacation not found")
	CodeStoreFailure        = ErrRegistry.Register("STORE_FAILURE", errx.TypeInternal, http.StatusInternalServerError, "Could not save vacation")
	CodeInvalidSettings     = ErrRegistry.Register("INVALID_SETTINGS", errx.TypeValidation, http.StatusBadRequest, "Invalid vacation settings")
)

// Helper functions
func ErrInvalidRange() *errx.Error {
	return ErrRegistry.New(CodeInvalidRange)
}

func ErrNoBusinessDays() *errx.Error {
	return ErrRegistry.New(CodeNoBusinessDays)
}

// ErrInsufficientBalance carries the shortfall so the client can show it
func ErrInsufficientBalance(requested, available int) *errx.Error {
	return ErrRegistry.New(CodeInsufficientBalance).
		WithDetail("requested", requested).
		WithDetail("available", available)
}

func ErrOverlappingBooking() *errx.Error {
	return ErrRegistry.New(CodeOverlappingBooking)
}

func ErrBookingNotFound() *errx.Error {
	return ErrRegistry.New(CodeBookingNotFound)
}

func ErrStoreFailure(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeStoreFailure, cause)
}

func ErrInvalidSettings() *errx.Error {
	return ErrRegistry.New(CodeInvalidSettings)
}
