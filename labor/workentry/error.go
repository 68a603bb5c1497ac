package workentry

import (
	"net/http"

	"github.com/Abraxas-365/laboral/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("WORK_ENTRY")

var (
	CodeEntryNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Work entry not found")
	CodeNotOwner      = ErrRegistry.Register("NOT_OWNER", errx.TypeAuthorization, http.StatusForbidden, "Not authorized")
	CodeInvalidEntry  = ErrRegistry.Register("INVALID_ENTRY", errx.TypeValidation, http.StatusBadRequest, "Invalid work entry")
)

func ErrEntryNotFound() *errx.Error {
	return ErrRegistry.New(CodeEntryNotFound)
}

func ErrNotOwner() *errx.Error {
	return ErrRegistry.New(CodeNotOwner)
}

func ErrInvalidEntry() *errx.Error {
	return ErrRegistry.New(CodeInvalidEntry)
}
