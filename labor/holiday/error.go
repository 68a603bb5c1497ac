package holiday

import (
	"net/http"

	"github.com/Abraxas-365/laboral/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("HOLIDAY")

var (
	CodeSourceUnavailable = ErrRegistry.Register("SOURCE_UNAVAILABLE", errx.TypeExternal, http.StatusBadGateway, "Holiday source unavailable")
	CodeInvalidYear       = ErrRegistry.Register("INVALID_YEAR", errx.TypeValidation, http.StatusBadRequest, "Invalid year")
)

func ErrSourceUnavailable() *errx.Error {
	return ErrRegistry.New(CodeSourceUnavailable)
}

func ErrInvalidYear() *errx.Error {
	return ErrRegistry.New(CodeInvalidYear)
}
