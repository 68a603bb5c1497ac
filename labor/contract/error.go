package contract

import (
	"net/http"

	"github.com/Abraxas-365/laboral/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("CONTRACT")

var (
	CodeContractNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Contract not found")
	CodeNotOwner         = ErrRegistry.Register("NOT_OWNER", errx.TypeAuthorization, http.StatusForbidden, "Not authorized")
	CodeInvalidContract  = ErrRegistry.Register("INVALID_CONTRACT", errx.TypeValidation, http.StatusBadRequest, "Invalid contract data")
	CodeMissingFile      = ErrRegistry.Register("MISSING_FILE", errx.TypeValidation, http.StatusBadRequest, "No file was uploaded")
	CodeUploadFailed     = ErrRegistry.Register("UPLOAD_FAILED", errx.TypeExternal, http.StatusBadGateway, "Could not store the contract file")
)

func ErrContractNotFound() *errx.Error {
	return ErrRegistry.New(CodeContractNotFound)
}

func ErrNotOwner() *errx.Error {
	return ErrRegistry.New(CodeNotOwner)
}

func ErrInvalidContract() *errx.Error {
	return ErrRegistry.New(CodeInvalidContract)
}

func ErrMissingFile() *errx.Error {
	return ErrRegistry.New(CodeMissingFile)
}

func ErrUploadFailed() *errx.Error {
	return ErrRegistry.New(CodeUploadFailed)
}
