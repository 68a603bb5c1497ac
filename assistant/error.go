package assistant

import (
	"net/http"

	"github.com/Abraxas-365/laboral/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("ASSISTANT")

var (
	CodeNotConfigured   = ErrRegistry.Register("NOT_CONFIGURED", errx.TypeInternal, http.StatusInternalServerError, "OPENAI_API_KEY is not configured")
	CodeUpstreamFailed  = ErrRegistry.Register("UPSTREAM_FAILED", errx.TypeExternal, http.StatusBadGateway, "Error connecting to the AI provider")
	CodeChatNotFound    = ErrRegistry.Register("CHAT_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Chat not found")
	CodeInvalidRequest  = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request")
	CodeInvalidDocument = ErrRegistry.Register("INVALID_DOCUMENT", errx.TypeValidation, http.StatusBadRequest, "The file is not a readable PDF")
)

func ErrNotConfigured() *errx.Error {
	return ErrRegistry.New(CodeNotConfigured)
}

func ErrUpstreamFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeUpstreamFailed, cause)
}

func ErrChatNotFound() *errx.Error {
	return ErrRegistry.New(CodeChatNotFound)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrInvalidDocument() *errx.Error {
	return ErrRegistry.New(CodeInvalidDocument)
}
