package resume

import (
	"net/http"

	"github.com/cvlens/cvlens/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("RESUME")

var (
	CodeEmptyInput      = ErrRegistry.Register("EMPTY_INPUT", errx.TypeValidation, http.StatusBadRequest, "Resume text is empty")
	CodeModelCallFailed = ErrRegistry.Register("MODEL_CALL_FAILED", errx.TypeExternal, http.StatusBadGateway, "Model API call failed")
	CodeEmptyResponse   = ErrRegistry.Register("EMPTY_RESPONSE", errx.TypeExternal, http.StatusBadGateway, "Model returned an empty response")
	CodeDecodeFailed    = ErrRegistry.Register("DECODE_FAILED", errx.TypeExternal, http.StatusBadGateway, "Model response is not valid JSON")
	CodeParseExhausted  = ErrRegistry.Register("PARSE_EXHAUSTED", errx.TypeExternal, http.StatusBadGateway, "Resume parsing failed after all retries")
	CodeCacheFailed     = ErrRegistry.Register("CACHE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Cache operation failed")
	CodeInvalidRequest  = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request")
)

func ErrEmptyInput() *errx.Error {
	return ErrRegistry.New(CodeEmptyInput)
}

func ErrModelCallFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeModelCallFailed, cause)
}

func ErrEmptyResponse() *errx.Error {
	return ErrRegistry.New(CodeEmptyResponse)
}

func ErrDecodeFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeDecodeFailed, cause)
}

func ErrParseExhausted(attempts int, cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeParseExhausted, cause).
		WithDetail("attempts", attempts)
}

func ErrCacheFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeCacheFailed, cause)
}

func ErrInvalidRequest(message string) *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest).WithDetail("reason", message)
}
