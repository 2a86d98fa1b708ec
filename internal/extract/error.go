package extract

import (
	"net/http"

	"github.com/cvlens/cvlens/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("EXTRACT")

var (
	CodeUnsupportedFormat = ErrRegistry.Register("UNSUPPORTED_FORMAT", errx.TypeValidation, http.StatusBadRequest, "Unsupported file format")
	CodeReadFailed        = ErrRegistry.Register("READ_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to read file")
	CodeFileTooLarge      = ErrRegistry.Register("FILE_TOO_LARGE", errx.TypeValidation, http.StatusBadRequest, "File exceeds maximum allowed size")
)

func ErrUnsupportedFormat(ext string) *errx.Error {
	return ErrRegistry.New(CodeUnsupportedFormat).WithDetail("extension", ext)
}

func ErrReadFailed(cause error) *errx.Error {
	return ErrRegistry.NewWithCause(CodeReadFailed, cause)
}

func ErrFileTooLarge(size, limit int64) *errx.Error {
	return ErrRegistry.New(CodeFileTooLarge).
		WithDetail("size", size).
		WithDetail("max_size", limit)
}
