// Package extract converts resume files (TXT, PDF, DOCX) into plain text.
package extract

import (
	"os"
	"path/filepath"
	"strings"
)

// Extractor turns files into their textual content based on file extension.
type Extractor struct {
	maxFileSize int64 // 0 disables the size check
}

// New creates an Extractor. maxFileSize of 0 disables the size limit.
func New(maxFileSize int64) *Extractor {
	return &Extractor{maxFileSize: maxFileSize}
}

// Text reads the file at path and extracts its textual content.
// The extension decides the format; unknown extensions are rejected.
func (e *Extractor) Text(path string) (string, error) {
	if e.maxFileSize > 0 {
		info, err := os.Stat(path)
		if err != nil {
			return "", ErrReadFailed(err).WithDetail("path", path)
		}
		if info.Size() > e.maxFileSize {
			return "", ErrFileTooLarge(info.Size(), e.maxFileSize).WithDetail("path", path)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", ErrReadFailed(err).WithDetail("path", path)
	}
	return e.TextFromBytes(data, filepath.Ext(path))
}

// TextFromBytes extracts text from in-memory file content, used for HTTP
// uploads where no file path exists. ext must include the leading dot.
func (e *Extractor) TextFromBytes(data []byte, ext string) (string, error) {
	if e.maxFileSize > 0 && int64(len(data)) > e.maxFileSize {
		return "", ErrFileTooLarge(int64(len(data)), e.maxFileSize)
	}

	switch strings.ToLower(ext) {
	case ".txt", ".text":
		return string(data), nil
	case ".pdf":
		return pdfText(data)
	case ".docx":
		return docxText(data)
	default:
		return "", ErrUnsupportedFormat(ext)
	}
}
