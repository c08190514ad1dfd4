// Package pdfvalidation checks uploaded PDFs before anything parses them
package pdfvalidation

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
)

var (
	ErrTooLarge      = errors.New("file is too large")
	ErrNotPDF        = errors.New("only PDF files are supported")
	ErrMissingHeader = errors.New("invalid PDF file: missing PDF header")
)

// Limits bounds an upload
type Limits struct {
	MaxFileSizeMB    int
	DocumentTypeName string // for error messages, e.g. "essay"
}

// EssayLimits applies to essay imports
var EssayLimits = Limits{MaxFileSizeMB: 10, DocumentTypeName: "essay"}

// ReadUpload checks size, extension and header, and returns the file bytes
func ReadUpload(file *multipart.FileHeader, limits Limits) ([]byte, error) {
	maxSize := int64(limits.MaxFileSizeMB) * 1024 * 1024
	if file.Size > maxSize {
		return nil, fmt.Errorf("%w: %s uploads are limited to %dMB", ErrTooLarge, limits.DocumentTypeName, limits.MaxFileSizeMB)
	}
	if !strings.HasSuffix(strings.ToLower(file.Filename), ".pdf") {
		return nil, ErrNotPDF
	}

	f, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(content)) > maxSize {
		return nil, fmt.Errorf("%w: %s uploads are limited to %dMB", ErrTooLarge, limits.DocumentTypeName, limits.MaxFileSizeMB)
	}
	if !bytes.HasPrefix(content, []byte("%PDF-")) {
		return nil, ErrMissingHeader
	}
	return content, nil
}
