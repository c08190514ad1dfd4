package services

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

var (
	ErrNotPDF          = errors.New("file is not a PDF")
	ErrPDFTooManyPages = errors.New("PDF has too many pages")
	ErrPDFNoText       = errors.New("no text could be extracted from the PDF")
)

// PDFExtractor pulls plain text out of uploaded essay PDFs
type PDFExtractor struct {
	MaxPages int
	MinChars int
}

func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{MaxPages: 20, MinChars: 20}
}

// sanitizePDF drops anything appended after the last %%EOF marker
func sanitizePDF(content []byte) []byte {
	eof := bytes.LastIndex(content, []byte("%%EOF"))
	if eof == -1 {
		return content
	}
	end := eof + len("%%EOF")
	for end < len(content) && (content[end] == '\n' || content[end] == '\r') {
		end++
	}
	if len(content)-end > 10 {
		zap.S().Debugw("trimming trailing bytes after %%EOF", "bytes", len(content)-end)
		return content[:end]
	}
	return content
}

// ExtractText returns the text of every page, one line per text row
func (p *PDFExtractor) ExtractText(content []byte) (string, error) {
	if !bytes.HasPrefix(content, []byte("%PDF-")) {
		return "", ErrNotPDF
	}
	content = sanitizePDF(content)

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to parse PDF: %w", err)
	}

	numPages := reader.NumPage()
	if numPages == 0 {
		return "", ErrPDFNoText
	}
	if p.MaxPages > 0 && numPages > p.MaxPages {
		return "", fmt.Errorf("%w: %d > %d", ErrPDFTooManyPages, numPages, p.MaxPages)
	}

	var b strings.Builder
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			text, plainErr := page.GetPlainText(nil)
			if plainErr != nil {
				zap.S().Warnw("pdf page unreadable", "page", i, "error", plainErr)
				continue
			}
			b.WriteString(text)
			b.WriteString("\n\n")
			continue
		}

		for _, row := range rows {
			var line strings.Builder
			for _, word := range row.Content {
				line.WriteString(word.S)
			}
			if s := strings.TrimSpace(line.String()); s != "" {
				b.WriteString(s)
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	text := strings.TrimSpace(b.String())
	if len(text) < p.MinChars {
		return "", ErrPDFNoText
	}
	return text, nil
}
