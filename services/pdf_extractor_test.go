package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPDFExtractor_RejectsNonPDF(t *testing.T) {
	_, err := NewPDFExtractor().ExtractText([]byte("just some text, not a pdf"))
	assert.ErrorIs(t, err, ErrNotPDF)
}

func TestPDFExtractor_RejectsCorruptPDF(t *testing.T) {
	_, err := NewPDFExtractor().ExtractText([]byte("%PDF-1.4\ngarbage"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotPDF)
}

func TestSanitizePDF_TrimsTrailingBytes(t *testing.T) {
	body := []byte("%PDF-1.4\n...\n%%EOF\n")
	padded := append(append([]byte{}, body...), []byte("<<appended junk after eof>>")...)

	assert.Equal(t, body, sanitizePDF(padded))
	assert.Equal(t, body, sanitizePDF(body))
}
