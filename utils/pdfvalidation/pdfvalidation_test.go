package pdfvalidation

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// upload builds a real multipart file header the way Fiber hands it to handlers
func upload(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}

func TestReadUpload(t *testing.T) {
	content, err := ReadUpload(upload(t, "Essay.PDF", []byte("%PDF-1.4 body")), EssayLimits)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 body", string(content))

	_, err = ReadUpload(upload(t, "essay.docx", []byte("%PDF-1.4")), EssayLimits)
	assert.ErrorIs(t, err, ErrNotPDF)

	_, err = ReadUpload(upload(t, "essay.pdf", []byte("hello")), EssayLimits)
	assert.ErrorIs(t, err, ErrMissingHeader)

	big := upload(t, "essay.pdf", bytes.Repeat([]byte("a"), 2<<20))
	_, err = ReadUpload(big, Limits{MaxFileSizeMB: 1, DocumentTypeName: "essay"})
	assert.ErrorIs(t, err, ErrTooLarge)
}
