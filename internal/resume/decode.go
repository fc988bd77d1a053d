package resume

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// DecodeError reports a file that could not be decoded into text. The
// profile builder is never invoked when decoding fails.
type DecodeError struct {
	Filename string
	Reason   string
	Err      error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to decode %s: %s: %v", e.Filename, e.Reason, e.Err)
	}
	return fmt.Sprintf("failed to decode %s: %s", e.Filename, e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decode extracts plain text from an uploaded résumé file. Supported
// extensions are .pdf, .docx, and .txt (UTF-8); anything else is a
// DecodeError.
func Decode(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return decodePDF(filename, data)
	case ".docx":
		return decodeDOCX(filename, data)
	case ".txt":
		return string(data), nil
	default:
		return "", &DecodeError{
			Filename: filename,
			Reason:   "unsupported file format, use PDF, DOCX, or TXT",
		}
	}
}

func decodePDF(filename string, data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &DecodeError{Filename: filename, Reason: "unreadable PDF", Err: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

func decodeDOCX(filename string, data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &DecodeError{Filename: filename, Reason: "unreadable DOCX", Err: err}
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}
