package extract

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Text extracts plain text from an in-memory PDF payload.
// Extraction never fails: malformed documents or pages yield an empty
// string rather than an error, so callers can decide whether the result
// is usable. Each page that yields text is followed by a newline;
// empty pages contribute nothing.
// Library used: github.com/ledongthuc/pdf.
func Text(data []byte) string {
	defer func() {
		// The pdf library panics on some malformed xref tables.
		_ = recover()
	}()
	return text(data)
}

func text(data []byte) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = ""
		}
	}()

	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return ""
	}

	var buf strings.Builder
	total := pdfReader.NumPage()
	for i := 1; i <= total; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		// Pages that yield no text contribute nothing, not a blank line.
		if txt := pageText(page); txt != "" {
			buf.WriteString(txt)
			buf.WriteString("\n")
		}
	}
	return buf.String()
}

// pageText extracts a single page, swallowing per-page failures so one
// broken page does not discard the rest of the document.
func pageText(page pdf.Page) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = ""
		}
	}()
	txt, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return txt
}
