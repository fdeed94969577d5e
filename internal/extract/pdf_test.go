package extract

import (
	"fmt"
	"strings"
	"testing"
)

func TestTextInvalidPayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "not a pdf", data: []byte("hello world")},
		{name: "truncated header", data: []byte("%PDF-1.4")},
		{name: "garbage after header", data: []byte("%PDF-1.7\nxref garbage")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Text(tt.data); got != "" {
				t.Fatalf("Text(%q) = %q, want empty string", tt.name, got)
			}
		})
	}
}

func TestTextEmptyPageAddsNoNewline(t *testing.T) {
	t.Parallel()

	if got := Text(emptyPagePDF()); got != "" {
		t.Fatalf("Text(empty page) = %q, want no output for a textless page", got)
	}
}

// emptyPagePDF builds a minimal valid PDF whose single page has no
// content stream, computing xref offsets from the generated objects.
func emptyPagePDF() []byte {
	header := "%PDF-1.4\n"
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> >>\nendobj\n",
	}

	var body strings.Builder
	body.WriteString(header)
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = body.Len()
		body.WriteString(obj)
	}

	xrefStart := body.Len()
	body.WriteString(fmt.Sprintf("xref\n0 %d\n", len(objects)+1))
	body.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		body.WriteString(fmt.Sprintf("%010d 00000 n \n", off))
	}
	body.WriteString(fmt.Sprintf(
		"trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(objects)+1, xrefStart))

	return []byte(body.String())
}
