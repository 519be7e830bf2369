package extract

import (
	"bytes"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPDFText pulls plain text from a PDF payload. PDFs carry no usable
// style information, so the structure is reconstructed from the text lines
// through the same heading heuristics used for DOCX paragraphs.
func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func pdfBodyItems(text string) []bodyItem {
	var items []bodyItem
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		items = append(items, bodyItem{paragraph: &paragraph{text: line}})
	}
	return items
}
