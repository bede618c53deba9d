package extract

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pdfText extracts the text of every page, joined by a single space.
// Pages that yield no text contribute nothing — no placeholder, no
// extra separator.
func pdfText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Image-only or malformed pages are skipped, not fatal.
			continue
		}
		if text == "" {
			continue
		}
		pages = append(pages, text)
	}

	return strings.Join(pages, " "), nil
}
