package resume

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// parsePDF extracts text from every page in order, joined by newlines.
// The pdf library panics on some malformed documents, so extraction runs
// behind a recover and every failure is wrapped with its cause.
func parsePDF(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parsing pdf resume %s: %v", path, r)
		}
	}()

	f, reader, openErr := pdf.Open(path)
	if openErr != nil {
		return "", fmt.Errorf("parsing pdf resume %s: %w", path, openErr)
	}
	defer f.Close()

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		content, pageErr := page.GetPlainText(nil)
		if pageErr != nil {
			return "", fmt.Errorf("parsing pdf resume %s: page %d: %w", path, i, pageErr)
		}

		pages = append(pages, content)
	}

	return strings.TrimSpace(strings.Join(pages, "\n")), nil
}
