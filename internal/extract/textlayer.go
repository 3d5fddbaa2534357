package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// nativeText extracts the PDF's native text layer across all pages,
// concatenated with newline separators.
func (a *Acquirer) nativeText(doc RawDocument) (content ExtractedContent, err error) {
	// The PDF library can panic on malformed input.
	defer func() {
		if r := recover(); r != nil {
			content = ExtractedContent{}
			err = fmt.Errorf("text layer extraction panicked: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(doc.Data), int64(len(doc.Data)))
	if err != nil {
		return ExtractedContent{}, fmt.Errorf("open pdf: %w", err)
	}

	var builder strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Continue with other pages even if one fails.
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		builder.WriteString(text)
		builder.WriteString("\n")
	}

	if strings.TrimSpace(builder.String()) == "" {
		return ExtractedContent{}, errors.New("no text layer content")
	}

	return ExtractedContent{Text: builder.String(), Strategy: StrategyNativeText}, nil
}
