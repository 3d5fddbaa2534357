package extract

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned when a document's filename extension is
// not one the acquirer knows how to read. This is the one failure that is
// reported to the caller rather than absorbed, since it indicates misuse.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Kind is the document type inferred from the filename extension.
type Kind string

const (
	KindPDF         Kind = "pdf"
	KindImage       Kind = "image"
	KindUnsupported Kind = "unsupported"
)

// KindForFilename sniffs the document kind from the filename extension.
// Only .pdf, .png, .jpg and .jpeg are supported.
func KindForFilename(name string) Kind {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return KindPDF
	case ".png", ".jpg", ".jpeg":
		return KindImage
	default:
		return KindUnsupported
	}
}

// RawDocument is one uploaded report: raw bytes plus the filename used for
// extension sniffing. The acquirer may read the bytes more than once, so
// they are held in memory rather than behind a one-shot stream.
type RawDocument struct {
	Data []byte
	Name string
}

// Kind returns the document kind inferred from the filename.
func (d RawDocument) Kind() Kind {
	return KindForFilename(d.Name)
}

// Strategy names the extraction strategy that produced the content.
type Strategy string

const (
	StrategyNativeText Strategy = "native-text"
	StrategyTable      Strategy = "table-extraction"
	StrategyOCR        Strategy = "ocr"
	StrategyNone       Strategy = "none"
)

// TableRow is one row of raw tabular extraction output. Cells carry no
// fixed schema.
type TableRow []string

// ExtractedContent is the outcome of text acquisition for one document.
// Strategy is StrategyNone exactly when no strategy produced output.
type ExtractedContent struct {
	Text     string
	Tables   []TableRow
	Strategy Strategy
}

// Empty reports whether no strategy produced any output.
func (c ExtractedContent) Empty() bool {
	return strings.TrimSpace(c.Text) == "" && len(c.Tables) == 0
}
