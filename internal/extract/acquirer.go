package extract

import (
	"fmt"
	"log"
)

const (
	// DefaultMinOCRWidth is the narrow-dimension threshold below which a
	// raster is upscaled before recognition.
	DefaultMinOCRWidth = 1000
	// DefaultOCRScale is the upscale factor applied to small rasters.
	DefaultOCRScale = 1.5
)

// Acquirer turns raw document bytes into plain text through an ordered
// fallback chain: native text layer, tabular extraction, then OCR. Every
// strategy absorbs its own failures; report formats are uncontrolled input
// and a broken document must never take down the caller.
type Acquirer struct {
	ocr         Engine
	minOCRWidth int
	ocrScale    float64
	debug       bool
}

// Option configures an Acquirer.
type Option func(*Acquirer)

// WithOCRPreprocessing overrides the upscale threshold and factor applied to
// rasters before recognition.
func WithOCRPreprocessing(minWidth int, scale float64) Option {
	return func(a *Acquirer) {
		a.minOCRWidth = minWidth
		a.ocrScale = scale
	}
}

// WithDebugLogging enables per-strategy failure logging.
func WithDebugLogging(enabled bool) Option {
	return func(a *Acquirer) {
		a.debug = enabled
	}
}

// NewAcquirer creates an acquirer. The OCR engine may be nil, in which case
// the OCR stages report failure and the chain degrades accordingly.
func NewAcquirer(ocr Engine, opts ...Option) *Acquirer {
	a := &Acquirer{
		ocr:         ocr,
		minOCRWidth: DefaultMinOCRWidth,
		ocrScale:    DefaultOCRScale,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Acquire extracts plain text from a document. For PDFs it walks the
// fallback chain; for images it goes straight to OCR. The returned error is
// non-nil only for unsupported filename extensions; all other failures
// surface as empty content with StrategyNone.
func (a *Acquirer) Acquire(doc RawDocument) (ExtractedContent, error) {
	switch doc.Kind() {
	case KindPDF:
		return a.acquirePDF(doc), nil
	case KindImage:
		return a.acquireImage(doc), nil
	default:
		return ExtractedContent{Strategy: StrategyNone}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, doc.Name)
	}
}

// acquirePDF runs the extraction strategies in order, first success wins.
func (a *Acquirer) acquirePDF(doc RawDocument) ExtractedContent {
	strategies := []struct {
		name Strategy
		run  func(RawDocument) (ExtractedContent, error)
	}{
		{StrategyNativeText, a.nativeText},
		{StrategyTable, a.tableText},
		{StrategyOCR, a.pdfOCR},
	}

	for _, s := range strategies {
		content, err := s.run(doc)
		if err != nil {
			a.logf("%s: strategy %s failed: %v", doc.Name, s.name, err)
			continue
		}
		if content.Empty() {
			continue
		}
		return content
	}

	return ExtractedContent{Strategy: StrategyNone}
}

// acquireImage runs OCR on a raster document.
func (a *Acquirer) acquireImage(doc RawDocument) ExtractedContent {
	content, err := a.imageOCR(doc.Data)
	if err != nil {
		a.logf("%s: image OCR failed: %v", doc.Name, err)
		return ExtractedContent{Strategy: StrategyNone}
	}
	return content
}

func (a *Acquirer) logf(format string, args ...any) {
	if a.debug {
		log.Printf(format, args...)
	}
}
