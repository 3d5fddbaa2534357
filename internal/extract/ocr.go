package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/otiai10/gosseract/v2"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Engine performs optical character recognition on an encoded raster image.
type Engine interface {
	// Recognize returns the text recognized in the image bytes.
	Recognize(image []byte) (string, error)
	// Close releases any resources held by the engine.
	Close() error
}

// TesseractEngine recognizes text with the Tesseract OCR engine via
// gosseract. A fresh client is created per call; gosseract clients are not
// safe for reuse across inputs.
type TesseractEngine struct {
	language string
}

// NewTesseractEngine creates a Tesseract-backed engine. language may be
// empty for the engine default (eng).
func NewTesseractEngine(language string) *TesseractEngine {
	return &TesseractEngine{language: language}
}

// Recognize runs Tesseract over the image bytes.
func (e *TesseractEngine) Recognize(image []byte) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if e.language != "" {
		if err := client.SetLanguage(e.language); err != nil {
			return "", fmt.Errorf("set OCR language %q: %w", e.language, err)
		}
	}
	if err := client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("load image into OCR engine: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}
	return text, nil
}

// Close implements Engine. The per-call clients are already closed.
func (e *TesseractEngine) Close() error {
	return nil
}

// imageOCR preprocesses a raster (grayscale, conditional upscale) and runs
// recognition on it.
func (a *Acquirer) imageOCR(data []byte) (ExtractedContent, error) {
	if a.ocr == nil {
		return ExtractedContent{}, errors.New("no OCR engine configured")
	}

	prepared, err := prepareForOCR(data, a.minOCRWidth, a.ocrScale)
	if err != nil {
		return ExtractedContent{}, fmt.Errorf("prepare image: %w", err)
	}

	text, err := a.ocr.Recognize(prepared)
	if err != nil {
		return ExtractedContent{}, err
	}
	if strings.TrimSpace(text) == "" {
		return ExtractedContent{}, errors.New("recognition produced no text")
	}

	return ExtractedContent{Text: text, Strategy: StrategyOCR}, nil
}

// pdfOCR is the last stage of the PDF fallback chain: scanned reports carry
// their pages as embedded images, so each embedded image is recognized in
// turn. The stage is best-effort and may yield partial output when some
// pages cannot be decoded.
func (a *Acquirer) pdfOCR(doc RawDocument) (ExtractedContent, error) {
	images, err := a.pageImages(doc)
	if err != nil {
		return ExtractedContent{}, err
	}

	var builder strings.Builder
	for _, img := range images {
		content, err := a.imageOCR(img)
		if err != nil {
			a.logf("%s: embedded image OCR failed: %v", doc.Name, err)
			continue
		}
		builder.WriteString(content.Text)
		builder.WriteString("\n")
	}

	if strings.TrimSpace(builder.String()) == "" {
		return ExtractedContent{}, errors.New("no text recognized in embedded images")
	}

	return ExtractedContent{Text: builder.String(), Strategy: StrategyOCR}, nil
}

// pageImages extracts embedded images from a PDF in page order.
func (a *Acquirer) pageImages(doc RawDocument) (images [][]byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			images = nil
			err = fmt.Errorf("image extraction panicked: %v", r)
		}
	}()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	pageImages, err := api.ExtractImagesRaw(bytes.NewReader(doc.Data), nil, conf)
	if err != nil {
		return nil, fmt.Errorf("extract embedded images: %w", err)
	}

	for _, byObj := range pageImages {
		// Stable order within a page: sort by object number.
		objNrs := make([]int, 0, len(byObj))
		for objNr := range byObj {
			objNrs = append(objNrs, objNr)
		}
		sort.Ints(objNrs)

		for _, objNr := range objNrs {
			data, err := io.ReadAll(byObj[objNr])
			if err != nil {
				continue
			}
			if len(data) > 0 {
				images = append(images, data)
			}
		}
	}

	if len(images) == 0 {
		return nil, errors.New("no embedded images found")
	}

	return images, nil
}
