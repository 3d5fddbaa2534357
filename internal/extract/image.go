package extract

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"

	// Raster formats seen in reports and in pdfcpu image output.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/tiff"
)

// prepareForOCR converts a raster to 8-bit grayscale and, when its narrower
// dimension is below minWidth, upscales it by scale with a high-quality
// resampling filter. The result is re-encoded as PNG for the OCR engine.
func prepareForOCR(data []byte, minWidth int, scale float64) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := src.Bounds()
	gray := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(gray, gray.Bounds(), src, bounds.Min, draw.Src)

	narrow := gray.Bounds().Dx()
	if h := gray.Bounds().Dy(); h < narrow {
		narrow = h
	}
	if narrow < minWidth && scale > 1 {
		w := int(float64(gray.Bounds().Dx()) * scale)
		h := int(float64(gray.Bounds().Dy()) * scale)
		scaled := image.NewGray(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), gray, gray.Bounds(), draw.Over, nil)
		gray = scaled
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, gray); err != nil {
		return nil, fmt.Errorf("encode grayscale image: %w", err)
	}
	return buf.Bytes(), nil
}
