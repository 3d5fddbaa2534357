package extract

import (
	"bytes"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareForOCR_Grayscale(t *testing.T) {
	prepared, err := prepareForOCR(encodePNG(t, 1200, 1100), DefaultMinOCRWidth, DefaultOCRScale)
	require.NoError(t, err)

	decoded, _, err := image.Decode(bytes.NewReader(prepared))
	require.NoError(t, err)
	assert.Equal(t, 1200, decoded.Bounds().Dx())
	assert.Equal(t, 1100, decoded.Bounds().Dy())

	_, isGray := decoded.(*image.Gray)
	assert.True(t, isGray, "output is 8-bit grayscale")
}

func TestPrepareForOCR_UpscalesNarrowRasters(t *testing.T) {
	// 1500x800: the narrower dimension (height) is below the threshold.
	prepared, err := prepareForOCR(encodePNG(t, 1500, 800), DefaultMinOCRWidth, DefaultOCRScale)
	require.NoError(t, err)

	decoded, _, err := image.Decode(bytes.NewReader(prepared))
	require.NoError(t, err)
	assert.Equal(t, 2250, decoded.Bounds().Dx())
	assert.Equal(t, 1200, decoded.Bounds().Dy())
}

func TestPrepareForOCR_ScaleDisabled(t *testing.T) {
	prepared, err := prepareForOCR(encodePNG(t, 200, 100), DefaultMinOCRWidth, 1.0)
	require.NoError(t, err)

	decoded, _, err := image.Decode(bytes.NewReader(prepared))
	require.NoError(t, err)
	assert.Equal(t, 200, decoded.Bounds().Dx())
}

func TestPrepareForOCR_UndecodableInput(t *testing.T) {
	_, err := prepareForOCR([]byte("definitely not an image"), DefaultMinOCRWidth, DefaultOCRScale)
	assert.Error(t, err)
}
