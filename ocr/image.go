package ocr

import (
	"bytes"
	"fmt"
	"image/png"

	"golang.org/x/image/tiff"
)

// NormalizeImage re-encodes image formats Tesseract's image loader
// cannot always handle. TIFF scans are decoded and re-encoded as PNG;
// every other format passes through untouched.
func NormalizeImage(data []byte) ([]byte, error) {
	if !isTIFF(data) {
		return data, nil
	}
	img, err := tiff.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding tiff: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

// isTIFF checks the two TIFF byte-order signatures.
func isTIFF(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	return bytes.HasPrefix(data, []byte("II*\x00")) || bytes.HasPrefix(data, []byte("MM\x00*"))
}
