// Package imgutil crops screenshots to their visible content.
//
// The snapshot renderer captures each element against a transparent page
// background with a generous viewport, so the interesting pixels occupy
// only part of the image. CropToContent trims the transparent margin the
// same way PIL's getbbox/crop pair does in image tooling.
package imgutil

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
)

// ErrImageDecode indicates the screenshot bytes are not a valid PNG.
var ErrImageDecode = errors.New("failed to decode image")

// CropToContent decodes a PNG, computes the bounding box of its
// non-transparent pixels, and re-encodes the cropped region. An image with
// no transparent margin, or no visible pixels at all, is returned unchanged.
func CropToContent(data []byte) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDecode, err)
	}

	bbox, ok := contentBounds(img)
	if !ok || bbox == img.Bounds() {
		return data, nil
	}

	cropped := image.NewRGBA(image.Rectangle{Max: bbox.Size()})
	draw.Draw(cropped, cropped.Bounds(), img, bbox.Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, cropped); err != nil {
		return nil, fmt.Errorf("encoding cropped image: %w", err)
	}
	return buf.Bytes(), nil
}

// contentBounds returns the bounding box of pixels with non-zero alpha.
// ok is false when every pixel is fully transparent.
func contentBounds(img image.Image) (image.Rectangle, bool) {
	bounds := img.Bounds()
	minX, minY := bounds.Max.X, bounds.Max.Y
	maxX, maxY := bounds.Min.X, bounds.Min.Y
	found := false

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a == 0 {
				continue
			}
			found = true
			if x < minX {
				minX = x
			}
			if y < minY {
				minY = y
			}
			if x >= maxX {
				maxX = x + 1
			}
			if y >= maxY {
				maxY = y + 1
			}
		}
	}

	if !found {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX, maxY), true
}
