package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // Import for PNG decoding support
	"math"

	"golang.org/x/image/draw"
)

// PrepareJPEG normalizes an uploaded schedule image for the model call:
// decodes jpg/png, re-encodes as JPEG and reduces quality progressively,
// then downscales, until the payload fits maxBytes.
func PrepareJPEG(buffer []byte, maxBytes int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(buffer))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	quality := 90
	var encoded []byte
	for quality >= 50 {
		buf := new(bytes.Buffer)
		if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("failed to encode JPEG: %w", err)
		}
		encoded = buf.Bytes()
		if len(encoded) <= maxBytes {
			return encoded, nil
		}
		quality -= 10
	}

	// Quality reduction was not enough; scale the image down to fit.
	bounds := img.Bounds()
	ratio := math.Sqrt(float64(maxBytes) / float64(len(encoded)))
	newWidth := int(float64(bounds.Dx()) * ratio)
	newHeight := int(float64(bounds.Dy()) * ratio)
	if newWidth < 600 {
		newWidth = 600
	}
	if newHeight < 400 {
		newHeight = 400
	}

	resized := resizeImage(img, newWidth, newHeight)
	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, resized, &jpeg.Options{Quality: 70}); err != nil {
		return nil, fmt.Errorf("failed to encode resized image: %w", err)
	}
	return buf.Bytes(), nil
}

// resizeImage resizes an image to the specified dimensions using high-quality interpolation
func resizeImage(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	// Use CatmullRom for high-quality downscaling
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
