package service

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"log"

	"github.com/disintegration/imaging"
)

const (
	// maxUploadDimension bounds the longest side of a stored image
	maxUploadDimension = 2400
	uploadJPEGQuality  = 85
)

// OptimizedImage is a re-encoded upload and the dimensions it was stored at
type OptimizedImage struct {
	Data   []byte
	Width  int
	Height int
}

// OptimizeImage decodes raw image bytes (PNG, JPEG), fixes the EXIF orientation,
// shrinks it so neither side exceeds maxUploadDimension and re-encodes it as JPEG
func OptimizeImage(imageData []byte) (*OptimizedImage, error) {
	img, err := imaging.Decode(bytes.NewReader(imageData), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	width, height := img.Bounds().Dx(), img.Bounds().Dy()
	log.Printf("📸 Image decoded: bounds=%dx%d", width, height)

	var resized image.Image = img
	if width > maxUploadDimension || height > maxUploadDimension {
		resized = imaging.Fit(img, maxUploadDimension, maxUploadDimension, imaging.Lanczos)
		log.Printf("🔄 Resizing image: %dx%d -> %dx%d", width, height, resized.Bounds().Dx(), resized.Bounds().Dy())
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: uploadJPEGQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}

	out := &OptimizedImage{
		Data:   buf.Bytes(),
		Width:  resized.Bounds().Dx(),
		Height: resized.Bounds().Dy(),
	}
	log.Printf("✓ Image optimized: quality=%d, output_size=%d bytes", uploadJPEGQuality, len(out.Data))
	return out, nil
}
