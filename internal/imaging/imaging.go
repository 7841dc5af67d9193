// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package imaging generates admin-preview thumbnails for uploaded gallery
// images. Sources may be JPEG, PNG, GIF or WebP; thumbnails are encoded as
// JPEG. Sources already narrower than the thumbnail width are re-encoded
// at their original size to avoid upscaling.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
	"golang.org/x/image/webp"
)

const (
	// ThumbWidth is the target width in pixels for preview thumbnails.
	ThumbWidth = 320

	// thumbQuality is the JPEG quality for thumbnail output.
	thumbQuality = 75
)

// Thumbnail holds a generated preview ready for upload.
type Thumbnail struct {
	Width       int
	Height      int
	Data        []byte
	ContentType string // always "image/jpeg"
}

// Decode parses image bytes according to their sniffed content type.
func Decode(data []byte, contentType string) (image.Image, error) {
	var (
		img image.Image
		err error
	)
	switch contentType {
	case "image/jpeg":
		img, err = jpeg.Decode(bytes.NewReader(data))
	case "image/png":
		img, err = png.Decode(bytes.NewReader(data))
	case "image/gif":
		img, err = gif.Decode(bytes.NewReader(data))
	case "image/webp":
		img, err = webp.Decode(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("imaging: unsupported content type %q", contentType)
	}
	if err != nil {
		return nil, fmt.Errorf("imaging: decode failed: %w", err)
	}
	return img, nil
}

// GenerateThumbnail scales the source down to ThumbWidth with CatmullRom
// resampling and encodes the result as JPEG.
func GenerateThumbnail(data []byte, contentType string) (*Thumbnail, error) {
	src, err := Decode(data, contentType)
	if err != nil {
		return nil, err
	}

	bounds := src.Bounds()
	srcWidth := bounds.Dx()
	srcHeight := bounds.Dy()
	if srcWidth <= 0 || srcHeight <= 0 {
		return nil, fmt.Errorf("imaging: empty image")
	}

	// Cap at original width to avoid upscaling.
	width := ThumbWidth
	if srcWidth < width {
		width = srcWidth
	}
	height := srcHeight * width / srcWidth
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: thumbQuality}); err != nil {
		return nil, fmt.Errorf("imaging: encode failed: %w", err)
	}

	return &Thumbnail{
		Width:       width,
		Height:      height,
		Data:        buf.Bytes(),
		ContentType: "image/jpeg",
	}, nil
}
