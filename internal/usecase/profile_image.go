package usecase

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"strings"

	_ "image/gif"

	"golang.org/x/image/draw"
)

// Uploaded avatars are downscaled so the longest side never exceeds this.
const maxImageDimension = 512

var errInvalidImage = errors.New("invalid image payload")

// normalizeImage decodes a base64 upload (with or without a data URI
// prefix), downscales oversized images and re-encodes. PNG stays PNG to
// keep transparency, everything else becomes JPEG.
func normalizeImage(encoded string) ([]byte, string, error) {
	if idx := strings.Index(encoded, ";base64,"); idx >= 0 {
		encoded = encoded[idx+len(";base64,"):]
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, "", errInvalidImage
	}

	src, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, "", errInvalidImage
	}

	src = downscale(src)

	var buf bytes.Buffer
	if format == "png" {
		if err := png.Encode(&buf, src); err != nil {
			return nil, "", err
		}
		return buf.Bytes(), "image/png", nil
	}
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: 85}); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), "image/jpeg", nil
}

func downscale(src image.Image) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxImageDimension && h <= maxImageDimension {
		return src
	}

	if w >= h {
		h = h * maxImageDimension / w
		w = maxImageDimension
	} else {
		w = w * maxImageDimension / h
		h = maxImageDimension
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}
