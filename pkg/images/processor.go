// Package images converts uploaded progress photos into the stored asset
// shape: a size-capped full rendition plus a small thumbnail, both JPEG
// data URLs.
package images

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"

	"bodytracker/entities"
)

const (
	maxFullSize   = 1200
	thumbSize     = 150
	fullQuality   = 80
	thumbQuality  = 60
	dataURLPrefix = "data:image/jpeg;base64,"
)

// Process decodes the uploaded bytes and produces the stored asset. The full
// rendition is capped to 1200px on the longer edge, the thumbnail fits in a
// 150px box; aspect ratio is preserved.
func Process(originalName string, data []byte) (entities.ImageAsset, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return entities.ImageAsset{}, fmt.Errorf("decode image %q: %w", originalName, err)
	}

	full := scaleDown(src, maxFullSize)
	fullURL, err := encodeDataURL(full, fullQuality)
	if err != nil {
		return entities.ImageAsset{}, err
	}

	thumb := scaleDown(full, thumbSize)
	thumbURL, err := encodeDataURL(thumb, thumbQuality)
	if err != nil {
		return entities.ImageAsset{}, err
	}

	return entities.ImageAsset{
		Full:         fullURL,
		Thumbnail:    thumbURL,
		OriginalName: originalName,
	}, nil
}

// scaleDown resizes so the longer edge is at most max, never upscaling.
func scaleDown(src image.Image, max int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= max && h <= max {
		return src
	}
	var nw, nh int
	if w > h {
		nw = max
		nh = h * max / w
	} else {
		nh = max
		nw = w * max / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}

func encodeDataURL(img image.Image, quality int) (string, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}
	return dataURLPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
