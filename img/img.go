// Package img prepares receipt photos for storage: the full payload is
// re-compressed to a bounded width and a small thumbnail is derived from
// the same source. The work is CPU-bound; callers run it off any
// interactive path. A failed compression fails only that one attachment.
package img

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // accept PNG receipts, stored re-encoded as JPEG

	xdraw "golang.org/x/image/draw"
)

// Budgets of the capture flow: the stored payload and its thumbnail.
const (
	FullWidth    = 1280
	FullQuality  = 72
	ThumbWidth   = 320
	ThumbQuality = 65
)

// Compress decodes an image, scales it down to at most maxWidth pixels
// wide (never up, aspect ratio preserved) and re-encodes it as JPEG with
// the given quality.
func Compress(data []byte, maxWidth, quality int) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > maxWidth {
		h = (h*maxWidth + w/2) / w
		w = maxWidth
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
