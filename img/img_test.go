package img

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	src := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	return buf.Bytes()
}

func decodeSize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not JPEG: %v", err)
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func TestCompressDownscales(t *testing.T) {
	out, err := Compress(encodePNG(t, 100, 50), 40, 80)
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}
	if w, h := decodeSize(t, out); w != 40 || h != 20 {
		t.Fatalf("Compress() output is %dx%d, want 40x20", w, h)
	}
}

func TestCompressNeverUpscales(t *testing.T) {
	out, err := Compress(encodePNG(t, 100, 50), 200, 80)
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}
	if w, h := decodeSize(t, out); w != 100 || h != 50 {
		t.Fatalf("Compress() output is %dx%d, want the original 100x50", w, h)
	}
}

func TestCompressRoundsHeight(t *testing.T) {
	// 99x50 at width 40: 50*40/99 = 20.2, rounds to 20.
	out, err := Compress(encodePNG(t, 99, 50), 40, 80)
	if err != nil {
		t.Fatalf("Compress() error = %v", err)
	}
	if w, h := decodeSize(t, out); w != 40 || h != 20 {
		t.Fatalf("Compress() output is %dx%d, want 40x20", w, h)
	}
}

func TestCompressRejectsGarbage(t *testing.T) {
	if _, err := Compress([]byte("not an image at all"), 40, 80); err == nil {
		t.Fatal("Compress() of garbage succeeded")
	}
}
