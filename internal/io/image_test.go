package ioutils

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}
	return buf.Bytes()
}

func TestPrepareCoverArt_PassThrough(t *testing.T) {
	svc := NewImageService()
	original := pngBytes(t, 10, 10)

	got, err := svc.PrepareCoverArt(original, false, 0, false)
	if err != nil {
		t.Fatalf("PrepareCoverArt: %v", err)
	}
	if !bytes.Equal(got, original) {
		t.Error("with all options off the bytes must pass through untouched")
	}
}

func TestPrepareCoverArt_ConvertsToJPEG(t *testing.T) {
	svc := NewImageService()

	got, err := svc.PrepareCoverArt(pngBytes(t, 10, 10), false, 0, true)
	if err != nil {
		t.Fatalf("PrepareCoverArt: %v", err)
	}

	_, format, err := image.Decode(bytes.NewReader(got))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("result format = %q, want jpeg", format)
	}
}

func TestPrepareCoverArt_ResizesOversized(t *testing.T) {
	svc := NewImageService()

	got, err := svc.PrepareCoverArt(pngBytes(t, 200, 100), true, 50, false)
	if err != nil {
		t.Fatalf("PrepareCoverArt: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(got))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 50 || bounds.Dy() != 25 {
		t.Errorf("resized to %dx%d, want 50x25 (aspect preserved)", bounds.Dx(), bounds.Dy())
	}
}

func TestPrepareCoverArt_SmallImageKeepsDimensions(t *testing.T) {
	svc := NewImageService()

	got, err := svc.PrepareCoverArt(pngBytes(t, 20, 30), true, 100, false)
	if err != nil {
		t.Fatalf("PrepareCoverArt: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(got))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 20 || bounds.Dy() != 30 {
		t.Errorf("dimensions = %dx%d, want unchanged 20x30", bounds.Dx(), bounds.Dy())
	}
}

func TestPrepareCoverArt_GarbageInput(t *testing.T) {
	svc := NewImageService()

	if _, err := svc.PrepareCoverArt([]byte("not an image"), false, 0, true); err == nil {
		t.Error("expected decode error for garbage input")
	}
}
