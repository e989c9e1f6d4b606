package psd2x

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

// TestEncodePNGRoundTrip tests that PNG output decodes back to the same
// pixels.
func TestEncodePNGRoundTrip(t *testing.T) {
	pm := NewPixmap(image.Rect(0, 0, 3, 2))
	pm.SetRGBA(0, 0, 255, 0, 0, 255)
	pm.SetRGBA(2, 1, 0, 0, 255, 128)

	var buf bytes.Buffer
	if err := Encode(&buf, pm, "png"); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	back := FromImage(img, image.Point{})
	if !bytes.Equal(back.Data(), pm.Data()) {
		t.Error("decoded pixels differ from source")
	}
}

// TestEncodeJPEG tests that the JPEG path produces output; lossy
// encoding rules out a pixel comparison.
func TestEncodeJPEG(t *testing.T) {
	pm := NewPixmap(image.Rect(0, 0, 4, 4))
	pm.Fill(200, 100, 50, 255)

	var buf bytes.Buffer
	if err := Encode(&buf, pm, "jpeg"); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("empty JPEG output")
	}
}

func TestEncodeErrors(t *testing.T) {
	pm := NewPixmap(image.Rect(0, 0, 1, 1))
	if err := Encode(&bytes.Buffer{}, pm, "gif"); err == nil {
		t.Error("Encode accepted unsupported format")
	}
	if err := Encode(&bytes.Buffer{}, nil, "png"); err == nil {
		t.Error("Encode accepted nil pixmap")
	}
}

// TestResize tests dimension resolution and the no-op fast paths.
func TestResize(t *testing.T) {
	pm := NewPixmap(image.Rect(0, 0, 8, 4))
	pm.Fill(10, 20, 30, 255)

	for _, tt := range []struct {
		name           string
		w, h           int
		wantW, wantH   int
		wantSamePixmap bool
	}{
		{"both zero", 0, 0, 8, 4, true},
		{"same size", 8, 4, 8, 4, true},
		{"explicit", 4, 2, 4, 2, false},
		{"width only", 4, 0, 4, 2, false},
		{"height only", 0, 2, 4, 2, false},
		{"upscale", 16, 8, 16, 8, false},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got := Resize(pm, tt.w, tt.h)
			if got.Width() != tt.wantW || got.Height() != tt.wantH {
				t.Fatalf("size = %dx%d, want %dx%d", got.Width(), got.Height(), tt.wantW, tt.wantH)
			}
			if (got == pm) != tt.wantSamePixmap {
				t.Errorf("same pixmap = %v, want %v", got == pm, tt.wantSamePixmap)
			}
		})
	}

	// Uniform content survives resampling exactly.
	half := Resize(pm, 4, 2)
	r, g, b, a := half.RGBA(1, 1)
	if [4]uint8{r, g, b, a} != [4]uint8{10, 20, 30, 255} {
		t.Errorf("resampled pixel = %v", [4]uint8{r, g, b, a})
	}

	if Resize(nil, 4, 4) != nil {
		t.Error("Resize of nil pixmap not nil")
	}
}
