package psd2x

import (
	"image"
	"image/color"
)

// Mask is a single-channel 8-bit buffer. The compositor reads it two
// ways: as a transparency mask, where each sample becomes a pixel's
// alpha directly, or as the payload of a LayerMask, where each sample
// scales the existing alpha.
type Mask struct {
	width  int
	height int
	data   []uint8
}

// NewMask creates a mask with the given dimensions, all samples 0.
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// NewMaskFromImage builds a mask from the grayscale intensity of an
// image, using the standard luma reduction.
func NewMaskFromImage(img image.Image) *Mask {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	m := NewMask(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
			m.data[y*w+x] = g.Y
		}
	}
	return m
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// At returns the sample at (x, y). Out-of-range coordinates read as 0.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Set sets the sample at (x, y). Out-of-range coordinates are ignored.
func (m *Mask) Set(x, y int, value uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = value
}

// Fill sets every sample to the given value.
func (m *Mask) Fill(value uint8) {
	for i := range m.data {
		m.data[i] = value
	}
}

// Clone returns a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	c := NewMask(m.width, m.height)
	copy(c.data, m.data)
	return c
}

// Data returns the underlying sample slice.
func (m *Mask) Data() []uint8 { return m.data }

// LayerMask is a grayscale mask with its own document-space rectangle,
// possibly smaller than or offset from the layer it masks. Samples
// outside the rectangle read as DefaultColor.
type LayerMask struct {
	Mask         *Mask
	Rect         image.Rectangle // document space
	DefaultColor uint8
}

// Sample returns the mask value at document coordinates (x, y).
// Coordinates outside the mask rectangle or buffer yield DefaultColor.
func (lm *LayerMask) Sample(x, y int) uint8 {
	if lm.Mask == nil {
		return lm.DefaultColor
	}
	mx := x - lm.Rect.Min.X
	my := y - lm.Rect.Min.Y
	if mx < 0 || mx >= lm.Mask.width || my < 0 || my >= lm.Mask.height {
		return lm.DefaultColor
	}
	return lm.Mask.data[my*lm.Mask.width+mx]
}
