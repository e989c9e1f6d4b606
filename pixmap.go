package psd2x

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap is a straight-alpha RGBA pixel buffer positioned in document
// space. It is the unit of composition: the compositor allocates one
// per render (and one per isolated group), paints into it, and hands it
// to the caller or the encoder.
type Pixmap struct {
	rect image.Rectangle // document-space bounds
	data []uint8         // RGBA, 4 bytes per pixel, straight alpha
}

// NewPixmap creates a transparent pixmap covering the given
// document-space rectangle.
func NewPixmap(rect image.Rectangle) *Pixmap {
	return &Pixmap{
		rect: rect,
		data: make([]uint8, rect.Dx()*rect.Dy()*4),
	}
}

// Rect returns the document-space bounds of the pixmap.
func (p *Pixmap) Rect() image.Rectangle {
	return p.rect
}

// Width returns the pixmap width in pixels.
func (p *Pixmap) Width() int { return p.rect.Dx() }

// Height returns the pixmap height in pixels.
func (p *Pixmap) Height() int { return p.rect.Dy() }

// Data returns the raw RGBA pixel data.
func (p *Pixmap) Data() []uint8 { return p.data }

// RGBA returns the pixel at local coordinates (x, y).
// Out-of-range coordinates read as transparent.
func (p *Pixmap) RGBA(x, y int) (r, g, b, a uint8) {
	if x < 0 || x >= p.rect.Dx() || y < 0 || y >= p.rect.Dy() {
		return 0, 0, 0, 0
	}
	i := (y*p.rect.Dx() + x) * 4
	return p.data[i], p.data[i+1], p.data[i+2], p.data[i+3]
}

// SetRGBA sets the pixel at local coordinates (x, y).
// Out-of-range coordinates are ignored.
func (p *Pixmap) SetRGBA(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= p.rect.Dx() || y < 0 || y >= p.rect.Dy() {
		return
	}
	i := (y*p.rect.Dx() + x) * 4
	p.data[i] = r
	p.data[i+1] = g
	p.data[i+2] = b
	p.data[i+3] = a
}

// Fill sets every pixel to the given color.
func (p *Pixmap) Fill(r, g, b, a uint8) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	c := NewPixmap(p.rect)
	copy(c.data, p.data)
	return c
}

// ToImage converts the pixmap to an image.NRGBA sharing no memory with
// the pixmap. The image bounds start at (0, 0) regardless of the
// pixmap's document-space position.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.rect.Dx(), p.rect.Dy()))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image, placed at the given
// document-space origin.
func FromImage(img image.Image, origin image.Point) *Pixmap {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pm := NewPixmap(image.Rectangle{Min: origin, Max: origin.Add(image.Pt(w, h))})

	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Stride == w*4 {
		copy(pm.data, nrgba.Pix)
		return pm
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			pm.SetRGBA(x, y, c.R, c.G, c.B, c.A)
		}
	}
	return pm
}

// SavePNG writes the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // caller-provided path
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, p.ToImage())
}

// At implements the image.Image interface in local coordinates.
func (p *Pixmap) At(x, y int) color.Color {
	r, g, b, a := p.RGBA(x, y)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.rect.Dx(), p.rect.Dy())
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
