package psd2x

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// DefaultJPEGQuality is the quality used by Encode for JPEG output.
const DefaultJPEGQuality = 90

// EncodePNG writes the pixmap to w as PNG.
func EncodePNG(w io.Writer, pm *Pixmap) error {
	if pm == nil {
		return fmt.Errorf("psd2x: encode: nil pixmap")
	}
	return png.Encode(w, pm.ToImage())
}

// EncodeJPEG writes the pixmap to w as JPEG with the given quality
// (1-100). JPEG has no alpha; transparent regions encode as black.
func EncodeJPEG(w io.Writer, pm *Pixmap, quality int) error {
	if pm == nil {
		return fmt.Errorf("psd2x: encode: nil pixmap")
	}
	return jpeg.Encode(w, pm.ToImage(), &jpeg.Options{Quality: quality})
}

// Encode writes the pixmap to w in the named format ("png" or "jpeg").
func Encode(w io.Writer, pm *Pixmap, format string) error {
	switch format {
	case "png":
		return EncodePNG(w, pm)
	case "jpeg", "jpg":
		return EncodeJPEG(w, pm, DefaultJPEGQuality)
	default:
		return fmt.Errorf("psd2x: unsupported encode format %q", format)
	}
}

// Resize scales the pixmap to width x height using Catmull-Rom
// resampling. A dimension of 0 keeps the source size (scaling the other
// dimension proportionally when only one is given). Returns the source
// pixmap unchanged when no scaling is needed.
func Resize(pm *Pixmap, width, height int) *Pixmap {
	if pm == nil {
		return nil
	}
	sw, sh := pm.Width(), pm.Height()
	switch {
	case width <= 0 && height <= 0:
		return pm
	case width <= 0:
		width = sw * height / sh
	case height <= 0:
		height = sh * width / sw
	}
	if width == sw && height == sh {
		return pm
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), pm.ToImage(), pm.Bounds(), draw.Src, nil)
	return FromImage(dst, image.Point{})
}
