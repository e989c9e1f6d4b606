package psd2x

// maskedPixels returns a leaf's pixel buffer with its masks applied,
// never mutating the source. A nil result means the leaf has nothing to
// draw.
//
// Order matters: the buffer is first promoted to carry alpha (opaque by
// default), then the transparency mask overwrites alpha sample-for-
// sample, then the layer mask scales whatever alpha is present. Both
// masks therefore compose multiplicatively when present together.
//
// Alpha arithmetic is integer with truncating division by 255; this is
// an exactness requirement, not an optimization.
func maskedPixels(l *Layer) *Pixmap {
	if l.Pixels == nil || l.Pixels.Width() == 0 || l.Pixels.Height() == 0 {
		return nil
	}
	pm := l.Pixels.Clone()
	w, h := pm.Width(), pm.Height()

	if !l.HasAlpha {
		// Promote: without a native alpha channel every pixel is opaque.
		data := pm.Data()
		for i := 3; i < len(data); i += 4 {
			data[i] = 255
		}
		if tm := l.TransparencyMask; tm != nil {
			// Each sample becomes the pixel's alpha directly, over the
			// overlap of buffer and mask extents.
			ow := min(w, tm.Width())
			oh := min(h, tm.Height())
			for y := 0; y < oh; y++ {
				for x := 0; x < ow; x++ {
					data[(y*w+x)*4+3] = tm.At(x, y)
				}
			}
		}
	}

	if lm := l.LayerMask; lm != nil && lm.Mask != nil {
		data := pm.Data()
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				mv := lm.Sample(l.Rect.Min.X+x, l.Rect.Min.Y+y)
				i := (y*w + x) * 4
				data[i+3] = uint8(int(data[i+3]) * int(mv) / 255)
			}
		}
	}

	return pm
}
