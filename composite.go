package psd2x

// Render flattens the subtree rooted at id into a single pixmap.
//
// For a leaf it returns the masked pixel buffer directly, with no
// canvas allocation. For a folder it allocates a transparent canvas
// sized to the subtree's visible bounds and paints the children
// bottom-to-top onto it, honoring per-layer opacity and blend mode and
// per-group isolation.
//
// A nil result is the explicit "nothing to render" outcome: an invalid
// or invisible node, an empty bounding box, or a leaf without pixel
// data. Malformed input never fails a render; the affected node simply
// contributes nothing.
func (d *Document) Render(id NodeID) *Pixmap {
	l := d.Layer(id)
	if l == nil || !l.Visible {
		return nil
	}
	if l.Kind != KindFolder {
		return maskedPixels(l)
	}

	bounds := d.Bounds(id)
	if bounds.Empty() {
		Logger().Debug("nothing to render", "node", int(id), "name", l.Name)
		return nil
	}

	canvas := NewPixmap(bounds)
	d.compositeChildren(id, canvas, 1.0)
	Logger().Debug("rendered subtree",
		"node", int(id), "name", l.Name,
		"width", canvas.Width(), "height", canvas.Height())
	return canvas
}

// compositeChildren paints the children of parent onto canvas.
//
// Children are iterated in reverse document order so the last-listed
// (bottommost) child paints first and the first-listed (topmost) child
// paints last. The accumulated painter opacity is threaded explicitly;
// every paint multiplies it by the layer's own opacity and fill
// opacity, and nothing is saved or restored behind the scenes.
//
// A pass-through folder is transparent to compositing: its children
// paint straight onto the current canvas against whatever has been
// painted so far, with no intermediate buffer and no opacity or blend
// step for the folder itself. An isolated folder renders its children
// against each other in a private canvas first, then paints that
// composite exactly once.
func (d *Document) compositeChildren(parent NodeID, canvas *Pixmap, opacity float64) {
	children := d.Children(parent)
	for i := len(children) - 1; i >= 0; i-- {
		id := children[i]
		l := d.Layer(id)
		if !l.Visible {
			continue
		}

		if l.Kind == KindFolder {
			if l.BlendMode == BlendPassThrough {
				d.compositeChildren(id, canvas, opacity)
				continue
			}
			bounds := d.Bounds(id)
			if bounds.Empty() {
				continue
			}
			group := NewPixmap(bounds)
			d.compositeChildren(id, group, 1.0)
			drawPixmap(canvas, group, l.BlendMode, opacity*l.Opacity*l.FillOpacity)
			continue
		}

		pm := maskedPixels(l)
		if pm == nil {
			Logger().Warn("skipping layer with no pixel data", "node", int(id), "name", l.Name)
			continue
		}
		drawPixmap(canvas, pm, l.BlendMode, opacity*l.Opacity*l.FillOpacity)
	}
}

// drawPixmap paints src onto dst at the offset implied by their
// document-space rectangles, combining pixels with the given blend mode
// and scaling the source by opacity.
//
// The blend functions operate on premultiplied bytes, so each pixel is
// premultiplied on the way in and unpremultiplied on the way out; the
// pixmaps themselves stay straight-alpha.
func drawPixmap(dst, src *Pixmap, mode BlendMode, opacity float64) {
	fn := mode.fn()

	offX := src.rect.Min.X - dst.rect.Min.X
	offY := src.rect.Min.Y - dst.rect.Min.Y
	dstW, dstH := dst.Width(), dst.Height()

	// Clip the source span to the destination.
	x0, y0 := offX, offY
	x1, y1 := offX+src.Width(), offY+src.Height()
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > dstW {
		x1 = dstW
	}
	if y1 > dstH {
		y1 = dstH
	}

	for dy := y0; dy < y1; dy++ {
		for dx := x0; dx < x1; dx++ {
			r, g, b, a := src.RGBA(dx-offX, dy-offY)
			sr := premul(r, a)
			sg := premul(g, a)
			sb := premul(b, a)
			sa := a
			if opacity < 1.0 {
				sr = uint8(float64(sr) * opacity)
				sg = uint8(float64(sg) * opacity)
				sb = uint8(float64(sb) * opacity)
				sa = uint8(float64(sa) * opacity)
			}

			r, g, b, a = dst.RGBA(dx, dy)
			dr := premul(r, a)
			dg := premul(g, a)
			db := premul(b, a)

			or, og, ob, oa := fn(sr, sg, sb, sa, dr, dg, db, a)
			dst.SetRGBA(dx, dy, unpremul(or, oa), unpremul(og, oa), unpremul(ob, oa), oa)
		}
	}
}

// premul converts one straight-alpha channel value to premultiplied.
func premul(v, a uint8) uint8 {
	return uint8((uint16(v)*uint16(a) + 127) / 255)
}

// unpremul converts one premultiplied channel value back to straight
// alpha. Zero alpha maps to zero.
func unpremul(v, a uint8) uint8 {
	if a == 0 {
		return 0
	}
	x := uint16(v) * 255 / uint16(a)
	if x > 255 {
		return 255
	}
	return uint8(x)
}
