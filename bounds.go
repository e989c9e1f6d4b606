package psd2x

import "image"

// Bounds returns the smallest document-space rectangle enclosing every
// visible leaf in the subtree rooted at id. An invisible node prunes
// its whole subtree: visibility is inherited by exclusion from
// traversal. The zero rectangle means nothing is visible; it is a valid
// "nothing to render" result, not an error.
func (d *Document) Bounds(id NodeID) image.Rectangle {
	l := d.Layer(id)
	if l == nil || !l.Visible {
		return image.Rectangle{}
	}
	if l.Kind != KindFolder {
		return l.Rect
	}
	var r image.Rectangle
	for _, c := range d.Children(id) {
		r = r.Union(d.Bounds(c))
	}
	return r
}
