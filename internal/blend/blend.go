// Package blend implements the per-pixel blend functions used by the
// layer compositor.
//
// All functions operate on premultiplied RGBA bytes in the range 0-255.
// The separable modes follow the W3C Compositing and Blending Level 1
// specification; the non-separable modes (Hue, Saturation, Color,
// Luminosity) use the SetLum/SetSat algorithms from the same document.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Func combines one source pixel with one destination pixel.
// All values are premultiplied alpha, 0-255.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// SourceOver composites source over destination, the Normal blend mode.
// Formula: S + D * (1 - Sa)
func SourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	invSa := 255 - sa
	return addClamp(sr, mulDiv255(dr, invSa)),
		addClamp(sg, mulDiv255(dg, invSa)),
		addClamp(sb, mulDiv255(db, invSa)),
		addClamp(sa, mulDiv255(da, invSa))
}
