package blend

import "math"

// The non-separable modes operate on the whole RGB triplet rather than
// individual channels, using the Lum/Sat machinery from section 8 of the
// W3C Compositing and Blending Level 1 specification.

// Lum returns the luminance of a color using BT.601 coefficients.
// Formula: Lum(C) = 0.30*r + 0.59*g + 0.11*b
//
// Components are normalized float32 values in [0, 1].
func Lum(r, g, b float32) float32 {
	return 0.30*r + 0.59*g + 0.11*b
}

// Sat returns the saturation (max - min) of a color.
func Sat(r, g, b float32) float32 {
	return max3(r, g, b) - min3(r, g, b)
}

// clipColor pulls out-of-range components back into [0, 1] by scaling
// towards the luminance, per the W3C ClipColor algorithm.
func clipColor(r, g, b float32) (float32, float32, float32) {
	l := Lum(r, g, b)
	n := min3(r, g, b)
	x := max3(r, g, b)

	if n < 0 {
		r = l + (r-l)*l/(l-n)
		g = l + (g-l)*l/(l-n)
		b = l + (b-l)*l/(l-n)
	}
	if x > 1 {
		r = l + (r-l)*(1-l)/(x-l)
		g = l + (g-l)*(1-l)/(x-l)
		b = l + (b-l)*(1-l)/(x-l)
	}
	return r, g, b
}

// setLum shifts a color to the target luminance l, then clips.
func setLum(r, g, b, l float32) (float32, float32, float32) {
	d := l - Lum(r, g, b)
	return clipColor(r+d, g+d, b+d)
}

// setSat rescales a color to the target saturation s while preserving
// the ordering of its components.
func setSat(r, g, b, s float32) (float32, float32, float32) {
	minP, midP, maxP := sortRGB(&r, &g, &b)
	if *maxP > *minP {
		*midP = ((*midP - *minP) * s) / (*maxP - *minP)
		*maxP = s
		*minP = 0
	}
	// Grayscale input keeps all components equal; saturation stays 0.
	return r, g, b
}

// sortRGB returns pointers to r, g, b ordered by value.
func sortRGB(r, g, b *float32) (minP, midP, maxP *float32) {
	switch {
	case *r <= *g && *g <= *b:
		return r, g, b
	case *r <= *b && *b <= *g:
		return r, b, g
	case *b <= *r && *r <= *g:
		return b, r, g
	case *g <= *r && *r <= *b:
		return g, r, b
	case *g <= *b && *b <= *r:
		return g, b, r
	default:
		return b, g, r
	}
}

// Hue keeps the hue of the source with the saturation and luminosity of
// the backdrop. B(Cs, Cb) = SetLum(SetSat(Cs, Sat(Cb)), Lum(Cb))
var Hue = nonSeparable(func(sr, sg, sb, dr, dg, db float32) (float32, float32, float32) {
	r, g, b := setSat(sr, sg, sb, Sat(dr, dg, db))
	return setLum(r, g, b, Lum(dr, dg, db))
})

// Saturation keeps the saturation of the source with the hue and
// luminosity of the backdrop. B(Cs, Cb) = SetLum(SetSat(Cb, Sat(Cs)), Lum(Cb))
var Saturation = nonSeparable(func(sr, sg, sb, dr, dg, db float32) (float32, float32, float32) {
	r, g, b := setSat(dr, dg, db, Sat(sr, sg, sb))
	return setLum(r, g, b, Lum(dr, dg, db))
})

// Color keeps the hue and saturation of the source with the luminosity
// of the backdrop. B(Cs, Cb) = SetLum(Cs, Lum(Cb))
var Color = nonSeparable(func(sr, sg, sb, dr, dg, db float32) (float32, float32, float32) {
	return setLum(sr, sg, sb, Lum(dr, dg, db))
})

// Luminosity keeps the luminosity of the source with the hue and
// saturation of the backdrop. B(Cs, Cb) = SetLum(Cb, Lum(Cs))
var Luminosity = nonSeparable(func(sr, sg, sb, dr, dg, db float32) (float32, float32, float32) {
	return setLum(dr, dg, db, Lum(sr, sg, sb))
})

// nonSeparable lifts a triplet blend function into a Func, handling
// premultiplied alpha with the same compositing formula as separable.
func nonSeparable(blendRGB func(sr, sg, sb, dr, dg, db float32) (float32, float32, float32)) Func {
	return func(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
		if sa == 0 {
			return dr, dg, db, da
		}
		if da == 0 {
			return sr, sg, sb, sa
		}

		// Unpremultiply into normalized floats.
		sur := float32(sr) / float32(sa)
		sug := float32(sg) / float32(sa)
		sub := float32(sb) / float32(sa)
		dur := float32(dr) / float32(da)
		dug := float32(dg) / float32(da)
		dub := float32(db) / float32(da)

		bR, bG, bB := blendRGB(sur, sug, sub, dur, dug, dub)

		invSa := 255 - sa
		invDa := 255 - da
		saDa := float32(sa) / 255.0 * float32(da) / 255.0

		outA := addClamp(sa, mulDiv255(da, invSa))
		outR := addClamp(mulDiv255(dr, invSa), mulDiv255(sr, invDa))
		outG := addClamp(mulDiv255(dg, invSa), mulDiv255(sg, invDa))
		outB := addClamp(mulDiv255(db, invSa), mulDiv255(sb, invDa))

		outR = addClamp(outR, roundByte(bR*saDa*255))
		outG = addClamp(outG, roundByte(bG*saDa*255))
		outB = addClamp(outB, roundByte(bB*saDa*255))
		return outR, outG, outB, outA
	}
}

// roundByte rounds a float32 to the nearest byte, clamping to [0, 255].
func roundByte(v float32) byte {
	r := math.Round(float64(v))
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return byte(r)
}

// min3 returns the minimum of three float32 values.
func min3(a, b, c float32) float32 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}

// max3 returns the maximum of three float32 values.
func max3(a, b, c float32) float32 {
	if a > b {
		if a > c {
			return a
		}
		return c
	}
	if b > c {
		return b
	}
	return c
}
