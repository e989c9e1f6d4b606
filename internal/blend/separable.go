package blend

import "math"

// separable lifts a per-channel blend function B(Cs, Cb) into a full
// compositing Func using the standard formula
//
//	Result = (1 - Sa)*D + (1 - Da)*S + Sa*Da*B(Cs, Cb)
//
// where B operates on unmultiplied channel values. The inputs and output
// are premultiplied.
func separable(blendChan func(s, d byte) byte) Func {
	return func(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
		if sa == 0 {
			return dr, dg, db, da
		}
		if da == 0 {
			return sr, sg, sb, sa
		}

		// Unpremultiply both sides before applying B.
		sur := byte((uint16(sr) * 255) / uint16(sa))
		sug := byte((uint16(sg) * 255) / uint16(sa))
		sub := byte((uint16(sb) * 255) / uint16(sa))
		dur := byte((uint16(dr) * 255) / uint16(da))
		dug := byte((uint16(dg) * 255) / uint16(da))
		dub := byte((uint16(db) * 255) / uint16(da))

		bR := blendChan(sur, dur)
		bG := blendChan(sug, dug)
		bB := blendChan(sub, dub)

		invSa := 255 - sa
		invDa := 255 - da
		saDa := mulDiv255(sa, da)

		outA := addClamp(sa, mulDiv255(da, invSa))
		outR := addClamp(addClamp(mulDiv255(dr, invSa), mulDiv255(sr, invDa)), mulDiv255(saDa, bR))
		outG := addClamp(addClamp(mulDiv255(dg, invSa), mulDiv255(sg, invDa)), mulDiv255(saDa, bG))
		outB := addClamp(addClamp(mulDiv255(db, invSa), mulDiv255(sb, invDa)), mulDiv255(saDa, bB))
		return outR, outG, outB, outA
	}
}

// Multiply darkens by multiplying the channels.
// B(Cs, Cb) = Cs * Cb
var Multiply = separable(mulDiv255)

// Screen is the inverse of Multiply and always lightens.
// B(Cs, Cb) = 1 - (1 - Cs) * (1 - Cb)
var Screen = separable(func(s, d byte) byte {
	return 255 - mulDiv255(255-s, 255-d)
})

// Overlay multiplies dark backdrop areas and screens light ones.
// B(Cs, Cb) = HardLight(Cb, Cs)
var Overlay = separable(func(s, d byte) byte {
	return hardLightChan(d, s)
})

// Darken keeps the darker channel.
// B(Cs, Cb) = min(Cs, Cb)
var Darken = separable(minByte)

// Lighten keeps the lighter channel.
// B(Cs, Cb) = max(Cs, Cb)
var Lighten = separable(maxByte)

// ColorDodge brightens the backdrop to reflect the source.
// B(Cs, Cb) = Cs == 1 ? 1 : min(1, Cb / (1 - Cs))
var ColorDodge = separable(func(s, d byte) byte {
	if s == 255 {
		return 255
	}
	v := (uint16(d) * 255) / uint16(255-s)
	if v > 255 {
		return 255
	}
	return byte(v)
})

// ColorBurn darkens the backdrop to reflect the source.
// B(Cs, Cb) = Cs == 0 ? 0 : 1 - min(1, (1 - Cb) / Cs)
var ColorBurn = separable(func(s, d byte) byte {
	if s == 0 {
		return 0
	}
	v := (uint16(255-d) * 255) / uint16(s)
	if v > 255 {
		return 0
	}
	return 255 - byte(v)
})

// HardLight multiplies or screens depending on the source channel.
var HardLight = separable(hardLightChan)

// hardLightChan implements the HardLight channel function with the
// source deciding between Multiply and Screen.
// B(Cs, Cb) = Cs <= 0.5 ? Multiply(Cb, 2*Cs) : Screen(Cb, 2*Cs - 1)
func hardLightChan(s, d byte) byte {
	if s < 128 {
		return mulDiv255(2*s, d)
	}
	return 255 - mulDiv255(2*(255-s), 255-d)
}

// SoftLight is a softer, non-clipping variant of HardLight.
var SoftLight = separable(func(s, d byte) byte {
	sf := float64(s) / 255.0
	df := float64(d) / 255.0

	var v float64
	if sf <= 0.5 {
		v = df - (1-2*sf)*df*(1-df)
	} else {
		var dx float64
		if df <= 0.25 {
			dx = ((16*df-12)*df + 4) * df
		} else {
			dx = math.Sqrt(df)
		}
		v = df + (2*sf-1)*(dx-df)
	}

	if v < 0 {
		return 0
	}
	if v > 1 {
		return 255
	}
	return byte(v * 255)
})

// Difference takes the absolute channel difference.
// B(Cs, Cb) = |Cs - Cb|
var Difference = separable(func(s, d byte) byte {
	if s > d {
		return s - d
	}
	return d - s
})

// Exclusion is Difference with lower contrast.
// B(Cs, Cb) = Cs + Cb - 2*Cs*Cb
var Exclusion = separable(func(s, d byte) byte {
	sum := uint16(s) + uint16(d)
	v := sum - 2*uint16(mulDiv255(s, d))
	if v > 255 {
		return 255
	}
	return byte(v)
})
