package blend

// Integer math helpers shared by the blend functions. mulDiv255 is on
// the hot path of every composited pixel, so everything here stays on
// bytes and uint16 intermediates.

// mulDiv255 multiplies two byte values and divides by 255 with rounding.
//
// Formula: (a * b + 127) / 255
//
// The +127 rounds to nearest, matching the reference blend tables this
// package reproduces.
func mulDiv255(a, b byte) byte {
	return byte((uint16(a)*uint16(b) + 127) / 255)
}

// addClamp adds two byte values, clamping the sum to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// minByte returns the smaller of two bytes.
func minByte(a, b byte) byte {
	if a < b {
		return a
	}
	return b
}

// maxByte returns the larger of two bytes.
func maxByte(a, b byte) byte {
	if a > b {
		return a
	}
	return b
}
