package blend

import "testing"

// TestSourceOver tests the Normal compositing operator on premultiplied
// values.
func TestSourceOver(t *testing.T) {
	tests := []struct {
		name string
		src  [4]byte
		dst  [4]byte
		want [4]byte
	}{
		{
			name: "opaque source replaces destination",
			src:  [4]byte{255, 0, 0, 255},
			dst:  [4]byte{0, 255, 0, 255},
			want: [4]byte{255, 0, 0, 255},
		},
		{
			name: "transparent source keeps destination",
			src:  [4]byte{0, 0, 0, 0},
			dst:  [4]byte{0, 255, 0, 255},
			want: [4]byte{0, 255, 0, 255},
		},
		{
			name: "half source over opaque white",
			// Premultiplied 50% black over white: D scaled by 1-Sa.
			src:  [4]byte{0, 0, 0, 128},
			dst:  [4]byte{255, 255, 255, 255},
			want: [4]byte{127, 127, 127, 255},
		},
		{
			name: "both transparent stays transparent",
			src:  [4]byte{0, 0, 0, 0},
			dst:  [4]byte{0, 0, 0, 0},
			want: [4]byte{0, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := SourceOver(
				tt.src[0], tt.src[1], tt.src[2], tt.src[3],
				tt.dst[0], tt.dst[1], tt.dst[2], tt.dst[3])
			got := [4]byte{r, g, b, a}
			if got != tt.want {
				t.Errorf("SourceOver() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestSeparableModes checks the channel formulas of the separable modes
// on fully opaque pixels, where premultiplied and straight values agree
// and the compositing formula reduces to B(Cs, Cb).
func TestSeparableModes(t *testing.T) {
	tests := []struct {
		name string
		fn   Func
		src  [3]byte
		dst  [3]byte
		want [3]byte
	}{
		{"multiply black", Multiply, [3]byte{0, 0, 0}, [3]byte{255, 128, 0}, [3]byte{0, 0, 0}},
		{"multiply white is identity", Multiply, [3]byte{255, 255, 255}, [3]byte{12, 34, 56}, [3]byte{12, 34, 56}},
		{"multiply halves", Multiply, [3]byte{128, 128, 128}, [3]byte{128, 128, 128}, [3]byte{64, 64, 64}},
		{"screen black is identity", Screen, [3]byte{0, 0, 0}, [3]byte{12, 34, 56}, [3]byte{12, 34, 56}},
		{"screen white saturates", Screen, [3]byte{255, 255, 255}, [3]byte{12, 34, 56}, [3]byte{255, 255, 255}},
		{"darken picks minimum", Darken, [3]byte{10, 200, 128}, [3]byte{20, 100, 128}, [3]byte{10, 100, 128}},
		{"lighten picks maximum", Lighten, [3]byte{10, 200, 128}, [3]byte{20, 100, 128}, [3]byte{20, 200, 128}},
		{"difference", Difference, [3]byte{200, 10, 128}, [3]byte{50, 60, 128}, [3]byte{150, 50, 0}},
		{"exclusion extremes", Exclusion, [3]byte{255, 0, 255}, [3]byte{255, 255, 0}, [3]byte{0, 255, 255}},
		{"overlay dark backdrop multiplies", Overlay, [3]byte{128, 0, 0}, [3]byte{64, 64, 64}, [3]byte{64, 0, 0}},
		{"hard light dark source multiplies", HardLight, [3]byte{64, 0, 0}, [3]byte{128, 128, 128}, [3]byte{64, 0, 0}},
		{"color dodge white source saturates", ColorDodge, [3]byte{255, 255, 255}, [3]byte{1, 1, 1}, [3]byte{255, 255, 255}},
		{"color burn black source zeroes", ColorBurn, [3]byte{0, 0, 0}, [3]byte{200, 200, 200}, [3]byte{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.fn(
				tt.src[0], tt.src[1], tt.src[2], 255,
				tt.dst[0], tt.dst[1], tt.dst[2], 255)
			if a != 255 {
				t.Fatalf("alpha = %d, want 255", a)
			}
			got := [3]byte{r, g, b}
			if got != tt.want {
				t.Errorf("blend = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestSeparableTransparentEdges verifies the fast paths for fully
// transparent source or destination.
func TestSeparableTransparentEdges(t *testing.T) {
	modes := map[string]Func{
		"multiply":  Multiply,
		"screen":    Screen,
		"overlay":   Overlay,
		"softlight": SoftLight,
	}
	for name, fn := range modes {
		t.Run(name, func(t *testing.T) {
			r, g, b, a := fn(0, 0, 0, 0, 100, 50, 25, 200)
			if [4]byte{r, g, b, a} != [4]byte{100, 50, 25, 200} {
				t.Errorf("transparent source: got %v, want destination unchanged", [4]byte{r, g, b, a})
			}
			r, g, b, a = fn(100, 50, 25, 200, 0, 0, 0, 0)
			if [4]byte{r, g, b, a} != [4]byte{100, 50, 25, 200} {
				t.Errorf("transparent destination: got %v, want source unchanged", [4]byte{r, g, b, a})
			}
		})
	}
}

// TestSoftLightRange checks SoftLight stays within range across a sweep
// of channel values.
func TestSoftLightRange(t *testing.T) {
	for s := 0; s <= 255; s += 17 {
		for d := 0; d <= 255; d += 17 {
			r, _, _, a := SoftLight(byte(s), byte(s), byte(s), 255, byte(d), byte(d), byte(d), 255)
			if a != 255 {
				t.Fatalf("SoftLight(%d,%d) alpha = %d", s, d, a)
			}
			_ = r
		}
	}
}

// TestHueLuminosityOpaque sanity checks the non-separable modes on
// opaque primaries.
func TestHueLuminosityOpaque(t *testing.T) {
	// Luminosity of pure red over pure red keeps red.
	r, g, b, a := Luminosity(255, 0, 0, 255, 255, 0, 0, 255)
	if [4]byte{r, g, b, a} != [4]byte{255, 0, 0, 255} {
		t.Errorf("Luminosity(red, red) = %v, want red", [4]byte{r, g, b, a})
	}

	// Color of gray over anything produces a gray with the backdrop's
	// luminance: Sat(gray) == 0.
	r, g, b, _ = Color(128, 128, 128, 255, 0, 255, 0, 255)
	if r != g || g != b {
		t.Errorf("Color(gray, green) = (%d,%d,%d), want achromatic", r, g, b)
	}

	// Hue keeps backdrop luminance: blending anything into gray keeps a
	// result whose Lum matches the backdrop's.
	r, g, b, _ = Hue(255, 0, 0, 255, 128, 128, 128, 255)
	lum := 0.30*float32(r) + 0.59*float32(g) + 0.11*float32(b)
	if lum < 120 || lum > 136 {
		t.Errorf("Hue(red, gray) luminance = %.1f, want near 128", lum)
	}
}

// TestSetSatOrdering exercises all component orderings of setSat.
func TestSetSatOrdering(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float32
	}{
		{"r<=g<=b", 0.1, 0.5, 0.9},
		{"r<=b<g", 0.1, 0.9, 0.5},
		{"b<r<=g", 0.5, 0.9, 0.1},
		{"g<r<=b", 0.5, 0.1, 0.9},
		{"g<=b<r", 0.9, 0.1, 0.5},
		{"b<g<r", 0.9, 0.5, 0.1},
		{"grayscale", 0.4, 0.4, 0.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := setSat(tt.r, tt.g, tt.b, 0.5)
			got := Sat(r, g, b)
			want := float32(0.5)
			if tt.r == tt.g && tt.g == tt.b {
				want = 0 // saturation of gray cannot be raised
			}
			if diff := got - want; diff < -1e-4 || diff > 1e-4 {
				t.Errorf("Sat(setSat()) = %v, want %v", got, want)
			}
		})
	}
}

// TestMulDiv255 tests the rounding multiply helper.
func TestMulDiv255(t *testing.T) {
	tests := []struct {
		a, b, want byte
	}{
		{0, 0, 0},
		{255, 255, 255},
		{255, 0, 0},
		{128, 255, 128},
		{128, 128, 64},
		{1, 1, 0},
	}
	for _, tt := range tests {
		if got := mulDiv255(tt.a, tt.b); got != tt.want {
			t.Errorf("mulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
