package gauge

import (
	"image/color"

	"github.com/gogpu/gg"
)

// RGBA8 is an 8-bit per channel color with straight (non-premultiplied)
// alpha.
type RGBA8 struct {
	R, G, B, A uint8
}

// RGB8 creates an opaque color.
func RGB8(r, g, b uint8) RGBA8 {
	return RGBA8{R: r, G: g, B: b, A: 255}
}

// RGBA implements color.Color.
func (c RGBA8) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// Float converts c to gg's float color.
func (c RGBA8) Float() gg.RGBA {
	return gg.RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

// Hex parses a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with an optional
// leading '#'. Invalid digits parse as zero; unsupported lengths yield
// transparent black and ok == false.
func Hex(hex string) (c RGBA8, ok bool) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return RGBA8{}, false
	}

	return RGBA8{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, true
}

// MustHex is like Hex but panics on an unsupported length.
// Intended for package-level color literals.
func MustHex(hex string) RGBA8 {
	c, ok := Hex(hex)
	if !ok {
		panic("gauge: invalid hex color " + hex)
	}
	return c
}

// parseHex accumulates hex digits of s into val. Invalid digits count as 0.
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		*val <<= 4
		ch := s[i]
		switch {
		case ch >= '0' && ch <= '9':
			*val |= uint32(ch - '0')
		case ch >= 'a' && ch <= 'f':
			*val |= uint32(ch - 'a' + 10)
		case ch >= 'A' && ch <= 'F':
			*val |= uint32(ch - 'A' + 10)
		}
	}
}

// Common colors.
var (
	Black     = RGB8(0, 0, 0)
	White     = RGB8(255, 255, 255)
	Gray      = RGB8(160, 160, 160)
	LightGray = RGB8(220, 220, 220)
	Red       = RGB8(255, 0, 0)
	Green     = RGB8(0, 255, 0)
	Blue      = RGB8(0, 0, 255)
)
