package palette

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is an 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color in "#rrggbb" notation.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses "#rrggbb", "rrggbb", or the short "#rgb" form.
func ParseHex(s string) (RGB, error) {
	orig := s
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q", orig)
	}

	switch len(s) {
	case 6:
		return RGB{
			R: uint8(v >> 16),
			G: uint8(v >> 8),
			B: uint8(v),
		}, nil
	case 3:
		return RGB{
			R: uint8(v>>8&0xf) * 0x11,
			G: uint8(v>>4&0xf) * 0x11,
			B: uint8(v&0xf) * 0x11,
		}, nil
	}
	return RGB{}, fmt.Errorf("invalid hex color %q: expected 3 or 6 hex digits", orig)
}
