// Package palette holds the fixed xterm 256-color table and nearest-color
// matching against it.
//
// The table layout is the one shared by practically all terminal emulators:
//
//   - 0-15: the conventional ANSI colors and their bright variants
//   - 16-231: a 6x6x6 color cube, axis levels 0, 95, 135, 175, 215, 255
//   - 232-255: a 24-step grayscale ramp from (8,8,8) to (238,238,238)
//
// Emulators let users reconfigure the first 16 entries, so matches in that
// range are nominal; the remaining 240 are stable in practice.
package palette

// Colors is the full 256-entry xterm palette, indexed by terminal color
// number. Built once at init from the cube and ramp formulas.
var Colors [256]RGB

// The first 16 entries have no formula; these are the xterm defaults.
var systemColors = [16]RGB{
	{0x00, 0x00, 0x00}, // black
	{0x80, 0x00, 0x00}, // red
	{0x00, 0x80, 0x00}, // green
	{0x80, 0x80, 0x00}, // yellow
	{0x00, 0x00, 0x80}, // blue
	{0x80, 0x00, 0x80}, // magenta
	{0x00, 0x80, 0x80}, // cyan
	{0xc0, 0xc0, 0xc0}, // white
	{0x80, 0x80, 0x80}, // bright black
	{0xff, 0x00, 0x00}, // bright red
	{0x00, 0xff, 0x00}, // bright green
	{0xff, 0xff, 0x00}, // bright yellow
	{0x00, 0x00, 0xff}, // bright blue
	{0xff, 0x00, 0xff}, // bright magenta
	{0x00, 0xff, 0xff}, // bright cyan
	{0xff, 0xff, 0xff}, // bright white
}

// cubeLevel maps a cube axis position 0-5 to its channel intensity.
func cubeLevel(i int) uint8 {
	if i == 0 {
		return 0
	}
	return uint8(55 + 40*i)
}

func init() {
	copy(Colors[:16], systemColors[:])

	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				idx := 16 + 36*r + 6*g + b
				Colors[idx] = RGB{cubeLevel(r), cubeLevel(g), cubeLevel(b)}
			}
		}
	}

	for i := 0; i < 24; i++ {
		gray := uint8(8 + 10*i)
		Colors[232+i] = RGB{gray, gray, gray}
	}
}

// Nearest returns the palette index whose color minimizes squared Euclidean
// RGB distance to c. When several entries are equidistant the lowest index
// wins, so results are deterministic.
func Nearest(c RGB) uint8 {
	best := 0
	bestDist := distSq(c, Colors[0])
	for i := 1; i < len(Colors); i++ {
		if d := distSq(c, Colors[i]); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return uint8(best)
}

func distSq(a, b RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}
