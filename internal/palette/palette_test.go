package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteLayout(t *testing.T) {
	// System colors
	assert.Equal(t, RGB{0, 0, 0}, Colors[0])
	assert.Equal(t, RGB{0xc0, 0xc0, 0xc0}, Colors[7])
	assert.Equal(t, RGB{0xff, 0x00, 0x00}, Colors[9])
	assert.Equal(t, RGB{0xff, 0xff, 0xff}, Colors[15])

	// Cube corners and axis levels
	assert.Equal(t, RGB{0, 0, 0}, Colors[16])
	assert.Equal(t, RGB{0, 0, 0x5f}, Colors[17])
	assert.Equal(t, RGB{0xff, 0xff, 0xff}, Colors[231])
	assert.Equal(t, RGB{0x5f, 0x87, 0xaf}, Colors[16+36*1+6*2+3])

	// Grayscale ramp endpoints and step
	assert.Equal(t, RGB{8, 8, 8}, Colors[232])
	assert.Equal(t, RGB{18, 18, 18}, Colors[233])
	assert.Equal(t, RGB{238, 238, 238}, Colors[255])
}

func TestPaletteMatchesReferenceTable(t *testing.T) {
	// Spot-check against the widely published xterm-256 chart.
	refs := map[int]RGB{
		21:  {0x00, 0x00, 0xff},
		59:  {0x5f, 0x5f, 0x5f},
		123: {0x87, 0xff, 0xff},
		180: {0xd7, 0xaf, 0x87},
		196: {0xff, 0x00, 0x00},
		208: {0xff, 0x87, 0x00},
		244: {0x80, 0x80, 0x80},
	}
	for idx, want := range refs {
		assert.Equal(t, want, Colors[idx], "index %d", idx)
	}
}

func TestNearestRoundTrip(t *testing.T) {
	// Every palette color maps back to a palette entry with the same RGB
	// value. Where the table contains duplicates (the bright system colors
	// reappear in the cube, gray 128 in the ramp), the lowest index wins.
	for i := range Colors {
		got := Nearest(Colors[i])
		require.Equal(t, Colors[i], Colors[got], "index %d", i)

		first := i
		for j := 0; j < i; j++ {
			if Colors[j] == Colors[i] {
				first = j
				break
			}
		}
		assert.Equal(t, uint8(first), got, "index %d", i)
	}
}

func TestNearestKnownValues(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want uint8
	}{
		{"rust brown", RGB{0xde, 0xa5, 0x84}, 180},
		{"darkest ramp gray", RGB{8, 8, 8}, 232},
		{"lightest ramp gray", RGB{238, 238, 238}, 255},
		{"pure red prefers system entry", RGB{255, 0, 0}, 9},
		{"pure black prefers system entry", RGB{0, 0, 0}, 0},
		{"near-white", RGB{250, 250, 250}, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Nearest(tt.in))
		})
	}
}

func TestNearestIsDeterministic(t *testing.T) {
	in := RGB{0x35, 0x72, 0xa5}
	first := Nearest(in)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Nearest(in))
	}
}

func TestNearestMinimizesDistance(t *testing.T) {
	// Exhaustive-ish sweep: the returned index must beat or tie every
	// other entry, and tie only with higher indices.
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				in := RGB{uint8(r), uint8(g), uint8(b)}
				got := int(Nearest(in))
				best := distSq(in, Colors[got])
				for i := range Colors {
					d := distSq(in, Colors[i])
					require.GreaterOrEqual(t, d, best, "input %v: index %d beats chosen %d", in, i, got)
					if d == best {
						require.GreaterOrEqual(t, i, got, "input %v: tie at lower index %d", in, i)
					}
				}
			}
		}
	}
}

func TestNearestInRGBFallsBackToNearest(t *testing.T) {
	for _, c := range []RGB{{0xde, 0xa5, 0x84}, {8, 8, 8}, {255, 0, 0}, {0x12, 0x34, 0x56}} {
		assert.Equal(t, Nearest(c), NearestIn(c, SpaceRGB))
	}
}

func TestNearestInPerceptualSpaces(t *testing.T) {
	// Exact palette colors must map to themselves (or a lower duplicate)
	// regardless of the metric: the distance is zero.
	for _, space := range []Space{SpaceLab, SpaceLuv, SpaceCIE94, SpaceCIEDE2000} {
		got := NearestIn(Colors[180], space)
		assert.Equal(t, Colors[180], Colors[got], "space %s", space)
	}
}

func TestParseSpace(t *testing.T) {
	tests := []struct {
		in      string
		want    Space
		wantErr bool
	}{
		{"rgb", SpaceRGB, false},
		{"RGB", SpaceRGB, false},
		{"", SpaceRGB, false},
		{"lab", SpaceLab, false},
		{"luv", SpaceLuv, false},
		{"cie94", SpaceCIE94, false},
		{"ciede2000", SpaceCIEDE2000, false},
		{"de2000", SpaceCIEDE2000, false},
		{"hsv", SpaceRGB, true},
	}
	for _, tt := range tests {
		got, err := ParseSpace(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"#dea584", RGB{0xde, 0xa5, 0x84}, false},
		{"dea584", RGB{0xde, 0xa5, 0x84}, false},
		{"#DEA584", RGB{0xde, 0xa5, 0x84}, false},
		{"#fff", RGB{0xff, 0xff, 0xff}, false},
		{"#a3c", RGB{0xaa, 0x33, 0xcc}, false},
		{"  #dea584  ", RGB{0xde, 0xa5, 0x84}, false},
		{"#dea58", RGB{}, true},
		{"#deadbeef", RGB{}, true},
		{"notahex", RGB{}, true},
		{"", RGB{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestHexRoundTrip(t *testing.T) {
	c := RGB{0xde, 0xa5, 0x84}
	assert.Equal(t, "#dea584", c.Hex())
	parsed, err := ParseHex(c.Hex())
	require.NoError(t, err)
	assert.Equal(t, c, parsed)
}
