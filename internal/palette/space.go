package palette

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Space selects the color model in which nearest-match distances are
// measured. RGB is plain squared Euclidean distance over the 8-bit
// channels; the others are perceptual metrics from go-colorful.
type Space int

const (
	SpaceRGB Space = iota
	SpaceLab
	SpaceLuv
	SpaceCIE94
	SpaceCIEDE2000
)

// Spaces lists the accepted --color-space values.
var Spaces = []string{"rgb", "lab", "luv", "cie94", "ciede2000"}

// ParseSpace maps a --color-space flag value to a Space.
func ParseSpace(s string) (Space, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rgb":
		return SpaceRGB, nil
	case "lab":
		return SpaceLab, nil
	case "luv":
		return SpaceLuv, nil
	case "cie94":
		return SpaceCIE94, nil
	case "ciede2000", "de2000":
		return SpaceCIEDE2000, nil
	}
	return SpaceRGB, fmt.Errorf("unknown color space %q (choose one of %s)", s, strings.Join(Spaces, ", "))
}

func (s Space) String() string {
	switch s {
	case SpaceLab:
		return "lab"
	case SpaceLuv:
		return "luv"
	case SpaceCIE94:
		return "cie94"
	case SpaceCIEDE2000:
		return "ciede2000"
	default:
		return "rgb"
	}
}

// NearestIn returns the palette index nearest to c when distance is
// measured in the given space. Lowest index wins ties, as in Nearest.
func NearestIn(c RGB, space Space) uint8 {
	if space == SpaceRGB {
		return Nearest(c)
	}

	target := toColorful(c)
	dist := func(p RGB) float64 {
		q := toColorful(p)
		switch space {
		case SpaceLuv:
			return target.DistanceLuv(q)
		case SpaceCIE94:
			return target.DistanceCIE94(q)
		case SpaceCIEDE2000:
			return target.DistanceCIEDE2000(q)
		default:
			return target.DistanceLab(q)
		}
	}

	best := 0
	bestDist := dist(Colors[0])
	for i := 1; i < len(Colors); i++ {
		if d := dist(Colors[i]); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return uint8(best)
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}
