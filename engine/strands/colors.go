package strands

import (
	gomath "math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/math"
)

// hueJitterTurns is the largest per-strand hue shift, in turns.
const hueJitterTurns = 0.1

// StrandHash is the per-strand pseudo random value in [0, 1) used to jitter hue.
func StrandHash(strand int) float64 {
	v := gomath.Abs(gomath.Sin(float64(strand)*12.9898) * 43758.5453)
	return v - gomath.Floor(v)
}

// linear holds the linear-light channels of c in a colorful.Color, so the
// blend and HSL helpers below operate in linear RGB.
func linear(c colorful.Color) colorful.Color {
	r, g, b := c.LinearRgb()
	return colorful.Color{R: r, G: g, B: b}
}

// SegmentColour blends A -> B linearly and then towards C quadratically along
// the strand, and shifts the hue by the strand hash. Inputs are sRGB; the
// blend, the hue shift and the result are in linear RGB.
func SegmentColour(a, b, c colorful.Color, strand, segment, segmentsPerStrand int) math.Vec3 {
	t := float64(segment) / float64(segmentsPerStrand)
	col := linear(a).BlendRgb(linear(b), t).BlendRgb(linear(c), t*t)

	h, s, l := col.Hsl()
	h = gomath.Mod(h+StrandHash(strand)*hueJitterTurns*360, 360)
	col = colorful.Hsl(h, s, l).Clamped()

	return math.NewVec3(float32(col.R), float32(col.G), float32(col.B))
}

// SegmentColours builds the colour of every instance, strand-major.
func SegmentColours(cfg Config) []math.Vec3 {
	a, b, c := parseHex(cfg.ColorA), parseHex(cfg.ColorB), parseHex(cfg.ColorC)
	segments := cfg.SegmentCount()
	out := make([]math.Vec3, 0, cfg.InstanceCount())
	for s := 0; s < cfg.StrandCount; s++ {
		for i := 0; i < segments; i++ {
			out = append(out, SegmentColour(a, b, c, s, i, cfg.SegmentsPerStrand))
		}
	}
	return out
}

// parseHex expects a colour already checked by Config.Normalize.
func parseHex(s string) colorful.Color {
	col, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return col
}
