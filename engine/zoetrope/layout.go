package zoetrope

import (
	gomath "math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/math"
)

const (
	// GoldenAngle in degrees, used by the phyllotaxis distribution.
	GoldenAngle float32 = 137.5
	// MinScale keeps every frame visible.
	MinScale float32 = 0.001

	scaleFrequency float32 = 0.55
)

// Frame is one laid out instance.
type Frame struct {
	Index int
	// Angle is the angular position in degrees.
	Angle    float32
	Layer    int
	Position math.Vec3
	Scale    float32
	// Yaw and Roll are in radians, about Y and Z.
	Yaw       float32
	Roll      float32
	Transform math.Mat4
	Colour    math.Vec3
}

// PaletteColours returns the two endpoint colours of a palette.
func PaletteColours(p Palette) (colorful.Color, colorful.Color) {
	switch p {
	case PaletteAurora:
		return hex("#99d8ff"), hex("#d0b3ff")
	case PaletteSunset:
		return hex("#ff8a66"), hex("#ff66d1")
	case PaletteMono:
		return hex("#99a6c9"), hex("#3a4663")
	case PaletteNeon:
		return hex("#00ffff"), hex("#ff00ff")
	default:
		return hex("#00ffff"), hex("#ff00ff")
	}
}

// linear holds the linear-light channels of c; frame colours are linear RGB.
func linear(c colorful.Color) colorful.Color {
	r, g, b := c.LinearRgb()
	return colorful.Color{R: r, G: g, B: b}
}

func hex(s string) colorful.Color {
	c, _ := colorful.Hex(s)
	return c
}

// FrameScale is the uniform scale of frame i before any clamping.
func FrameScale(cfg Config, i int) float32 {
	return cfg.BaseScale + cfg.ScaleVar*math.Sin(float32(i)*scaleFrequency)
}

// FrameAngle is startAngle + 360 * i/N in degrees.
func FrameAngle(cfg Config, i int) float32 {
	return cfg.StartAngle + 360*float32(i)/float32(cfg.FrameCount())
}

// FrameLayer is floor(i/N * layers).
func FrameLayer(cfg Config, i int) int {
	return int(gomath.Floor(float64(i) / float64(cfg.FrameCount()) * float64(cfg.Layers)))
}

// Layout computes every frame of cfg. It is a pure function of cfg.
func Layout(cfg Config) []Frame {
	n := cfg.FrameCount()
	c1, c2 := PaletteColours(cfg.Palette)
	lin1, lin2 := linear(c1), linear(c2)
	frames := make([]Frame, n)

	for i := 0; i < n; i++ {
		f := Frame{
			Index: i,
			Angle: FrameAngle(cfg, i),
			Layer: FrameLayer(cfg, i),
		}
		yBase := -float32(f.Layer) * cfg.LayerStep

		switch cfg.Distribution {
		case DistributionCircle:
			f.Position = onCircle(f.Angle, cfg.Radius, yBase)
		case DistributionPhyllotaxis:
			f.Angle = cfg.StartAngle + float32(i)*GoldenAngle
			rr := cfg.Radius * math.Sqrt(float32(i)/float32(math.Max(1, n-1)))
			f.Position = onCircle(f.Angle, rr, yBase)
		case DistributionHelix:
			f.Position = onCircle(f.Angle, cfg.Radius, yBase-float32(i)*cfg.LayerStep/float32(n))
		}

		f.Scale = math.Max(MinScale, FrameScale(cfg, i))
		f.Yaw = math.Atan2(f.Position.Z, f.Position.X) - math.K_HALF_PI
		f.Roll = cfg.Bend * bendRatio(f.Position.Y, float32(cfg.Layers)*cfg.LayerStep)

		f.Transform = math.NewMat4Scale(math.NewVec3(f.Scale, f.Scale, f.Scale)).
			Mul(math.NewMat4EulerZ(f.Roll)).
			Mul(math.NewMat4EulerY(f.Yaw)).
			Mul(math.NewMat4Translation(f.Position))

		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		col := lin1.BlendRgb(lin2, t)
		f.Colour = math.NewVec3(float32(col.R), float32(col.G), float32(col.B))

		frames[i] = f
	}
	return frames
}

func onCircle(angleDeg, radius, y float32) math.Vec3 {
	a := math.DegToRad(angleDeg)
	return math.NewVec3(math.Cos(a)*radius, y, math.Sin(a)*radius)
}

// bendRatio is y/extent clamped to [-1, 1]; 0/0 counts as 0.
func bendRatio(y, extent float32) float32 {
	r := y / extent
	if r != r {
		return 0
	}
	return math.Clamp(r, -1, 1)
}
