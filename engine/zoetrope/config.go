package zoetrope

import (
	"fmt"

	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/core"
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/math"
)

// Distribution selects how frames are spread through space.
type Distribution uint8

const (
	DistributionCircle Distribution = iota
	DistributionPhyllotaxis
	DistributionHelix
)

func (d Distribution) String() string {
	switch d {
	case DistributionCircle:
		return "circle"
	case DistributionPhyllotaxis:
		return "phyllotaxis"
	case DistributionHelix:
		return "helix"
	default:
		return fmt.Sprintf("Distribution(%d)", uint8(d))
	}
}

func (d Distribution) MarshalText() ([]byte, error) {
	switch d {
	case DistributionCircle, DistributionPhyllotaxis, DistributionHelix:
		return []byte(d.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", core.ErrUnknownDistribution, uint8(d))
	}
}

func (d *Distribution) UnmarshalText(text []byte) error {
	switch string(text) {
	case "circle":
		*d = DistributionCircle
	case "phyllotaxis":
		*d = DistributionPhyllotaxis
	case "helix":
		*d = DistributionHelix
	default:
		return fmt.Errorf("%w: %q", core.ErrUnknownDistribution, text)
	}
	return nil
}

// Shape selects the mesh every frame instance draws.
type Shape uint8

const (
	ShapeBox Shape = iota
	ShapeTorus
	ShapeSphere
	ShapeSuperquadric
)

func (s Shape) String() string {
	switch s {
	case ShapeBox:
		return "box"
	case ShapeTorus:
		return "torus"
	case ShapeSphere:
		return "sphere"
	case ShapeSuperquadric:
		return "superquadric"
	default:
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
}

func (s Shape) MarshalText() ([]byte, error) {
	switch s {
	case ShapeBox, ShapeTorus, ShapeSphere, ShapeSuperquadric:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", core.ErrUnknownShape, uint8(s))
	}
}

func (s *Shape) UnmarshalText(text []byte) error {
	switch string(text) {
	case "box":
		*s = ShapeBox
	case "torus":
		*s = ShapeTorus
	case "sphere":
		*s = ShapeSphere
	case "superquadric":
		*s = ShapeSuperquadric
	default:
		return fmt.Errorf("%w: %q", core.ErrUnknownShape, text)
	}
	return nil
}

// Palette names a pair of endpoint colours.
type Palette uint8

const (
	PaletteAurora Palette = iota
	PaletteSunset
	PaletteMono
	PaletteNeon
)

func (p Palette) String() string {
	switch p {
	case PaletteAurora:
		return "aurora"
	case PaletteSunset:
		return "sunset"
	case PaletteMono:
		return "mono"
	case PaletteNeon:
		return "neon"
	default:
		return fmt.Sprintf("Palette(%d)", uint8(p))
	}
}

func (p Palette) MarshalText() ([]byte, error) {
	switch p {
	case PaletteAurora, PaletteSunset, PaletteMono, PaletteNeon:
		return []byte(p.String()), nil
	default:
		return nil, fmt.Errorf("%w: %d", core.ErrUnknownPalette, uint8(p))
	}
}

func (p *Palette) UnmarshalText(text []byte) error {
	switch string(text) {
	case "aurora":
		*p = PaletteAurora
	case "sunset":
		*p = PaletteSunset
	case "mono":
		*p = PaletteMono
	case "neon":
		*p = PaletteNeon
	default:
		return fmt.Errorf("%w: %q", core.ErrUnknownPalette, text)
	}
	return nil
}

// Config describes a whole zoetrope. It is a comparable value; any change
// recomputes every frame.
type Config struct {
	Frames       int          `toml:"frames" yaml:"frames"`
	Distribution Distribution `toml:"distribution" yaml:"distribution"`
	Shape        Shape        `toml:"shape" yaml:"shape"`
	Radius       float32      `toml:"radius" yaml:"radius"`
	BaseScale    float32      `toml:"base_scale" yaml:"base_scale"`
	ScaleVar     float32      `toml:"scale_var" yaml:"scale_var"`
	// StartAngle is in degrees.
	StartAngle float32 `toml:"start_angle" yaml:"start_angle"`
	Layers     int     `toml:"layers" yaml:"layers"`
	LayerStep  float32 `toml:"layer_step" yaml:"layer_step"`
	Bend       float32 `toml:"bend" yaml:"bend"`
	Morph      float32 `toml:"morph" yaml:"morph"`
	Deform     float32 `toml:"deform" yaml:"deform"`
	NoiseScale float32 `toml:"noise_scale" yaml:"noise_scale"`
	Palette    Palette `toml:"palette" yaml:"palette"`
	AutoRotate bool    `toml:"auto_rotate" yaml:"auto_rotate"`
}

func DefaultConfig() Config {
	return Config{
		Frames:       48,
		Distribution: DistributionHelix,
		Shape:        ShapeSuperquadric,
		Radius:       2.2,
		BaseScale:    0.2,
		ScaleVar:     0.1,
		StartAngle:   0,
		Layers:       8,
		LayerStep:    0.12,
		Bend:         0.6,
		Morph:        0.4,
		Deform:       0.9,
		NoiseScale:   1.4,
		Palette:      PaletteNeon,
		AutoRotate:   true,
	}
}

// Normalize clamps out-of-range values and warns about each clamp.
func (c Config) Normalize() Config {
	if c.Frames < 1 {
		core.LogWarn("frames %d is below 1, clamping", c.Frames)
		c.Frames = 1
	}
	if c.Layers < 0 {
		core.LogWarn("layers %d is negative, using 0", c.Layers)
		c.Layers = 0
	}
	def := DefaultConfig()
	c.Radius = finiteOr("radius", c.Radius, def.Radius)
	c.BaseScale = finiteOr("base scale", c.BaseScale, def.BaseScale)
	c.ScaleVar = finiteOr("scale variance", c.ScaleVar, def.ScaleVar)
	c.StartAngle = finiteOr("start angle", c.StartAngle, def.StartAngle)
	c.LayerStep = finiteOr("layer step", c.LayerStep, def.LayerStep)
	c.Bend = finiteOr("bend", c.Bend, def.Bend)
	c.Deform = finiteOr("deform", c.Deform, def.Deform)
	c.NoiseScale = finiteOr("noise scale", c.NoiseScale, def.NoiseScale)
	c.Morph = finiteOr("morph", c.Morph, 0)
	if c.Morph < 0 || c.Morph > 1 {
		core.LogWarn("morph %f outside [0, 1], clamping", c.Morph)
		c.Morph = math.Clamp(c.Morph, 0, 1)
	}
	return c
}

// finiteOr replaces NaN and infinities so every normalized config compares
// equal to itself.
func finiteOr(name string, v, fallback float32) float32 {
	if math.IsFinite(v) {
		return v
	}
	core.LogWarn("%s is not finite, using %g", name, fallback)
	return fallback
}

// FrameCount is the number of instances the configuration produces.
func (c Config) FrameCount() int {
	return math.Max(1, c.Frames)
}
