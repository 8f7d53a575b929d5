package strands

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/core"
)

const (
	// SegmentRestLength is the rest distance between adjacent points, shared by every strand.
	SegmentRestLength float32 = 0.15
	// SolverIterations is the number of constraint passes per tick.
	SolverIterations int = 5
	// MaxDeltaTime caps a single tick so a stalled host cannot explode the integration.
	MaxDeltaTime float32 = 0.05
	// DistanceEpsilon floors measured distances in the solver.
	DistanceEpsilon float32 = 1e-6

	windNoiseScale float32 = 0.5
	windTimeScale  float32 = 0.5
	windAxisOffset float32 = 100

	minSegmentsPerStrand = 2
)

// Config drives the strand simulation. It is a value: callers hand a new
// snapshot to Simulation.Apply instead of mutating a shared one.
type Config struct {
	Gravity   float32 `toml:"gravity" yaml:"gravity"`
	Drag      float32 `toml:"drag" yaml:"drag"`
	Stiffness float32 `toml:"stiffness" yaml:"stiffness"`
	WindForce float32 `toml:"wind_force" yaml:"wind_force"`

	// Thickness is the base width of the first segment; Taper thins the rest.
	Thickness float32 `toml:"thickness" yaml:"thickness"`
	Taper     float32 `toml:"taper" yaml:"taper"`

	ColorA string `toml:"color_a" yaml:"color_a"`
	ColorB string `toml:"color_b" yaml:"color_b"`
	ColorC string `toml:"color_c" yaml:"color_c"`

	StrandCount       int `toml:"strand_count" yaml:"strand_count"`
	SegmentsPerStrand int `toml:"segments_per_strand" yaml:"segments_per_strand"`

	// Seed drives the bone attachment table.
	Seed uint64 `toml:"seed" yaml:"seed"`
}

// DefaultConfig is the "Neon Runner" look.
func DefaultConfig() Config {
	return Config{
		Gravity:           -9.8,
		Drag:              0.80,
		Stiffness:         0.75,
		WindForce:         2.0,
		Thickness:         1.0,
		Taper:             0.8,
		ColorA:            "#00ffff",
		ColorB:            "#ff00ff",
		ColorC:            "#ffff00",
		StrandCount:       1500,
		SegmentsPerStrand: 8,
		Seed:              1,
	}
}

// Normalize clamps out-of-range values instead of rejecting them and
// reports every clamp with a warning.
func (c Config) Normalize() Config {
	def := DefaultConfig()
	if c.StrandCount < 0 {
		core.LogWarn("strand count %d is negative, using 0", c.StrandCount)
		c.StrandCount = 0
	}
	if c.SegmentsPerStrand < minSegmentsPerStrand {
		core.LogWarn("segments per strand %d is below %d, clamping", c.SegmentsPerStrand, minSegmentsPerStrand)
		c.SegmentsPerStrand = minSegmentsPerStrand
	}
	c.ColorA = validHex(c.ColorA, def.ColorA)
	c.ColorB = validHex(c.ColorB, def.ColorB)
	c.ColorC = validHex(c.ColorC, def.ColorC)
	return c
}

// SegmentCount is the number of rendered segments per strand.
func (c Config) SegmentCount() int {
	return c.SegmentsPerStrand - 1
}

// InstanceCount is the number of segment instances emitted per tick.
func (c Config) InstanceCount() int {
	return c.StrandCount * c.SegmentCount()
}

// TopologyChanged reports whether going from a to b needs new buffers and bindings.
func TopologyChanged(a, b Config) bool {
	return a.StrandCount != b.StrandCount || a.SegmentsPerStrand != b.SegmentsPerStrand || a.Seed != b.Seed
}

// ColoursChanged reports whether going from a to b needs the colour table rebuilt.
func ColoursChanged(a, b Config) bool {
	return a.ColorA != b.ColorA || a.ColorB != b.ColorB || a.ColorC != b.ColorC
}

func validHex(s, fallback string) string {
	if _, err := colorful.Hex(s); err != nil {
		core.LogWarn("invalid colour %q (%s), using %s", s, err, fallback)
		return fallback
	}
	return s
}
