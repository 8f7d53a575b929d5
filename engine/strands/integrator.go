package strands

import (
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/math"
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/noise"
)

// Integrator advances strands by one Verlet step. Roots follow their joints;
// free points carry damped velocity, gravity and noise wind.
type Integrator struct {
	wind noise.Sampler
}

func NewIntegrator(wind noise.Sampler) *Integrator {
	return &Integrator{wind: wind}
}

// Step integrates every strand. dt must already be clamped; elapsed is the
// simulation time the wind field is sampled at. When playing is false free
// points hold still and lose their velocity, but roots keep tracking.
func (in *Integrator) Step(buf *StrandBuffer, bones *BoneAttachmentTable, cfg Config, joints map[string]math.Mat4, dt, elapsed float32, playing bool) {
	dt2 := dt * dt
	gravityStep := cfg.Gravity * dt2
	windStep := cfg.WindForce * dt2
	tw := elapsed * windTimeScale

	for s := 0; s < buf.StrandCount(); s++ {
		pos := buf.Strand(s)
		prev := buf.strandPrevious(s)

		if root, ok := bones.ResolveRoot(s, joints); ok {
			if !buf.seeded[s] {
				hang(pos, prev, root)
				buf.seeded[s] = true
			}
			pos[0] = root
			prev[0] = root
		}

		for i := 1; i < len(pos); i++ {
			if !playing {
				prev[i] = pos[i]
				continue
			}

			p := pos[i]
			v := p.Sub(prev[i]).MulScalar(cfg.Drag)
			v.Y += gravityStep
			if windStep != 0 {
				v = v.Add(in.windAt(p, tw).MulScalar(windStep))
			}

			prev[i] = p
			pos[i] = p.Add(v)
		}
	}
}

// windAt samples the field with a different axis permutation per component
// so the three wind directions are uncorrelated.
func (in *Integrator) windAt(p math.Vec3, t float32) math.Vec3 {
	x := p.X * windNoiseScale
	y := p.Y * windNoiseScale
	z := p.Z * windNoiseScale
	return math.NewVec3(
		in.wind.Sample(x, y, t),
		in.wind.Sample(x, z, t+windAxisOffset),
		in.wind.Sample(y, t, z),
	)
}

// hang lays a fresh strand straight down from its root at rest length.
func hang(pos, prev []math.Vec3, root math.Vec3) {
	for i := range pos {
		p := root
		p.Y -= float32(i) * SegmentRestLength
		if i > 0 && p.Y < 0 {
			p.Y = 0
		}
		pos[i] = p
		prev[i] = p
	}
}
