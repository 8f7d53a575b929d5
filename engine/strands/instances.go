package strands

import "github.com/mehmeterenozyoldas-maker/Running-man-2/engine/math"

// minThicknessFactor keeps the tip of a fully tapered strand visible.
const minThicknessFactor float32 = 0.1

// SegmentThickness is the width of segment i (0 at the root).
func SegmentThickness(cfg Config, segment int) float32 {
	t := float32(segment) / float32(cfg.SegmentsPerStrand-1)
	return cfg.Thickness * math.Max(minThicknessFactor, 1-t*cfg.Taper)
}

// SegmentTransform maps a unit instance whose length runs along +Z onto the
// segment from near to far: scaled by (thickness, thickness, length), turned
// to face far, and placed at near.
func SegmentTransform(near, far math.Vec3, thickness float32) math.Mat4 {
	dir := far.Sub(near)
	length := dir.Length()
	rot := math.NewMat4Orientation(dir, math.NewVec3Up())
	return math.NewMat4Compose(near, rot, math.NewVec3(thickness, thickness, length))
}

// InstanceBuilder turns the strand buffer into per-segment transforms.
type InstanceBuilder struct {
	thickness []float32
}

func NewInstanceBuilder(cfg Config) *InstanceBuilder {
	b := &InstanceBuilder{}
	b.Reset(cfg)
	return b
}

// Reset recomputes the per-segment thickness table.
func (b *InstanceBuilder) Reset(cfg Config) {
	b.thickness = make([]float32, cfg.SegmentCount())
	for i := range b.thickness {
		b.thickness[i] = SegmentThickness(cfg, i)
	}
}

// Build writes one transform per segment into out, strand-major, and returns
// the slice resized to the instance count.
func (b *InstanceBuilder) Build(buf *StrandBuffer, out []math.Mat4) []math.Mat4 {
	segments := buf.SegmentsPerStrand() - 1
	n := buf.StrandCount() * segments
	if cap(out) < n {
		out = make([]math.Mat4, n)
	}
	out = out[:n]

	k := 0
	for s := 0; s < buf.StrandCount(); s++ {
		pos := buf.Strand(s)
		for i := 0; i < segments; i++ {
			out[k] = SegmentTransform(pos[i], pos[i+1], b.thickness[i])
			k++
		}
	}
	return out
}
