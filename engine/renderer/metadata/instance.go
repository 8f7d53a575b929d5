package metadata

import "github.com/mehmeterenozyoldas-maker/Running-man-2/engine/math"

// InstanceBatch is an ordered list of per-instance transforms and colours for
// one instanced draw. Transforms and Colours have the same length when colours
// are present; Colours may be nil for uncoloured batches.
type InstanceBatch struct {
	Transforms []math.Mat4
	Colours    []math.Vec3
}

func (b *InstanceBatch) Count() int {
	if b == nil {
		return 0
	}
	return len(b.Transforms)
}
