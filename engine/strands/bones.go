package strands

import (
	"golang.org/x/exp/rand"

	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/math"
)

// JointNames lists the rig joints strands may attach to.
var JointNames = []string{
	"mixamorigHead",
	"mixamorigNeck",
	"mixamorigSpine",
	"mixamorigSpine1",
	"mixamorigSpine2",
	"mixamorigLeftArm",
	"mixamorigLeftForeArm",
	"mixamorigLeftHand",
	"mixamorigRightArm",
	"mixamorigRightForeArm",
	"mixamorigRightHand",
	"mixamorigLeftUpLeg",
	"mixamorigLeftLeg",
	"mixamorigLeftFoot",
	"mixamorigRightUpLeg",
	"mixamorigRightLeg",
	"mixamorigRightFoot",
}

// boneOffsetExtent is the half width of the cube root offsets are drawn from.
const boneOffsetExtent float32 = 0.15

// BoneBinding attaches one strand root to a joint, in the joint's local space.
type BoneBinding struct {
	Joint  string
	Offset math.Vec3
}

// BoneAttachmentTable holds one binding per strand. It is rebuilt on every
// topology change and is immutable otherwise.
type BoneAttachmentTable struct {
	bindings []BoneBinding
}

/**
 * @brief Assigns every strand a joint and a root offset drawn uniformly from
 * [-0.15, 0.15) on each axis. The same count and seed always give the same table.
 *
 * @param strandCount The number of strands to bind.
 * @param seed Seeds the generator; the table never reads global randomness.
 */
func NewBoneAttachmentTable(strandCount int, seed uint64) *BoneAttachmentTable {
	r := rand.New(rand.NewSource(seed))
	t := &BoneAttachmentTable{bindings: make([]BoneBinding, strandCount)}
	for s := range t.bindings {
		t.bindings[s] = BoneBinding{
			Joint: JointNames[r.Intn(len(JointNames))],
			Offset: math.NewVec3(
				(r.Float32()*2-1)*boneOffsetExtent,
				(r.Float32()*2-1)*boneOffsetExtent,
				(r.Float32()*2-1)*boneOffsetExtent,
			),
		}
	}
	return t
}

// Len is the number of bound strands.
func (t *BoneAttachmentTable) Len() int {
	return len(t.bindings)
}

// Binding returns the joint and offset of one strand.
func (t *BoneAttachmentTable) Binding(strand int) BoneBinding {
	return t.bindings[strand]
}

// ResolveRoot returns the world position of a strand root, or false when the
// joint is missing from the pose.
func (t *BoneAttachmentTable) ResolveRoot(strand int, joints map[string]math.Mat4) (math.Vec3, bool) {
	b := t.bindings[strand]
	world, ok := joints[b.Joint]
	if !ok {
		return math.Vec3{}, false
	}
	return b.Offset.Transform(world), true
}
