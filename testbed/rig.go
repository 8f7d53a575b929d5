package testbed

import (
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/math"
)

const (
	// Cadence is the number of full strides per second.
	Cadence = 1.4

	hipHeight  float32 = 1.0
	hipBob     float32 = 0.04
	legSwing   float32 = 0.5
	kneeBend   float32 = 0.8
	armSwing   float32 = 0.4
	elbowBend  float32 = 0.5
	spineTwist float32 = 0.1
)

const hipsJointKey = "mixamorigHips"

type rigJoint struct {
	name   string
	parent string
	offset math.Vec3
}

// skeleton is listed parent first. The character faces +Z.
var skeleton = []rigJoint{
	{hipsJointKey, "", math.NewVec3(0, hipHeight, 0)},
	{"mixamorigSpine", hipsJointKey, math.NewVec3(0, 0.1, 0)},
	{"mixamorigSpine1", "mixamorigSpine", math.NewVec3(0, 0.12, 0)},
	{"mixamorigSpine2", "mixamorigSpine1", math.NewVec3(0, 0.12, 0)},
	{"mixamorigNeck", "mixamorigSpine2", math.NewVec3(0, 0.15, 0)},
	{"mixamorigHead", "mixamorigNeck", math.NewVec3(0, 0.1, 0)},

	{"mixamorigLeftArm", "mixamorigSpine2", math.NewVec3(0.18, 0.1, 0)},
	{"mixamorigLeftForeArm", "mixamorigLeftArm", math.NewVec3(0, -0.28, 0)},
	{"mixamorigLeftHand", "mixamorigLeftForeArm", math.NewVec3(0, -0.25, 0)},
	{"mixamorigRightArm", "mixamorigSpine2", math.NewVec3(-0.18, 0.1, 0)},
	{"mixamorigRightForeArm", "mixamorigRightArm", math.NewVec3(0, -0.28, 0)},
	{"mixamorigRightHand", "mixamorigRightForeArm", math.NewVec3(0, -0.25, 0)},

	{"mixamorigLeftUpLeg", hipsJointKey, math.NewVec3(0.1, -0.05, 0)},
	{"mixamorigLeftLeg", "mixamorigLeftUpLeg", math.NewVec3(0, -0.42, 0)},
	{"mixamorigLeftFoot", "mixamorigLeftLeg", math.NewVec3(0, -0.42, 0)},
	{"mixamorigRightUpLeg", hipsJointKey, math.NewVec3(-0.1, -0.05, 0)},
	{"mixamorigRightLeg", "mixamorigRightUpLeg", math.NewVec3(0, -0.42, 0)},
	{"mixamorigRightFoot", "mixamorigRightLeg", math.NewVec3(0, -0.42, 0)},
}

// Rig is a procedural running skeleton standing in for an animated character.
type Rig struct {
	joints map[string]*math.Transform
	world  map[string]math.Mat4
}

func NewRig() *Rig {
	r := &Rig{
		joints: make(map[string]*math.Transform, len(skeleton)),
		world:  make(map[string]math.Mat4, len(skeleton)),
	}
	for _, j := range skeleton {
		var parent *math.Transform
		if j.parent != "" {
			parent = r.joints[j.parent]
		}
		r.joints[j.name] = math.TransformFromPositionParent(j.offset, parent)
	}
	return r
}

func swing(angle float32) math.Quaternion {
	return math.NewQuatFromAxisAngle(math.NewVec3(1, 0, 0), angle, true)
}

// Pose moves the rig to its stride at elapsed seconds and returns the world
// matrix of every joint. The returned map is reused by the next call.
func (r *Rig) Pose(elapsed float64) (map[string]math.Mat4, error) {
	cycles := elapsed * Cadence
	cycles -= float64(int64(cycles))
	phase := float32(cycles) * math.K_PI_2
	s := math.Sin(phase)

	r.joints[hipsJointKey].SetPosition(math.NewVec3(0, hipHeight+hipBob*math.Cos(2*phase), 0))
	r.joints["mixamorigSpine"].SetRotation(math.NewQuatFromAxisAngle(math.NewVec3Up(), spineTwist*s, true))

	r.joints["mixamorigLeftUpLeg"].SetRotation(swing(legSwing * s))
	r.joints["mixamorigRightUpLeg"].SetRotation(swing(-legSwing * s))
	r.joints["mixamorigLeftLeg"].SetRotation(swing(kneeBend * math.Max(0, -s)))
	r.joints["mixamorigRightLeg"].SetRotation(swing(kneeBend * math.Max(0, s)))

	r.joints["mixamorigLeftArm"].SetRotation(swing(-armSwing * s))
	r.joints["mixamorigRightArm"].SetRotation(swing(armSwing * s))
	r.joints["mixamorigLeftForeArm"].SetRotation(swing(-elbowBend))
	r.joints["mixamorigRightForeArm"].SetRotation(swing(-elbowBend))

	for name, t := range r.joints {
		r.world[name] = t.GetWorld()
	}
	return r.world, nil
}
