package strands

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/math"
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/noise"
)

const tickDT float32 = 1.0 / 60.0

func pose(m math.Mat4) map[string]math.Mat4 {
	joints := make(map[string]math.Mat4, len(JointNames))
	for _, name := range JointNames {
		joints[name] = m
	}
	return joints
}

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.StrandCount = 24
	cfg.SegmentsPerStrand = 4
	return cfg
}

func newTestSimulation(cfg Config) *Simulation {
	return NewSimulation(cfg, noise.NewField(noise.DefaultSeed))
}

func assertVec3InDelta(t *testing.T, expected, actual math.Vec3, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, delta, msgAndArgs...)
	assert.InDelta(t, expected.Y, actual.Y, delta, msgAndArgs...)
	assert.InDelta(t, expected.Z, actual.Z, delta, msgAndArgs...)
}

func TestRootsFollowJoints(t *testing.T) {
	sim := newTestSimulation(smallConfig())

	poses := []math.Mat4{
		math.NewMat4Translation(math.NewVec3(1, 2, 3)),
		math.NewMat4EulerY(0.7).Mul(math.NewMat4Translation(math.NewVec3(0, 3, -1))),
	}
	for _, m := range poses {
		joints := pose(m)
		sim.Tick(TickInput{DeltaTime: tickDT, Playing: true, Joints: joints})

		for s := 0; s < sim.Buffer().StrandCount(); s++ {
			b := sim.Bones().Binding(s)
			want := b.Offset.Transform(joints[b.Joint])
			assertVec3InDelta(t, want, sim.Buffer().Position(s, 0), 1e-5, "strand %d", s)
			assert.Equal(t, sim.Buffer().Position(s, 0), sim.Buffer().Previous(s, 0))
		}
	}
}

func TestFreePointsStayAboveGround(t *testing.T) {
	cfg := smallConfig()
	cfg.Gravity = -50
	cfg.WindForce = 8
	sim := newTestSimulation(cfg)
	joints := pose(math.NewMat4Translation(math.NewVec3(0, 0.05, 0)))

	for tick := 0; tick < 200; tick++ {
		sim.Tick(TickInput{DeltaTime: 1.0 / 30.0, Playing: true, Joints: joints})
		for s := 0; s < sim.Buffer().StrandCount(); s++ {
			for i := 1; i < cfg.SegmentsPerStrand; i++ {
				require.GreaterOrEqual(t, sim.Buffer().Position(s, i).Y, float32(0), "tick %d strand %d point %d", tick, s, i)
			}
		}
	}
}

func TestThicknessTapersTowardsTip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StrandCount = 3
	cfg.SegmentsPerStrand = 10
	cfg.Thickness = 2
	cfg.Taper = 1.5

	prev := SegmentThickness(cfg, 0)
	assert.InDelta(t, 2.0, prev, 1e-6)
	for i := 1; i < cfg.SegmentCount(); i++ {
		th := SegmentThickness(cfg, i)
		assert.LessOrEqual(t, th, prev)
		assert.GreaterOrEqual(t, th, cfg.Thickness*minThicknessFactor-1e-6)
		prev = th
	}

	sim := newTestSimulation(cfg)
	batch := sim.Tick(TickInput{DeltaTime: tickDT, Playing: true, Joints: pose(math.NewMat4Translation(math.NewVec3(0, 3, 0)))})
	require.Equal(t, cfg.InstanceCount(), batch.Count())
	for s := 0; s < cfg.StrandCount; s++ {
		for i := 0; i < cfg.SegmentCount(); i++ {
			m := batch.Transforms[s*cfg.SegmentCount()+i]
			assert.InDelta(t, SegmentThickness(cfg, i), m.Axis(0).Length(), 1e-4)
			assert.InDelta(t, SegmentThickness(cfg, i), m.Axis(1).Length(), 1e-4)
		}
	}
}

func TestSegmentTransformSpansSegment(t *testing.T) {
	near := math.NewVec3(1, 1, 1)
	far := math.NewVec3(1, 1.2, 1.3)
	m := SegmentTransform(near, far, 0.5)

	assertVec3InDelta(t, near, m.Position(), 1e-6)
	// the far end of the unit instance lands on the far point
	assertVec3InDelta(t, far, math.NewVec3(0, 0, 1).Transform(m), 1e-5)
	assert.InDelta(t, 0.5, m.Axis(0).Length(), 1e-5)
}

func TestPendulumSettlesBelowJoint(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StrandCount = 1
	cfg.SegmentsPerStrand = 2
	cfg.Gravity = -9.8
	cfg.Drag = 0.8
	cfg.Stiffness = 1
	cfg.WindForce = 0
	sim := newTestSimulation(cfg)
	joints := pose(math.NewMat4Translation(math.NewVec3(0, 1, 0)))

	sim.Tick(TickInput{DeltaTime: tickDT, Playing: true, Joints: joints})
	root := sim.Buffer().Position(0, 0)
	sim.Buffer().SetPoint(0, 1, root.Add(math.NewVec3(SegmentRestLength, 0, 0)))

	var batch = sim.Tick(TickInput{DeltaTime: tickDT, Playing: true, Joints: joints})
	for i := 0; i < 600; i++ {
		batch = sim.Tick(TickInput{DeltaTime: tickDT, Playing: true, Joints: joints})
	}

	tip := sim.Buffer().Position(0, 1)
	assert.InDelta(t, root.X, tip.X, 1e-3)
	assert.InDelta(t, root.Z, tip.Z, 1e-3)
	assert.InDelta(t, root.Y-SegmentRestLength, tip.Y, 1e-3)

	require.Equal(t, 1, batch.Count())
	axis := batch.Transforms[0].Axis(2)
	assert.InDelta(t, -SegmentRestLength, axis.Y, 1e-3)
}

func TestMissingJointFreezesRoot(t *testing.T) {
	sim := newTestSimulation(smallConfig())
	sim.Tick(TickInput{DeltaTime: tickDT, Playing: true, Joints: pose(math.NewMat4Translation(math.NewVec3(0, 2, 0)))})

	roots := make([]math.Vec3, sim.Buffer().StrandCount())
	for s := range roots {
		roots[s] = sim.Buffer().Position(s, 0)
	}

	assert.NotPanics(t, func() {
		sim.Tick(TickInput{DeltaTime: tickDT, Playing: true, Joints: nil})
		sim.Tick(TickInput{DeltaTime: tickDT, Playing: true, Joints: map[string]math.Mat4{}})
	})
	for s := range roots {
		assert.Equal(t, roots[s], sim.Buffer().Position(s, 0))
	}
}

func TestDeltaTimeIsClamped(t *testing.T) {
	sim := newTestSimulation(smallConfig())
	joints := pose(math.NewMat4Identity())

	sim.Tick(TickInput{DeltaTime: 10, Playing: true, Joints: joints})
	assert.InDelta(t, MaxDeltaTime, sim.Elapsed(), 1e-7)

	sim.Tick(TickInput{DeltaTime: -1, Playing: true, Joints: joints})
	sim.Tick(TickInput{DeltaTime: float32(gomath.NaN()), Playing: true, Joints: joints})
	assert.InDelta(t, MaxDeltaTime, sim.Elapsed(), 1e-7)
}

func TestPauseHoldsStrandsUntilResumed(t *testing.T) {
	cfg := smallConfig()
	cfg.WindForce = 0
	cfg.Stiffness = 1
	sim := newTestSimulation(cfg)
	joints := pose(math.NewMat4Translation(math.NewVec3(0, 2, 0)))
	last := cfg.SegmentsPerStrand - 1

	sim.Tick(TickInput{DeltaTime: tickDT, Playing: false, Joints: joints})
	hanging := make([]math.Vec3, cfg.StrandCount)
	for s := range hanging {
		hanging[s] = sim.Buffer().Position(s, last)
	}

	for i := 0; i < 20; i++ {
		sim.Tick(TickInput{DeltaTime: tickDT, Playing: false, Joints: joints})
	}
	for s := range hanging {
		root := sim.Buffer().Position(s, 0)
		tip := sim.Buffer().Position(s, last)
		assertVec3InDelta(t, hanging[s], tip, 1e-5, "strand %d moved while paused", s)
		assert.InDelta(t, root.Y-float32(last)*SegmentRestLength, tip.Y, 1e-4)
	}

	sim.Tick(TickInput{DeltaTime: tickDT, Playing: true, Joints: joints})
	for s := range hanging {
		assert.Less(t, sim.Buffer().Position(s, last).Y, hanging[s].Y, "strand %d did not fall after resuming", s)
	}
}

func TestTopologyChangeResets(t *testing.T) {
	sim := newTestSimulation(smallConfig())
	sim.Tick(TickInput{DeltaTime: tickDT, Playing: true, Joints: pose(math.NewMat4Identity())})

	cfg := smallConfig()
	cfg.StrandCount = 20
	cfg.SegmentsPerStrand = 6
	sim.Apply(cfg)

	assert.Equal(t, 20, sim.Buffer().StrandCount())
	assert.Equal(t, 6, sim.Buffer().SegmentsPerStrand())
	assert.Equal(t, 20, sim.Bones().Len())

	batch := sim.Tick(TickInput{DeltaTime: tickDT, Playing: true, Joints: pose(math.NewMat4Identity())})
	assert.Equal(t, 100, batch.Count())
	assert.Len(t, batch.Colours, 100)
}

func TestColourChangeKeepsSimulationState(t *testing.T) {
	cfg := smallConfig()
	sim := newTestSimulation(cfg)
	joints := pose(math.NewMat4Translation(math.NewVec3(0, 2, 0)))
	for i := 0; i < 5; i++ {
		sim.Tick(TickInput{DeltaTime: tickDT, Playing: true, Joints: joints})
	}

	buf := sim.Buffer()
	positions := append([]math.Vec3(nil), buf.positions...)
	colours := append([]math.Vec3(nil), sim.batch.Colours...)

	cfg.ColorA = "#123456"
	sim.Apply(cfg)

	assert.Same(t, buf, sim.Buffer())
	assert.Equal(t, positions, sim.Buffer().positions)
	assert.NotEqual(t, colours, sim.batch.Colours)
	assert.Len(t, sim.batch.Colours, cfg.InstanceCount())
}

func TestNormalizeClampsInvalidValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StrandCount = -5
	cfg.SegmentsPerStrand = 0
	cfg.ColorA = "not a colour"

	n := cfg.Normalize()
	assert.Equal(t, 0, n.StrandCount)
	assert.Equal(t, 2, n.SegmentsPerStrand)
	assert.Equal(t, DefaultConfig().ColorA, n.ColorA)

	sim := newTestSimulation(cfg)
	assert.Zero(t, sim.Tick(TickInput{DeltaTime: tickDT, Playing: true}).Count())
	assert.Zero(t, sim.MeanTipHeight())
}

func TestUndampedPendulumStaysAtRest(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StrandCount = 1
	cfg.SegmentsPerStrand = 2
	cfg.Gravity = -9.8
	cfg.Drag = 1
	cfg.Stiffness = 1
	cfg.WindForce = 0
	sim := newTestSimulation(cfg)
	joints := pose(math.NewMat4Translation(math.NewVec3(0, 1, 0)))

	for i := 0; i < 1000; i++ {
		sim.Tick(TickInput{DeltaTime: tickDT, Playing: true, Joints: joints})
		root := sim.Buffer().Position(0, 0)
		tip := sim.Buffer().Position(0, 1)
		require.InDelta(t, SegmentRestLength, root.Distance(tip), 1e-3, "tick %d", i)
		require.InDelta(t, root.X, tip.X, 1e-6)
		require.InDelta(t, root.Z, tip.Z, 1e-6)
	}
}
