package strands

import (
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/core"
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/math"
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/noise"
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/renderer/metadata"
)

// TickInput is what the host hands the simulation every frame.
type TickInput struct {
	// DeltaTime in seconds. Clamped to [0, MaxDeltaTime].
	DeltaTime float32
	// Playing false freezes free points; roots still follow the rig.
	Playing bool
	// Joints maps joint names to world matrices for this frame.
	Joints map[string]math.Mat4
}

// Simulation owns the strand state for one configuration and turns rig poses
// into segment instances.
type Simulation struct {
	cfg        Config
	buffer     *StrandBuffer
	bones      *BoneAttachmentTable
	integrator *Integrator
	solver     *Solver
	builder    *InstanceBuilder
	batch      *metadata.InstanceBatch
	elapsed    float32
}

func NewSimulation(cfg Config, wind noise.Sampler) *Simulation {
	s := &Simulation{
		integrator: NewIntegrator(wind),
		solver:     NewSolver(),
		batch:      &metadata.InstanceBatch{},
	}
	s.cfg = cfg.Normalize()
	s.reset()
	return s
}

// Apply swaps in a new configuration. Topology changes reallocate every
// buffer and reassign bones; colour changes rebuild only the colour table;
// everything else takes effect on the next tick.
func (s *Simulation) Apply(cfg Config) {
	cfg = cfg.Normalize()
	old := s.cfg
	s.cfg = cfg

	switch {
	case TopologyChanged(old, cfg):
		core.LogDebug("strand topology changed (%d x %d -> %d x %d), resetting",
			old.StrandCount, old.SegmentsPerStrand, cfg.StrandCount, cfg.SegmentsPerStrand)
		s.reset()
	default:
		if ColoursChanged(old, cfg) {
			s.batch.Colours = SegmentColours(cfg)
		}
		if old.Thickness != cfg.Thickness || old.Taper != cfg.Taper {
			s.builder.Reset(cfg)
		}
	}
}

func (s *Simulation) reset() {
	s.buffer = NewStrandBuffer(s.cfg.StrandCount, s.cfg.SegmentsPerStrand)
	s.bones = NewBoneAttachmentTable(s.cfg.StrandCount, s.cfg.Seed)
	s.builder = NewInstanceBuilder(s.cfg)
	s.batch = &metadata.InstanceBatch{
		Transforms: make([]math.Mat4, s.cfg.InstanceCount()),
		Colours:    SegmentColours(s.cfg),
	}
}

// Tick runs integration, the constraint passes and instance building to
// completion. The returned batch is owned by the simulation and is valid
// until the next Tick or Apply.
func (s *Simulation) Tick(in TickInput) *metadata.InstanceBatch {
	dt := in.DeltaTime
	if !math.IsFinite(dt) {
		dt = 0
	}
	dt = math.Clamp(dt, 0, MaxDeltaTime)
	s.elapsed += dt

	s.integrator.Step(s.buffer, s.bones, s.cfg, in.Joints, dt, s.elapsed, in.Playing)
	s.solver.Relax(s.buffer, s.cfg.Stiffness)
	s.batch.Transforms = s.builder.Build(s.buffer, s.batch.Transforms)
	return s.batch
}

func (s *Simulation) Config() Config {
	return s.cfg
}

func (s *Simulation) Buffer() *StrandBuffer {
	return s.buffer
}

func (s *Simulation) Bones() *BoneAttachmentTable {
	return s.bones
}

// Elapsed is the accumulated, clamped simulation time in seconds.
func (s *Simulation) Elapsed() float32 {
	return s.elapsed
}

// MeanTipHeight is the average height of the last point of every strand.
func (s *Simulation) MeanTipHeight() float32 {
	n := s.buffer.StrandCount()
	if n == 0 {
		return 0
	}
	var sum float32
	last := s.buffer.SegmentsPerStrand() - 1
	for i := 0; i < n; i++ {
		sum += s.buffer.Position(i, last).Y
	}
	return sum / float32(n)
}
