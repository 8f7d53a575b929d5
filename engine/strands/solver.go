package strands

import "github.com/mehmeterenozyoldas-maker/Running-man-2/engine/math"

// Solver relaxes adjacent-point distance constraints towards the rest length
// and keeps free points above the ground plane y = 0.
type Solver struct {
	Iterations int
	RestLength float32
}

func NewSolver() *Solver {
	return &Solver{
		Iterations: SolverIterations,
		RestLength: SegmentRestLength,
	}
}

// Relax runs every pass over every strand in place. Roots are never moved.
func (s *Solver) Relax(buf *StrandBuffer, stiffness float32) {
	moveScale := stiffness * 0.5
	for pass := 0; pass < s.Iterations; pass++ {
		for strand := 0; strand < buf.StrandCount(); strand++ {
			s.relaxStrand(buf.Strand(strand), moveScale)
		}
	}
}

func (s *Solver) relaxStrand(pos []math.Vec3, moveScale float32) {
	for i := 0; i < len(pos)-1; i++ {
		delta := pos[i+1].Sub(pos[i])
		dist := delta.Length()
		diff := (dist - s.RestLength) / math.Max(dist, DistanceEpsilon)
		offset := delta.MulScalar(diff * moveScale)

		if i != 0 {
			pos[i] = pos[i].Add(offset)
		}
		pos[i+1] = pos[i+1].Sub(offset)
	}

	// ground plane
	for i := 1; i < len(pos); i++ {
		if pos[i].Y < 0 {
			pos[i].Y = 0
		}
	}
}
