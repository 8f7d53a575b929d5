package strands

import "github.com/mehmeterenozyoldas-maker/Running-man-2/engine/math"

// StrandBuffer stores current and previous positions for every point of
// every strand, strand-major. Point 0 of each strand is the root.
type StrandBuffer struct {
	strandCount       int
	segmentsPerStrand int
	positions         []math.Vec3
	previous          []math.Vec3
	seeded            []bool
}

/**
 * @brief Allocates zeroed positions and previous positions for every point,
 * strand-major and contiguous. Strands start unseeded.
 */
func NewStrandBuffer(strandCount, segmentsPerStrand int) *StrandBuffer {
	n := strandCount * segmentsPerStrand
	return &StrandBuffer{
		strandCount:       strandCount,
		segmentsPerStrand: segmentsPerStrand,
		positions:         make([]math.Vec3, n),
		previous:          make([]math.Vec3, n),
		seeded:            make([]bool, strandCount),
	}
}

// StrandCount is the number of strands the buffer holds.
func (b *StrandBuffer) StrandCount() int {
	return b.strandCount
}

// SegmentsPerStrand is the number of points per strand, root included.
func (b *StrandBuffer) SegmentsPerStrand() int {
	return b.segmentsPerStrand
}

func (b *StrandBuffer) index(strand, point int) int {
	return strand*b.segmentsPerStrand + point
}

// Position is the current position of a point.
func (b *StrandBuffer) Position(strand, point int) math.Vec3 {
	return b.positions[b.index(strand, point)]
}

// Previous is where the point was at the start of the last step.
func (b *StrandBuffer) Previous(strand, point int) math.Vec3 {
	return b.previous[b.index(strand, point)]
}

// SetPoint places a point with zero implied velocity.
func (b *StrandBuffer) SetPoint(strand, point int, p math.Vec3) {
	i := b.index(strand, point)
	b.positions[i] = p
	b.previous[i] = p
}

// Strand returns the live position slice of one strand.
func (b *StrandBuffer) Strand(strand int) []math.Vec3 {
	start := b.index(strand, 0)
	return b.positions[start : start+b.segmentsPerStrand]
}

func (b *StrandBuffer) strandPrevious(strand int) []math.Vec3 {
	start := b.index(strand, 0)
	return b.previous[start : start+b.segmentsPerStrand]
}
