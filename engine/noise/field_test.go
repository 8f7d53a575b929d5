package noise

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldIsDeterministic(t *testing.T) {
	a := NewField(42)
	b := NewField(42)
	for i := 0; i < 50; i++ {
		x, y, z := float32(i)*0.37, float32(i)*-0.21, float32(i)*0.05
		assert.Equal(t, a.Sample(x, y, z), b.Sample(x, y, z))
	}
}

func TestFieldIsBoundedAndContinuous(t *testing.T) {
	f := NewField(DefaultSeed)
	var prev float32
	for i := 0; i < 400; i++ {
		x := float32(i) * 0.01
		v := f.Sample(x, 0.3, 0.7)
		assert.False(t, math.IsNaN(float64(v)))
		assert.LessOrEqual(t, math.Abs(float64(v)), 1.5)
		if i > 0 {
			assert.InDelta(t, prev, v, 0.1, "noise jumped at x=%f", x)
		}
		prev = v
	}
}
