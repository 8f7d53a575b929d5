package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const tolerance float32 = 1e-5

func TestOrientationPointsZAlongForward(t *testing.T) {
	cases := []struct {
		name    string
		forward Vec3
	}{
		{"along x", NewVec3(1, 0, 0)},
		{"along -z", NewVec3(0, 0, -3)},
		{"diagonal", NewVec3(1, -2, 0.5)},
		{"straight down", NewVec3(0, -1, 0)},
		{"straight up", NewVec3(0, 2, 0)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMat4Orientation(tc.forward, NewVec3Up())
			z := m.Axis(2)
			assert.True(t, z.Compare(tc.forward.Normalize(), 1e-3), "z axis %v forward %v", z, tc.forward)

			x := m.Axis(0)
			y := m.Axis(1)
			assert.InDelta(t, 1.0, x.Length(), 1e-4)
			assert.InDelta(t, 1.0, y.Length(), 1e-4)
			assert.InDelta(t, 0.0, x.Dot(y), 1e-4)
			assert.InDelta(t, 0.0, x.Dot(z), 1e-3)
			// right handed
			assert.True(t, x.Cross(y).Compare(z, 1e-3))
		})
	}
}

func TestOrientationZeroForwardIsIdentity(t *testing.T) {
	assert.Equal(t, NewMat4Identity(), NewMat4Orientation(NewVec3Zero(), NewVec3Up()))
}

func TestComposeAppliesScaleRotationTranslation(t *testing.T) {
	rot := NewMat4Orientation(NewVec3(1, 0, 0), NewVec3Up())
	m := NewMat4Compose(NewVec3(1, 2, 3), rot, NewVec3(0.5, 0.5, 4))

	// the unit +Z point becomes 4 units along world +X from the origin
	p := NewVec3(0, 0, 1).Transform(m)
	assert.True(t, p.Compare(NewVec3(5, 2, 3), tolerance), "got %v", p)

	assert.InDelta(t, 4.0, m.Axis(2).Length(), 1e-5)
	assert.InDelta(t, 0.5, m.Axis(0).Length(), 1e-5)
	assert.Equal(t, NewVec3(1, 2, 3), m.Position())
}

func TestEulerMatricesAgreeWithQuaternions(t *testing.T) {
	angle := DegToRad(30)

	qy := NewQuatFromAxisAngle(NewVec3Up(), angle, true).ToMat4()
	ey := NewMat4EulerY(angle)
	for i := range qy.Data {
		assert.InDelta(t, ey.Data[i], qy.Data[i], 1e-5, "y element %d", i)
	}

	qz := NewQuatFromAxisAngle(NewVec3Back(), angle, true).ToMat4()
	ez := NewMat4EulerZ(angle)
	for i := range qz.Data {
		assert.InDelta(t, ez.Data[i], qz.Data[i], 1e-5, "z element %d", i)
	}

	// +X rotated 90 degrees about +Z lands on +Y
	p := NewVec3(1, 0, 0).Transform(NewMat4EulerZ(K_HALF_PI))
	assert.True(t, p.Compare(NewVec3(0, 1, 0), tolerance), "got %v", p)
}

func TestTransformWorldChain(t *testing.T) {
	root := TransformFromPosition(NewVec3(0, 1, 0))
	root.SetRotation(NewQuatFromAxisAngle(NewVec3Up(), K_HALF_PI, true))
	child := TransformFromPositionParent(NewVec3(1, 0, 0), root)

	// child origin: (1,0,0) rotated 90 degrees about Y is (0,0,-1), lifted by 1
	world := child.GetWorld()
	assert.True(t, world.Position().Compare(NewVec3(0, 1, -1), tolerance), "got %v", world.Position())

	offset := NewVec3(0, 0.5, 0).Transform(world)
	assert.True(t, offset.Compare(NewVec3(0, 1.5, -1), tolerance), "got %v", offset)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 2, Clamp(5, 0, 2))
	assert.Equal(t, float32(-1), Clamp(float32(-3), -1, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
}

func TestSmoothNormalsOnTetrahedronPointOutward(t *testing.T) {
	verts := []Vertex3D{
		{Position: NewVec3(1, 1, 1)},
		{Position: NewVec3(-1, -1, 1)},
		{Position: NewVec3(-1, 1, -1)},
		{Position: NewVec3(1, -1, -1)},
	}
	// counter-clockwise when seen from outside
	indices := []uint32{
		0, 1, 3,
		0, 2, 1,
		0, 3, 2,
		1, 2, 3,
	}
	GeometryGenerateSmoothNormals(verts, indices)

	for i, v := range verts {
		assert.InDelta(t, 1.0, v.Normal.Length(), 1e-5, "vertex %d", i)
		assert.Greater(t, v.Normal.Dot(v.Position), float32(0), "vertex %d normal points inward", i)
	}
}

func TestSmoothNormalsDegenerateTriangleStaysFinite(t *testing.T) {
	verts := []Vertex3D{
		{Position: NewVec3(0, 0, 0)},
		{Position: NewVec3(0, 0, 0)},
		{Position: NewVec3(0, 0, 0)},
	}
	GeometryGenerateSmoothNormals(verts, []uint32{0, 1, 2})
	for _, v := range verts {
		assert.Equal(t, NewVec3Zero(), v.Normal)
	}
}

func TestGeometryExtents(t *testing.T) {
	ext := GeometryExtents([]Vertex3D{
		{Position: NewVec3(1, -2, 3)},
		{Position: NewVec3(-1, 4, 0)},
	})
	assert.Equal(t, NewVec3(-1, -2, 0), ext.Min)
	assert.Equal(t, NewVec3(1, 4, 3), ext.Max)
}
