package math

// GeometryGenerateNormals writes one face normal to each vertex of every triangle.
// Shared vertices end up with the normal of the last triangle that touched them.
func GeometryGenerateNormals(vertices []Vertex3D, indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		i0 := indices[i+0]
		i1 := indices[i+1]
		i2 := indices[i+2]

		edge1 := vertices[i1].Position.Sub(vertices[i0].Position)
		edge2 := vertices[i2].Position.Sub(vertices[i0].Position)

		normal := edge1.Cross(edge2).Normalized()

		vertices[i0].Normal = normal
		vertices[i1].Normal = normal
		vertices[i2].Normal = normal
	}
}

// GeometryGenerateSmoothNormals accumulates area-weighted face normals into
// every referenced vertex and normalizes the sums. Degenerate triangles (the
// collapsed rows at a sphere's poles) contribute nothing, and a vertex whose
// sum is zero keeps a zero normal rather than NaN.
func GeometryGenerateSmoothNormals(vertices []Vertex3D, indices []uint32) {
	for i := range vertices {
		vertices[i].Normal = NewVec3Zero()
	}

	for i := 0; i+2 < len(indices); i += 3 {
		i0 := indices[i+0]
		i1 := indices[i+1]
		i2 := indices[i+2]

		edge1 := vertices[i1].Position.Sub(vertices[i0].Position)
		edge2 := vertices[i2].Position.Sub(vertices[i0].Position)
		face := edge1.Cross(edge2)

		vertices[i0].Normal = vertices[i0].Normal.Add(face)
		vertices[i1].Normal = vertices[i1].Normal.Add(face)
		vertices[i2].Normal = vertices[i2].Normal.Add(face)
	}

	for i := range vertices {
		vertices[i].Normal = vertices[i].Normal.Normalize()
	}
}

// GeometryExtents returns the axis aligned bounds of the vertices.
func GeometryExtents(vertices []Vertex3D) Extents3D {
	if len(vertices) == 0 {
		return Extents3D{}
	}
	ext := Extents3D{Min: vertices[0].Position, Max: vertices[0].Position}
	for _, v := range vertices[1:] {
		p := v.Position
		ext.Min = Vec3{min(ext.Min.X, p.X), min(ext.Min.Y, p.Y), min(ext.Min.Z, p.Z)}
		ext.Max = Vec3{max(ext.Max.X, p.X), max(ext.Max.Y, p.Y), max(ext.Max.Z, p.Z)}
	}
	return ext
}
