package systems

import (
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/core"
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/math"
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/renderer/metadata"
)

/**
 * @brief Generates configuration for box geometry centered on the origin.
 *
 * @param width The overall width of the box. Must be non-zero.
 * @param height The overall height of the box. Must be non-zero.
 * @param depth The overall depth of the box. Must be non-zero.
 * @param tileX The number of times the texture should tile across the box on the x-axis. Must be non-zero.
 * @param tileY The number of times the texture should tile across the box on the y-axis. Must be non-zero.
 * @param name The name of the generated geometry.
 * @return A geometry configuration.
 */
func GeometrySystemGenerateCubeConfig(width, height, depth, tileX, tileY float32, name string) (*metadata.GeometryConfig, error) {
	if width == 0 {
		core.LogWarn("Width must be nonzero. Defaulting to one.")
		width = 1.0
	}
	if height == 0 {
		core.LogWarn("Height must be nonzero. Defaulting to one.")
		height = 1.0
	}
	if depth == 0 {
		core.LogWarn("Depth must be nonzero. Defaulting to one.")
		depth = 1
	}
	if tileX == 0 {
		core.LogWarn("tileX must be nonzero. Defaulting to one.")
		tileX = 1.0
	}
	if tileY == 0 {
		core.LogWarn("tileY must be nonzero. Defaulting to one.")
		tileY = 1.0
	}

	hw, hh, hd := width*0.5, height*0.5, depth*0.5
	uvs := [4]math.Vec2{
		math.NewVec2(0, 0),
		math.NewVec2(tileX, tileY),
		math.NewVec2(0, tileY),
		math.NewVec2(tileX, 0),
	}

	// Four corners per face: min/min, max/max, min/max, max/min in face space.
	faces := []struct {
		normal  math.Vec3
		corners [4]math.Vec3
	}{
		// Front
		{math.NewVec3(0, 0, 1), [4]math.Vec3{{X: -hw, Y: -hh, Z: hd}, {X: hw, Y: hh, Z: hd}, {X: -hw, Y: hh, Z: hd}, {X: hw, Y: -hh, Z: hd}}},
		// Back
		{math.NewVec3(0, 0, -1), [4]math.Vec3{{X: hw, Y: -hh, Z: -hd}, {X: -hw, Y: hh, Z: -hd}, {X: hw, Y: hh, Z: -hd}, {X: -hw, Y: -hh, Z: -hd}}},
		// Left
		{math.NewVec3(-1, 0, 0), [4]math.Vec3{{X: -hw, Y: -hh, Z: -hd}, {X: -hw, Y: hh, Z: hd}, {X: -hw, Y: hh, Z: -hd}, {X: -hw, Y: -hh, Z: hd}}},
		// Right
		{math.NewVec3(1, 0, 0), [4]math.Vec3{{X: hw, Y: -hh, Z: hd}, {X: hw, Y: hh, Z: -hd}, {X: hw, Y: hh, Z: hd}, {X: hw, Y: -hh, Z: -hd}}},
		// Bottom
		{math.NewVec3(0, -1, 0), [4]math.Vec3{{X: hw, Y: -hh, Z: hd}, {X: -hw, Y: -hh, Z: -hd}, {X: hw, Y: -hh, Z: -hd}, {X: -hw, Y: -hh, Z: hd}}},
		// Top
		{math.NewVec3(0, 1, 0), [4]math.Vec3{{X: -hw, Y: hh, Z: hd}, {X: hw, Y: hh, Z: -hd}, {X: -hw, Y: hh, Z: -hd}, {X: hw, Y: hh, Z: hd}}},
	}

	config := &metadata.GeometryConfig{
		Vertices:   make([]math.Vertex3D, 0, 4*6), // 4 verts per side, 6 side
		Indices:    make([]uint32, 0, 6*6),        // 6 indices per side, 6 side
		MinExtents: math.NewVec3(-hw, -hh, -hd),
		MaxExtents: math.NewVec3(hw, hh, hd),
		// Always 0 since min/max of each axis are -/+ half of the size.
		Center: math.NewVec3Zero(),
	}

	for f, face := range faces {
		for c, corner := range face.corners {
			config.Vertices = append(config.Vertices, math.Vertex3D{
				Position: corner,
				Normal:   face.normal,
				Texcoord: uvs[c],
			})
		}
		v := uint32(f * 4)
		config.Indices = append(config.Indices, v+0, v+1, v+2, v+0, v+3, v+1)
	}

	config.Name = geometryName(name)
	return config, nil
}

/**
 * @brief Generates a UV sphere. Vertices form a (widthSegments+1) x (heightSegments+1)
 * grid running from the +Y pole to the -Y pole; seam and pole vertices are duplicated.
 */
func GeometrySystemGenerateSphereConfig(radius float32, widthSegments, heightSegments uint32, name string) (*metadata.GeometryConfig, error) {
	if radius <= 0 {
		core.LogWarn("Radius must be positive. Defaulting to one.")
		radius = 1
	}
	if widthSegments < 3 {
		core.LogWarn("widthSegments must be at least 3. Defaulting to 3.")
		widthSegments = 3
	}
	if heightSegments < 2 {
		core.LogWarn("heightSegments must be at least 2. Defaulting to 2.")
		heightSegments = 2
	}

	config := &metadata.GeometryConfig{
		Vertices: make([]math.Vertex3D, 0, (widthSegments+1)*(heightSegments+1)),
	}

	for iy := uint32(0); iy <= heightSegments; iy++ {
		v := float32(iy) / float32(heightSegments)
		// keep the pole texels centred between their neighbours
		var uOffset float32
		if iy == 0 {
			uOffset = 0.5 / float32(widthSegments)
		} else if iy == heightSegments {
			uOffset = -0.5 / float32(widthSegments)
		}

		theta := v * math.K_PI
		for ix := uint32(0); ix <= widthSegments; ix++ {
			u := float32(ix) / float32(widthSegments)
			phi := u * math.K_PI_2

			p := math.NewVec3(
				-radius*math.Cos(phi)*math.Sin(theta),
				radius*math.Cos(theta),
				radius*math.Sin(phi)*math.Sin(theta),
			)
			config.Vertices = append(config.Vertices, math.Vertex3D{
				Position: p,
				Normal:   p.Normalize(),
				Texcoord: math.NewVec2(u+uOffset, 1-v),
			})
		}
	}

	row := widthSegments + 1
	for iy := uint32(0); iy < heightSegments; iy++ {
		for ix := uint32(0); ix < widthSegments; ix++ {
			a := iy*row + ix + 1
			b := iy*row + ix
			c := (iy+1)*row + ix
			d := (iy+1)*row + ix + 1

			if iy != 0 {
				config.Indices = append(config.Indices, a, b, d)
			}
			if iy != heightSegments-1 {
				config.Indices = append(config.Indices, b, c, d)
			}
		}
	}

	setExtents(config)
	config.Name = geometryName(name)
	return config, nil
}

/**
 * @brief Generates a torus around the Z axis.
 *
 * @param radius Distance from the center of the torus to the center of the tube.
 * @param tube Radius of the tube.
 */
func GeometrySystemGenerateTorusConfig(radius, tube float32, radialSegments, tubularSegments uint32, name string) (*metadata.GeometryConfig, error) {
	if radius <= 0 {
		core.LogWarn("Radius must be positive. Defaulting to one.")
		radius = 1
	}
	if tube <= 0 {
		core.LogWarn("Tube radius must be positive. Defaulting to 0.4.")
		tube = 0.4
	}
	if radialSegments < 3 {
		core.LogWarn("radialSegments must be at least 3. Defaulting to 3.")
		radialSegments = 3
	}
	if tubularSegments < 3 {
		core.LogWarn("tubularSegments must be at least 3. Defaulting to 3.")
		tubularSegments = 3
	}

	config := &metadata.GeometryConfig{
		Vertices: make([]math.Vertex3D, 0, (radialSegments+1)*(tubularSegments+1)),
		Indices:  make([]uint32, 0, radialSegments*tubularSegments*6),
	}

	for j := uint32(0); j <= radialSegments; j++ {
		for i := uint32(0); i <= tubularSegments; i++ {
			u := float32(i) / float32(tubularSegments) * math.K_PI_2
			v := float32(j) / float32(radialSegments) * math.K_PI_2

			p := math.NewVec3(
				(radius+tube*math.Cos(v))*math.Cos(u),
				(radius+tube*math.Cos(v))*math.Sin(u),
				tube*math.Sin(v),
			)
			center := math.NewVec3(radius*math.Cos(u), radius*math.Sin(u), 0)
			config.Vertices = append(config.Vertices, math.Vertex3D{
				Position: p,
				Normal:   p.Sub(center).Normalize(),
				Texcoord: math.NewVec2(float32(i)/float32(tubularSegments), float32(j)/float32(radialSegments)),
			})
		}
	}

	row := tubularSegments + 1
	for j := uint32(1); j <= radialSegments; j++ {
		for i := uint32(1); i <= tubularSegments; i++ {
			a := row*j + i - 1
			b := row*(j-1) + i - 1
			c := row*(j-1) + i
			d := row*j + i
			config.Indices = append(config.Indices, a, b, d, b, c, d)
		}
	}

	setExtents(config)
	config.Name = geometryName(name)
	return config, nil
}

// signedPow is sign(v)*|v|^p with sign(0) taken as +1.
func signedPow(v, p float32) float32 {
	s := float32(1)
	if v < 0 {
		s = -1
	}
	return s * math.Pow(math.Abs(v), p)
}

/**
 * @brief Generates a superquadric by remapping every vertex of a UV sphere onto
 * the superquadric surface and recomputing smooth normals.
 *
 * @param radius The radius of the base sphere and the superquadric.
 * @param morph Blends the exponents; clamped to [0, 1].
 */
func GeometrySystemGenerateSuperquadricConfig(radius, morph float32, widthSegments, heightSegments uint32, name string) (*metadata.GeometryConfig, error) {
	if morph < 0 || morph > 1 || !math.IsFinite(morph) {
		core.LogWarn("morph %f outside [0, 1], clamping.", morph)
		if !math.IsFinite(morph) {
			morph = 0
		}
		morph = math.Clamp(morph, 0, 1)
	}

	if radius <= 0 {
		core.LogWarn("Radius must be positive. Defaulting to one.")
		radius = 1
	}
	config, err := GeometrySystemGenerateSphereConfig(radius, widthSegments, heightSegments, name)
	if err != nil {
		return nil, err
	}

	e := 0.8 + 0.4*morph
	n := 1 + (1 - morph)
	for i := range config.Vertices {
		p := config.Vertices[i].Position
		r := p.Length()
		if r == 0 {
			r = 1e-6
		}
		u := math.Asin(math.Clamp(p.Z/r, -1, 1))
		v := math.Atan2(p.Y/r, p.X/r)

		cu := signedPow(math.Cos(u), e)
		config.Vertices[i].Position = math.NewVec3(
			radius*cu*signedPow(math.Cos(v), n),
			radius*cu*signedPow(math.Sin(v), n),
			radius*signedPow(math.Sin(u), e),
		)
	}
	math.GeometryGenerateSmoothNormals(config.Vertices, config.Indices)

	setExtents(config)
	return config, nil
}

func setExtents(config *metadata.GeometryConfig) {
	ext := math.GeometryExtents(config.Vertices)
	config.MinExtents = ext.Min
	config.MaxExtents = ext.Max
	config.Center = ext.Min.Add(ext.Max).MulScalar(0.5)
}

func geometryName(name string) string {
	if len(name) > 0 {
		return name
	}
	return metadata.DefaultGeometryName
}
