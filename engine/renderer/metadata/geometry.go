package metadata

import (
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/math"
)

/** @brief The name of the default geometry. */
const DefaultGeometryName string = "default"

/**
 * @brief Represents the configuration for a geometry, as generated on the CPU
 * and handed to a renderer for upload.
 */
type GeometryConfig struct {
	/** @brief An array of Vertices. */
	Vertices []math.Vertex3D
	/** @brief An array of Indices. Every three form a triangle. */
	Indices []uint32

	Center     math.Vec3
	MinExtents math.Vec3
	MaxExtents math.Vec3

	/** @brief The Name of the geometry. */
	Name string
}

/** @brief The number of vertices. */
func (g *GeometryConfig) VertexCount() uint32 {
	return uint32(len(g.Vertices))
}

/** @brief The number of indices. */
func (g *GeometryConfig) IndexCount() uint32 {
	return uint32(len(g.Indices))
}
