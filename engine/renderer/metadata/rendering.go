package metadata

import "github.com/mehmeterenozyoldas-maker/Running-man-2/engine/math"

// RenderPacket is everything a renderer needs for one frame.
type RenderPacket struct {
	DeltaTime float64
	// Frame is the engine tick number the packet was built on.
	Frame uint64

	/** @brief Segment instances of the strand simulation. Nil outside runner mode. */
	Strands *InstanceBatch

	/** @brief Frame instances of the zoetrope. Nil outside zoetrope mode. */
	Zoetrope *InstanceBatch
	/** @brief The mesh every zoetrope instance draws. */
	ZoetropeMesh *GeometryConfig
	/** @brief The zoetrope group transform, including auto-rotation. */
	ZoetropeGroup math.Mat4
}
