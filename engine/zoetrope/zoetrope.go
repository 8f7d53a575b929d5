package zoetrope

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/core"
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/math"
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/renderer/metadata"
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/systems"
)

const (
	// AutoRotateStep is the group yaw added per rendered frame, in radians.
	AutoRotateStep float32 = 0.002
)

// GroupOrigin is where the zoetrope sits in the world.
var GroupOrigin = math.NewVec3(0, 2, 0)

// geometryNamespace scopes the deterministic mesh names.
var geometryNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("running-man/zoetrope"))

type meshKey struct {
	shape Shape
	morph float32
}

// Zoetrope caches a layout and its mesh and recomputes them only when the
// configuration changes.
type Zoetrope struct {
	cfg    Config
	valid  bool
	frames []Frame
	batch  *metadata.InstanceBatch

	mesh      *metadata.GeometryConfig
	meshKey   meshKey
	meshValid bool

	yaw        float32
	recomputes int
}

func New() *Zoetrope {
	return &Zoetrope{batch: &metadata.InstanceBatch{}}
}

// Update returns the instances and mesh for cfg, recomputing only what changed.
func (z *Zoetrope) Update(cfg Config) (*metadata.InstanceBatch, *metadata.GeometryConfig, error) {
	cfg = cfg.Normalize()

	key := meshKey{shape: cfg.Shape}
	if cfg.Shape == ShapeSuperquadric {
		key.morph = cfg.Morph
	}
	if !z.meshValid || key != z.meshKey {
		mesh, err := GenerateMesh(key.shape, key.morph)
		if err != nil {
			core.LogError("failed to generate %s mesh: %s", cfg.Shape, err)
			return nil, nil, err
		}
		z.mesh = mesh
		z.meshKey = key
		z.meshValid = true
	}

	if !z.valid || cfg != z.cfg {
		z.frames = Layout(cfg)
		z.batch.Transforms = make([]math.Mat4, len(z.frames))
		z.batch.Colours = make([]math.Vec3, len(z.frames))
		for i, f := range z.frames {
			z.batch.Transforms[i] = f.Transform
			z.batch.Colours[i] = f.Colour
		}
		z.cfg = cfg
		z.valid = true
		z.recomputes++
		core.LogDebug("zoetrope recomputed: %d frames, %s, %s", len(z.frames), cfg.Distribution, cfg.Shape)
	}

	return z.batch, z.mesh, nil
}

// Advance is called once per rendered frame and spins the group when
// auto-rotate is on.
func (z *Zoetrope) Advance() {
	if z.valid && z.cfg.AutoRotate {
		z.yaw += AutoRotateStep
		if z.yaw >= math.K_PI_2 {
			z.yaw -= math.K_PI_2
		}
	}
}

// GroupTransform places the whole zoetrope in the world.
func (z *Zoetrope) GroupTransform() math.Mat4 {
	return math.NewMat4EulerY(z.yaw).Mul(math.NewMat4Translation(GroupOrigin))
}

func (z *Zoetrope) Yaw() float32 {
	return z.yaw
}

func (z *Zoetrope) Frames() []Frame {
	return z.frames
}

// Recomputes counts full layout recomputations, for diagnostics.
func (z *Zoetrope) Recomputes() int {
	return z.recomputes
}

// GenerateMesh builds the instance mesh for a shape. morph only affects the superquadric.
func GenerateMesh(shape Shape, morph float32) (*metadata.GeometryConfig, error) {
	if shape != ShapeSuperquadric {
		morph = 0
	}
	name := fmt.Sprintf("zoetrope_%s_%s", shape, uuid.NewSHA1(geometryNamespace, []byte(fmt.Sprintf("%s/%.4f", shape, morph))))

	switch shape {
	case ShapeBox:
		return systems.GeometrySystemGenerateCubeConfig(1, 1, 1, 1, 1, name)
	case ShapeTorus:
		return systems.GeometrySystemGenerateTorusConfig(0.7, 0.25, 16, 24, name)
	case ShapeSphere:
		return systems.GeometrySystemGenerateSphereConfig(0.85, 32, 16, name)
	case ShapeSuperquadric:
		return systems.GeometrySystemGenerateSuperquadricConfig(0.85, morph, 32, 20, name)
	default:
		return nil, fmt.Errorf("%w: %d", core.ErrUnknownShape, uint8(shape))
	}
}
