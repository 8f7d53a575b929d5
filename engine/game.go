package engine

import (
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/core"
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/math"
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/renderer/metadata"
)

// Game is the host side of the engine: it poses the rig and consumes packets.
type Game struct {
	ApplicationConfig *ApplicationConfig
	State             interface{}
	FnInitialize      Initialize
	FnPose            Pose
	FnRender          Render
	FnShutdown        Shutdown
}

// Initialize runs once before the first scene is applied, so listeners
// registered on events see it.
type Initialize func(events *core.EventBus) error

// Pose returns the world matrix of every rig joint at elapsed seconds.
type Pose func(elapsed float64) (map[string]math.Mat4, error)
type Render func(packet *metadata.RenderPacket, deltaTime float64) error
type Shutdown func() error
