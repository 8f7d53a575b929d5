package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/assets"
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/core"
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/math"
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/noise"
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/renderer/metadata"
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/strands"
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/zoetrope"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

const defaultTickRate = 60.0

type Engine struct {
	currentStage Stage
	gameInstance *Game
	sessionID    uuid.UUID

	mode       AppMode
	playing    bool
	simulation *strands.Simulation
	zoetrope   *zoetrope.Zoetrope
	zoeConfig  zoetrope.Config

	events  *core.EventBus
	quit    bool
	clock   *core.Clock
	metrics *core.Metrics
	elapsed float64
	frame   uint64
}

func New(g *Game) (*Engine, error) {
	if g == nil || g.ApplicationConfig == nil {
		err := fmt.Errorf("game and application config are required")
		core.LogError(err.Error())
		return nil, err
	}
	if g.FnPose == nil {
		err := fmt.Errorf("game %q has no pose function", g.ApplicationConfig.Name)
		core.LogError(err.Error())
		return nil, err
	}

	return &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		sessionID:    uuid.New(),
		events:       core.NewEventBus(),
		clock:        core.NewClock(),
		metrics:      core.NewMetrics(),
		zoetrope:     zoetrope.New(),
	}, nil
}

func (e *Engine) Initialize() error {
	if e.currentStage != EngineStageUninitialized {
		return fmt.Errorf("engine already initialized")
	}
	config := e.gameInstance.ApplicationConfig
	core.SetLogLevel(config.LogLevel)

	seed := config.NoiseSeed
	if seed == 0 {
		seed = noise.DefaultSeed
	}
	e.events.Register(core.EVENT_CODE_APPLICATION_QUIT, e, e.onQuit)
	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(e.events); err != nil {
			return err
		}
	}

	e.simulation = strands.NewSimulation(config.Scene.Strands, noise.NewField(seed))
	if err := e.ApplyScene(config.Scene); err != nil {
		return err
	}

	e.currentStage = EngineStageInitialized
	core.LogInfo("%s initialized (session %s, mode %s)", config.Name, e.sessionID, e.mode)
	return nil
}

// ApplyScene hands a new configuration snapshot to every subsystem. It is
// only called from the goroutine that ticks the engine.
func (e *Engine) ApplyScene(scene assets.Scene) error {
	mode, err := ParseAppMode(scene.Mode)
	if err != nil {
		core.LogError(err.Error())
		return err
	}
	if e.simulation == nil {
		return core.ErrEngineNotInitialized
	}

	if mode != e.mode {
		var ctx core.EventContext
		ctx.Data.C[0] = e.mode.String()
		ctx.Data.C[1] = mode.String()
		e.events.Fire(core.EVENT_CODE_MODE_CHANGED, e, ctx)
	}
	if next := scene.Strands.Normalize(); strands.TopologyChanged(e.simulation.Config(), next) {
		var ctx core.EventContext
		ctx.Data.U64[0] = uint64(next.StrandCount)
		ctx.Data.U64[1] = uint64(next.SegmentsPerStrand)
		e.events.Fire(core.EVENT_CODE_STRANDS_RESET, e, ctx)
	}

	e.mode = mode
	e.playing = scene.Playing
	e.simulation.Apply(scene.Strands)
	e.zoeConfig = scene.Zoetrope

	var ctx core.EventContext
	ctx.Data.C[0] = mode.String()
	ctx.Data.U64[0] = uint64(e.simulation.Config().InstanceCount())
	ctx.Data.U64[1] = uint64(scene.Zoetrope.Normalize().FrameCount())
	e.events.Fire(core.EVENT_CODE_SCENE_APPLIED, e, ctx)
	return nil
}

func (e *Engine) onQuit(code core.SystemEventCode, sender interface{}, listener interface{}, data core.EventContext) bool {
	e.quit = true
	return true
}

// RequestQuit stops Run after the current tick. It must be called from the
// goroutine running the engine, usually from a render or event callback.
func (e *Engine) RequestQuit() {
	e.events.Fire(core.EVENT_CODE_APPLICATION_QUIT, e, core.EventContext{})
}

// Tick advances the engine by deltaTime seconds and builds the packet for
// the current mode.
func (e *Engine) Tick(deltaTime float64) (*metadata.RenderPacket, error) {
	if e.currentStage != EngineStageInitialized && e.currentStage != EngineStageRunning {
		return nil, core.ErrEngineNotInitialized
	}

	e.elapsed += deltaTime
	e.frame++
	packet := &metadata.RenderPacket{
		DeltaTime: deltaTime,
		Frame:     e.frame,
	}

	switch e.mode {
	case AppModeRunner:
		joints, err := e.gameInstance.FnPose(e.elapsed)
		if err != nil {
			core.LogError("pose failed: %s", err)
			return nil, err
		}
		packet.Strands = e.simulation.Tick(strands.TickInput{
			DeltaTime: float32(deltaTime),
			Playing:   e.playing,
			Joints:    joints,
		})
	case AppModeZoetrope:
		batch, mesh, err := e.zoetrope.Update(e.zoeConfig)
		if err != nil {
			return nil, err
		}
		e.zoetrope.Advance()
		packet.Zoetrope = batch
		packet.ZoetropeMesh = mesh
		packet.ZoetropeGroup = e.zoetrope.GroupTransform()
	}

	e.metrics.Update(deltaTime)
	return packet, nil
}

// Run ticks at the configured rate until ctx is done, applying any scene
// snapshot that arrives on scenes between ticks. scenes may be nil.
func (e *Engine) Run(ctx context.Context, scenes <-chan assets.Scene) error {
	if e.currentStage != EngineStageInitialized {
		return core.ErrEngineNotInitialized
	}
	e.currentStage = EngineStageRunning

	rate := e.gameInstance.ApplicationConfig.TickRate
	if rate <= 0 {
		rate = defaultTickRate
	}
	ticker := time.NewTicker(time.Duration(float64(time.Second) / rate))
	defer ticker.Stop()

	e.clock.Start()
	defer e.clock.Stop()

	for {
		select {
		case <-ctx.Done():
			core.LogDebug("run loop stopped after %d ticks", e.metrics.Total())
			return nil

		case scene, ok := <-scenes:
			if !ok {
				scenes = nil
				continue
			}
			if err := e.ApplyScene(scene); err != nil {
				// keep running on the previous scene
				core.LogWarn("ignoring scene: %s", err)
			}

		case <-ticker.C:
			e.clock.Update()
			packet, err := e.Tick(e.clock.Delta())
			if err != nil {
				core.LogError("Game update failed, shutting down.")
				return err
			}
			if e.gameInstance.FnRender != nil {
				if err := e.gameInstance.FnRender(packet, packet.DeltaTime); err != nil {
					core.LogError("Game render failed, shutting down.")
					return err
				}
			}
			if e.quit {
				core.LogDebug("quit requested after %d ticks", e.metrics.Total())
				return nil
			}
		}
	}
}

func (e *Engine) Shutdown() error {
	e.currentStage = EngineStageShuttingDown
	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			return err
		}
	}
	e.events.Clear()
	core.LogInfo("shut down after %d ticks (%.1f tps, %.3f ms avg)", e.metrics.Total(), e.metrics.TPS(), e.metrics.TickTime())
	return nil
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

func (e *Engine) Mode() AppMode {
	return e.mode
}

func (e *Engine) SessionID() uuid.UUID {
	return e.sessionID
}

func (e *Engine) Events() *core.EventBus {
	return e.events
}

func (e *Engine) Metrics() *core.Metrics {
	return e.metrics
}

func (e *Engine) Simulation() *strands.Simulation {
	return e.simulation
}

func (e *Engine) Elapsed() float64 {
	return e.elapsed
}

// StaticPose is a Pose that holds every joint at the same matrix.
func StaticPose(m math.Mat4) Pose {
	joints := make(map[string]math.Mat4, len(strands.JointNames))
	for _, name := range strands.JointNames {
		joints[name] = m
	}
	return func(float64) (map[string]math.Mat4, error) {
		return joints, nil
	}
}
