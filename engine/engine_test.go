package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/assets"
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/core"
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/math"
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/renderer/metadata"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testGame(scene assets.Scene) *Game {
	return &Game{
		ApplicationConfig: &ApplicationConfig{
			Name:     "test",
			LogLevel: core.ErrorLevel,
			TickRate: 200,
			Scene:    scene,
		},
		FnPose: StaticPose(math.NewMat4Translation(math.NewVec3(0, 1, 0))),
	}
}

func TestParseAppMode(t *testing.T) {
	m, err := ParseAppMode("zoetrope")
	require.NoError(t, err)
	assert.Equal(t, AppModeZoetrope, m)
	assert.Equal(t, "zoetrope", m.String())

	m, err = ParseAppMode("")
	require.NoError(t, err)
	assert.Equal(t, AppModeRunner, m)

	_, err = ParseAppMode("cinema")
	assert.ErrorIs(t, err, core.ErrUnknownMode)
}

func TestNewRequiresPose(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	g := testGame(assets.DefaultScene())
	g.FnPose = nil
	_, err = New(g)
	assert.Error(t, err)
}

func TestTickBeforeInitialize(t *testing.T) {
	e, err := New(testGame(assets.DefaultScene()))
	require.NoError(t, err)
	_, err = e.Tick(1.0 / 60.0)
	assert.ErrorIs(t, err, core.ErrEngineNotInitialized)
}

func TestRunnerTickProducesStrandBatch(t *testing.T) {
	scene := assets.DefaultScene()
	initialized := false
	g := testGame(scene)
	g.FnInitialize = func(events *core.EventBus) error {
		initialized = events != nil
		return nil
	}

	e, err := New(g)
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	assert.True(t, initialized)
	assert.Equal(t, EngineStageInitialized, e.Stage())
	assert.Error(t, e.Initialize())

	packet, err := e.Tick(1.0 / 60.0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), packet.Frame)
	assert.Equal(t, scene.Strands.InstanceCount(), packet.Strands.Count())
	assert.Nil(t, packet.Zoetrope)
	assert.InDelta(t, 1.0/60.0, e.Elapsed(), 1e-9)
}

func TestApplySceneSwitchesMode(t *testing.T) {
	g := testGame(assets.DefaultScene())
	var modes []string
	var applied int
	g.FnInitialize = func(events *core.EventBus) error {
		events.Register(core.EVENT_CODE_MODE_CHANGED, "modes", func(_ core.SystemEventCode, _ interface{}, _ interface{}, data core.EventContext) bool {
			modes = append(modes, data.Data.C[0]+">"+data.Data.C[1])
			return false
		})
		events.Register(core.EVENT_CODE_SCENE_APPLIED, "scenes", func(core.SystemEventCode, interface{}, interface{}, core.EventContext) bool {
			applied++
			return false
		})
		return nil
	}
	e, err := New(g)
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	assert.Equal(t, 1, applied)

	scene := assets.DefaultScene()
	scene.Mode = "zoetrope"
	require.NoError(t, e.ApplyScene(scene))
	assert.Equal(t, AppModeZoetrope, e.Mode())

	packet, err := e.Tick(1.0 / 60.0)
	require.NoError(t, err)
	assert.Nil(t, packet.Strands)
	require.NotNil(t, packet.Zoetrope)
	assert.Equal(t, int(scene.Zoetrope.FrameCount()), packet.Zoetrope.Count())
	assert.NotNil(t, packet.ZoetropeMesh)

	scene.Mode = "cinema"
	assert.ErrorIs(t, e.ApplyScene(scene), core.ErrUnknownMode)
	assert.Equal(t, AppModeZoetrope, e.Mode())
	assert.Equal(t, []string{"runner>zoetrope"}, modes)
	assert.Equal(t, 2, applied)
}

func TestApplySceneReportsStrandReset(t *testing.T) {
	g := testGame(assets.DefaultScene())
	var resets [][2]uint64
	g.FnInitialize = func(events *core.EventBus) error {
		events.Register(core.EVENT_CODE_STRANDS_RESET, nil, func(_ core.SystemEventCode, _ interface{}, _ interface{}, data core.EventContext) bool {
			resets = append(resets, [2]uint64{data.Data.U64[0], data.Data.U64[1]})
			return true
		})
		return nil
	}
	e, err := New(g)
	require.NoError(t, err)
	require.NoError(t, e.Initialize())

	scene := assets.DefaultScene()
	scene.Strands.Drag = 0.5
	require.NoError(t, e.ApplyScene(scene))
	assert.Empty(t, resets)

	scene.Strands.StrandCount = 10
	scene.Strands.SegmentsPerStrand = 4
	require.NoError(t, e.ApplyScene(scene))
	assert.Equal(t, [][2]uint64{{10, 4}}, resets)
	assert.Equal(t, 30, e.Simulation().Config().InstanceCount())
}

func TestRunStopsOnQuitRequest(t *testing.T) {
	g := testGame(assets.DefaultScene())
	e, err := New(g)
	require.NoError(t, err)

	renders := 0
	g.FnRender = func(*metadata.RenderPacket, float64) error {
		renders++
		if renders == 3 {
			e.RequestQuit()
		}
		return nil
	}
	require.NoError(t, e.Initialize())

	require.NoError(t, e.Run(context.Background(), nil))
	assert.Equal(t, 3, renders)
	assert.Equal(t, uint64(3), e.Metrics().Total())
}

func TestPoseErrorStopsTick(t *testing.T) {
	g := testGame(assets.DefaultScene())
	boom := errors.New("boom")
	g.FnPose = func(float64) (map[string]math.Mat4, error) { return nil, boom }

	e, err := New(g)
	require.NoError(t, err)
	require.NoError(t, e.Initialize())
	_, err = e.Tick(1.0 / 60.0)
	assert.ErrorIs(t, err, boom)
}

func TestRunAppliesScenesUntilCancelled(t *testing.T) {
	g := testGame(assets.DefaultScene())
	rendered := make(chan *metadata.RenderPacket, 64)
	g.FnRender = func(p *metadata.RenderPacket, _ float64) error {
		select {
		case rendered <- p:
		default:
		}
		return nil
	}
	shutdown := false
	g.FnShutdown = func() error {
		shutdown = true
		return nil
	}

	e, err := New(g)
	require.NoError(t, err)
	require.NoError(t, e.Initialize())

	ctx, cancel := context.WithCancel(context.Background())
	scenes := make(chan assets.Scene)
	done := make(chan error, 1)
	go func() { done <- e.Run(ctx, scenes) }()

	zoe := assets.DefaultScene()
	zoe.Mode = "zoetrope"
	scenes <- zoe

	deadline := time.After(5 * time.Second)
	for {
		select {
		case p := <-rendered:
			if p.Zoetrope == nil {
				continue
			}
		case <-deadline:
			t.Fatal("no zoetrope packet rendered")
		}
		break
	}

	close(scenes)
	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, EngineStageRunning, e.Stage())
	assert.Greater(t, e.Metrics().Total(), uint64(0))

	require.NoError(t, e.Shutdown())
	assert.True(t, shutdown)
	assert.Equal(t, EngineStageShuttingDown, e.Stage())
}
