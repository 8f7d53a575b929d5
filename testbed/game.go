package testbed

import (
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine"
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/assets"
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/containers"
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/core"
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/math"
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/renderer/metadata"
)

// HistorySize is how many per-tick height samples the game keeps.
const HistorySize = 240

type TestGame struct {
	*engine.Game
}

type gameState struct {
	rig     *Rig
	heights *containers.RingQueue[float64]
	events  *core.EventBus

	// quitAfter stops the run loop after that many packets; 0 runs forever.
	quitAfter uint64
	scenes    int

	packets   uint64
	instances int
	zoeFrames int
	meshName  string
}

func NewTestGame(name string, level core.LogLevel, scene assets.Scene) *TestGame {
	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: &engine.ApplicationConfig{
				Name:     name,
				LogLevel: level,
				TickRate: 60,
				Scene:    scene,
			},
			State: &gameState{
				rig:     NewRig(),
				heights: containers.NewRingQueue[float64](HistorySize),
			},
		},
	}

	tg.FnInitialize = tg.Initialize
	tg.FnPose = tg.Pose
	tg.FnRender = tg.Render
	tg.FnShutdown = tg.Shutdown

	return tg
}

func (g *TestGame) state() *gameState {
	return g.State.(*gameState)
}

func (g *TestGame) Initialize(events *core.EventBus) error {
	st := g.state()
	st.events = events

	events.Register(core.EVENT_CODE_SCENE_APPLIED, g, func(_ core.SystemEventCode, _ interface{}, _ interface{}, data core.EventContext) bool {
		st.scenes++
		core.LogInfo("scene %d applied: mode %s, %d strand instances, %d frames",
			st.scenes, data.Data.C[0], data.Data.U64[0], data.Data.U64[1])
		return false
	})
	events.Register(core.EVENT_CODE_MODE_CHANGED, g, func(_ core.SystemEventCode, _ interface{}, _ interface{}, data core.EventContext) bool {
		core.LogInfo("mode %s -> %s", data.Data.C[0], data.Data.C[1])
		st.heights = containers.NewRingQueue[float64](HistorySize)
		return false
	})

	core.LogDebug("testbed initialized with %d rig joints", len(skeleton))
	return nil
}

// QuitAfter makes the game ask the engine to stop once n packets have been
// rendered. Zero disables it.
func (g *TestGame) QuitAfter(n uint64) {
	g.state().quitAfter = n
}

func (g *TestGame) Pose(elapsed float64) (map[string]math.Mat4, error) {
	return g.state().rig.Pose(elapsed)
}

// Render records what the packet would put on screen.
func (g *TestGame) Render(packet *metadata.RenderPacket, deltaTime float64) error {
	st := g.state()
	st.packets++

	if packet.Strands != nil {
		st.instances = packet.Strands.Count()
		st.heights.Push(meanHeight(packet.Strands))
	}
	if packet.Zoetrope != nil {
		st.zoeFrames = packet.Zoetrope.Count()
	}
	if packet.ZoetropeMesh != nil {
		st.meshName = packet.ZoetropeMesh.Name
	}

	if st.quitAfter > 0 && st.packets == st.quitAfter && st.events != nil {
		st.events.Fire(core.EVENT_CODE_APPLICATION_QUIT, g, core.EventContext{})
	}
	return nil
}

func (g *TestGame) Shutdown() error {
	core.LogDebug("testbed rendered %d packets", g.state().packets)
	return nil
}

// History returns the recorded mean instance heights, oldest first.
func (g *TestGame) History() []float64 {
	return g.state().heights.Slice()
}

// Scenes is the number of scene snapshots the engine has applied.
func (g *TestGame) Scenes() int {
	return g.state().scenes
}

func (g *TestGame) Packets() uint64 {
	return g.state().packets
}

func (g *TestGame) Instances() int {
	return g.state().instances
}

func (g *TestGame) ZoetropeFrames() int {
	return g.state().zoeFrames
}

func (g *TestGame) MeshName() string {
	return g.state().meshName
}

func meanHeight(batch *metadata.InstanceBatch) float64 {
	if batch.Count() == 0 {
		return 0
	}
	var sum float64
	for _, m := range batch.Transforms {
		sum += float64(m.Position().Y)
	}
	return sum / float64(len(batch.Transforms))
}
