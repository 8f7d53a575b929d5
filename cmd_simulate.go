package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine"
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/assets"
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/core"
	"github.com/mehmeterenozyoldas-maker/Running-man-2/testbed"
)

var (
	simConfigPath string
	simPreset     string
	simTicks      int
	simDeltaTime  float64
	simSeed       int64
	simPlot       bool
	simWatch      bool
)

// simulateCmd runs the engine without a window
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the strand simulation headless",
	Long: `Run the strand simulation against the procedural running rig.

By default a fixed number of ticks is simulated as fast as possible and a
summary is printed. With --watch the engine ticks in real time and reloads
the scene file whenever it changes, until interrupted.`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVarP(&simConfigPath, "config", "c", "", "scene file (.toml, .yaml or .yml)")
	simulateCmd.Flags().StringVarP(&simPreset, "preset", "p", "", "built-in strand preset, overrides the scene's strands")
	simulateCmd.Flags().IntVarP(&simTicks, "ticks", "n", 300, "number of ticks to simulate; with --watch, stop after that many")
	simulateCmd.Flags().Float64Var(&simDeltaTime, "dt", 1.0/60.0, "seconds per tick")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 0, "wind noise seed (0 uses the default)")
	simulateCmd.Flags().BoolVar(&simPlot, "plot", false, "plot mean strand height over the last ticks")
	simulateCmd.Flags().BoolVarP(&simWatch, "watch", "w", false, "tick in real time and reload --config on change")
}

func loadSimulationScene() (assets.Scene, error) {
	scene := assets.DefaultScene()
	if simConfigPath != "" {
		loaded, err := assets.LoadScene(simConfigPath)
		if err != nil {
			return assets.Scene{}, err
		}
		scene = loaded
	}
	if simPreset != "" {
		preset, err := assets.LookupPreset(simPreset)
		if err != nil {
			return assets.Scene{}, err
		}
		scene.Strands = preset
	}
	return scene, nil
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if simWatch && simConfigPath == "" {
		return errors.New("--watch needs --config")
	}

	scene, err := loadSimulationScene()
	if err != nil {
		return err
	}

	game := testbed.NewTestGame(appName, core.ParseLogLevel(logLevel), scene)
	game.ApplicationConfig.NoiseSeed = simSeed
	if simWatch && simTicks > 0 && cmd.Flags().Changed("ticks") {
		game.QuitAfter(uint64(simTicks))
	}
	eng, err := engine.New(game.Game)
	if err != nil {
		return err
	}
	if err := eng.Initialize(); err != nil {
		return err
	}

	if simWatch {
		err = watchSimulation(cmd.Context(), eng)
	} else {
		err = stepSimulation(eng, game)
	}
	if err != nil {
		return err
	}
	if err := eng.Shutdown(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "session   %s\n", eng.SessionID())
	fmt.Fprintf(out, "mode      %s\n", eng.Mode())
	fmt.Fprintf(out, "ticks     %d\n", eng.Metrics().Total())
	fmt.Fprintf(out, "elapsed   %.3fs\n", eng.Elapsed())
	if eng.Mode() == engine.AppModeRunner {
		fmt.Fprintf(out, "instances %d\n", game.Instances())
		fmt.Fprintf(out, "tip mean  %.4f\n", eng.Simulation().MeanTipHeight())
	} else {
		fmt.Fprintf(out, "frames    %d (%s)\n", game.ZoetropeFrames(), game.MeshName())
	}

	if simPlot {
		history := game.History()
		if len(history) == 0 {
			fmt.Fprintln(out, "no strand history to plot")
			return nil
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.Plot(history,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("mean strand height (m)")))
	}
	return nil
}

func stepSimulation(eng *engine.Engine, game *testbed.TestGame) error {
	for i := 0; i < simTicks; i++ {
		packet, err := eng.Tick(simDeltaTime)
		if err != nil {
			return err
		}
		if err := game.Render(packet, packet.DeltaTime); err != nil {
			return err
		}
	}
	return nil
}

// watchSimulation runs the engine loop and the config watcher side by side
// until the engine stops or the process is interrupted.
func watchSimulation(parent context.Context, eng *engine.Engine) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	watcher, err := assets.NewConfigWatcher(simConfigPath)
	if err != nil {
		return err
	}

	eg, egCtx := errgroup.WithContext(ctx)
	// runCtx also ends when the engine stops on its own, e.g. after --ticks.
	runCtx, cancel := context.WithCancel(egCtx)
	defer cancel()

	eg.Go(func() error {
		defer cancel()
		return eng.Run(runCtx, watcher.Scenes())
	})
	eg.Go(func() error {
		for {
			select {
			case <-runCtx.Done():
				return nil
			case err, ok := <-watcher.Errors():
				if !ok {
					return nil
				}
				core.LogWarn("reload of %s failed: %s", watcher.Path(), err)
			}
		}
	})

	core.LogInfo("watching %s, interrupt to stop", watcher.Path())
	runErr := eg.Wait()
	if err := watcher.Close(); err != nil && !errors.Is(err, core.ErrWatcherClosed) {
		return err
	}
	return runErr
}
