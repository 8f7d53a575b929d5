package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/core"
)

func testCommand(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	core.SetLogLevel(core.ErrorLevel)
	logLevel = "error"

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	return cmd, &buf
}

func TestPresetsCmd(t *testing.T) {
	cmd, out := testCommand(t)
	require.NoError(t, runPresets(cmd, nil))

	for _, name := range []string{"Neon Runner", "Ghostly Wisp", "Toxic Sludge"} {
		assert.Contains(t, out.String(), name)
	}
}

func TestSimulateCmd(t *testing.T) {
	cmd, out := testCommand(t)
	simTicks, simDeltaTime, simPlot, simPreset = 20, 1.0/60.0, true, "Ghostly Wisp"
	defer func() {
		simTicks, simPlot, simPreset = 300, false, ""
	}()

	require.NoError(t, runSimulate(cmd, nil))
	assert.Contains(t, out.String(), "ticks     20")
	assert.Contains(t, out.String(), "mode      runner")
	assert.Contains(t, out.String(), "mean strand height")
}

func TestSimulateCmdRejectsUnknownPreset(t *testing.T) {
	cmd, _ := testCommand(t)
	simPreset = "Nope"
	defer func() { simPreset = "" }()

	assert.ErrorIs(t, runSimulate(cmd, nil), core.ErrUnknownPreset)
}

func TestSimulateCmdWatchNeedsConfig(t *testing.T) {
	cmd, _ := testCommand(t)
	simWatch = true
	defer func() { simWatch = false }()

	assert.Error(t, runSimulate(cmd, nil))
}

func TestSimulateWatchStopsAfterTicks(t *testing.T) {
	core.SetLogLevel(core.ErrorLevel)
	scenePath := filepath.Join(t.TempDir(), "scene.toml")
	require.NoError(t, os.WriteFile(scenePath, []byte("mode = \"runner\"\n\n[strands]\nstrand_count = 10\n"), 0o644))
	defer func() {
		simConfigPath, simWatch, simTicks, logLevel = "", false, 300, "info"
	}()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"simulate", "--config", scenePath, "--watch", "--ticks", "5", "--log-level", "error"})
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	}()

	done := make(chan error, 1)
	go func() { done <- rootCmd.Execute() }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("simulate --watch --ticks 5 did not stop")
	}
	assert.Contains(t, out.String(), "ticks     5")
	assert.Contains(t, out.String(), "instances 70")
}

func TestZoetropeExportCmd(t *testing.T) {
	cmd, out := testCommand(t)
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "zoe.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("frames = 12\ndistribution = \"circle\"\n"), 0o644))

	zoeConfigPath = cfgPath
	zoeOutput = filepath.Join(dir, "frames.json")
	defer func() { zoeConfigPath, zoeOutput = "", "" }()

	require.NoError(t, runZoetropeExport(cmd, nil))
	assert.Contains(t, out.String(), "wrote 12 frames")

	data, err := os.ReadFile(zoeOutput)
	require.NoError(t, err)
	var frames []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &frames))
	require.Len(t, frames, 12)
	assert.Equal(t, "circle", frames[0]["distribution"])
}

func TestZoetropeInspectCmd(t *testing.T) {
	cmd, out := testCommand(t)
	require.NoError(t, runZoetropeInspect(cmd, nil))

	assert.Contains(t, out.String(), "helix")
	assert.Contains(t, out.String(), "superquadric")
	assert.Contains(t, out.String(), "vertices")
}
