package assets

import (
	"fmt"

	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/core"
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/strands"
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/zoetrope"
)

// Scene is everything a config file can set.
type Scene struct {
	// Mode is "runner" or "zoetrope".
	Mode string `toml:"mode" yaml:"mode"`
	// Preset, when set, seeds Strands before the file's own strand values apply.
	Preset   string          `toml:"preset" yaml:"preset"`
	Playing  bool            `toml:"playing" yaml:"playing"`
	Strands  strands.Config  `toml:"strands" yaml:"strands"`
	Zoetrope zoetrope.Config `toml:"zoetrope" yaml:"zoetrope"`
}

func DefaultScene() Scene {
	return Scene{
		Mode:     "runner",
		Playing:  true,
		Strands:  strands.DefaultConfig(),
		Zoetrope: zoetrope.DefaultConfig(),
	}
}

// LoadScene decodes a TOML or YAML scene file over the defaults.
func LoadScene(path string) (Scene, error) {
	scene := DefaultScene()
	if err := DecodeFile(path, &scene); err != nil {
		return Scene{}, err
	}
	if scene.Preset == "" {
		return scene, nil
	}

	// Decode again on top of the preset so explicit strand values win.
	preset, err := LookupPreset(scene.Preset)
	if err != nil {
		return Scene{}, fmt.Errorf("%s: %w", path, err)
	}
	withPreset := DefaultScene()
	withPreset.Strands = preset
	if err := DecodeFile(path, &withPreset); err != nil {
		return Scene{}, err
	}
	core.LogDebug("scene %s uses preset %q", path, scene.Preset)
	return withPreset, nil
}

// LoadSimulationConfig reads a file holding only strand settings.
func LoadSimulationConfig(path string) (strands.Config, error) {
	cfg := strands.DefaultConfig()
	if err := DecodeFile(path, &cfg); err != nil {
		return strands.Config{}, err
	}
	return cfg, nil
}

// LoadZoetropeConfig reads a file holding only zoetrope settings.
func LoadZoetropeConfig(path string) (zoetrope.Config, error) {
	cfg := zoetrope.DefaultConfig()
	if err := DecodeFile(path, &cfg); err != nil {
		return zoetrope.Config{}, err
	}
	return cfg, nil
}
