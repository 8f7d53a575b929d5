package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/core"
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/strands"
)

//go:embed presets.toml
var presetsTOML []byte

// Preset is a named strand look.
type Preset struct {
	Name    string         `toml:"name"`
	Strands strands.Config `toml:"strands"`
}

var (
	presetsOnce sync.Once
	presets     []Preset
	presetsErr  error
)

// Presets returns the built-in presets in their declared order.
func Presets() ([]Preset, error) {
	presetsOnce.Do(func() {
		var file struct {
			Preset []Preset `toml:"preset"`
		}
		dec := toml.NewDecoder(bytes.NewReader(presetsTOML))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&file); err != nil {
			presetsErr = fmt.Errorf("failed to decode built-in presets: %w", err)
			core.LogError(presetsErr.Error())
			return
		}
		presets = file.Preset
	})
	return presets, presetsErr
}

// LookupPreset returns the strand config of a named preset.
func LookupPreset(name string) (strands.Config, error) {
	all, err := Presets()
	if err != nil {
		return strands.Config{}, err
	}
	for _, p := range all {
		if p.Name == name {
			return p.Strands, nil
		}
	}
	return strands.Config{}, fmt.Errorf("%w: %q", core.ErrUnknownPreset, name)
}
