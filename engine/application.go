package engine

import (
	"fmt"

	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/assets"
	"github.com/mehmeterenozyoldas-maker/Running-man-2/engine/core"
)

// AppMode selects which subsystem the render packet carries.
type AppMode uint8

const (
	// AppModeRunner drives the strand simulation from the rig.
	AppModeRunner AppMode = iota
	// AppModeZoetrope shows the frame layout.
	AppModeZoetrope
)

func (m AppMode) String() string {
	switch m {
	case AppModeRunner:
		return "runner"
	case AppModeZoetrope:
		return "zoetrope"
	default:
		return fmt.Sprintf("AppMode(%d)", uint8(m))
	}
}

func ParseAppMode(s string) (AppMode, error) {
	switch s {
	case "runner", "":
		return AppModeRunner, nil
	case "zoetrope":
		return AppModeZoetrope, nil
	default:
		return AppModeRunner, fmt.Errorf("%w: %q", core.ErrUnknownMode, s)
	}
}

type ApplicationConfig struct {
	// The application name used in logs.
	Name     string
	LogLevel core.LogLevel
	// TickRate is the number of ticks per second Run aims for.
	TickRate float64
	// NoiseSeed seeds the wind field.
	NoiseSeed int64
	// Scene is the initial configuration.
	Scene assets.Scene
}
