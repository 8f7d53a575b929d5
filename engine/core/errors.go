package core

import (
	"errors"
)

var (
	ErrUnknownDistribution     = errors.New("unknown distribution")
	ErrUnknownShape            = errors.New("unknown shape")
	ErrUnknownPalette          = errors.New("unknown palette")
	ErrUnknownPreset           = errors.New("unknown preset")
	ErrUnknownMode             = errors.New("unknown app mode")
	ErrUnsupportedConfigFormat = errors.New("unsupported config format")
	ErrEngineNotInitialized    = errors.New("engine not initialized")
	ErrWatcherClosed           = errors.New("config watcher already closed")
)
