//go:build !cgo

package hal

import (
	"errors"

	"go.uber.org/zap"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title string
	Scale int
	Hz    int
}

func RunWindow(_ Config, _ NewApp, _ WindowConfig, _ *zap.Logger) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
