// Package page defines the mount contract between the gallery shell and a
// demo, and the per-mount state a demo owns.
package page

import (
	"errors"

	"gallery/sketch/anim"
	"gallery/sketch/entity"
	"gallery/sketch/surface"

	"go.uber.org/zap"
)

var (
	// ErrMissingSurface is returned by Mount when the host has no drawing surface.
	ErrMissingSurface = errors.New("page: missing surface")
	// ErrNoFrames is returned by Mount when the host has no frame queue.
	ErrNoFrames = errors.New("page: missing frame queue")
)

// Demo is a mountable page.
//
// Mount registers listeners and starts the demo's scheduler; Unmount removes
// both. A demo may be mounted again after Unmount, starting from fresh state.
type Demo interface {
	Route() string
	Title() string
	Mount(h *Host) error
	Unmount()
}

// Host is what the shell lends a demo for its mounted lifetime.
type Host struct {
	Surface surface.Surface
	Frames  anim.Frames
	Events  *Dispatcher
	Rand    entity.Rand
	Log     *zap.Logger
}
