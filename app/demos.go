package app

import (
	"fmt"
	"math"

	"gallery/internal/config"
	"gallery/sketch/demos/clocklines"
	"gallery/sketch/demos/home"
	"gallery/sketch/demos/intersection"
	"gallery/sketch/demos/vectorgrid"
	"gallery/sketch/geom"
	"gallery/sketch/page"
	"gallery/sketch/surface"
)

// buildDemos returns the gallery's demos in menu order.
func buildDemos(cfg *config.Config) ([]page.Demo, error) {
	composite, ok := surface.ParseComposite(cfg.Intersection.Composite)
	if !ok {
		return nil, fmt.Errorf("%w: intersection.composite %q", config.ErrInvalid, cfg.Intersection.Composite)
	}

	vg := cfg.VectorGrid
	cl := cfg.ClockLines
	in := cfg.Intersection
	return []page.Demo{
		vectorgrid.New(vectorgrid.Config{
			Rows:          vg.Rows,
			MaxRows:       vg.MaxRows,
			Magnitude:     vg.Magnitude,
			MagnitudeStep: vg.MagnitudeStep,
			GridSize:      vg.GridSize,
		}),
		clocklines.New(clocklines.Config{
			Dots:       cl.Dots,
			MaxDots:    cl.MaxDots,
			Radius:     cl.Radius,
			ClockStep:  cl.ClockStepDeg * math.Pi / 180,
			Offset:     cl.Offset,
			OffsetMax:  cl.OffsetMax,
			OffsetStep: cl.OffsetStep,
		}),
		intersection.New(intersection.Config{
			SquaresPerRow: in.SquaresPerRow,
			Threshold:     in.Threshold,
			MinInterval:   in.MinInterval,
			Anchor:        geom.Vec(in.AnchorX, in.AnchorY),
			Composite:     composite,
		}),
	}, nil
}

// Links returns the gallery's menu for cfg without mounting anything.
func Links(cfg *config.Config) ([]home.Link, error) {
	demos, err := buildDemos(cfg)
	if err != nil {
		return nil, err
	}
	return NewRouter(&page.Host{}, nil, demos...).Links(), nil
}
