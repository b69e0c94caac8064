package hal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz    int
	Ticks uint64
	// Snapshot, when set, receives a PNG of the final frame.
	Snapshot string
}

// RunHeadless runs the gallery without opening a window.
func RunHeadless(ctx context.Context, cfg Config, newApp NewApp, hcfg HeadlessConfig, log *zap.Logger) error {
	if hcfg.Hz <= 0 {
		hcfg.Hz = 60
	}
	if log == nil {
		log = zap.NewNop()
	}

	h := newHost(cfg, log)
	h.setViewport(h.fb.width, h.fb.height)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	d := time.Second / time.Duration(hcfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", hcfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	log.Info("headless runner started", zap.Int("hz", hcfg.Hz), zap.Uint64("ticks", hcfg.Ticks))
	finish := func(err error) error {
		if errors.Is(err, ErrQuit) {
			err = nil
		}
		h.stopped("headless")
		if hcfg.Snapshot != "" {
			if serr := WritePNG(h.fb, hcfg.Snapshot); serr != nil && err == nil {
				err = serr
			}
		}
		return err
	}

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return finish(ctx.Err())
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					return finish(err)
				}
			}
			tick++
			if hcfg.Ticks > 0 && tick >= hcfg.Ticks {
				return finish(nil)
			}
		}
	}
}
