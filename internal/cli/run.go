package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"gallery/app"
	"gallery/hal"
	"gallery/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRunCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [route]",
		Short: "Open the gallery, optionally at a route such as /vector-grid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				st.cfg.Start = args[0]
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return run(ctx, st.cfg, st.log)
		},
	}

	flags := cmd.Flags()
	flags.String("display", config.ModeWindow, "display mode: window, terminal or headless")
	flags.Int("hz", 60, "frames per second")
	flags.Uint64("ticks", 0, "stop a headless run after N frames (0 = until interrupted)")
	flags.Uint64("seed", 0, "random seed (0 = time based)")
	flags.String("snapshot", "", "write the last headless frame to this PNG file")

	for key, name := range map[string]string{
		"display.mode":     "display",
		"display.hz":       "hz",
		"display.ticks":    "ticks",
		"display.snapshot": "snapshot",
		"seed":             "seed",
	} {
		_ = st.v.BindPFlag(key, flags.Lookup(name))
	}
	return cmd
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	d := cfg.Display
	hcfg := hal.Config{Width: d.Width, Height: d.Height}
	newApp := app.NewApp(cfg, log)
	log.Info("starting gallery", zap.String("mode", d.Mode), zap.String("route", cfg.Start))

	var err error
	switch d.Mode {
	case config.ModeWindow:
		err = hal.RunWindow(hcfg, newApp, hal.WindowConfig{Title: "Gallery", Scale: d.Scale, Hz: d.Hz}, log)
	case config.ModeTerminal:
		err = hal.RunTerminal(ctx, hcfg, newApp, hal.TerminalConfig{Hz: d.Hz}, log)
	case config.ModeHeadless:
		err = hal.RunHeadless(ctx, hcfg, newApp, hal.HeadlessConfig{Hz: d.Hz, Ticks: d.Ticks, Snapshot: d.Snapshot}, log)
	default:
		return fmt.Errorf("%w: display mode %q", config.ErrInvalid, d.Mode)
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
