// Package cli holds the gallery's cobra commands.
package cli

import (
	"fmt"
	"os"

	"gallery/internal/buildinfo"
	"gallery/internal/config"
	"gallery/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// state is shared by the commands of one root.
type state struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     *zap.Logger
	done    func()
}

// NewRootCmd returns a fresh command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	st := &state{v: viper.New(), log: zap.NewNop(), done: func() {}}

	root := &cobra.Command{
		Use:           "gallery",
		Short:         "A gallery of small real-time 2D visualizations.",
		Version:       buildinfo.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(st.v, st.cfgFile)
			if err != nil {
				return err
			}
			st.cfg = cfg
			st.log, st.done = logging.New(cfg.Logger, st.console(cmd))
			st.log.Debug("configuration loaded",
				zap.String("version", buildinfo.Short()),
				zap.String("config", st.v.ConfigFileUsed()))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			st.done()
		},
	}
	root.SetVersionTemplate("{{printf \"%s\\n\" .Version}}")
	root.PersistentFlags().StringVarP(&st.cfgFile, "config", "c", "", "config file (default is ./gallery.yaml)")

	root.AddCommand(newRunCmd(st), newListCmd(st), newVersionCmd())
	return root
}

// console picks where log lines go: stderr, except in terminal mode where
// they would corrupt the screen.
func (st *state) console(cmd *cobra.Command) zapcore.WriteSyncer {
	if st.cfg.Display.Mode == config.ModeTerminal {
		return nil
	}
	return zapcore.Lock(zapcore.AddSync(cmd.ErrOrStderr()))
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
