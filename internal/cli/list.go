package cli

import (
	"fmt"

	"gallery/app"
	"gallery/internal/buildinfo"

	"github.com/spf13/cobra"
)

func newListCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the gallery's routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			links, err := app.Links(st.cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, l := range links {
				fmt.Fprintf(out, "%-14s %-3s %s\n", l.Route, l.Key, l.Title)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
			return nil
		},
	}
}
