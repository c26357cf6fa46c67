package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"snapassert/internal/config"
)

func (a *app) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config [dir]",
		Short: "Print the effective snapshot configuration",
		Long: `Print the snapshot configuration that tests in dir would use:
the nearest snapassert.yaml, snapassert.yml or snapassert.toml, overridden
by SNAPSHOT_VERSION, SNAPSHOT_REFRESH and SNAPSHOT_DEBUG.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			c := config.Load(dir, a.environ)
			data, err := yaml.Marshal(c)
			if err != nil {
				return fail("cannot serialize config: %w", err)
			}
			fmt.Fprint(a.stdout, string(data))
			return nil
		},
	}
}
