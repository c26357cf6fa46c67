package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"snapassert/internal/snapshot"
)

func (a *app) listCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list [dir]",
		Short: "List snapshot files",
		Long: `List the files stored in __snapshots__ directories below dir
(default: the current directory).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = strings.TrimSuffix(args[0], "/...")
			}
			return a.runList(dir, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, json or yaml")
	return cmd
}

func (a *app) runList(dir, format string) error {
	if format != "text" && format != "json" && format != "yaml" {
		return fmt.Errorf("unknown format %q", format)
	}

	a.logger.Debug("listing snapshots", "dir", dir)
	summaries, err := snapshot.NewStore(dir).List()
	if err != nil {
		return fail("cannot list snapshots: %w", err)
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			return fail("cannot serialize snapshots: %w", err)
		}
		fmt.Fprintln(a.stdout, string(data))
	case "yaml":
		data, err := yaml.Marshal(summaries)
		if err != nil {
			return fail("cannot serialize snapshots: %w", err)
		}
		fmt.Fprint(a.stdout, string(data))
	default:
		if len(summaries) == 0 {
			fmt.Fprintln(a.stdout, "No snapshots found")
			return nil
		}
		for _, s := range summaries {
			dataSet := s.DataSet
			if dataSet == "" {
				dataSet = "-"
			}
			fmt.Fprintf(a.stdout, "%s  %s  %s  %d  %s  %s\n", s.Suite, s.Method, dataSet, s.Index, s.Extension, s.Path)
		}
	}
	return nil
}
