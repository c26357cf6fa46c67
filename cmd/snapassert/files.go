package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"snapassert/internal/dirtree"
)

func (a *app) filesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "files <snapshot>",
		Short: "List the files stored in a directory snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := dirtree.ListFiles(args[0])
			if err != nil {
				return fail("cannot read snapshot: %w", err)
			}
			for _, p := range paths {
				fmt.Fprintln(a.stdout, p)
			}
			return nil
		},
	}
}

func (a *app) extractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <snapshot> <path>",
		Short: "Print one file stored in a directory snapshot",
		Long: `Print the stored content of one file of a directory snapshot.
The path is relative to the snapshotted directory, e.g. /src/main.go.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, rel := args[0], args[1]
			if !strings.HasPrefix(rel, "/") {
				rel = "/" + rel
			}

			paths, err := dirtree.ListFiles(snap)
			if err != nil {
				return fail("cannot read snapshot: %w", err)
			}
			found := false
			for _, p := range paths {
				if p == rel {
					found = true
					break
				}
			}
			if !found {
				return fail("%s is not stored in %s", rel, snap)
			}

			lines, err := dirtree.ExtractFile(snap, rel)
			if err != nil {
				return fail("cannot read snapshot: %w", err)
			}
			fmt.Fprint(a.stdout, strings.Join(lines, "\n"))
			return nil
		},
	}
}
