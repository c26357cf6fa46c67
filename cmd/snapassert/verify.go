package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"snapassert/internal/dirtree"
	"snapassert/internal/drift"
	"snapassert/internal/snapshot"
)

func (a *app) verifyCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "verify <snapshot> <dir>",
		Short: "Check a directory against a directory snapshot",
		Long: `Check a directory against a directory snapshot, as a snapshot
assertion would, without creating or refreshing anything.

Exit status is 1 when the snapshot is missing or does not match.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runVerify(args[0], args[1], jsonOutput)
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the file-set report as JSON")
	return cmd
}

func (a *app) runVerify(snapPath, dir string, jsonOutput bool) error {
	c, err := dirtree.NewContent(dir)
	if err != nil {
		return fail("%w", err)
	}

	if jsonOutput {
		return a.verifyJSON(snapPath, c)
	}

	res, err := snapshot.Verify(snapPath, c)
	if err != nil {
		return fail("cannot verify snapshot: %w", err)
	}
	switch {
	case res.Missing:
		return fail("snapshot not found: %s", snapPath)
	case res.Mismatch != nil:
		fmt.Fprintln(a.stdout, res.Mismatch.Error())
		return errMismatch
	}

	a.logger.Debug("directory matches snapshot", "snapshot", snapPath, "dir", c.Root())
	fmt.Fprintln(a.stdout, "Directory matches snapshot")
	return nil
}

// verifyJSON reports the file-set drift only.
func (a *app) verifyJSON(snapPath string, c *dirtree.Content) error {
	stored, err := dirtree.ListFiles(snapPath)
	if err != nil {
		return fail("cannot read snapshot: %w", err)
	}
	entries, err := dirtree.Walk(c.Root())
	if err != nil {
		return fail("cannot read directory: %w", err)
	}
	current := make([]string, len(entries))
	for i, e := range entries {
		current[i] = e.Rel
	}

	report := drift.Detect(stored, current)
	report.Snapshot = snapPath
	out, err := drift.FormatJSON(report)
	if err != nil {
		return fail("cannot serialize report: %w", err)
	}
	fmt.Fprintln(a.stdout, out)
	if report.HasDrift {
		return errMismatch
	}
	return nil
}
