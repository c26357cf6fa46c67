// Package drift compares the file set recorded in a directory snapshot with
// the file set found on disk.
package drift

import "sort"

// DriftType represents how a file differs between snapshot and directory.
type DriftType string

const (
	DriftAdded   DriftType = "added"   // File in directory but not in snapshot
	DriftRemoved DriftType = "removed" // File in snapshot but not in directory
)

// FileDrift represents a single file's drift.
type FileDrift struct {
	Path string    `json:"path"`
	Type DriftType `json:"type"`
}

// DriftReport contains the full file-set analysis.
type DriftReport struct {
	HasDrift bool        `json:"hasDrift"`
	Snapshot string      `json:"snapshot,omitempty"`
	Stored   int         `json:"stored"`
	Current  int         `json:"current"`
	Changes  []FileDrift `json:"changes"`
}

// Detect compares the relative paths stored in a snapshot with the current ones.
func Detect(stored, current []string) DriftReport {
	report := DriftReport{
		Stored:  len(stored),
		Current: len(current),
		Changes: []FileDrift{},
	}

	inStored := make(map[string]bool, len(stored))
	for _, p := range stored {
		inStored[p] = true
	}
	inCurrent := make(map[string]bool, len(current))
	for _, p := range current {
		inCurrent[p] = true
	}

	// Collect all paths from both sides
	all := make(map[string]bool, len(inStored)+len(inCurrent))
	for p := range inStored {
		all[p] = true
	}
	for p := range inCurrent {
		all[p] = true
	}

	// Sort paths for deterministic output
	paths := make([]string, 0, len(all))
	for p := range all {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		switch {
		case inStored[p] && !inCurrent[p]:
			report.Changes = append(report.Changes, FileDrift{Path: p, Type: DriftRemoved})
		case !inStored[p] && inCurrent[p]:
			report.Changes = append(report.Changes, FileDrift{Path: p, Type: DriftAdded})
		}
	}

	report.HasDrift = len(report.Changes) > 0
	return report
}
