package drift

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FormatCLI formats a drift report for terminal output and failure messages.
func FormatCLI(report DriftReport) string {
	if !report.HasDrift {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "snapshot has %d file(s), directory has %d file(s):\n", report.Stored, report.Current)

	for _, change := range report.Changes {
		switch change.Type {
		case DriftAdded:
			fmt.Fprintf(&sb, "  + %s (not in snapshot)\n", change.Path)
		case DriftRemoved:
			fmt.Fprintf(&sb, "  - %s (missing from directory)\n", change.Path)
		}
	}
	return sb.String()
}

// FormatJSON formats a drift report as JSON.
func FormatJSON(report DriftReport) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
