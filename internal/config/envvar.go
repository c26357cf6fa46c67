package config

import "strings"

// PathToEnvVar converts a dotted config key to its environment variable.
// e.g., "snapshot.version" -> "SNAPSHOT_VERSION"
func PathToEnvVar(path string) string {
	if path == "" {
		return ""
	}
	return strings.ToUpper(strings.ReplaceAll(path, ".", "_"))
}

// parseEnviron converts an environ slice (["KEY=VALUE", ...]) into a map.
// Values may contain "="; entries without one are skipped.
func parseEnviron(environ []string) map[string]string {
	result := make(map[string]string)
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		result[key] = value
	}
	return result
}

// parseBool accepts 1, true, yes and on, in any case.
func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
