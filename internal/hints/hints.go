// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ConfigDirName is the directory under the user config dir searched for configs.
const ConfigDirName = "go-md2html"

// ForConfigNotFound suggests --config and, when one of the searched paths
// lives in the user config directory, creating the file there.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.toml"

	for _, p := range searchedPaths {
		if strings.Contains(slashed(p), ConfigDirName+"/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound lists the available names, if any.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForCodeStyleNotFound points at a few well-known chroma styles.
func ForCodeStyleNotFound() string {
	return format("try github, monokai, dracula or friendly")
}

// ForUnknownTemplateKey lists the template keys a config may override.
func ForUnknownTemplateKey(keys []string) string {
	return formatHints([]string{
		"valid keys: " + strings.Join(keys, ", "),
		"header keys must be header1 to header6",
	})
}

// ForPortInUse returns hints for a preview server that cannot bind.
func ForPortInUse() string {
	return format("pick another address with --addr, e.g. --addr :8081")
}

// slashed normalizes Windows separators so the directory check is portable.
func slashed(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
