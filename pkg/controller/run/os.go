package run

import (
	"runtime"
	"strings"
)

// runnerLabelPrefixes maps GOOS values to the runner label families the
// platform uses in runs-on.
var runnerLabelPrefixes = map[string]string{
	"linux":   "ubuntu",
	"darwin":  "macos",
	"windows": "windows",
}

// matchesHostOS reports whether a runs-on label can execute on this host.
// Labels like ubuntu-latest, macos-13, windows-2022 match by family.
func matchesHostOS(runsOn string) bool {
	prefix, ok := runnerLabelPrefixes[runtime.GOOS]
	if !ok {
		return false
	}
	return strings.HasPrefix(strings.ToLower(runsOn), prefix)
}
