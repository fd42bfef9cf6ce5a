package workflow

import (
	"fmt"

	version "github.com/hashicorp/go-version"
)

// versionAxes are matrix axis names whose values are interpreter or
// toolchain version numbers.
var versionAxes = map[string]struct{}{
	"python":         {},
	"python-version": {},
	"go":             {},
	"go-version":     {},
	"node":           {},
	"node-version":   {},
	"ruby":           {},
	"java":           {},
}

// LintVersionAxes checks version-number matrix axes and returns warnings.
// It flags values that don't parse as versions and values written as
// unquoted YAML floats. The latter silently corrupt versions with trailing
// zeros: an unquoted 3.10 decodes to 3.1.
func (w *Workflow) LintVersionAxes() []string {
	var warnings []string
	for _, job := range w.Jobs {
		for _, axis := range job.Matrix().Axes {
			if _, ok := versionAxes[axis.Name]; !ok {
				continue
			}
			for _, v := range axis.FloatValues() {
				warnings = append(warnings, fmt.Sprintf(
					"job %s: matrix axis %s: value %s is an unquoted number; quote version numbers so 3.10 doesn't decode to 3.1",
					job.Name, axis.Name, v))
			}
			for _, v := range axis.Values {
				if _, err := version.NewVersion(v); err != nil {
					warnings = append(warnings, fmt.Sprintf(
						"job %s: matrix axis %s: value %s doesn't parse as a version number",
						job.Name, axis.Name, v))
				}
			}
		}
	}
	return warnings
}
