// Package workflow models CI workflow definitions: trigger events, jobs,
// build matrices, and step sequences. It parses workflow YAML while keeping
// the declaration order of jobs and matrix axes, which the rest of the tool
// relies on when expanding matrices and reporting results.
package workflow

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
)

type Workflow struct {
	Name string    `yaml:"name"`
	On   *Triggers `yaml:"on"`
	Jobs Jobs      `yaml:"jobs"`
}

// Jobs keeps jobs in declaration order. The YAML source is a mapping, so the
// order must be recovered from the raw document rather than a Go map.
type Jobs []*Job

func (jobs *Jobs) UnmarshalYAML(b []byte) error {
	// Decode twice: the map carries the job bodies, the MapSlice carries
	// the declaration order the map loses.
	byName := map[string]*Job{}
	if err := yaml.Unmarshal(b, &byName); err != nil {
		return fmt.Errorf("unmarshal jobs as a mapping: %w", err)
	}
	ms := yaml.MapSlice{}
	if err := yaml.Unmarshal(b, &ms); err != nil {
		return fmt.Errorf("unmarshal jobs as a mapping: %w", err)
	}
	list := make(Jobs, 0, len(ms))
	for _, item := range ms {
		name, ok := item.Key.(string)
		if !ok {
			return fmt.Errorf("job name must be a string: %v", item.Key)
		}
		job := byName[name]
		if job == nil {
			job = &Job{}
		}
		job.Name = name
		list = append(list, job)
	}
	*jobs = list
	return nil
}

func (jobs Jobs) Get(name string) *Job {
	for _, job := range jobs {
		if job.Name == name {
			return job
		}
	}
	return nil
}

type Job struct {
	Name     string    `yaml:"-"`
	RunsOn   string    `yaml:"runs-on"`
	Needs    Needs     `yaml:"needs"`
	Strategy *Strategy `yaml:"strategy"`
	Env      StringMap `yaml:"env"`
	Steps    []*Step   `yaml:"steps"`
}

// Matrix returns the job's matrix, which may be empty.
func (j *Job) Matrix() *Matrix {
	if j.Strategy == nil || j.Strategy.Matrix == nil {
		return &Matrix{}
	}
	return j.Strategy.Matrix
}

type Strategy struct {
	Matrix      *Matrix `yaml:"matrix"`
	FailFast    *bool   `yaml:"fail-fast"`
	MaxParallel int     `yaml:"max-parallel"`
}

// FailFastEnabled reports whether a cell failure cancels sibling cells.
// The platform default is true; the field must be set to false explicitly.
func (s *Strategy) FailFastEnabled() bool {
	if s == nil || s.FailFast == nil {
		return true
	}
	return *s.FailFast
}

// Needs accepts both the scalar and the sequence form of the needs field.
type Needs []string

func (n *Needs) UnmarshalYAML(b []byte) error {
	var s string
	if err := yaml.Unmarshal(b, &s); err == nil {
		*n = Needs{s}
		return nil
	}
	var list []string
	if err := yaml.Unmarshal(b, &list); err != nil {
		return fmt.Errorf("needs must be a string or a list of strings: %w", err)
	}
	*n = Needs(list)
	return nil
}

type Step struct {
	Name             string    `yaml:"name"`
	Uses             string    `yaml:"uses"`
	Run              string    `yaml:"run"`
	With             StringMap `yaml:"with"`
	Env              StringMap `yaml:"env"`
	Shell            string    `yaml:"shell"`
	WorkingDirectory string    `yaml:"working-directory"`
}

// Label returns the step's display name, falling back to the action
// reference or the first line of the script.
func (s *Step) Label() string {
	if s.Name != "" {
		return s.Name
	}
	if s.Uses != "" {
		return s.Uses
	}
	for i, r := range s.Run {
		if r == '\n' {
			return s.Run[:i]
		}
	}
	return s.Run
}

// StringMap decodes a YAML mapping whose values may be scalars of any type.
// Values are normalized to their source rendering, so `timeout: 30` becomes
// the string "30".
type StringMap map[string]string

func (m *StringMap) UnmarshalYAML(b []byte) error {
	ms := yaml.MapSlice{}
	if err := yaml.Unmarshal(b, &ms); err != nil {
		return fmt.Errorf("unmarshal as a mapping: %w", err)
	}
	values := make(map[string]string, len(ms))
	for _, item := range ms {
		key, ok := item.Key.(string)
		if !ok {
			return fmt.Errorf("key must be a string: %v", item.Key)
		}
		values[key] = formatScalar(item.Value)
	}
	*m = values
	return nil
}

// formatScalar renders a decoded YAML scalar the way it would be written.
// Floats use the shortest representation, so the unquoted version number
// 3.10 comes back as "3.1". See LintVersionAxes.
func formatScalar(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case uint64:
		return strconv.FormatUint(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Parse decodes a workflow definition.
func Parse(b []byte) (*Workflow, error) {
	wf := &Workflow{}
	if err := yaml.Unmarshal(b, wf); err != nil {
		return nil, fmt.Errorf("unmarshal a workflow file as YAML: %w", err)
	}
	return wf, nil
}

// Read parses the workflow file at p.
func Read(fs afero.Fs, p string) (*Workflow, error) {
	b, err := afero.ReadFile(fs, p)
	if err != nil {
		return nil, fmt.Errorf("read a workflow file: %w", err)
	}
	return Parse(b)
}
