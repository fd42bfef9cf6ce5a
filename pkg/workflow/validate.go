package workflow

import (
	"errors"
	"fmt"
)

// Validate checks the structural invariants of the workflow: at least one
// trigger and one job, every job has runs-on and a non-empty step sequence,
// every step is exactly one of uses or run, matrix axes are well formed,
// and needs references resolve.
func (w *Workflow) Validate() error {
	if w.On == nil || len(w.On.Events) == 0 {
		return errors.New("workflow must have at least one trigger event")
	}
	if len(w.Jobs) == 0 {
		return errors.New("workflow must have at least one job")
	}
	for _, job := range w.Jobs {
		if err := w.validateJob(job); err != nil {
			return fmt.Errorf("job %s: %w", job.Name, err)
		}
	}
	// Cycles in the needs graph are caught while sorting.
	if _, err := w.SortedJobs(); err != nil {
		return err
	}
	return nil
}

func (w *Workflow) validateJob(job *Job) error {
	if job.RunsOn == "" {
		return errors.New("runs-on is required")
	}
	if len(job.Steps) == 0 {
		return errors.New("job must have at least one step")
	}
	for i, step := range job.Steps {
		if err := step.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	for _, need := range job.Needs {
		if w.Jobs.Get(need) == nil {
			return fmt.Errorf("needs an unknown job: %s", need)
		}
		if need == job.Name {
			return errors.New("job can't need itself")
		}
	}
	if job.Strategy != nil && job.Strategy.Matrix != nil {
		if err := job.Strategy.Matrix.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Step) validate() error {
	if s.Uses == "" && s.Run == "" {
		return errors.New("step must have either uses or run")
	}
	if s.Uses != "" && s.Run != "" {
		return errors.New("step can't have both uses and run")
	}
	if s.Uses != "" && s.Shell != "" {
		return errors.New("shell is only valid for run steps")
	}
	return nil
}

func (m *Matrix) validate() error {
	seen := map[string]struct{}{}
	for _, axis := range m.Axes {
		if axis.Name == "" {
			return errors.New("matrix axis name must not be empty")
		}
		if _, ok := seen[axis.Name]; ok {
			return fmt.Errorf("duplicate matrix axis: %s", axis.Name)
		}
		seen[axis.Name] = struct{}{}
		if len(axis.Values) == 0 {
			return fmt.Errorf("matrix axis %s must have at least one value", axis.Name)
		}
		values := map[string]struct{}{}
		for _, v := range axis.Values {
			if _, ok := values[v]; ok {
				return fmt.Errorf("duplicate value in the matrix axis %s: %s", axis.Name, v)
			}
			values[v] = struct{}{}
		}
	}
	return nil
}
