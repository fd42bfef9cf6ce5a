package workflow

import (
	"fmt"
)

// Instance is one concrete run of a job for a specific matrix cell.
// Expressions in runs-on and in the steps are already expanded.
type Instance struct {
	Job    *Job
	Cell   *Cell
	ID     string
	RunsOn string
	Env    map[string]string
	Steps  []*Step
}

// Instances expands the job's matrix and builds one instance per cell.
// Each (os, python) pair yields one independent instance; the step
// sequence is identical across instances.
func (j *Job) Instances() ([]*Instance, error) {
	cells := j.Matrix().Expand()
	instances := make([]*Instance, 0, len(cells))
	for _, cell := range cells {
		inst, err := j.instance(cell)
		if err != nil {
			return nil, err
		}
		instances = append(instances, inst)
	}
	return instances, nil
}

func (j *Job) instance(cell *Cell) (*Instance, error) {
	ctx := &ExprContext{
		Matrix: cell.Values,
		Env:    j.Env,
	}
	env, err := expandMap(j.Env, ctx)
	if err != nil {
		return nil, fmt.Errorf("expand env of the job %s: %w", j.Name, err)
	}
	ctx.Env = env
	runsOn, err := ExpandExpr(j.RunsOn, ctx)
	if err != nil {
		return nil, fmt.Errorf("expand runs-on of the job %s: %w", j.Name, err)
	}
	id := j.Name
	if len(cell.Keys) > 0 {
		id = fmt.Sprintf("%s (%s)", j.Name, cell)
	}
	inst := &Instance{
		Job:    j,
		Cell:   cell,
		ID:     id,
		RunsOn: runsOn,
		Env:    env,
		Steps:  make([]*Step, len(j.Steps)),
	}
	for i, step := range j.Steps {
		s, err := step.expand(ctx)
		if err != nil {
			return nil, fmt.Errorf("expand the step %s of the job %s: %w", step.Label(), j.Name, err)
		}
		inst.Steps[i] = s
	}
	return inst, nil
}

// expand returns a copy of the step with expressions replaced.
func (s *Step) expand(ctx *ExprContext) (*Step, error) {
	out := &Step{
		Uses:             s.Uses,
		Shell:            s.Shell,
		WorkingDirectory: s.WorkingDirectory,
	}
	var err error
	if out.Name, err = ExpandExpr(s.Name, ctx); err != nil {
		return nil, err
	}
	if out.Run, err = ExpandExpr(s.Run, ctx); err != nil {
		return nil, err
	}
	if out.With, err = expandMap(s.With, ctx); err != nil {
		return nil, err
	}
	if out.Env, err = expandMap(s.Env, ctx); err != nil {
		return nil, err
	}
	return out, nil
}

func expandMap(m StringMap, ctx *ExprContext) (StringMap, error) {
	if m == nil {
		return nil, nil
	}
	out := make(StringMap, len(m))
	for k, v := range m {
		e, err := ExpandExpr(v, ctx)
		if err != nil {
			return nil, err
		}
		out[k] = e
	}
	return out, nil
}
