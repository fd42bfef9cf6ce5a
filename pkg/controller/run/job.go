package run

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/wfrun/wfrun/pkg/workflow"
	"golang.org/x/sync/errgroup"
)

// errFailFast signals the errgroup to cancel sibling cells. It never
// escapes runJob.
var errFailFast = errors.New("fail fast")

func (c *Controller) runJob(ctx context.Context, logE *logrus.Entry, job *workflow.Job, done map[string]Conclusion) (*JobResult, error) {
	if !c.selected(job.Name) {
		return nil, nil //nolint:nilnil
	}
	ignored, err := c.cfg.Ignored(job.Name)
	if err != nil {
		return nil, err
	}
	logE = logE.WithField("job", job.Name)
	if ignored {
		logE.Debug("skip an ignored job")
		return nil, nil //nolint:nilnil
	}
	result := &JobResult{Name: job.Name}
	if skippedByNeeds(job, done) {
		logE.Info("skip a job because a needed job didn't succeed")
		result.Conclusion = ConclusionSkipped
		return result, nil
	}

	instances, err := job.Instances()
	if err != nil {
		return nil, err
	}
	result.Instances = make([]*InstanceResult, len(instances))

	failFast := job.Strategy.FailFastEnabled()
	eg, egCtx := errgroup.WithContext(ctx)
	if job.Strategy != nil && job.Strategy.MaxParallel > 0 {
		eg.SetLimit(job.Strategy.MaxParallel)
	}
	for i, inst := range instances {
		eg.Go(func() error {
			r := c.runInstance(egCtx, logE, inst)
			result.Instances[i] = r
			if failFast && r.Conclusion == ConclusionFailure {
				// Cancel the remaining cells.
				return errFailFast
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil && !errors.Is(err, errFailFast) {
		return nil, err
	}
	result.conclude()
	return result, nil
}

func (c *Controller) runInstance(ctx context.Context, logE *logrus.Entry, inst *workflow.Instance) *InstanceResult {
	result := &InstanceResult{
		ID:        inst.ID,
		StartedAt: time.Now(),
	}
	defer func() {
		result.CompletedAt = time.Now()
		c.logger.Instance(result)
	}()
	logE = logE.WithField("instance", inst.ID)
	if ctx.Err() != nil {
		result.Conclusion = ConclusionCancelled
		return result
	}
	if !c.param.AllOS && !matchesHostOS(inst.RunsOn) {
		logE.WithField("runs_on", inst.RunsOn).Info("skip an instance because it doesn't run on this host")
		result.Conclusion = ConclusionSkipped
		return result
	}
	for _, step := range inst.Steps {
		stepResult := c.runStep(ctx, logE, inst, step)
		result.Steps = append(result.Steps, stepResult)
		if stepResult.Conclusion == ConclusionFailure {
			// A failing step aborts the remaining steps of the instance.
			result.Conclusion = ConclusionFailure
			return result
		}
		if stepResult.Conclusion == ConclusionCancelled {
			result.Conclusion = ConclusionCancelled
			return result
		}
	}
	result.Conclusion = ConclusionSuccess
	return result
}

func (c *Controller) runStep(ctx context.Context, logE *logrus.Entry, inst *workflow.Instance, step *workflow.Step) *StepResult {
	result := &StepResult{Name: step.Label()}
	if ctx.Err() != nil {
		result.Conclusion = ConclusionCancelled
		return result
	}
	if step.Uses != "" {
		// Reusable actions need the platform. They don't fail the instance.
		logE.WithField("uses", step.Uses).Debug("skip a step that uses an action")
		result.Conclusion = ConclusionSkipped
		return result
	}
	if c.param.DryRun {
		logE.WithField("run", step.Run).Info("dry run a step")
		result.Conclusion = ConclusionSuccess
		return result
	}
	env := stepEnv(inst, step)
	dir := step.WorkingDirectory
	if dir == "" {
		dir = c.param.PWD
	}
	start := time.Now()
	err := c.cmdRunner.Run(ctx, dir, step.Run, env, c.param.Stdout, c.param.Stderr)
	result.Duration = time.Since(start)
	if err != nil {
		if ctx.Err() != nil {
			result.Conclusion = ConclusionCancelled
			return result
		}
		result.Err = err
		result.Conclusion = ConclusionFailure
		return result
	}
	result.Conclusion = ConclusionSuccess
	return result
}

// stepEnv merges the job environment, the step environment, and the matrix
// parameters. Matrix parameters are exported as WFRUN_MATRIX_<NAME>.
func stepEnv(inst *workflow.Instance, step *workflow.Step) map[string]string {
	env := make(map[string]string, len(inst.Env)+len(step.Env)+len(inst.Cell.Keys))
	for k, v := range inst.Env {
		env[k] = v
	}
	for k, v := range step.Env {
		env[k] = v
	}
	for _, k := range inst.Cell.Keys {
		env["WFRUN_MATRIX_"+envKey(k)] = inst.Cell.Values[k]
	}
	return env
}

func envKey(k string) string {
	b := []byte(k)
	for i, c := range b {
		switch {
		case c >= 'a' && c <= 'z':
			b[i] = c - 'a' + 'A'
		case c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		default:
			b[i] = '_'
		}
	}
	return string(b)
}
