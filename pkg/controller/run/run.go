package run

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
	"github.com/wfrun/wfrun/pkg/config"
	"github.com/wfrun/wfrun/pkg/workflow"
)

// ErrJobsFailed is returned when any job instance fails. main maps it to
// exit code 1 without an error log, matching the platform's exit contract.
var ErrJobsFailed = errors.New("jobs failed")

const defaultEvent = "push"

func (c *Controller) Run(ctx context.Context, logE *logrus.Entry) error {
	if err := c.readConfig(); err != nil {
		return err
	}
	workflowFilePaths, err := c.wfFinder.Find(logE, c.param.WorkflowFilePaths, c.cfg, c.param.PWD)
	if err != nil {
		return fmt.Errorf("search workflow files: %w", err)
	}

	failed := false
	for _, workflowFilePath := range workflowFilePaths {
		logE := logE.WithField("workflow_file", workflowFilePath)
		if err := c.runWorkflowFile(ctx, logE, workflowFilePath); err != nil {
			failed = true
			if errors.Is(err, ErrJobsFailed) {
				continue
			}
			logerr.WithError(logE, err).Error("run a workflow")
		}
	}
	if failed {
		return ErrJobsFailed
	}
	return nil
}

func (c *Controller) readConfig() error {
	p, err := c.cfgFinder.Find(c.param.ConfigFilePath)
	if err != nil {
		return fmt.Errorf("find a configuration file: %w", err)
	}
	c.param.ConfigFilePath = p
	cfg := &config.Config{}
	if err := c.cfgReader.Read(cfg, c.param.ConfigFilePath); err != nil {
		return fmt.Errorf("read a configuration file: %w", err)
	}
	c.cfg = cfg
	return nil
}

// event returns the trigger event to simulate: the flag wins, then the
// configuration, then push.
func (c *Controller) event() string {
	if c.param.Event != "" {
		return c.param.Event
	}
	if c.cfg.Event != "" {
		return c.cfg.Event
	}
	return defaultEvent
}

func (c *Controller) runWorkflowFile(ctx context.Context, logE *logrus.Entry, workflowFilePath string) error {
	wf, err := workflow.Read(c.fs, workflowFilePath)
	if err != nil {
		return err
	}
	if err := wf.Validate(); err != nil {
		return fmt.Errorf("validate a workflow: %w", err)
	}
	event := c.event()
	matched, err := wf.On.Match(event, c.param.Branch)
	if err != nil {
		return fmt.Errorf("match the trigger event: %w", err)
	}
	if !matched {
		logE.WithField("event", event).Info("skip a workflow because the event doesn't trigger it")
		return nil
	}
	jobs, err := wf.SortedJobs()
	if err != nil {
		return err
	}

	results := make([]*JobResult, 0, len(jobs))
	done := map[string]Conclusion{}
	failed := false
	for _, job := range jobs {
		result, err := c.runJob(ctx, logE, job, done)
		if err != nil {
			return err
		}
		if result == nil {
			continue
		}
		done[job.Name] = result.Conclusion
		results = append(results, result)
		if result.Conclusion == ConclusionFailure {
			failed = true
		}
	}
	c.logger.Summary(results)
	if failed {
		return ErrJobsFailed
	}
	return nil
}

// selected reports whether the job was requested. An empty selection means
// every job.
func (c *Controller) selected(jobName string) bool {
	if len(c.param.JobNames) == 0 {
		return true
	}
	return slices.Contains(c.param.JobNames, jobName)
}

// skippedByNeeds reports whether a needed job didn't succeed.
func skippedByNeeds(job *workflow.Job, done map[string]Conclusion) bool {
	for _, need := range job.Needs {
		if conclusion, ok := done[need]; !ok || conclusion != ConclusionSuccess {
			return true
		}
	}
	return false
}
