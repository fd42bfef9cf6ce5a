package validate

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
	"github.com/wfrun/wfrun/pkg/config"
	"github.com/wfrun/wfrun/pkg/workflow"
)

// ErrInvalidWorkflow is returned when any workflow file fails validation.
var ErrInvalidWorkflow = errors.New("workflows are invalid")

func (c *Controller) Validate(logE *logrus.Entry) error {
	cfg, err := c.readConfig()
	if err != nil {
		return err
	}
	workflowFilePaths, err := c.wfFinder.Find(logE, c.param.WorkflowFilePaths, cfg, c.param.PWD)
	if err != nil {
		return fmt.Errorf("search workflow files: %w", err)
	}
	failed := false
	for _, workflowFilePath := range workflowFilePaths {
		logE := logE.WithField("workflow_file", workflowFilePath)
		if err := c.validateWorkflowFile(logE, workflowFilePath); err != nil {
			failed = true
			logerr.WithError(logE, err).Error("validate a workflow")
		}
	}
	if failed {
		return ErrInvalidWorkflow
	}
	return nil
}

func (c *Controller) readConfig() (*config.Config, error) {
	p, err := c.cfgFinder.Find(c.param.ConfigFilePath)
	if err != nil {
		return nil, fmt.Errorf("find a configuration file: %w", err)
	}
	cfg := &config.Config{}
	if err := c.cfgReader.Read(cfg, p); err != nil {
		return nil, fmt.Errorf("read a configuration file: %w", err)
	}
	return cfg, nil
}

func (c *Controller) validateWorkflowFile(logE *logrus.Entry, workflowFilePath string) error {
	wf, err := workflow.Read(c.fs, workflowFilePath)
	if err != nil {
		return err
	}
	if err := wf.Validate(); err != nil {
		return err
	}
	for _, warning := range wf.LintVersionAxes() {
		logE.Warn(warning)
	}
	// Expansion catches unknown expression references in steps.
	for _, job := range wf.Jobs {
		if _, err := job.Instances(); err != nil {
			return err
		}
	}
	return nil
}
