package list

import (
	"fmt"
	"text/template"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
	"github.com/wfrun/wfrun/pkg/config"
	"github.com/wfrun/wfrun/pkg/workflow"
)

const defaultLineTemplate = "{{.File}}: {{.ID}}"

// Line is the template context of one output line.
type Line struct {
	File     string
	Workflow string
	Job      string
	ID       string
	RunsOn   string
}

func (c *Controller) List(logE *logrus.Entry) error {
	cfg, err := c.readConfig()
	if err != nil {
		return err
	}
	workflowFilePaths, err := c.wfFinder.Find(logE, c.param.WorkflowFilePaths, cfg, c.param.PWD)
	if err != nil {
		return fmt.Errorf("search workflow files: %w", err)
	}
	tmpl, err := c.parseTemplate()
	if err != nil {
		return err
	}
	for _, workflowFilePath := range workflowFilePaths {
		logE := logE.WithField("workflow_file", workflowFilePath)
		if err := c.listWorkflowFile(workflowFilePath, tmpl); err != nil {
			logerr.WithError(logE, err).Error("list job instances in a workflow")
		}
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

func (c *Controller) parseTemplate() (*template.Template, error) {
	s := c.param.LineTemplate
	if s == "" {
		s = defaultLineTemplate
	}
	tmpl, err := template.New("line").Parse(s)
	if err != nil {
		return nil, fmt.Errorf("parse a line template: %w", err)
	}
	return tmpl, nil
}

func (c *Controller) listWorkflowFile(workflowFilePath string, tmpl *template.Template) error {
	wf, err := workflow.Read(c.fs, workflowFilePath)
	if err != nil {
		return err
	}
	if err := wf.Validate(); err != nil {
		return err
	}
	jobs, err := wf.SortedJobs()
	if err != nil {
		return err
	}
	for _, job := range jobs {
		instances, err := job.Instances()
		if err != nil {
			return err
		}
		for _, inst := range instances {
			line := &Line{
				File:     workflowFilePath,
				Workflow: wf.Name,
				Job:      job.Name,
				ID:       inst.ID,
				RunsOn:   inst.RunsOn,
			}
			if err := tmpl.Execute(c.stdout, line); err != nil {
				return fmt.Errorf("render a line: %w", err)
			}
			fmt.Fprintln(c.stdout)
		}
	}
	return nil
}
