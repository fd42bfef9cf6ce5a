// Package run executes workflow jobs locally. It expands each job's matrix
// into independent instances, runs the step sequences through a command
// runner, and applies the fail-fast policy across matrix cells.
package run

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/wfrun/wfrun/pkg/config"
)

type Controller struct {
	cmdRunner CommandRunner
	fs        afero.Fs
	cfg       *config.Config
	cfgFinder ConfigFinder
	cfgReader ConfigReader
	wfFinder  WorkflowFinder
	param     *ParamRun
	logger    *Logger
}

type ParamRun struct {
	WorkflowFilePaths []string
	ConfigFilePath    string
	PWD               string
	Event             string
	Branch            string
	JobNames          []string
	DryRun            bool
	AllOS             bool
	Stdout            io.Writer
	Stderr            io.Writer
}

type ConfigFinder interface {
	Find(configFilePath string) (string, error)
}

type ConfigReader interface {
	Read(cfg *config.Config, configFilePath string) error
}

type WorkflowFinder interface {
	Find(logE *logrus.Entry, paths []string, cfg *config.Config, pwd string) ([]string, error)
}

func New(cmdRunner CommandRunner, fs afero.Fs, cfgFinder ConfigFinder, cfgReader ConfigReader, wfFinder WorkflowFinder, param *ParamRun) *Controller {
	return &Controller{
		cmdRunner: cmdRunner,
		fs:        fs,
		cfg:       &config.Config{},
		cfgFinder: cfgFinder,
		cfgReader: cfgReader,
		wfFinder:  wfFinder,
		param:     param,
		logger:    NewLogger(param.Stdout),
	}
}
