// Package validate checks workflow files against the structural invariants
// of the workflow model and reports lint warnings.
package validate

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/wfrun/wfrun/pkg/config"
)

type Controller struct {
	fs        afero.Fs
	cfgFinder ConfigFinder
	cfgReader ConfigReader
	wfFinder  WorkflowFinder
	param     *Param
}

type Param struct {
	WorkflowFilePaths []string
	ConfigFilePath    string
	PWD               string
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

func New(fs afero.Fs, cfgFinder ConfigFinder, cfgReader ConfigReader, wfFinder WorkflowFinder, param *Param) *Controller {
	return &Controller{
		fs:        fs,
		cfgFinder: cfgFinder,
		cfgReader: cfgReader,
		wfFinder:  wfFinder,
		param:     param,
	}
}
