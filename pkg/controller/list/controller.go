// Package list prints the job instances a workflow expands to, one line
// per matrix cell.
package list

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/wfrun/wfrun/pkg/config"
)

type Controller struct {
	fs        afero.Fs
	stdout    io.Writer
	cfgFinder ConfigFinder
	cfgReader ConfigReader
	wfFinder  WorkflowFinder
	param     *Param
}

type Param struct {
	WorkflowFilePaths []string
	ConfigFilePath    string
	PWD               string
	LineTemplate      string
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

func New(fs afero.Fs, stdout io.Writer, cfgFinder ConfigFinder, cfgReader ConfigReader, wfFinder WorkflowFinder, param *Param) *Controller {
	return &Controller{
		fs:        fs,
		stdout:    stdout,
		cfgFinder: cfgFinder,
		cfgReader: cfgReader,
		wfFinder:  wfFinder,
		param:     param,
	}
}
