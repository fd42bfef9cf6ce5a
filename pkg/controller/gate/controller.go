// Package gate applies the coverage threshold to a coverage.py report.
package gate

import (
	"io"

	"github.com/spf13/afero"
)

type Controller struct {
	fs    afero.Fs
	stdin io.Reader
	param *Param
}

type Param struct {
	ReportFilePath string
	FailUnder      float64
}

func New(fs afero.Fs, stdin io.Reader, param *Param) *Controller {
	return &Controller{
		fs:    fs,
		stdin: stdin,
		param: param,
	}
}
