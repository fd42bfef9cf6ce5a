package gate

import (
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/wfrun/wfrun/pkg/coverage"
)

func (c *Controller) Gate(logE *logrus.Entry) error {
	r, err := c.open()
	if err != nil {
		return err
	}
	defer r.Close()
	rep, err := coverage.Parse(r)
	if err != nil {
		return fmt.Errorf("parse a coverage report: %w", err)
	}
	if err := rep.Gate(c.param.FailUnder); err != nil {
		return err //nolint:wrapcheck
	}
	logE.WithFields(logrus.Fields{
		"total":      strconv.FormatFloat(rep.Total.Percent(), 'f', 2, 64),
		"fail_under": strconv.FormatFloat(c.param.FailUnder, 'f', -1, 64),
	}).Info("coverage is above the threshold")
	return nil
}

func (c *Controller) open() (io.ReadCloser, error) {
	if c.param.ReportFilePath == "" {
		return io.NopCloser(c.stdin), nil
	}
	f, err := c.fs.Open(c.param.ReportFilePath)
	if err != nil {
		return nil, fmt.Errorf("open a coverage report file: %w", err)
	}
	return f, nil
}
