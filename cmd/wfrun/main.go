package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
	"github.com/wfrun/wfrun/pkg/cli"
	"github.com/wfrun/wfrun/pkg/controller/run"
	"github.com/wfrun/wfrun/pkg/controller/validate"
	"github.com/wfrun/wfrun/pkg/coverage"
	"github.com/wfrun/wfrun/pkg/log"
)

var (
	version = ""
	commit  = "" //nolint:gochecknoglobals
	date    = "" //nolint:gochecknoglobals
)

func main() {
	logE := log.New(version)
	if err := core(logE); err != nil {
		if errors.Is(err, run.ErrJobsFailed) || errors.Is(err, validate.ErrInvalidWorkflow) || errors.Is(err, coverage.ErrBelowThreshold) {
			logerr.WithError(logE, err).Error("wfrun failed")
			os.Exit(1)
		}
		logerr.WithError(logE, err).Fatal("wfrun failed")
	}
}

func core(logE *logrus.Entry) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	runner := &cli.Runner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		LDFlags: &cli.LDFlags{
			Version: version,
			Commit:  commit,
			Date:    date,
		},
		LogE: logE,
	}
	return runner.Run(ctx, os.Args...) //nolint:wrapcheck
}
