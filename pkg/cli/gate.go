package cli

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
	"github.com/wfrun/wfrun/pkg/config"
	"github.com/wfrun/wfrun/pkg/controller/gate"
	"github.com/wfrun/wfrun/pkg/log"
)

const defaultFailUnder = 99

func (r *Runner) newGateCommand() *cli.Command {
	return &cli.Command{
		Name:  "gate",
		Usage: "Fail if the total of a coverage report is below a threshold",
		Description: `Apply a coverage gate to a coverage.py report.

$ coverage report -m | wfrun gate --fail-under 99

You can also pass a report file path.

e.g.

$ wfrun gate --fail-under 99 coverage.txt
`,
		Action: r.gateAction,
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:  "fail-under",
				Usage: "fail if total coverage is below this percentage",
				Value: defaultFailUnder,
			},
		},
	}
}

func (r *Runner) gateAction(_ context.Context, c *cli.Command) error {
	log.SetLevel(c.String("log-level"), r.LogE)
	fs := afero.NewOsFs()
	failUnder, err := r.failUnder(c, fs)
	if err != nil {
		return err
	}
	ctrl := gate.New(fs, r.Stdin, &gate.Param{
		ReportFilePath: c.Args().First(),
		FailUnder:      failUnder,
	})
	return ctrl.Gate(r.LogE) //nolint:wrapcheck
}

// failUnder resolves the threshold: the flag wins, then the configuration,
// then 99.
func (r *Runner) failUnder(c *cli.Command, fs afero.Fs) (float64, error) {
	if c.IsSet("fail-under") {
		return c.Float("fail-under"), nil
	}
	p, err := config.NewFinder(fs).Find(c.String("config"))
	if err != nil {
		return 0, fmt.Errorf("find a configuration file: %w", err)
	}
	cfg := &config.Config{}
	if err := config.NewReader(fs).Read(cfg, p); err != nil {
		return 0, fmt.Errorf("read a configuration file: %w", err)
	}
	if cfg.FailUnder > 0 {
		return cfg.FailUnder, nil
	}
	return defaultFailUnder, nil
}
