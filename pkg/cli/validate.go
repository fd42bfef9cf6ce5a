package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
	"github.com/wfrun/wfrun/pkg/config"
	"github.com/wfrun/wfrun/pkg/controller/validate"
	"github.com/wfrun/wfrun/pkg/finder"
	"github.com/wfrun/wfrun/pkg/log"
)

func (r *Runner) newValidateCommand() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Validate workflow files and warn about version-number matrix axes",
		Description: `Validate workflow files.

$ wfrun validate

You can also pass workflow file paths as arguments.

e.g.

$ wfrun validate .github/workflows/ci.yaml
`,
		Action: r.validateAction,
	}
}

func (r *Runner) validateAction(_ context.Context, c *cli.Command) error {
	log.SetLevel(c.String("log-level"), r.LogE)
	pwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get the current directory: %w", err)
	}
	fs := afero.NewOsFs()
	ctrl := validate.New(fs, config.NewFinder(fs), config.NewReader(fs), finder.New(fs), &validate.Param{
		WorkflowFilePaths: c.Args().Slice(),
		ConfigFilePath:    c.String("config"),
		PWD:               pwd,
	})
	return ctrl.Validate(r.LogE) //nolint:wrapcheck
}
