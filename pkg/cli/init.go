package cli

import (
	"context"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
	"github.com/wfrun/wfrun/pkg/controller/initcmd"
	"github.com/wfrun/wfrun/pkg/log"
)

func (r *Runner) newInitCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create a starter workflow file if it doesn't exist",
		Description: `Create .github/workflows/ci.yaml if it doesn't exist.

$ wfrun init

You can also pass a workflow file path.

e.g.

$ wfrun init .github/workflows/test.yaml
`,
		Action: r.initAction,
	}
}

func (r *Runner) initAction(_ context.Context, c *cli.Command) error {
	log.SetLevel(c.String("log-level"), r.LogE)
	ctrl := initcmd.New(afero.NewOsFs())
	workflowFilePath := c.Args().First()
	if workflowFilePath == "" {
		workflowFilePath = ".github/workflows/ci.yaml"
	}
	return ctrl.Init(workflowFilePath) //nolint:wrapcheck
}
