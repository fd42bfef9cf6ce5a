package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
	"github.com/wfrun/wfrun/pkg/config"
	"github.com/wfrun/wfrun/pkg/controller/list"
	"github.com/wfrun/wfrun/pkg/finder"
	"github.com/wfrun/wfrun/pkg/log"
)

func (r *Runner) newListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List the job instances workflows expand to",
		Description: `List job instances, one line per matrix cell.

$ wfrun list
.github/workflows/ci.yaml: test (ubuntu-latest, 2.7)
...

The output format can be customized with a Go template.

e.g.

$ wfrun list -template '{{.Job}} on {{.RunsOn}}'
`,
		Action: r.listAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "template",
				Aliases: []string{"t"},
				Usage:   "Go template of each output line",
			},
		},
	}
}

func (r *Runner) listAction(_ context.Context, c *cli.Command) error {
	log.SetLevel(c.String("log-level"), r.LogE)
	pwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get the current directory: %w", err)
	}
	fs := afero.NewOsFs()
	ctrl := list.New(fs, r.Stdout, config.NewFinder(fs), config.NewReader(fs), finder.New(fs), &list.Param{
		WorkflowFilePaths: c.Args().Slice(),
		ConfigFilePath:    c.String("config"),
		PWD:               pwd,
		LineTemplate:      c.String("template"),
	})
	return ctrl.List(r.LogE) //nolint:wrapcheck
}
