package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
	"github.com/wfrun/wfrun/pkg/config"
	"github.com/wfrun/wfrun/pkg/controller/run"
	"github.com/wfrun/wfrun/pkg/finder"
	"github.com/wfrun/wfrun/pkg/log"
)

func (r *Runner) newRunCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Run workflow jobs locally, one instance per matrix cell",
		Description: `If no argument is passed, wfrun searches workflow files from .github/workflows.

$ wfrun run

You can also pass workflow file paths as arguments.

e.g.

$ wfrun run .github/workflows/ci.yaml
`,
		Action: r.runAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "event",
				Aliases: []string{"e"},
				Usage:   "trigger event to simulate (push, pull_request, ...)",
			},
			&cli.StringFlag{
				Name:    "branch",
				Aliases: []string{"b"},
				Usage:   "branch the event refers to, used by branch filters",
			},
			&cli.StringSliceFlag{
				Name:    "job",
				Aliases: []string{"j"},
				Usage:   "run only the given jobs",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "print the steps without executing them",
			},
			&cli.BoolFlag{
				Name:  "all-os",
				Usage: "run instances whose runs-on doesn't match this host instead of skipping them",
			},
		},
	}
}

func (r *Runner) runAction(ctx context.Context, c *cli.Command) error {
	log.SetLevel(c.String("log-level"), r.LogE)
	pwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get the current directory: %w", err)
	}
	fs := afero.NewOsFs()
	param := &run.ParamRun{
		WorkflowFilePaths: c.Args().Slice(),
		ConfigFilePath:    c.String("config"),
		PWD:               pwd,
		Event:             c.String("event"),
		Branch:            c.String("branch"),
		JobNames:          c.StringSlice("job"),
		DryRun:            c.Bool("dry-run"),
		AllOS:             c.Bool("all-os"),
		Stdout:            r.Stdout,
		Stderr:            r.Stderr,
	}
	ctrl := run.New(run.NewCommandRunner(), fs, config.NewFinder(fs), config.NewReader(fs), finder.New(fs), param)
	return ctrl.Run(ctx, r.LogE) //nolint:wrapcheck
}
