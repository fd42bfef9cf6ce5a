package run

import (
	"context"
	"io"
	"os"
	"os/exec"
	"runtime"
)

// CommandRunner runs a step's script. Tests inject a fake implementation.
type CommandRunner interface {
	Run(ctx context.Context, dir, script string, env map[string]string, stdout, stderr io.Writer) error
}

type execRunner struct{}

// NewCommandRunner returns a CommandRunner backed by the host shell.
func NewCommandRunner() CommandRunner {
	return &execRunner{}
}

func (r *execRunner) Run(ctx context.Context, dir, script string, env map[string]string, stdout, stderr io.Writer) error {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.CommandContext(ctx, "cmd", "/C", script)
	} else {
		cmd = exec.CommandContext(ctx, "sh", "-c", script)
	}
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Env = os.Environ()
	for k, v := range env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}
	return cmd.Run() //nolint:wrapcheck
}
