package run

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

type colorFunc func(a ...interface{}) string

type Logger struct {
	mu     sync.Mutex
	stdout io.Writer
	red    colorFunc
	green  colorFunc
	yellow colorFunc
}

func NewLogger(stdout io.Writer) *Logger {
	return &Logger{
		stdout: stdout,
		red:    color.New(color.FgRed).SprintFunc(),
		green:  color.New(color.FgGreen).SprintFunc(),
		yellow: color.New(color.FgYellow).SprintFunc(),
	}
}

func (l *Logger) mark(conclusion Conclusion) string {
	switch conclusion {
	case ConclusionSuccess:
		return l.green("✓")
	case ConclusionFailure:
		return l.red("✗")
	case ConclusionCancelled:
		return l.red("-")
	case ConclusionSkipped:
		return l.yellow("~")
	}
	return "?"
}

// Instance prints one line per finished job instance. Instances finish
// concurrently, so the lines are serialized.
func (l *Logger) Instance(r *InstanceResult) {
	if l.stdout == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.stdout, "%s %s (%s)\n", l.mark(r.Conclusion), r.ID, r.Conclusion)
	for _, step := range r.Steps {
		if step.Conclusion != ConclusionFailure {
			continue
		}
		fmt.Fprintf(l.stdout, "  %s %s: %v\n", l.mark(step.Conclusion), step.Name, step.Err)
	}
}

// Summary prints the per-job conclusions after all instances finished.
func (l *Logger) Summary(results []*JobResult) {
	if l.stdout == nil || len(results) == 0 {
		return
	}
	fmt.Fprintln(l.stdout)
	for _, job := range results {
		succeeded := 0
		for _, inst := range job.Instances {
			if inst.Conclusion == ConclusionSuccess {
				succeeded++
			}
		}
		fmt.Fprintf(l.stdout, "%s %s: %s (%d/%d instances succeeded)\n",
			l.mark(job.Conclusion), job.Name, job.Conclusion, succeeded, len(job.Instances))
	}
}
