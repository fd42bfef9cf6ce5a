package workflow_test

import (
	"testing"

	"github.com/wfrun/wfrun/pkg/workflow"
)

func TestTriggers_UnmarshalYAML(t *testing.T) {
	t.Parallel()
	data := []struct {
		name   string
		yaml   string
		events []string
	}{
		{
			name:   "scalar form",
			yaml:   `push`,
			events: []string{"push"},
		},
		{
			name:   "sequence form",
			yaml:   `[push, pull_request]`,
			events: []string{"push", "pull_request"},
		},
		{
			name: "mapping form with empty filters",
			yaml: `
push:
pull_request:
`,
			events: []string{"push", "pull_request"},
		},
		{
			name: "mapping form with branch filters",
			yaml: `
push:
  branches: [main]
`,
			events: []string{"push"},
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			triggers := &workflow.Triggers{}
			if err := triggers.UnmarshalYAML([]byte(d.yaml)); err != nil {
				t.Fatalf("unmarshal triggers: %v", err)
			}
			if len(triggers.Events) != len(d.events) {
				t.Fatalf("wanted %d events, got %d", len(d.events), len(triggers.Events))
			}
			for i, name := range d.events {
				if triggers.Events[i].Name != name {
					t.Errorf("event %d: wanted %q, got %q", i, name, triggers.Events[i].Name)
				}
			}
		})
	}
}

func TestTriggers_Match(t *testing.T) { //nolint:funlen
	t.Parallel()
	data := []struct {
		name     string
		yaml     string
		event    string
		branch   string
		expected bool
	}{
		{
			name:     "push matches",
			yaml:     "[push, pull_request]",
			event:    "push",
			expected: true,
		},
		{
			name:     "pull_request matches",
			yaml:     "[push, pull_request]",
			event:    "pull_request",
			expected: true,
		},
		{
			name:     "unlisted event doesn't match",
			yaml:     "[push, pull_request]",
			event:    "schedule",
			expected: false,
		},
		{
			name:     "branch filter matches",
			yaml:     "push:\n  branches: [main, release-*]\n",
			event:    "push",
			branch:   "release-1",
			expected: true,
		},
		{
			name:     "branch filter rejects",
			yaml:     "push:\n  branches: [main]\n",
			event:    "push",
			branch:   "feature",
			expected: false,
		},
		{
			name:     "empty branch ignores filters",
			yaml:     "push:\n  branches: [main]\n",
			event:    "push",
			expected: true,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			triggers := &workflow.Triggers{}
			if err := triggers.UnmarshalYAML([]byte(d.yaml)); err != nil {
				t.Fatalf("unmarshal triggers: %v", err)
			}
			got, err := triggers.Match(d.event, d.branch)
			if err != nil {
				t.Fatalf("match an event: %v", err)
			}
			if got != d.expected {
				t.Errorf("wanted %v, got %v", d.expected, got)
			}
		})
	}
}
