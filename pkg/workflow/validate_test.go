package workflow_test

import (
	"strings"
	"testing"

	"github.com/wfrun/wfrun/pkg/workflow"
)

func TestWorkflow_Validate(t *testing.T) { //nolint:funlen
	t.Parallel()
	data := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "valid",
			yaml: `
on: push
jobs:
  test:
    runs-on: ubuntu-latest
    steps:
      - run: make test
`,
		},
		{
			name: "no trigger",
			yaml: `
jobs:
  test:
    runs-on: ubuntu-latest
    steps:
      - run: make test
`,
			wantErr: "trigger",
		},
		{
			name:    "no jobs",
			yaml:    `on: push`,
			wantErr: "at least one job",
		},
		{
			name: "no runs-on",
			yaml: `
on: push
jobs:
  test:
    steps:
      - run: make test
`,
			wantErr: "runs-on",
		},
		{
			name: "no steps",
			yaml: `
on: push
jobs:
  test:
    runs-on: ubuntu-latest
`,
			wantErr: "at least one step",
		},
		{
			name: "step with both uses and run",
			yaml: `
on: push
jobs:
  test:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v2
        run: make test
`,
			wantErr: "both uses and run",
		},
		{
			name: "step with neither uses nor run",
			yaml: `
on: push
jobs:
  test:
    runs-on: ubuntu-latest
    steps:
      - name: empty
`,
			wantErr: "either uses or run",
		},
		{
			name: "unknown needs",
			yaml: `
on: push
jobs:
  test:
    runs-on: ubuntu-latest
    needs: build
    steps:
      - run: make test
`,
			wantErr: "unknown job",
		},
		{
			name: "needs cycle",
			yaml: `
on: push
jobs:
  a:
    runs-on: ubuntu-latest
    needs: b
    steps:
      - run: "true"
  b:
    runs-on: ubuntu-latest
    needs: a
    steps:
      - run: "true"
`,
			wantErr: "cycle",
		},
		{
			name: "empty matrix axis",
			yaml: `
on: push
jobs:
  test:
    runs-on: ubuntu-latest
    strategy:
      matrix:
        os: []
    steps:
      - run: make test
`,
			wantErr: "at least one value",
		},
		{
			name: "duplicate matrix value",
			yaml: `
on: push
jobs:
  test:
    runs-on: ubuntu-latest
    strategy:
      matrix:
        os: [linux, linux]
    steps:
      - run: make test
`,
			wantErr: "duplicate value",
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			wf, err := workflow.Parse([]byte(d.yaml))
			if err != nil {
				t.Fatalf("parse a workflow: %v", err)
			}
			err = wf.Validate()
			if d.wantErr == "" {
				if err != nil {
					t.Fatalf("the workflow must be valid: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("wanted an error")
			}
			if !strings.Contains(err.Error(), d.wantErr) {
				t.Errorf("wanted an error containing %q, got %q", d.wantErr, err.Error())
			}
		})
	}
}
