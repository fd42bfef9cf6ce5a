package validate_test

import (
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/wfrun/wfrun/pkg/config"
	"github.com/wfrun/wfrun/pkg/controller/validate"
	"github.com/wfrun/wfrun/pkg/finder"
)

func newLogE() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

func TestController_Validate(t *testing.T) {
	t.Parallel()
	data := []struct {
		name     string
		workflow string
		wantErr  bool
	}{
		{
			name: "valid workflow",
			workflow: `on: [push, pull_request]
jobs:
  test:
    runs-on: ${{ matrix.os }}
    strategy:
      fail-fast: false
      matrix:
        os: [ubuntu-latest]
        python: ["3.10"]
    steps:
      - uses: actions/checkout@v2
      - run: make test
`,
			wantErr: false,
		},
		{
			name: "missing steps",
			workflow: `on: push
jobs:
  test:
    runs-on: ubuntu-latest
`,
			wantErr: true,
		},
		{
			name: "unknown expression reference",
			workflow: `on: push
jobs:
  test:
    runs-on: ubuntu-latest
    steps:
      - run: echo ${{ matrix.python }}
`,
			wantErr: true,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			if err := afero.WriteFile(fs, "wf.yaml", []byte(d.workflow), 0o644); err != nil {
				t.Fatalf("write a workflow file: %v", err)
			}
			ctrl := validate.New(fs, config.NewFinder(fs), config.NewReader(fs), finder.New(fs), &validate.Param{
				WorkflowFilePaths: []string{"wf.yaml"},
			})
			err := ctrl.Validate(newLogE())
			if d.wantErr {
				if !errors.Is(err, validate.ErrInvalidWorkflow) {
					t.Fatalf("wanted ErrInvalidWorkflow, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("the workflow must be valid: %v", err)
			}
		})
	}
}
