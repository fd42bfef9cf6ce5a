package list_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/wfrun/wfrun/pkg/config"
	"github.com/wfrun/wfrun/pkg/controller/list"
	"github.com/wfrun/wfrun/pkg/finder"
)

const testWorkflow = `on: push
jobs:
  test:
    runs-on: ${{ matrix.os }}
    strategy:
      matrix:
        os: [ubuntu-latest, macos-latest]
        python: ["3.9", "3.10"]
    steps:
      - run: make test
`

func newLogE() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

func TestController_List(t *testing.T) {
	t.Parallel()
	data := []struct {
		name         string
		lineTemplate string
		wantLines    []string
	}{
		{
			name: "default template",
			wantLines: []string{
				"wf.yaml: test (ubuntu-latest, 3.9)",
				"wf.yaml: test (ubuntu-latest, 3.10)",
				"wf.yaml: test (macos-latest, 3.9)",
				"wf.yaml: test (macos-latest, 3.10)",
			},
		},
		{
			name:         "custom template",
			lineTemplate: "{{.Job}} on {{.RunsOn}}",
			wantLines: []string{
				"test on ubuntu-latest",
				"test on ubuntu-latest",
				"test on macos-latest",
				"test on macos-latest",
			},
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			if err := afero.WriteFile(fs, "wf.yaml", []byte(testWorkflow), 0o644); err != nil {
				t.Fatalf("write a workflow file: %v", err)
			}
			stdout := &bytes.Buffer{}
			ctrl := list.New(fs, stdout, config.NewFinder(fs), config.NewReader(fs), finder.New(fs), &list.Param{
				WorkflowFilePaths: []string{"wf.yaml"},
				LineTemplate:      d.lineTemplate,
			})
			if err := ctrl.List(newLogE()); err != nil {
				t.Fatalf("list job instances: %v", err)
			}
			got := strings.Split(strings.TrimRight(stdout.String(), "\n"), "\n")
			if len(got) != len(d.wantLines) {
				t.Fatalf("wanted %d lines, got %d: %q", len(d.wantLines), len(got), got)
			}
			for i, want := range d.wantLines {
				if got[i] != want {
					t.Errorf("line %d: wanted %q, got %q", i, want, got[i])
				}
			}
		})
	}
}

func TestController_List_emptyAxis(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	wf := `on: push
jobs:
  test:
    runs-on: ubuntu-latest
    strategy:
      matrix:
        python: []
    steps:
      - run: make test
`
	if err := afero.WriteFile(fs, "wf.yaml", []byte(wf), 0o644); err != nil {
		t.Fatalf("write a workflow file: %v", err)
	}
	stdout := &bytes.Buffer{}
	ctrl := list.New(fs, stdout, config.NewFinder(fs), config.NewReader(fs), finder.New(fs), &list.Param{
		WorkflowFilePaths: []string{"wf.yaml"},
	})
	// An axis without values is rejected as invalid instead of expanding.
	if err := ctrl.List(newLogE()); err != nil {
		t.Fatalf("list job instances: %v", err)
	}
	if stdout.String() != "" {
		t.Errorf("an invalid workflow must not produce lines, got %q", stdout.String())
	}
}
