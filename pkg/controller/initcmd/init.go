package initcmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	templateWorkflow = `name: Test webresource

on:
  push:
  pull_request:

jobs:
  test:
    runs-on: ${{ matrix.os }}
    strategy:
      fail-fast: false
      matrix:
        os:
          - ubuntu-latest
          - windows-latest
          - macos-latest
        python:
          - "2.7"
          - "3.7"
          - "3.8"
          - "3.9"
          - "3.10"
    steps:
      - uses: actions/checkout@v2
      - name: Set up Python ${{ matrix.python }}
        uses: actions/setup-python@v2
        with:
          python-version: ${{ matrix.python }}
      - name: Install
        run: |
          pip install -e .[test]
      - name: Run tests
        run: |
          python --version
          python -m webresource.tests
          coverage run --source webresource -m webresource.tests
          coverage report -m --fail-under=99
`
	filePermission os.FileMode = 0o644
)

// Init creates a starter workflow file if it doesn't exist.
func (c *Controller) Init(workflowFilePath string) error {
	f, err := afero.Exists(c.fs, workflowFilePath)
	if err != nil {
		return fmt.Errorf("check if a workflow file exists: %w", err)
	}
	if f {
		return nil
	}
	if err := c.fs.MkdirAll(filepath.Dir(workflowFilePath), 0o755); err != nil {
		return fmt.Errorf("create the workflow directory: %w", err)
	}
	if err := afero.WriteFile(c.fs, workflowFilePath, []byte(templateWorkflow), filePermission); err != nil {
		return fmt.Errorf("create a workflow file: %w", err)
	}
	return nil
}
