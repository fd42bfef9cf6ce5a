package initcmd

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestController_Init(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	ctrl := New(fs)
	if err := ctrl.Init(".github/workflows/ci.yaml"); err != nil {
		t.Fatalf("create a workflow file: %v", err)
	}
	b, err := afero.ReadFile(fs, ".github/workflows/ci.yaml")
	if err != nil {
		t.Fatalf("read the created workflow file: %v", err)
	}
	if !strings.Contains(string(b), "fail-fast: false") {
		t.Error("the template must disable fail-fast")
	}

	// A second run must not overwrite the file.
	if err := afero.WriteFile(fs, ".github/workflows/ci.yaml", []byte("custom"), 0o644); err != nil {
		t.Fatalf("write a custom workflow file: %v", err)
	}
	if err := ctrl.Init(".github/workflows/ci.yaml"); err != nil {
		t.Fatalf("init with an existing file: %v", err)
	}
	b, err = afero.ReadFile(fs, ".github/workflows/ci.yaml")
	if err != nil {
		t.Fatalf("read the workflow file: %v", err)
	}
	if string(b) != "custom" {
		t.Error("an existing workflow file must not be overwritten")
	}
}
