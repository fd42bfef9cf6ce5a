package run

import (
	"runtime"
	"testing"
)

func TestMatchesHostOS(t *testing.T) {
	t.Parallel()
	data := []struct {
		runsOn string
		goos   string
	}{
		{runsOn: "ubuntu-latest", goos: "linux"},
		{runsOn: "ubuntu-22.04", goos: "linux"},
		{runsOn: "macos-latest", goos: "darwin"},
		{runsOn: "macOS-13", goos: "darwin"},
		{runsOn: "windows-latest", goos: "windows"},
		{runsOn: "windows-2022", goos: "windows"},
	}
	for _, d := range data {
		t.Run(d.runsOn, func(t *testing.T) {
			t.Parallel()
			want := runtime.GOOS == d.goos
			if got := matchesHostOS(d.runsOn); got != want {
				t.Errorf("matchesHostOS(%q) = %v, want %v on %s", d.runsOn, got, want, runtime.GOOS)
			}
		})
	}
	if matchesHostOS("self-hosted") {
		t.Error("an unknown label must not match")
	}
}

func TestEnvKey(t *testing.T) {
	t.Parallel()
	data := []struct {
		in   string
		want string
	}{
		{in: "python", want: "PYTHON"},
		{in: "python-version", want: "PYTHON_VERSION"},
		{in: "os", want: "OS"},
		{in: "Go1", want: "GO1"},
	}
	for _, d := range data {
		t.Run(d.in, func(t *testing.T) {
			t.Parallel()
			if got := envKey(d.in); got != d.want {
				t.Errorf("envKey(%q) = %q, want %q", d.in, got, d.want)
			}
		})
	}
}
