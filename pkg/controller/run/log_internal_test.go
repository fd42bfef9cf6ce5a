package run

import (
	"bytes"
	"strings"
	"sync"
	"testing"
)

func TestLogger_Instance_concurrent(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	logger := NewLogger(buf)
	wg := sync.WaitGroup{}
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Instance(&InstanceResult{
				ID:         "test (ubuntu-latest, 3.9)",
				Conclusion: ConclusionSuccess,
			})
		}()
	}
	wg.Wait()
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 50 {
		t.Fatalf("wanted 50 result lines, got %d", len(lines))
	}
	// Result lines from concurrent instances must not interleave.
	for i, line := range lines {
		if !strings.Contains(line, "test (ubuntu-latest, 3.9) (success)") {
			t.Errorf("line %d is garbled: %q", i, line)
		}
	}
}
