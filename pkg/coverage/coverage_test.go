package coverage_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/wfrun/wfrun/pkg/coverage"
)

const sampleReport = `Name                        Stmts   Miss  Cover   Missing
---------------------------------------------------------
webresource/__init__.py         2      0   100%
webresource/_api.py           310      2    99%   45, 102
webresource/compiler.py        61      1    98%   77
webresource/markup.py          12      0   100%
---------------------------------------------------------
TOTAL                         385      3    99%
`

func TestParse(t *testing.T) {
	t.Parallel()
	rep, err := coverage.Parse(strings.NewReader(sampleReport))
	if err != nil {
		t.Fatalf("parse a report: %v", err)
	}
	if len(rep.Files) != 4 {
		t.Fatalf("wanted 4 files, got %d", len(rep.Files))
	}
	f := rep.Files[1]
	if f.Name != "webresource/_api.py" {
		t.Errorf("unexpected file name: %q", f.Name)
	}
	if f.Statements != 310 || f.Missed != 2 {
		t.Errorf("unexpected counts: %d statements, %d missed", f.Statements, f.Missed)
	}
	if f.Missing != "45, 102" {
		t.Errorf("unexpected missing lines: %q", f.Missing)
	}
	if rep.Total == nil {
		t.Fatal("TOTAL row must be parsed")
	}
	if rep.Total.Statements != 385 || rep.Total.Missed != 3 {
		t.Errorf("unexpected total counts: %d statements, %d missed", rep.Total.Statements, rep.Total.Missed)
	}
}

func TestParse_noTotal(t *testing.T) {
	t.Parallel()
	_, err := coverage.Parse(strings.NewReader("Name  Stmts  Miss  Cover\n"))
	if err == nil {
		t.Fatal("a report without a TOTAL row must be an error")
	}
}

func TestReport_Gate(t *testing.T) {
	t.Parallel()
	data := []struct {
		name       string
		statements int
		missed     int
		failUnder  float64
		wantErr    bool
	}{
		{
			name:       "exactly at the threshold passes",
			statements: 100,
			missed:     1,
			failUnder:  99,
			wantErr:    false,
		},
		{
			name:       "just below the threshold fails",
			statements: 10000,
			missed:     101, // 98.99%
			failUnder:  99,
			wantErr:    true,
		},
		{
			name:       "full coverage passes",
			statements: 385,
			missed:     0,
			failUnder:  99,
			wantErr:    false,
		},
		{
			name:       "above the threshold passes",
			statements: 10000,
			missed:     99, // 99.01%
			failUnder:  99,
			wantErr:    false,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			rep := &coverage.Report{
				Total: &coverage.FileCoverage{
					Name:       "TOTAL",
					Statements: d.statements,
					Missed:     d.missed,
				},
			}
			err := rep.Gate(d.failUnder)
			if d.wantErr {
				if !errors.Is(err, coverage.ErrBelowThreshold) {
					t.Fatalf("wanted ErrBelowThreshold, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("the gate must pass: %v", err)
			}
		})
	}
}
