// Package coverage parses coverage.py text reports and applies a
// fail-under gate to the measured total.
package coverage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

// ErrBelowThreshold is returned by Gate when the measured total coverage
// is below the threshold. The CLI maps it to a non-zero exit code.
var ErrBelowThreshold = errors.New("coverage is below the threshold")

// rowPattern matches a report row: name, statements, misses, percent, and
// an optional missing-lines column produced by `coverage report -m`.
var rowPattern = regexp.MustCompile(`^(\S+)\s+(\d+)\s+(\d+)\s+([0-9.]+)%(?:\s+(\S.*))?$`)

type Report struct {
	Files []*FileCoverage
	Total *FileCoverage
}

type FileCoverage struct {
	Name       string
	Statements int
	Missed     int
	Missing    string
}

// Percent returns the covered share of statements. It is computed from the
// statement counts rather than read from the report, because the printed
// column is rounded and the gate boundary must be exact.
func (f *FileCoverage) Percent() float64 {
	if f.Statements == 0 {
		return 100
	}
	return 100 * float64(f.Statements-f.Missed) / float64(f.Statements)
}

// Parse reads a coverage.py `coverage report` (optionally with -m) and
// returns the per-file rows and the TOTAL row.
func Parse(r io.Reader) (*Report, error) {
	rep := &Report{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		matches := rowPattern.FindStringSubmatch(line)
		if matches == nil {
			continue
		}
		fc, err := parseRow(matches)
		if err != nil {
			return nil, fmt.Errorf("parse a report row: %w", logerr.WithFields(err, logrus.Fields{
				"line": line,
			}))
		}
		if fc.Name == "TOTAL" {
			rep.Total = fc
			continue
		}
		rep.Files = append(rep.Files, fc)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan a coverage report: %w", err)
	}
	if rep.Total == nil {
		return nil, errors.New("coverage report has no TOTAL row")
	}
	return rep, nil
}

func parseRow(matches []string) (*FileCoverage, error) {
	stmts, err := strconv.Atoi(matches[2])
	if err != nil {
		return nil, fmt.Errorf("parse the statement count: %w", err)
	}
	missed, err := strconv.Atoi(matches[3])
	if err != nil {
		return nil, fmt.Errorf("parse the miss count: %w", err)
	}
	if missed > stmts {
		return nil, errors.New("miss count exceeds statement count")
	}
	return &FileCoverage{
		Name:       matches[1],
		Statements: stmts,
		Missed:     missed,
		Missing:    strings.TrimSpace(matches[5]),
	}, nil
}

// Gate fails iff total coverage is strictly below failUnder. A total of
// exactly the threshold passes.
func (r *Report) Gate(failUnder float64) error {
	total := r.Total.Percent()
	if total >= failUnder {
		return nil
	}
	return logerr.WithFields(ErrBelowThreshold, logrus.Fields{
		"total":      strconv.FormatFloat(total, 'f', 2, 64),
		"fail_under": strconv.FormatFloat(failUnder, 'f', -1, 64),
	})
}
