package workflow

import (
	"fmt"
	"regexp"
	"strings"
)

var exprPattern = regexp.MustCompile(`\$\{\{\s*([^}]*?)\s*\}\}`)

// ExprContext holds the values expressions may reference.
type ExprContext struct {
	Matrix map[string]string
	Env    map[string]string
}

// ExpandExpr replaces ${{ matrix.* }} and ${{ env.* }} references in s.
// An unknown context or key is an error so that typos fail the expansion
// instead of silently producing empty strings.
func ExpandExpr(s string, ctx *ExprContext) (string, error) {
	var expandErr error
	expanded := exprPattern.ReplaceAllStringFunc(s, func(match string) string {
		if expandErr != nil {
			return match
		}
		ref := strings.TrimSpace(exprPattern.FindStringSubmatch(match)[1])
		v, err := ctx.lookup(ref)
		if err != nil {
			expandErr = err
			return match
		}
		return v
	})
	if expandErr != nil {
		return "", expandErr
	}
	return expanded, nil
}

func (ctx *ExprContext) lookup(ref string) (string, error) {
	scope, key, ok := strings.Cut(ref, ".")
	if !ok {
		return "", fmt.Errorf("unsupported expression: %s", ref)
	}
	switch scope {
	case "matrix":
		v, ok := ctx.Matrix[key]
		if !ok {
			return "", fmt.Errorf("unknown matrix parameter: %s", key)
		}
		return v, nil
	case "env":
		v, ok := ctx.Env[key]
		if !ok {
			return "", fmt.Errorf("unknown environment variable: %s", key)
		}
		return v, nil
	default:
		return "", fmt.Errorf("unsupported expression context: %s", scope)
	}
}
