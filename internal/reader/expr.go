package reader

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"rhisto/internal/errors"
)

// columnRef matches a ?N column reference inside an expression.
var columnRef = regexp.MustCompile(`\?([0-9]+)`)

// ExprEvaluator computes one sample per row from an arithmetic expression
// over ?N column references, e.g. "?3 / ?1". The expression is compiled once
// and evaluated against the referenced columns of each row.
type ExprEvaluator struct {
	program *vm.Program
	columns []int
	delim   string
}

// NewExprEvaluator compiles an expression with 1-based ?N column references.
func NewExprEvaluator(expression, delim string) (*ExprEvaluator, error) {
	if delim == "" {
		return nil, errors.ConfigInvalid("delimiter must not be empty")
	}

	matches := columnRef.FindAllStringSubmatch(expression, -1)
	if len(matches) == 0 {
		return nil, errors.InvalidExpr(fmt.Sprintf("expression %q has no ?N column references", expression))
	}

	seen := make(map[int]bool)
	var columns []int
	for _, m := range matches {
		col, err := strconv.Atoi(m[1])
		if err != nil || col < 1 {
			return nil, errors.InvalidExpr(fmt.Sprintf("invalid column reference ?%s in %q", m[1], expression))
		}
		if !seen[col] {
			seen[col] = true
			columns = append(columns, col)
		}
	}

	// ?N is not a valid identifier, rewrite to cN before compiling
	rewritten := columnRef.ReplaceAllString(expression, "c$1")
	// identifiers are only known per row, so let the checker defer to the
	// runtime env
	program, err := expr.Compile(rewritten,
		expr.Env(map[string]interface{}{}), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, errors.InvalidExpr(fmt.Sprintf("failed to compile expression %q: %v", expression, err))
	}

	return &ExprEvaluator{program: program, columns: columns, delim: delim}, nil
}

// Columns returns the distinct referenced column indices in order of first use.
func (e *ExprEvaluator) Columns() []int {
	return e.columns
}

// EvalRow evaluates the expression against the referenced columns of row.
func (e *ExprEvaluator) EvalRow(row string, line int) (float64, error) {
	env := make(map[string]interface{}, len(e.columns))
	for _, col := range e.columns {
		v, err := parseCell(row, col, e.delim, line)
		if err != nil {
			return 0, err
		}
		env[fmt.Sprintf("c%d", col)] = v
	}

	out, err := expr.Run(e.program, env)
	if err != nil {
		return 0, errors.InvalidExpr(fmt.Sprintf("failed to evaluate expression on row %d: %v", line, err))
	}

	var result float64
	switch n := out.(type) {
	case float64:
		result = n
	case int:
		result = float64(n)
	default:
		return 0, errors.InvalidExpr(fmt.Sprintf("expression produced non-numeric %T on row %d", out, line))
	}
	// e.g. 0/0 evaluates cleanly to NaN
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, errors.InvalidExpr(fmt.Sprintf("expression produced non-finite value on row %d", line))
	}
	return result, nil
}
