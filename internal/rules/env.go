package rules

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/cel-go/cel"
)

// Registry manages the CEL environment for achievement conditions and
// compiles condition expressions into reusable programs.
type Registry struct {
	env *cel.Env
}

// NewRegistry initializes the CEL environment with the progression variables
// conditions may refer to: total (lifetime cookies), cookies (current
// balance) and clicks (manual click count).
func NewRegistry() (*Registry, error) {
	env, err := cel.NewEnv(
		cel.Variable("total", cel.DoubleType),
		cel.Variable("cookies", cel.DoubleType),
		cel.Variable("clicks", cel.IntType),
	)
	if err != nil {
		return nil, err
	}
	return &Registry{env: env}, nil
}

// Compile checks and compiles a condition expression. The expression must
// evaluate to a boolean; anything else is rejected here rather than at play
// time.
func (r *Registry) Compile(expression string) (*Program, error) {
	ast, iss := r.env.Compile(expression)
	if iss.Err() != nil {
		return nil, fmt.Errorf("invalid condition %q: %w", expression, iss.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("condition %q must evaluate to a boolean, got %s", expression, ast.OutputType())
	}
	prog, err := r.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("invalid condition %q: %w", expression, err)
	}
	return &Program{prog: prog}, nil
}

// DefaultCondition renders the implicit "total >= target" condition used
// when an achievement declares no expression of its own. The threshold is
// printed with a decimal point so it type-checks against the double-typed
// total variable.
func DefaultCondition(target float64) string {
	s := strconv.FormatFloat(target, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return "total >= " + s
}

// Program is a compiled achievement condition.
type Program struct {
	prog cel.Program
}

// Eval runs the condition against the current progression values.
func (p *Program) Eval(total, cookies float64, clicks int) (bool, error) {
	out, _, err := p.prog.Eval(map[string]any{
		"total":   total,
		"cookies": cookies,
		"clicks":  int64(clicks),
	})
	if err != nil {
		return false, err
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("condition returned %T, want bool", out.Value())
	}
	return b, nil
}
