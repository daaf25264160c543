package mapfile

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
	"github.com/expr-lang/expr/vm"

	"object-mapper/rule"
	"object-mapper/value"
)

// ErrPredicateResult is returned when a "when" expression does not
// evaluate to a boolean.
var ErrPredicateResult = errors.New("predicate expression did not return a boolean")

// CompilePredicate compiles a boolean expression into a rule.Predicate.
// The record's fields are the expression variables; absent fields read as
// nil. A bare name always refers to a field, even when a builtin of the
// same name exists ("values", "keys", "count"), so `"Snow" in values`
// tests the values field. Builtins stay callable: `len(values)`.
func CompilePredicate(expression string) (rule.Predicate, error) {
	prg, err := compile(expression)
	if err != nil {
		return nil, err
	}

	return func(data *value.Record) (bool, error) {
		return run(prg, expression, data)
	}, nil
}

func compile(expression string) (*vm.Program, error) {
	tree, err := parser.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("failed to compile expression %q: %w", expression, err)
	}

	opts := []expr.Option{expr.AllowUndefinedVariables()}

	names := variables{}
	ast.Walk(&tree.Node, names)

	for name := range names {
		opts = append(opts, expr.DisableBuiltin(name))
	}

	prg, err := expr.Compile(expression, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to compile expression %q: %w", expression, err)
	}

	return prg, nil
}

// variables collects the bare identifiers of an expression. Builtin calls
// are parsed into their own node kind and never show up here.
type variables map[string]struct{}

func (v variables) Visit(node *ast.Node) {
	if id, ok := (*node).(*ast.IdentifierNode); ok && id.Value != "$env" {
		v[id.Value] = struct{}{}
	}
}

func run(prg *vm.Program, expression string, data *value.Record) (bool, error) {
	out, err := expr.Run(prg, data.Interface())
	if err != nil {
		return false, fmt.Errorf("failed to evaluate expression %q: %w", expression, err)
	}

	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q returned %T", ErrPredicateResult, expression, out)
	}

	return b, nil
}
