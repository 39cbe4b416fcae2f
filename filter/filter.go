// Package filter compiles boolean expressions into record predicates. An
// expression sees every string-keyed entry of a record as a variable, and the
// complete record, keyed by the string form of each key, as "record"
package filter

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/kode4food/pluck/record"
)

// Predicate reports whether a record should participate in an extraction
type Predicate func(record.Record) (bool, error)

// RecordVar is the variable that exposes the whole record to an expression
const RecordVar = "record"

// Error messages
var (
	ErrEmptyExpression = errors.New("filter expression is empty")
	ErrCompile         = errors.New("filter expression failed to compile")
	ErrEvaluate        = errors.New("filter expression failed to evaluate")
)

// Compile turns an expression into a Predicate
func Compile(src string) (Predicate, error) {
	if src == "" {
		return nil, ErrEmptyExpression
	}
	prg, err := expr.Compile(src,
		expr.AsBool(),
		expr.AllowUndefinedVariables(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}
	return func(r record.Record) (bool, error) {
		return run(prg, r)
	}, nil
}

// MustCompile is Compile, but panics if the expression is invalid
func MustCompile(src string) Predicate {
	p, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return p
}

// All returns a Predicate that accepts records accepted by every Predicate
func All(p ...Predicate) Predicate {
	return func(r record.Record) (bool, error) {
		for _, pred := range p {
			if ok, err := pred(r); err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	}
}

func run(prg *vm.Program, r record.Record) (bool, error) {
	res, err := expr.Run(prg, Env(r))
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrEvaluate, err)
	}
	ok, _ := res.(bool)
	return ok, nil
}

// Env builds the expression environment for a record
func Env(r record.Record) map[string]any {
	rec := map[string]any{}
	env := map[string]any{RecordVar: rec}
	r.Range(func(k record.Key, v any) bool {
		rec[k.String()] = v
		if !k.IsInt() && k.String() != RecordVar {
			env[k.String()] = v
		}
		return true
	})
	return env
}
