// Package formula holds the catalog of supported physics formulas and, for each one,
// the closed-form expression that solves it for every invertible variable.
//
// Values passed to Evaluate are in SI units except angles, which are in degrees.
// Inversions convert degrees to radians before calling sin and convert asin results
// back to degrees.
package formula

import (
	"math"

	"physiquist/internal/quantity"
)

// Values maps variable symbols to numeric values.
type Values map[string]float64

// Inversion computes one variable of a formula from the others.
type Inversion func(in Values) (float64, error)

// Variable is one symbol of a formula together with its declared quantity kind.
type Variable struct {
	Symbol      string        `json:"symbol"`
	Kind        quantity.Kind `json:"kind"`
	Description string        `json:"description"`
}

// Formula is an immutable catalog entry.
type Formula struct {
	Name      string
	Category  string
	Equation  string
	Variables []Variable
	Notes     string

	solvers map[string]Inversion
}

// Symbols returns the variable symbols in declaration order.
func (f *Formula) Symbols() []string {
	out := make([]string, len(f.Variables))
	for i, v := range f.Variables {
		out[i] = v.Symbol
	}
	return out
}

// Targets returns the symbols the formula can be solved for, in declaration order.
func (f *Formula) Targets() []string {
	out := make([]string, 0, len(f.solvers))
	for _, v := range f.Variables {
		if _, ok := f.solvers[v.Symbol]; ok {
			out = append(out, v.Symbol)
		}
	}
	return out
}

// HasVariable reports whether symbol is one of the formula's variables.
func (f *Formula) HasVariable(symbol string) bool {
	_, ok := f.variable(symbol)
	return ok
}

// CanSolve reports whether the formula has a closed-form inversion for target.
func (f *Formula) CanSolve(target string) bool {
	_, ok := f.solvers[target]
	return ok
}

// KindOf returns the declared kind of symbol. Symbols the formula does not declare
// fall back to quantity.Classify.
func (f *Formula) KindOf(symbol string) quantity.Kind {
	if v, ok := f.variable(symbol); ok {
		return v.Kind
	}
	return quantity.Classify(symbol)
}

// RequiredInputs lists the variables that must be supplied to solve for target: every
// variable except the target itself.
func (f *Formula) RequiredInputs(target string) ([]string, error) {
	if !f.CanSolve(target) {
		return nil, &Error{Formula: f.Name, Target: target, Err: ErrUnsupportedTarget}
	}
	out := make([]string, 0, len(f.Variables)-1)
	for _, v := range f.Variables {
		if v.Symbol != target {
			out = append(out, v.Symbol)
		}
	}
	return out, nil
}

// Evaluate solves the formula for target. Values must hold every required input.
// Extra entries in in are ignored.
func (f *Formula) Evaluate(target string, in Values) (float64, error) {
	inv, ok := f.solvers[target]
	if !ok {
		return 0, &Error{Formula: f.Name, Target: target, Err: ErrUnsupportedTarget}
	}
	for _, v := range f.Variables {
		if v.Symbol == target {
			continue
		}
		if _, ok := in[v.Symbol]; !ok {
			return 0, &Error{Formula: f.Name, Target: target, Variable: v.Symbol, Err: ErrMissingVariable}
		}
	}
	res, err := inv(in)
	if err != nil {
		return 0, withContext(err, f.Name, target)
	}
	if math.IsNaN(res) || math.IsInf(res, 0) {
		return 0, &Error{Formula: f.Name, Target: target, Err: ErrOutOfDomain}
	}
	return res, nil
}

func (f *Formula) variable(symbol string) (Variable, bool) {
	for _, v := range f.Variables {
		if v.Symbol == symbol {
			return v, true
		}
	}
	return Variable{}, false
}
