// Package solver runs one calculation: it checks a request against the formula
// catalog, converts every supplied value to SI and evaluates the requested inversion.
package solver

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"physiquist/internal/formula"
	"physiquist/internal/quantity"
	"physiquist/internal/units"
)

// Input is one supplied variable: a raw value and the unit it is expressed in.
type Input struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Request is a single calculation.
type Request struct {
	Formula string           `json:"formula"`
	Target  string           `json:"target"`
	Inputs  map[string]Input `json:"inputs"`
}

// Solver holds no state beyond its read-only registries and is safe for concurrent use.
type Solver struct {
	catalog *formula.Catalog
	units   *units.Table
}

func New(cat *formula.Catalog, tbl *units.Table) *Solver {
	return &Solver{catalog: cat, units: tbl}
}

var defaultSolver = New(formula.Default(), units.Default())

// Default returns a solver over the process-wide catalog and unit table.
func Default() *Solver { return defaultSolver }

func (s *Solver) Catalog() *formula.Catalog { return s.catalog }

func (s *Solver) Units() *units.Table { return s.units }

// Solve computes target of the named formula and returns it in SI units. Angles are
// returned in radians.
func (s *Solver) Solve(formulaName, target string, inputs map[string]Input) (float64, error) {
	f, err := s.catalog.Lookup(formulaName)
	if err != nil {
		return 0, err
	}
	si, err := s.ToSI(f, target, inputs)
	if err != nil {
		return 0, err
	}
	v, err := f.Evaluate(target, si)
	if err != nil {
		return 0, err
	}
	if f.KindOf(target) == quantity.Angle {
		v = units.Radians(v)
	}
	return v, nil
}

// SolveRequest is Solve for a Request.
func (s *Solver) SolveRequest(req Request) (float64, error) {
	return s.Solve(req.Formula, req.Target, req.Inputs)
}

// ToSI validates inputs against the variables f needs to solve for target and
// converts them to the values the catalog evaluates: SI, with angles in degrees.
func (s *Solver) ToSI(f *formula.Formula, target string, inputs map[string]Input) (formula.Values, error) {
	required, err := f.RequiredInputs(target)
	if err != nil {
		return nil, err
	}
	for _, sym := range required {
		if _, ok := inputs[sym]; !ok {
			return nil, &formula.Error{Formula: f.Name, Target: target, Variable: sym, Err: formula.ErrMissingVariable}
		}
	}
	if len(inputs) != len(required) {
		var extra []string
		for sym := range inputs {
			if sym == target || !contains(required, sym) {
				extra = append(extra, sym)
			}
		}
		sort.Strings(extra)
		return nil, &formula.Error{Formula: f.Name, Target: target, Variable: extra[0], Err: formula.ErrUnexpectedVariable}
	}

	si := make(formula.Values, len(required))
	for _, sym := range required {
		in := inputs[sym]
		if !finite(in.Value) {
			return nil, &formula.Error{Formula: f.Name, Target: target, Variable: sym, Err: formula.ErrInvalidNumber}
		}
		kind := f.KindOf(sym)
		unit := in.Unit
		if kind == quantity.Angle && !s.units.Known(kind, unit) {
			// bare angles are degrees, as everywhere in the catalog
			unit = "deg"
		}
		v := s.units.ToSI(kind, in.Value, unit)
		if kind == quantity.Angle {
			v = units.Degrees(v)
		}
		si[sym] = v
	}
	return si, nil
}

// ParseInput parses a raw value typed by a user or read from a spreadsheet cell.
func ParseInput(text, unit string) (Input, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || !finite(v) {
		return Input{}, &formula.Error{Variable: text, Err: formula.ErrInvalidNumber}
	}
	return Input{Value: v, Unit: strings.TrimSpace(unit)}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
