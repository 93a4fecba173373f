package formula

import (
	"fmt"
	"strings"
)

// Categories in display order.
const (
	CategoryMechanics      = "Mechanics"
	CategoryGravitation    = "Gravitation"
	CategoryFluids         = "Fluid Mechanics"
	CategoryThermodynamics = "Thermodynamics"
	CategoryWaves          = "Waves and Oscillations"
	CategoryOptics         = "Optics"
	CategoryElectricity    = "Electricity and Magnetism"
	CategoryModern         = "Modern Physics"
)

var categoryOrder = []string{
	CategoryMechanics,
	CategoryGravitation,
	CategoryFluids,
	CategoryThermodynamics,
	CategoryWaves,
	CategoryOptics,
	CategoryElectricity,
	CategoryModern,
}

// Catalog is an immutable registry of formulas. It is built once and never modified,
// so it is safe for concurrent use.
type Catalog struct {
	formulas []*Formula
	byName   map[string]*Formula
	byLower  map[string]*Formula
}

// NewCatalog indexes formulas and checks that each is well formed: unique names,
// unique variable symbols and inversions only for declared variables.
func NewCatalog(formulas ...*Formula) (*Catalog, error) {
	c := &Catalog{
		byName:  make(map[string]*Formula, len(formulas)),
		byLower: make(map[string]*Formula, len(formulas)),
	}
	for _, f := range formulas {
		if f.Name == "" {
			return nil, fmt.Errorf("formula: unnamed formula %q", f.Equation)
		}
		if _, dup := c.byName[f.Name]; dup {
			return nil, fmt.Errorf("formula: duplicate formula %q", f.Name)
		}
		seen := make(map[string]bool, len(f.Variables))
		for _, v := range f.Variables {
			if seen[v.Symbol] {
				return nil, fmt.Errorf("formula: %s declares %q twice", f.Name, v.Symbol)
			}
			seen[v.Symbol] = true
		}
		for target := range f.solvers {
			if !seen[target] {
				return nil, fmt.Errorf("formula: %s solves for undeclared %q", f.Name, target)
			}
		}
		if len(f.solvers) == 0 {
			return nil, fmt.Errorf("formula: %s has no inversions", f.Name)
		}
		c.formulas = append(c.formulas, f)
		c.byName[f.Name] = f
		c.byLower[strings.ToLower(f.Name)] = f
	}
	return c, nil
}

// MustCatalog is NewCatalog for package-level registries.
func MustCatalog(formulas ...*Formula) *Catalog {
	c, err := NewCatalog(formulas...)
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup finds a formula by exact name, then case-insensitively.
func (c *Catalog) Lookup(name string) (*Formula, error) {
	if f, ok := c.byName[name]; ok {
		return f, nil
	}
	if f, ok := c.byLower[strings.ToLower(strings.TrimSpace(name))]; ok {
		return f, nil
	}
	return nil, &Error{Formula: name, Err: ErrUnknownFormula}
}

// Formulas returns every formula in catalog order.
func (c *Catalog) Formulas() []*Formula {
	return append([]*Formula(nil), c.formulas...)
}

// Names returns every formula name in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.formulas))
	for i, f := range c.formulas {
		out[i] = f.Name
	}
	return out
}

// Categories returns the categories that hold at least one formula.
func (c *Catalog) Categories() []string {
	present := make(map[string]bool)
	for _, f := range c.formulas {
		present[f.Category] = true
	}
	var out []string
	for _, cat := range categoryOrder {
		if present[cat] {
			out = append(out, cat)
			delete(present, cat)
		}
	}
	for _, f := range c.formulas {
		if present[f.Category] {
			out = append(out, f.Category)
			delete(present, f.Category)
		}
	}
	return out
}

// ByCategory returns the formulas of category, matched case-insensitively.
func (c *Catalog) ByCategory(category string) []*Formula {
	var out []*Formula
	for _, f := range c.formulas {
		if strings.EqualFold(f.Category, category) {
			out = append(out, f)
		}
	}
	return out
}

// VariablesOf returns the variable symbols of the named formula.
func (c *Catalog) VariablesOf(name string) ([]string, error) {
	f, err := c.Lookup(name)
	if err != nil {
		return nil, err
	}
	return f.Symbols(), nil
}

// RequiredInputsFor returns the inputs needed to solve the named formula for target.
func (c *Catalog) RequiredInputsFor(name, target string) ([]string, error) {
	f, err := c.Lookup(name)
	if err != nil {
		return nil, err
	}
	return f.RequiredInputs(target)
}

// Evaluate solves the named formula for target from SI inputs (angles in degrees).
func (c *Catalog) Evaluate(name, target string, in Values) (float64, error) {
	f, err := c.Lookup(name)
	if err != nil {
		return 0, err
	}
	return f.Evaluate(target, in)
}

var defaultCatalog = MustCatalog(all()...)

// Default returns the process-wide catalog.
func Default() *Catalog { return defaultCatalog }

func all() []*Formula {
	var out []*Formula
	out = append(out, mechanics()...)
	out = append(out, gravitation()...)
	out = append(out, fluids()...)
	out = append(out, thermodynamics()...)
	out = append(out, waves()...)
	out = append(out, optics()...)
	out = append(out, electricity()...)
	out = append(out, modern()...)
	return out
}

// define builds a formula. It is only called while building the default catalog.
func define(category, name, equation string, vars []Variable, solvers map[string]Inversion) *Formula {
	return &Formula{
		Name:      name,
		Category:  category,
		Equation:  equation,
		Variables: vars,
		solvers:   solvers,
	}
}
