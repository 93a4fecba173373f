// Package units holds the per-kind unit catalog and converts values to and from SI.
package units

import (
	"fmt"
	"strings"

	"physiquist/internal/quantity"
)

// Definition describes one unit of a quantity kind. For multiplicative units
// SI = value * Factor. Affine units (°C, °F) use SI = (value + Offset) * Factor.
type Definition struct {
	Kind   quantity.Kind `json:"kind"`
	Symbol string        `json:"symbol"`
	Factor float64       `json:"factor"`
	Offset float64       `json:"offset,omitempty"`
	Affine bool          `json:"affine,omitempty"`
}

func (d Definition) toSI(v float64) float64 {
	if d.Affine {
		return (v + d.Offset) * d.Factor
	}
	return v * d.Factor
}

func (d Definition) fromSI(v float64) float64 {
	if d.Affine {
		return v/d.Factor - d.Offset
	}
	return v / d.Factor
}

// Table is an immutable unit registry. Build one with NewTable; it is never modified
// afterwards, so a *Table is safe for concurrent use.
type Table struct {
	byKind map[quantity.Kind][]Definition
	si     map[quantity.Kind]Definition
}

// NewTable validates defs and indexes them by kind. Every kind that has units must
// have exactly one non-affine unit with factor 1.
func NewTable(defs ...Definition) (*Table, error) {
	t := &Table{
		byKind: make(map[quantity.Kind][]Definition),
		si:     make(map[quantity.Kind]Definition),
	}
	seen := make(map[string]bool)
	for _, d := range defs {
		if d.Symbol == "" {
			return nil, fmt.Errorf("units: empty symbol for kind %s", d.Kind)
		}
		if d.Factor == 0 {
			return nil, fmt.Errorf("units: zero factor for %s", d.Symbol)
		}
		key := d.Kind.String() + "/" + d.Symbol
		if seen[key] {
			return nil, fmt.Errorf("units: duplicate unit %s", key)
		}
		seen[key] = true
		if !d.Affine && d.Factor == 1 {
			if prev, ok := t.si[d.Kind]; ok {
				return nil, fmt.Errorf("units: kind %s has two SI units (%s, %s)", d.Kind, prev.Symbol, d.Symbol)
			}
			t.si[d.Kind] = d
		}
		t.byKind[d.Kind] = append(t.byKind[d.Kind], d)
	}
	for k := range t.byKind {
		if _, ok := t.si[k]; !ok {
			return nil, fmt.Errorf("units: kind %s has no SI unit", k)
		}
	}
	return t, nil
}

// MustTable is NewTable for package-level tables.
func MustTable(defs ...Definition) *Table {
	t, err := NewTable(defs...)
	if err != nil {
		panic(err)
	}
	return t
}

// UnitsFor lists the unit symbols of kind, SI unit first.
func (t *Table) UnitsFor(kind quantity.Kind) []string {
	defs := t.byKind[kind]
	if len(defs) == 0 {
		return nil
	}
	si := t.si[kind].Symbol
	out := make([]string, 0, len(defs))
	out = append(out, si)
	for _, d := range defs {
		if d.Symbol != si {
			out = append(out, d.Symbol)
		}
	}
	return out
}

// Definitions returns the definitions of kind in catalog order.
func (t *Table) Definitions(kind quantity.Kind) []Definition {
	return append([]Definition(nil), t.byKind[kind]...)
}

// SIUnit returns the canonical unit label of kind, "" for kinds without units.
func (t *Table) SIUnit(kind quantity.Kind) string {
	return t.si[kind].Symbol
}

// Lookup finds the definition of unit for kind, accepting common ASCII spellings.
func (t *Table) Lookup(kind quantity.Kind, unit string) (Definition, bool) {
	u := canonical(kind, unit)
	for _, d := range t.byKind[kind] {
		if d.Symbol == u {
			return d, true
		}
	}
	return Definition{}, false
}

// ToSI converts value in unit to the SI unit of kind. Units the table does not know
// convert as identity.
func (t *Table) ToSI(kind quantity.Kind, value float64, unit string) float64 {
	d, ok := t.Lookup(kind, unit)
	if !ok {
		return value
	}
	return d.toSI(value)
}

// FromSI converts an SI value of kind to unit. Unknown units convert as identity.
func (t *Table) FromSI(kind quantity.Kind, value float64, unit string) float64 {
	d, ok := t.Lookup(kind, unit)
	if !ok {
		return value
	}
	return d.fromSI(value)
}

// Known reports whether unit is a listed unit of kind.
func (t *Table) Known(kind quantity.Kind, unit string) bool {
	_, ok := t.Lookup(kind, unit)
	return ok
}

var aliases = map[string]string{
	"ohm":      "Ω",
	"Ohm":      "Ω",
	"kohm":     "kΩ",
	"kOhm":     "kΩ",
	"Mohm":     "MΩ",
	"MOhm":     "MΩ",
	"uC":       "μC",
	"µC":       "μC",
	"um":       "μm",
	"µm":       "μm",
	"°":        "deg",
	"degC":     "°C",
	"degF":     "°F",
	"ft-lbf":   "ft·lbf",
	"ft*lbf":   "ft·lbf",
	"ft-lbf/s": "ft·lbf/s",
}

func canonical(kind quantity.Kind, unit string) string {
	u := strings.TrimSpace(unit)
	if a, ok := aliases[u]; ok {
		return a
	}
	if kind == quantity.Temperature {
		switch u {
		case "C":
			return "°C"
		case "F":
			return "°F"
		}
	}
	return u
}
