// Package present re-expresses an SI result in the supported unit systems.
package present

import (
	"fmt"
	"strings"

	"physiquist/internal/quantity"
	"physiquist/internal/units"
)

// System is a unit system a result can be shown in.
type System string

const (
	SI  System = "SI"
	MKS System = "MKS"
	FPS System = "FPS"
)

// AllSystems lists every system in display order.
func AllSystems() []System { return []System{SI, MKS, FPS} }

// ParseSystem accepts a system name in any case.
func ParseSystem(s string) (System, error) {
	for _, sys := range AllSystems() {
		if strings.EqualFold(strings.TrimSpace(s), string(sys)) {
			return sys, nil
		}
	}
	return "", fmt.Errorf("present: unknown unit system %q", s)
}

func (s *System) UnmarshalText(b []byte) error {
	sys, err := ParseSystem(string(b))
	if err != nil {
		return err
	}
	*s = sys
	return nil
}

// ParseSystems parses a comma separated list such as "SI,FPS". An empty list means
// every system.
func ParseSystems(list string) ([]System, error) {
	var out []System
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		sys, err := ParseSystem(part)
		if err != nil {
			return nil, err
		}
		out = append(out, sys)
	}
	return out, nil
}

// Entry is a value in one unit system.
type Entry struct {
	System System  `json:"system"`
	Value  float64 `json:"value"`
	Unit   string  `json:"unit"`
}

func (e Entry) String() string { return Format(e) }

// Result is a solved target together with its presentation.
type Result struct {
	Formula string        `json:"formula"`
	Target  string        `json:"target"`
	Kind    quantity.Kind `json:"kind"`
	SIValue float64       `json:"si_value"`
	Entries []Entry       `json:"entries"`
}

// fpsUnits maps kinds to their foot-pound-second unit. Kinds without an entry keep
// the SI value and label.
var fpsUnits = map[quantity.Kind]string{
	quantity.Length: "ft",
	quantity.Mass:   "lb",
	quantity.Force:  "lbf",
	quantity.Energy: "ft·lbf",
	quantity.Power:  "ft·lbf/s",
}

// Present shows siValue of the variable symbol in each system, classifying the
// symbol globally. Callers that know the owning formula should use PresentKind.
func Present(siValue float64, symbol string, systems []System) []Entry {
	return PresentKind(siValue, quantity.Classify(symbol), systems)
}

// PresentKind shows siValue of kind in each system, in the order given. No systems
// means all of them.
func PresentKind(siValue float64, kind quantity.Kind, systems []System) []Entry {
	if len(systems) == 0 {
		systems = AllSystems()
	}
	tbl := units.Default()
	siUnit := tbl.SIUnit(kind)

	out := make([]Entry, 0, len(systems))
	for _, sys := range systems {
		e := Entry{System: sys, Value: siValue, Unit: siUnit}
		if sys == FPS {
			if u, ok := fpsUnits[kind]; ok {
				e.Value = tbl.FromSI(kind, siValue, u)
				e.Unit = u
			}
		}
		out = append(out, e)
	}
	return out
}

// Format renders an entry with four decimals, e.g. "6.0000 N".
func Format(e Entry) string {
	if e.Unit == "" {
		return fmt.Sprintf("%.4f", e.Value)
	}
	return fmt.Sprintf("%.4f %s", e.Value, e.Unit)
}
