package calc

import (
	"physiquist/internal/present"
	"physiquist/internal/solver"
)

// Request is a calculation together with the unit systems to present it in.
type Request struct {
	solver.Request
	Systems []present.System `json:"systems,omitempty"`
}

// Calculate solves req and presents the result in the requested systems.
func Calculate(req Request) (present.Result, error) {
	return CalculateWith(solver.Default(), req)
}

func CalculateWith(s *solver.Solver, req Request) (present.Result, error) {
	f, err := s.Catalog().Lookup(req.Formula)
	if err != nil {
		return present.Result{}, err
	}
	v, err := s.SolveRequest(req.Request)
	if err != nil {
		return present.Result{}, err
	}
	kind := f.KindOf(req.Target)
	return present.Result{
		Formula: f.Name,
		Target:  req.Target,
		Kind:    kind,
		SIValue: v,
		Entries: present.PresentKind(v, kind, req.Systems),
	}, nil
}
