package commands

import (
	"fmt"
	"regexp"
	"strings"

	"physiquist/internal/calc"
	"physiquist/internal/present"
	"physiquist/internal/solver"
	"physiquist/internal/style"
)

var numberPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// parseAssignment splits "m=2kg" into the symbol and its input. The unit is whatever
// follows the number.
func parseAssignment(arg string) (string, solver.Input, error) {
	i := strings.Index(arg, "=")
	if i <= 0 {
		return "", solver.Input{}, fmt.Errorf("expected symbol=value[unit], got %q", arg)
	}
	sym := strings.TrimSpace(arg[:i])
	rest := strings.TrimSpace(arg[i+1:])

	num := numberPrefix.FindString(rest)
	if num == "" {
		num = rest
	}
	in, err := solver.ParseInput(num, rest[len(num):])
	if err != nil {
		return "", solver.Input{}, fmt.Errorf("%s: %w", sym, err)
	}
	return sym, in, nil
}

func parseRequest(formulaName, target string, assignments []string, systems string) (calc.Request, error) {
	req := calc.Request{Request: solver.Request{
		Formula: formulaName,
		Target:  target,
		Inputs:  make(map[string]solver.Input, len(assignments)),
	}}
	for _, a := range assignments {
		sym, in, err := parseAssignment(a)
		if err != nil {
			return calc.Request{}, err
		}
		if _, dup := req.Inputs[sym]; dup {
			return calc.Request{}, fmt.Errorf("%s given twice", sym)
		}
		req.Inputs[sym] = in
	}
	sys, err := present.ParseSystems(systems)
	if err != nil {
		return calc.Request{}, err
	}
	req.Systems = sys
	return req, nil
}

func errorLine(err error) string {
	return style.ErrorPrefix + " " + err.Error()
}
