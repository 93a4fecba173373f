package solver_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"physiquist/internal/formula"
	"physiquist/internal/solver"
)

func TestSolve(t *testing.T) {
	s := solver.Default()
	tests := []struct {
		name    string
		formula string
		target  string
		inputs  map[string]solver.Input
		want    float64
	}{
		{
			name:    "force from SI inputs",
			formula: "Force", target: "F",
			inputs: map[string]solver.Input{"m": {2, "kg"}, "a": {3, "m/s²"}},
			want:   6,
		},
		{
			name:    "mass in grams",
			formula: "Force", target: "F",
			inputs: map[string]solver.Input{"m": {2000, "g"}, "a": {3, ""}},
			want:   6,
		},
		{
			name:    "ohm's law",
			formula: "Ohm's Law", target: "I",
			inputs: map[string]solver.Input{"V": {12, "V"}, "R": {4, "Ω"}},
			want:   3,
		},
		{
			name:    "kilo-ohm alias",
			formula: "Ohm's Law", target: "I",
			inputs: map[string]solver.Input{"V": {12, "V"}, "R": {0.004, "kohm"}},
			want:   3,
		},
		{
			name:    "angle input in degrees",
			formula: "Torque", target: "τ",
			inputs: map[string]solver.Input{"r": {2, "m"}, "F": {10, "N"}, "θ": {90, "deg"}},
			want:   20,
		},
		{
			name:    "angle input in radians",
			formula: "Torque", target: "τ",
			inputs: map[string]solver.Input{"r": {2, "m"}, "F": {10, "N"}, "θ": {math.Pi / 2, "rad"}},
			want:   20,
		},
		{
			name:    "angle without a unit is in degrees",
			formula: "Torque", target: "τ",
			inputs: map[string]solver.Input{"r": {1, "m"}, "F": {10, "N"}, "θ": {30, ""}},
			want:   5,
		},
		{
			name:    "angle with an unknown unit is in degrees",
			formula: "Torque", target: "τ",
			inputs: map[string]solver.Input{"r": {1, "m"}, "F": {10, "N"}, "θ": {30, "degrees?"}},
			want:   5,
		},
		{
			name:    "angle result in radians",
			formula: "Torque", target: "θ",
			inputs: map[string]solver.Input{"τ": {10, ""}, "r": {2, "m"}, "F": {10, "N"}},
			want:   math.Pi / 6,
		},
		{
			name:    "tension T is a force",
			formula: "Tension", target: "T",
			inputs: map[string]solver.Input{"m": {1, "kg"}, "a": {0, ""}},
			want:   9.81,
		},
		{
			name:    "temperature in celsius",
			formula: "Ideal Gas Law", target: "P",
			inputs: map[string]solver.Input{"V": {1, ""}, "n": {1, ""}, "T": {26.85, "°C"}},
			want:   8.314 * 300,
		},
		{
			name:    "case-insensitive formula name",
			formula: "force", target: "m",
			inputs: map[string]solver.Input{"F": {6, "N"}, "a": {3, ""}},
			want:   2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Solve(tt.formula, tt.target, tt.inputs)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestSolveErrors(t *testing.T) {
	s := solver.Default()
	tests := []struct {
		name     string
		req      solver.Request
		want     error
		variable string
	}{
		{
			name: "unknown formula",
			req:  solver.Request{Formula: "Flux Capacitor", Target: "x"},
			want: formula.ErrUnknownFormula,
		},
		{
			name: "target is not a variable",
			req:  solver.Request{Formula: "Force", Target: "q", Inputs: map[string]solver.Input{"m": {1, "kg"}, "a": {1, ""}}},
			want: formula.ErrUnsupportedTarget,
		},
		{
			name: "target without closed form",
			req:  solver.Request{Formula: "Second Equation of Motion", Target: "t", Inputs: map[string]solver.Input{"s": {1, "m"}, "u": {1, ""}, "a": {1, ""}}},
			want: formula.ErrUnsupportedTarget,
		},
		{
			name:     "missing input",
			req:      solver.Request{Formula: "Force", Target: "F", Inputs: map[string]solver.Input{"a": {3, ""}}},
			want:     formula.ErrMissingVariable,
			variable: "m",
		},
		{
			name:     "extra input",
			req:      solver.Request{Formula: "Force", Target: "F", Inputs: map[string]solver.Input{"m": {2, "kg"}, "a": {3, ""}, "v": {1, ""}}},
			want:     formula.ErrUnexpectedVariable,
			variable: "v",
		},
		{
			name:     "target supplied as input",
			req:      solver.Request{Formula: "Force", Target: "F", Inputs: map[string]solver.Input{"m": {2, "kg"}, "a": {3, ""}, "F": {6, "N"}}},
			want:     formula.ErrUnexpectedVariable,
			variable: "F",
		},
		{
			name:     "not a number",
			req:      solver.Request{Formula: "Force", Target: "F", Inputs: map[string]solver.Input{"m": {math.NaN(), "kg"}, "a": {3, ""}}},
			want:     formula.ErrInvalidNumber,
			variable: "m",
		},
		{
			name:     "infinite",
			req:      solver.Request{Formula: "Force", Target: "F", Inputs: map[string]solver.Input{"m": {2, "kg"}, "a": {math.Inf(1), ""}}},
			want:     formula.ErrInvalidNumber,
			variable: "a",
		},
		{
			name:     "division by zero mass",
			req:      solver.Request{Formula: "Force", Target: "a", Inputs: map[string]solver.Input{"F": {10, "N"}, "m": {0, "kg"}}},
			want:     formula.ErrDivisionUndefined,
			variable: "m",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.SolveRequest(tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			if tt.variable != "" {
				var fe *formula.Error
				require.ErrorAs(t, err, &fe)
				assert.Equal(t, tt.variable, fe.Variable)
			}
		})
	}
}

func TestSolveIsSafeForConcurrentUse(t *testing.T) {
	s := solver.Default()
	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got, err := s.Solve("Force", "F", map[string]solver.Input{
				"m": {float64(i), "kg"},
				"a": {2, ""},
			})
			if err == nil && got != float64(2*i) {
				err = assert.AnError
			}
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
}

func TestParseInput(t *testing.T) {
	in, err := solver.ParseInput(" 2.5e3 ", " g ")
	require.NoError(t, err)
	assert.Equal(t, solver.Input{Value: 2500, Unit: "g"}, in)

	for _, bad := range []string{"", "abc", "NaN", "Inf", "1e400"} {
		_, err := solver.ParseInput(bad, "m")
		assert.ErrorIs(t, err, formula.ErrInvalidNumber, bad)
	}
}
