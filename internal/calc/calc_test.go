package calc_test

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"physiquist/internal/calc"
	"physiquist/internal/formula"
	"physiquist/internal/present"
	"physiquist/internal/quantity"
	"physiquist/internal/solver"
)

func TestCalculate(t *testing.T) {
	res, err := calc.Calculate(calc.Request{
		Request: solver.Request{
			Formula: "Force",
			Target:  "F",
			Inputs: map[string]solver.Input{
				"m": {Value: 2, Unit: "kg"},
				"a": {Value: 3},
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Force", res.Formula)
	assert.Equal(t, quantity.Force, res.Kind)
	assert.Equal(t, 6.0, res.SIValue)
	require.Len(t, res.Entries, 3)
	assert.Equal(t, "N", res.Entries[0].Unit)
	assert.Equal(t, "lbf", res.Entries[2].Unit)
}

func TestCalculateUsesFormulaKind(t *testing.T) {
	// Globally T is a temperature; in Tension it is a force.
	res, err := calc.Calculate(calc.Request{
		Request: solver.Request{
			Formula: "Tension",
			Target:  "T",
			Inputs: map[string]solver.Input{
				"m": {Value: 1, Unit: "kg"},
				"a": {Value: 0},
			},
		},
		Systems: []present.System{present.SI},
	})
	require.NoError(t, err)
	assert.Equal(t, quantity.Force, res.Kind)
	assert.Equal(t, []present.Entry{{System: present.SI, Value: 9.81, Unit: "N"}}, res.Entries)
}

func TestCalculateAngleResult(t *testing.T) {
	res, err := calc.Calculate(calc.Request{
		Request: solver.Request{
			Formula: "Critical Angle",
			Target:  "θc",
			Inputs: map[string]solver.Input{
				"n1": {Value: 2},
				"n2": {Value: 1},
			},
		},
		Systems: []present.System{present.SI},
	})
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/6, res.SIValue, 1e-12)
	assert.Equal(t, "rad", res.Entries[0].Unit)
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, calc.StatusOf(formula.ErrUnknownFormula))
	assert.Equal(t, http.StatusBadRequest, calc.StatusOf(&formula.Error{Err: formula.ErrMissingVariable}))
	assert.Equal(t, http.StatusUnprocessableEntity, calc.StatusOf(&formula.Error{Err: formula.ErrDivisionUndefined}))
	assert.Equal(t, http.StatusInternalServerError, calc.StatusOf(assert.AnError))
}

func TestHandlerCalc(t *testing.T) {
	h := &calc.Handler{}

	body := `{"formula":"Ohm's Law","target":"I","inputs":{"V":{"value":12,"unit":"V"},"R":{"value":4,"unit":"Ω"}},"systems":["SI"]}`
	rec := httptest.NewRecorder()
	h.Calc(rec, httptest.NewRequest(http.MethodPost, "/api/solve", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var res present.Result
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, quantity.Current, res.Kind)
	assert.Equal(t, []present.Entry{{System: present.SI, Value: 3, Unit: "A"}}, res.Entries)
}

func TestHandlerCalcErrors(t *testing.T) {
	h := &calc.Handler{}
	tests := []struct {
		name   string
		body   string
		status int
		kind   string
	}{
		{"bad json", `{`, http.StatusBadRequest, ""},
		{"unknown formula", `{"formula":"Nope","target":"x"}`, http.StatusNotFound, "UnknownFormula"},
		{"missing", `{"formula":"Force","target":"F","inputs":{"m":{"value":1}}}`, http.StatusBadRequest, "MissingVariable"},
		{"zero mass", `{"formula":"Force","target":"a","inputs":{"F":{"value":1},"m":{"value":0}}}`, http.StatusUnprocessableEntity, "DivisionUndefined"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Calc(rec, httptest.NewRequest(http.MethodPost, "/api/solve", strings.NewReader(tt.body)))
			assert.Equal(t, tt.status, rec.Code)

			var body calc.ErrorBody
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.kind, body.Kind)
			assert.NotEmpty(t, body.Error)
		})
	}
}

func TestHandlerCalcRejectsOversizedBodies(t *testing.T) {
	body := `{"formula":"` + strings.Repeat("x", calc.MaxBodyBytes) + `","target":"F"}`
	rec := httptest.NewRecorder()
	(&calc.Handler{}).Calc(rec, httptest.NewRequest(http.MethodPost, "/api/solve", strings.NewReader(body)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	var got calc.ErrorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, "Request body too large", got.Error)
}
