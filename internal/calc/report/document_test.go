package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"physiquist/internal/calc"
	"physiquist/internal/solver"
)

func plainPDF(t *testing.T, in Input) string {
	t.Helper()
	pdf, err := document(in)
	require.NoError(t, err)
	pdf.SetCompression(false)

	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))
	return buf.String()
}

func TestDocumentSpellsOutGreekSymbols(t *testing.T) {
	out := plainPDF(t, Input{
		Notes: "Lever at 30°.",
		Request: calc.Request{Request: solver.Request{
			Formula: "Torque",
			Target:  "τ",
			Inputs: map[string]solver.Input{
				"r": {Value: 2, Unit: "m"},
				"F": {Value: 10, Unit: "N"},
				"θ": {Value: 30, Unit: "deg"},
			},
		}},
	})
	assert.Contains(t, out, "tau = r * F * sin")
	assert.Contains(t, out, "(theta)")
	assert.Contains(t, out, "Lever at 30\xb0.")
	assert.NotContains(t, out, ". = r * F")
}

func TestDocumentKeepsUnitSymbols(t *testing.T) {
	out := plainPDF(t, Input{
		Request: calc.Request{Request: solver.Request{
			Formula: "Coulomb's Law",
			Target:  "F",
			Inputs: map[string]solver.Input{
				"q1": {Value: 2, Unit: "μC"},
				"q2": {Value: 3, Unit: "μC"},
				"r":  {Value: 0.1, Unit: "m"},
			},
		}},
	})
	assert.Contains(t, out, "(\xb5C)")

	out = plainPDF(t, Input{
		Request: calc.Request{Request: solver.Request{
			Formula: "Ohm's Law",
			Target:  "I",
			Inputs: map[string]solver.Input{
				"V": {Value: 12, Unit: "V"},
				"R": {Value: 4, Unit: "kΩ"},
			},
		}},
	})
	assert.Contains(t, out, "(kOhm)")
}

func TestGreekReplacer(t *testing.T) {
	assert.Equal(t, "dU = Q - W", greek.Replace("ΔU = Q - W"))
	assert.Equal(t, "lambda = h / p", greek.Replace("λ = h / p"))
	assert.Equal(t, "omega0", greek.Replace("ω0"))
}
