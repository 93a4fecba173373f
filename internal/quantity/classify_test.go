package quantity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"physiquist/internal/quantity"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		symbol string
		want   quantity.Kind
	}{
		{"m", quantity.Mass},
		{"F", quantity.Force},
		{"r", quantity.Length},
		{"θ", quantity.Angle},
		{"t", quantity.Time},
		{"KE", quantity.Energy},
		{"V", quantity.Voltage},
		{"R", quantity.Resistance},
		{"I", quantity.Current},
		{"q1", quantity.Charge},
		{"pressure", quantity.Pressure},
		{"Initial Temperature", quantity.Temperature},
		{"potential energy", quantity.Energy},
		{"rope tension", quantity.Force},
		{"wavelength", quantity.Length},
		{"launch angle", quantity.Angle},
		{"period of oscillation", quantity.Time},
		{"a", quantity.Dimensionless},
		{"μ", quantity.Dimensionless},
		{"dv/dy", quantity.Dimensionless},
		{"", quantity.Dimensionless},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, quantity.Classify(tt.symbol), "Classify(%q)", tt.symbol)
	}
}

func TestClassifySymbolBeatsSubstring(t *testing.T) {
	// "s" would otherwise never match a cue; "T" must not fall to the "t" of "time".
	assert.Equal(t, quantity.Length, quantity.Classify("s"))
	assert.Equal(t, quantity.Temperature, quantity.Classify("T"))
}

func TestParseKind(t *testing.T) {
	for _, k := range quantity.Kinds() {
		got, err := quantity.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	got, err := quantity.ParseKind(" Pressure ")
	require.NoError(t, err)
	assert.Equal(t, quantity.Pressure, got)

	_, err = quantity.ParseKind("luminosity")
	assert.Error(t, err)
}

func TestKindText(t *testing.T) {
	b, err := quantity.Energy.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "energy", string(b))

	var k quantity.Kind
	require.NoError(t, k.UnmarshalText([]byte("voltage")))
	assert.Equal(t, quantity.Voltage, k)
	assert.Equal(t, "Kind(99)", quantity.Kind(99).String())
}
