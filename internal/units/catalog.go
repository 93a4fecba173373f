package units

import (
	"math"

	"physiquist/internal/quantity"
)

func mul(k quantity.Kind, symbol string, factor float64) Definition {
	return Definition{Kind: k, Symbol: symbol, Factor: factor}
}

// Units are listed SI unit first; UI consumers show them in this order.
var defaultDefinitions = []Definition{
	mul(quantity.Length, "m", 1),
	mul(quantity.Length, "cm", 0.01),
	mul(quantity.Length, "mm", 0.001),
	mul(quantity.Length, "μm", 1e-6),
	mul(quantity.Length, "nm", 1e-9),
	mul(quantity.Length, "km", 1000),
	mul(quantity.Length, "ft", 0.3048),
	mul(quantity.Length, "in", 0.0254),
	mul(quantity.Length, "yd", 0.9144),
	mul(quantity.Length, "mi", 1609.34),

	mul(quantity.Time, "s", 1),
	mul(quantity.Time, "ms", 0.001),
	mul(quantity.Time, "min", 60),
	mul(quantity.Time, "h", 3600),
	mul(quantity.Time, "d", 86400),

	mul(quantity.Mass, "kg", 1),
	mul(quantity.Mass, "g", 0.001),
	mul(quantity.Mass, "mg", 1e-6),
	mul(quantity.Mass, "t", 1000),
	mul(quantity.Mass, "lb", 0.453592),

	mul(quantity.Force, "N", 1),
	mul(quantity.Force, "kN", 1000),
	mul(quantity.Force, "dyne", 1e-5),
	mul(quantity.Force, "lbf", 4.44822),

	mul(quantity.Energy, "J", 1),
	mul(quantity.Energy, "kJ", 1000),
	mul(quantity.Energy, "erg", 1e-7),
	mul(quantity.Energy, "eV", 1.602e-19),
	mul(quantity.Energy, "cal", 4.184),
	mul(quantity.Energy, "kcal", 4184),
	mul(quantity.Energy, "kWh", 3.6e6),
	mul(quantity.Energy, "ft·lbf", 1.35582),

	mul(quantity.Power, "W", 1),
	mul(quantity.Power, "kW", 1000),
	mul(quantity.Power, "hp", 745.7),
	mul(quantity.Power, "ft·lbf/s", 1.35582),

	mul(quantity.Pressure, "Pa", 1),
	mul(quantity.Pressure, "kPa", 1e3),
	mul(quantity.Pressure, "MPa", 1e6),
	mul(quantity.Pressure, "bar", 1e5),
	mul(quantity.Pressure, "atm", 101325),
	mul(quantity.Pressure, "psi", 6894.76),

	mul(quantity.Temperature, "K", 1),
	{Kind: quantity.Temperature, Symbol: "°C", Factor: 1, Offset: 273.15, Affine: true},
	{Kind: quantity.Temperature, Symbol: "°F", Factor: 5.0 / 9.0, Offset: 459.67, Affine: true},

	mul(quantity.Angle, "rad", 1),
	mul(quantity.Angle, "deg", math.Pi/180),

	mul(quantity.Charge, "C", 1),
	mul(quantity.Charge, "μC", 1e-6),
	mul(quantity.Charge, "nC", 1e-9),

	mul(quantity.Voltage, "V", 1),
	mul(quantity.Voltage, "kV", 1000),
	mul(quantity.Voltage, "mV", 0.001),

	mul(quantity.Resistance, "Ω", 1),
	mul(quantity.Resistance, "kΩ", 1000),
	mul(quantity.Resistance, "MΩ", 1e6),

	mul(quantity.Current, "A", 1),
	mul(quantity.Current, "mA", 0.001),
	mul(quantity.Current, "kA", 1000),
}

var defaultTable = MustTable(defaultDefinitions...)

// Default returns the process-wide unit table.
func Default() *Table { return defaultTable }

// UnitsFor lists the units of kind in the default table.
func UnitsFor(kind quantity.Kind) []string { return defaultTable.UnitsFor(kind) }

// ToSI converts with the default table.
func ToSI(kind quantity.Kind, value float64, unit string) float64 {
	return defaultTable.ToSI(kind, value, unit)
}

// FromSI converts with the default table.
func FromSI(kind quantity.Kind, value float64, unit string) float64 {
	return defaultTable.FromSI(kind, value, unit)
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }
