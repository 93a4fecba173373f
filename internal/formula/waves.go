package formula

import (
	"math"

	"physiquist/internal/quantity"
)

func hertz(symbol, desc string) Variable { return sym(symbol, quantity.Dimensionless, desc+" (Hz)") }

func waves() []*Formula {
	cat := CategoryWaves
	return []*Formula{
		define(cat, "Wave Speed", "v = f * λ",
			vars(
				sym("v", quantity.Dimensionless, "wave speed (m/s)"),
				hertz("f", "frequency"),
				sym("λ", quantity.Length, "wavelength"),
			),
			map[string]Inversion{
				"v": func(in Values) (float64, error) { return in["f"] * in["λ"], nil },
				"f": func(in Values) (float64, error) { return quo(in["v"], in["λ"], "λ") },
				"λ": func(in Values) (float64, error) { return quo(in["v"], in["f"], "f") },
			}),

		define(cat, "Period", "T = 1 / f",
			vars(
				sym("T", quantity.Time, "period"),
				hertz("f", "frequency"),
			),
			map[string]Inversion{
				"T": func(in Values) (float64, error) { return quo(1, in["f"], "f") },
				"f": func(in Values) (float64, error) { return quo(1, in["T"], "T") },
			}),

		define(cat, "Simple Pendulum", "T = 2π * sqrt(L / g)",
			vars(
				sym("T", quantity.Time, "period"),
				sym("L", quantity.Length, "pendulum length"),
			),
			map[string]Inversion{
				"T": func(in Values) (float64, error) {
					r, err := sqrt(in["L"]/g, "L")
					return 2 * math.Pi * r, err
				},
				"L": func(in Values) (float64, error) {
					w := in["T"] / (2 * math.Pi)
					return g * w * w, nil
				},
			}),

		define(cat, "Mass-Spring Period", "T = 2π * sqrt(m / k)",
			vars(
				sym("T", quantity.Time, "period"),
				sym("m", quantity.Mass, "mass"),
				sym("k", quantity.Dimensionless, "spring constant (N/m)"),
			),
			map[string]Inversion{
				"T": func(in Values) (float64, error) {
					r, err := sqrtQuo(in["m"], in["k"], "k")
					return 2 * math.Pi * r, err
				},
				"m": func(in Values) (float64, error) {
					w := in["T"] / (2 * math.Pi)
					return in["k"] * w * w, nil
				},
				"k": func(in Values) (float64, error) {
					w := in["T"] / (2 * math.Pi)
					return quo(in["m"], w*w, "T")
				},
			}),

		define(cat, "Hooke's Law", "F = k * x",
			vars(
				sym("F", quantity.Force, "restoring force"),
				sym("k", quantity.Dimensionless, "spring constant (N/m)"),
				sym("x", quantity.Length, "extension"),
			),
			map[string]Inversion{
				"F": func(in Values) (float64, error) { return in["k"] * in["x"], nil },
				"k": func(in Values) (float64, error) { return quo(in["F"], in["x"], "x") },
				"x": func(in Values) (float64, error) { return quo(in["F"], in["k"], "k") },
			}),

		define(cat, "Energy in Simple Harmonic Oscillator", "E = 0.5 * k * A^2",
			vars(
				sym("E", quantity.Energy, "total energy"),
				sym("k", quantity.Dimensionless, "spring constant (N/m)"),
				sym("A", quantity.Length, "amplitude"),
			),
			map[string]Inversion{
				"E": func(in Values) (float64, error) { return 0.5 * in["k"] * in["A"] * in["A"], nil },
				"k": func(in Values) (float64, error) { return quo(2*in["E"], in["A"]*in["A"], "A") },
				"A": func(in Values) (float64, error) { return sqrtQuo(2*in["E"], in["k"], "k") },
			}),

		define(cat, "Resonance Frequency", "f = 1 / (2π * sqrt(L * C))",
			vars(
				hertz("f", "resonant frequency"),
				sym("L", quantity.Dimensionless, "inductance (H)"),
				sym("C", quantity.Dimensionless, "capacitance (F)"),
			),
			map[string]Inversion{
				"f": func(in Values) (float64, error) {
					r, err := sqrt(in["L"]*in["C"], "L·C")
					if err != nil {
						return 0, err
					}
					return quo(1, 2*math.Pi*r, "L·C")
				},
				"L": func(in Values) (float64, error) {
					w := 2 * math.Pi * in["f"]
					return quo(1, w*w*in["C"], "f·C")
				},
				"C": func(in Values) (float64, error) {
					w := 2 * math.Pi * in["f"]
					return quo(1, w*w*in["L"], "f·L")
				},
			}),

		// Observer moving towards the source and source moving away from the observer
		// are both positive.
		define(cat, "Doppler Effect", "f' = f * (v + vo) / (v - vs)",
			vars(
				hertz("f'", "observed frequency"),
				hertz("f", "emitted frequency"),
				sym("v", quantity.Dimensionless, "wave speed in the medium (m/s)"),
				sym("vo", quantity.Dimensionless, "observer speed (m/s)"),
				sym("vs", quantity.Dimensionless, "source speed (m/s)"),
			),
			map[string]Inversion{
				"f'": func(in Values) (float64, error) {
					return quo(in["f"]*(in["v"]+in["vo"]), in["v"]-in["vs"], "v-vs")
				},
				"f": func(in Values) (float64, error) {
					return quo(in["f'"]*(in["v"]-in["vs"]), in["v"]+in["vo"], "v+vo")
				},
				"v": func(in Values) (float64, error) {
					return quo(in["f"]*in["vo"]+in["f'"]*in["vs"], in["f'"]-in["f"], "f'-f")
				},
				"vo": func(in Values) (float64, error) {
					q, err := quo(in["f'"]*(in["v"]-in["vs"]), in["f"], "f")
					return q - in["v"], err
				},
				"vs": func(in Values) (float64, error) {
					q, err := quo(in["f"]*(in["v"]+in["vo"]), in["f'"], "f'")
					return in["v"] - q, err
				},
			}),

		define(cat, "Sound Intensity", "I = P / A",
			vars(
				sym("I", quantity.Dimensionless, "intensity (W/m²)"),
				sym("P", quantity.Power, "acoustic power"),
				sym("A", quantity.Dimensionless, "area (m²)"),
			),
			map[string]Inversion{
				"I": func(in Values) (float64, error) { return quo(in["P"], in["A"], "A") },
				"P": func(in Values) (float64, error) { return in["I"] * in["A"], nil },
				"A": func(in Values) (float64, error) { return quo(in["P"], in["I"], "I") },
			}),

		define(cat, "Decibel Formula", "β = 10 * log10(I / I0)",
			vars(
				sym("β", quantity.Dimensionless, "sound level (dB)"),
				sym("I", quantity.Dimensionless, "intensity (W/m²)"),
			),
			map[string]Inversion{
				"β": func(in Values) (float64, error) {
					l, err := ln(in["I"]/HearingThreshold, "I")
					return 10 * l / math.Ln10, err
				},
				"I": func(in Values) (float64, error) {
					return HearingThreshold * math.Pow(10, in["β"]/10), nil
				},
			}),
	}
}
