package formula

import (
	"math"

	"physiquist/internal/quantity"
)

func modern() []*Formula {
	cat := CategoryModern
	const c, h = SpeedOfLight, PlanckConst
	return []*Formula{
		define(cat, "Mass-Energy Equivalence", "E = m * c^2",
			vars(
				sym("E", quantity.Energy, "rest energy"),
				sym("m", quantity.Mass, "rest mass"),
			),
			map[string]Inversion{
				"E": func(in Values) (float64, error) { return in["m"] * c * c, nil },
				"m": func(in Values) (float64, error) { return in["E"] / (c * c), nil },
			}),

		define(cat, "Photon Energy", "E = h * f",
			vars(
				sym("E", quantity.Energy, "photon energy"),
				hertz("f", "frequency"),
			),
			map[string]Inversion{
				"E": func(in Values) (float64, error) { return h * in["f"], nil },
				"f": func(in Values) (float64, error) { return in["E"] / h, nil },
			}),

		define(cat, "de Broglie Wavelength", "λ = h / p",
			vars(
				sym("λ", quantity.Length, "wavelength"),
				sym("p", quantity.Dimensionless, "momentum (kg·m/s)"),
			),
			map[string]Inversion{
				"λ": func(in Values) (float64, error) { return quo(h, in["p"], "p") },
				"p": func(in Values) (float64, error) { return quo(h, in["λ"], "λ") },
			}),

		define(cat, "Photoelectric Effect", "KE = h * f - φ",
			vars(
				sym("KE", quantity.Energy, "maximum kinetic energy"),
				hertz("f", "incident frequency"),
				sym("φ", quantity.Energy, "work function"),
			),
			map[string]Inversion{
				"KE": func(in Values) (float64, error) { return h*in["f"] - in["φ"], nil },
				"f":  func(in Values) (float64, error) { return (in["KE"] + in["φ"]) / h, nil },
				"φ":  func(in Values) (float64, error) { return h*in["f"] - in["KE"], nil },
			}),

		define(cat, "Electromagnetic Wave", "c = f * λ",
			vars(
				hertz("f", "frequency"),
				sym("λ", quantity.Length, "wavelength"),
			),
			map[string]Inversion{
				"f": func(in Values) (float64, error) { return quo(c, in["λ"], "λ") },
				"λ": func(in Values) (float64, error) { return quo(c, in["f"], "f") },
			}),

		define(cat, "Half-Life", "t½ = ln(2) / λ",
			vars(
				sym("t½", quantity.Time, "half-life"),
				sym("λ", quantity.Dimensionless, "decay constant (1/s)"),
			),
			map[string]Inversion{
				"t½": func(in Values) (float64, error) { return quo(math.Ln2, in["λ"], "λ") },
				"λ":  func(in Values) (float64, error) { return quo(math.Ln2, in["t½"], "t½") },
			}),

		define(cat, "Radioactive Decay Law", "N = N0 * e^(-λ*t)",
			vars(
				sym("N", quantity.Dimensionless, "remaining nuclei"),
				sym("N0", quantity.Dimensionless, "initial nuclei"),
				sym("λ", quantity.Dimensionless, "decay constant (1/s)"),
				sym("t", quantity.Time, "elapsed time"),
			),
			map[string]Inversion{
				"N":  func(in Values) (float64, error) { return in["N0"] * math.Exp(-in["λ"]*in["t"]), nil },
				"N0": func(in Values) (float64, error) { return in["N"] * math.Exp(in["λ"]*in["t"]), nil },
				"λ": func(in Values) (float64, error) {
					l, err := decayLog(in)
					if err != nil {
						return 0, err
					}
					return quo(l, in["t"], "t")
				},
				"t": func(in Values) (float64, error) {
					l, err := decayLog(in)
					if err != nil {
						return 0, err
					}
					return quo(l, in["λ"], "λ")
				},
			}),
	}
}

// decayLog is ln(N0/N).
func decayLog(in Values) (float64, error) {
	q, err := quo(in["N0"], in["N"], "N")
	if err != nil {
		return 0, err
	}
	return ln(q, "N0/N")
}
