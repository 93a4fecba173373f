package formula

import "physiquist/internal/quantity"

// Temperature differences are declared dimensionless (kelvin): an affine unit offset
// must not be applied to a difference.
func thermodynamics() []*Formula {
	cat := CategoryThermodynamics
	return []*Formula{
		define(cat, "Temperature Conversion", "F = 1.8 * C + 32",
			vars(
				sym("F", quantity.Dimensionless, "temperature (°F)"),
				sym("C", quantity.Dimensionless, "temperature (°C)"),
			),
			map[string]Inversion{
				"F": func(in Values) (float64, error) { return 1.8*in["C"] + 32, nil },
				"C": func(in Values) (float64, error) { return (in["F"] - 32) / 1.8, nil },
			}),

		define(cat, "Specific Heat", "Q = m * c * ΔT",
			vars(
				sym("Q", quantity.Energy, "heat"),
				sym("m", quantity.Mass, "mass"),
				sym("c", quantity.Dimensionless, "specific heat capacity (J/(kg·K))"),
				sym("ΔT", quantity.Dimensionless, "temperature change (K)"),
			),
			map[string]Inversion{
				"Q":  func(in Values) (float64, error) { return in["m"] * in["c"] * in["ΔT"], nil },
				"m":  func(in Values) (float64, error) { return quo(in["Q"], in["c"]*in["ΔT"], "c·ΔT") },
				"c":  func(in Values) (float64, error) { return quo(in["Q"], in["m"]*in["ΔT"], "m·ΔT") },
				"ΔT": func(in Values) (float64, error) { return quo(in["Q"], in["m"]*in["c"], "m·c") },
			}),

		define(cat, "Thermal Expansion", "ΔL = α * L * ΔT",
			vars(
				sym("ΔL", quantity.Length, "change in length"),
				sym("α", quantity.Dimensionless, "linear expansion coefficient (1/K)"),
				sym("L", quantity.Length, "original length"),
				sym("ΔT", quantity.Dimensionless, "temperature change (K)"),
			),
			map[string]Inversion{
				"ΔL": func(in Values) (float64, error) { return in["α"] * in["L"] * in["ΔT"], nil },
				"α":  func(in Values) (float64, error) { return quo(in["ΔL"], in["L"]*in["ΔT"], "L·ΔT") },
				"L":  func(in Values) (float64, error) { return quo(in["ΔL"], in["α"]*in["ΔT"], "α·ΔT") },
				"ΔT": func(in Values) (float64, error) { return quo(in["ΔL"], in["α"]*in["L"], "α·L") },
			}),

		define(cat, "First Law of Thermodynamics", "ΔU = Q - W",
			vars(
				sym("ΔU", quantity.Energy, "change in internal energy"),
				sym("Q", quantity.Energy, "heat added"),
				sym("W", quantity.Energy, "work done by the system"),
			),
			map[string]Inversion{
				"ΔU": func(in Values) (float64, error) { return in["Q"] - in["W"], nil },
				"Q":  func(in Values) (float64, error) { return in["ΔU"] + in["W"], nil },
				"W":  func(in Values) (float64, error) { return in["Q"] - in["ΔU"], nil },
			}),

		define(cat, "Efficiency of Heat Engine", "η = W / Qh",
			vars(
				sym("η", quantity.Dimensionless, "efficiency"),
				sym("W", quantity.Energy, "work output"),
				sym("Qh", quantity.Energy, "heat absorbed"),
			),
			map[string]Inversion{
				"η":  func(in Values) (float64, error) { return quo(in["W"], in["Qh"], "Qh") },
				"W":  func(in Values) (float64, error) { return in["η"] * in["Qh"], nil },
				"Qh": func(in Values) (float64, error) { return quo(in["W"], in["η"], "η") },
			}),

		define(cat, "Carnot Efficiency", "η = 1 - Tc / Th",
			vars(
				sym("η", quantity.Dimensionless, "maximum efficiency"),
				sym("Tc", quantity.Temperature, "cold reservoir temperature"),
				sym("Th", quantity.Temperature, "hot reservoir temperature"),
			),
			map[string]Inversion{
				"η": func(in Values) (float64, error) {
					q, err := quo(in["Tc"], in["Th"], "Th")
					return 1 - q, err
				},
				"Tc": func(in Values) (float64, error) { return in["Th"] * (1 - in["η"]), nil },
				"Th": func(in Values) (float64, error) { return quo(in["Tc"], 1-in["η"], "1-η") },
			}),

		define(cat, "Entropy", "ΔS = Q / T",
			vars(
				sym("ΔS", quantity.Dimensionless, "entropy change (J/K)"),
				sym("Q", quantity.Energy, "heat transferred"),
				sym("T", quantity.Temperature, "absolute temperature"),
			),
			map[string]Inversion{
				"ΔS": func(in Values) (float64, error) { return quo(in["Q"], in["T"], "T") },
				"Q":  func(in Values) (float64, error) { return in["ΔS"] * in["T"], nil },
				"T":  func(in Values) (float64, error) { return quo(in["Q"], in["ΔS"], "ΔS") },
			}),
	}
}
