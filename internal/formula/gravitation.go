package formula

import (
	"math"

	"physiquist/internal/quantity"
)

const bigG = GravitationalConst

func gravitation() []*Formula {
	cat := CategoryGravitation
	return []*Formula{
		define(cat, "Gravitational Force", "F = G * m1 * m2 / r^2",
			vars(
				sym("F", quantity.Force, "gravitational force"),
				sym("m1", quantity.Mass, "first mass"),
				sym("m2", quantity.Mass, "second mass"),
				sym("r", quantity.Length, "distance between centres"),
			),
			map[string]Inversion{
				"F":  func(in Values) (float64, error) { return quo(bigG*in["m1"]*in["m2"], in["r"]*in["r"], "r") },
				"m1": func(in Values) (float64, error) { return quo(in["F"]*in["r"]*in["r"], bigG*in["m2"], "m2") },
				"m2": func(in Values) (float64, error) { return quo(in["F"]*in["r"]*in["r"], bigG*in["m1"], "m1") },
				"r":  func(in Values) (float64, error) { return sqrtQuo(bigG*in["m1"]*in["m2"], in["F"], "F") },
			}),

		define(cat, "Acceleration due to Gravity", "g = G * M / r^2",
			vars(
				sym("g", quantity.Dimensionless, "gravitational acceleration (m/s²)"),
				sym("M", quantity.Mass, "mass of the body"),
				sym("r", quantity.Length, "distance from the centre"),
			),
			map[string]Inversion{
				"g": func(in Values) (float64, error) { return quo(bigG*in["M"], in["r"]*in["r"], "r") },
				"M": func(in Values) (float64, error) { return in["g"] * in["r"] * in["r"] / bigG, nil },
				"r": func(in Values) (float64, error) { return sqrtQuo(bigG*in["M"], in["g"], "g") },
			}),

		define(cat, "Gravitational Potential Energy", "U = -G * M * m / r",
			vars(
				sym("U", quantity.Energy, "potential energy"),
				sym("M", quantity.Mass, "mass of the body"),
				sym("m", quantity.Mass, "mass of the object"),
				sym("r", quantity.Length, "distance from the centre"),
			),
			map[string]Inversion{
				"U": func(in Values) (float64, error) { return quo(-bigG*in["M"]*in["m"], in["r"], "r") },
				"M": func(in Values) (float64, error) { return quo(-in["U"]*in["r"], bigG*in["m"], "m") },
				"m": func(in Values) (float64, error) { return quo(-in["U"]*in["r"], bigG*in["M"], "M") },
				"r": func(in Values) (float64, error) { return quo(-bigG*in["M"]*in["m"], in["U"], "U") },
			}),

		define(cat, "Orbital Velocity", "v = sqrt(G * M / r)",
			vars(
				sym("v", quantity.Dimensionless, "orbital speed (m/s)"),
				sym("M", quantity.Mass, "mass of the central body"),
				sym("r", quantity.Length, "orbital radius"),
			),
			map[string]Inversion{
				"v": func(in Values) (float64, error) { return sqrtQuo(bigG*in["M"], in["r"], "r") },
				"M": func(in Values) (float64, error) { return in["v"] * in["v"] * in["r"] / bigG, nil },
				"r": func(in Values) (float64, error) { return quo(bigG*in["M"], in["v"]*in["v"], "v") },
			}),

		define(cat, "Kepler's Laws", "T^2 = (4π² / (G*M)) * r^3",
			vars(
				sym("T", quantity.Time, "orbital period"),
				sym("M", quantity.Mass, "mass of the central body"),
				sym("r", quantity.Length, "semi-major axis"),
			),
			map[string]Inversion{
				"T": func(in Values) (float64, error) {
					r := in["r"]
					return sqrtQuo(4*math.Pi*math.Pi*r*r*r, bigG*in["M"], "M")
				},
				"M": func(in Values) (float64, error) {
					r := in["r"]
					return quo(4*math.Pi*math.Pi*r*r*r, bigG*in["T"]*in["T"], "T")
				},
				"r": func(in Values) (float64, error) {
					return math.Cbrt(bigG * in["M"] * in["T"] * in["T"] / (4 * math.Pi * math.Pi)), nil
				},
			}),

		define(cat, "Moment of Inertia", "I = m * r^2",
			vars(
				sym("I", quantity.Dimensionless, "moment of inertia (kg·m²)"),
				sym("m", quantity.Mass, "point mass"),
				sym("r", quantity.Length, "distance from the axis"),
			),
			map[string]Inversion{
				"I": func(in Values) (float64, error) { return in["m"] * in["r"] * in["r"], nil },
				"m": func(in Values) (float64, error) { return quo(in["I"], in["r"]*in["r"], "r") },
				"r": func(in Values) (float64, error) { return sqrtQuo(in["I"], in["m"], "m") },
			}),

		define(cat, "Distance-Time Relation", "h = 0.5 * g * t^2",
			vars(
				sym("h", quantity.Length, "distance fallen"),
				sym("t", quantity.Time, "time of fall"),
			),
			map[string]Inversion{
				"h": func(in Values) (float64, error) { return 0.5 * g * in["t"] * in["t"], nil },
				"t": func(in Values) (float64, error) { return sqrt(2*in["h"]/g, "h") },
			}),

		define(cat, "Velocity-Time Relation", "v = g * t",
			vars(
				sym("v", quantity.Dimensionless, "speed after falling (m/s)"),
				sym("t", quantity.Time, "time of fall"),
			),
			map[string]Inversion{
				"v": func(in Values) (float64, error) { return g * in["t"], nil },
				"t": func(in Values) (float64, error) { return in["v"] / g, nil },
			}),
	}
}
