package formula

import (
	"math"

	"physiquist/internal/quantity"
)

const ke = CoulombConst

func electricity() []*Formula {
	cat := CategoryElectricity
	return []*Formula{
		define(cat, "Ohm's Law", "V = I * R",
			vars(
				sym("V", quantity.Voltage, "voltage"),
				sym("I", quantity.Current, "current"),
				sym("R", quantity.Resistance, "resistance"),
			),
			map[string]Inversion{
				"V": func(in Values) (float64, error) { return in["I"] * in["R"], nil },
				"I": func(in Values) (float64, error) { return quo(in["V"], in["R"], "R") },
				"R": func(in Values) (float64, error) { return quo(in["V"], in["I"], "I") },
			}),

		define(cat, "Electric Power", "P = V * I",
			vars(
				sym("P", quantity.Power, "power"),
				sym("V", quantity.Voltage, "voltage"),
				sym("I", quantity.Current, "current"),
			),
			map[string]Inversion{
				"P": func(in Values) (float64, error) { return in["V"] * in["I"], nil },
				"V": func(in Values) (float64, error) { return quo(in["P"], in["I"], "I") },
				"I": func(in Values) (float64, error) { return quo(in["P"], in["V"], "V") },
			}),

		// F is positive for repulsion; r has no real solution when F and q1·q2 differ in sign.
		define(cat, "Coulomb's Law", "F = k * q1 * q2 / r^2",
			vars(
				sym("F", quantity.Force, "electrostatic force"),
				sym("q1", quantity.Charge, "first charge"),
				sym("q2", quantity.Charge, "second charge"),
				sym("r", quantity.Length, "separation"),
			),
			map[string]Inversion{
				"F":  func(in Values) (float64, error) { return quo(ke*in["q1"]*in["q2"], in["r"]*in["r"], "r") },
				"q1": func(in Values) (float64, error) { return quo(in["F"]*in["r"]*in["r"], ke*in["q2"], "q2") },
				"q2": func(in Values) (float64, error) { return quo(in["F"]*in["r"]*in["r"], ke*in["q1"], "q1") },
				"r":  func(in Values) (float64, error) { return sqrtQuo(ke*in["q1"]*in["q2"], in["F"], "F") },
			}),

		define(cat, "Electric Field", "E = F / q",
			vars(
				sym("E", quantity.Dimensionless, "field strength (N/C)"),
				sym("F", quantity.Force, "force on the test charge"),
				sym("q", quantity.Charge, "test charge"),
			),
			map[string]Inversion{
				"E": func(in Values) (float64, error) { return quo(in["F"], in["q"], "q") },
				"F": func(in Values) (float64, error) { return in["E"] * in["q"], nil },
				"q": func(in Values) (float64, error) { return quo(in["F"], in["E"], "E") },
			}),

		define(cat, "Electric Potential", "V = k * q / r",
			vars(
				sym("V", quantity.Voltage, "potential"),
				sym("q", quantity.Charge, "source charge"),
				sym("r", quantity.Length, "distance"),
			),
			map[string]Inversion{
				"V": func(in Values) (float64, error) { return quo(ke*in["q"], in["r"], "r") },
				"q": func(in Values) (float64, error) { return in["V"] * in["r"] / ke, nil },
				"r": func(in Values) (float64, error) { return quo(ke*in["q"], in["V"], "V") },
			}),

		define(cat, "Capacitance", "Q = C * V",
			vars(
				sym("Q", quantity.Charge, "stored charge"),
				sym("C", quantity.Dimensionless, "capacitance (F)"),
				sym("V", quantity.Voltage, "voltage"),
			),
			map[string]Inversion{
				"Q": func(in Values) (float64, error) { return in["C"] * in["V"], nil },
				"C": func(in Values) (float64, error) { return quo(in["Q"], in["V"], "V") },
				"V": func(in Values) (float64, error) { return quo(in["Q"], in["C"], "C") },
			}),

		define(cat, "Series Resistance", "Rs = R1 + R2 + R3",
			vars(
				sym("Rs", quantity.Resistance, "equivalent resistance"),
				sym("R1", quantity.Resistance, "resistor 1"),
				sym("R2", quantity.Resistance, "resistor 2"),
				sym("R3", quantity.Resistance, "resistor 3"),
			),
			map[string]Inversion{
				"Rs": func(in Values) (float64, error) { return in["R1"] + in["R2"] + in["R3"], nil },
				"R1": func(in Values) (float64, error) { return in["Rs"] - in["R2"] - in["R3"], nil },
				"R2": func(in Values) (float64, error) { return in["Rs"] - in["R1"] - in["R3"], nil },
				"R3": func(in Values) (float64, error) { return in["Rs"] - in["R1"] - in["R2"], nil },
			}),

		define(cat, "Parallel Resistance", "1/Rp = 1/R1 + 1/R2",
			vars(
				sym("Rp", quantity.Resistance, "equivalent resistance"),
				sym("R1", quantity.Resistance, "resistor 1"),
				sym("R2", quantity.Resistance, "resistor 2"),
			),
			map[string]Inversion{
				"Rp": func(in Values) (float64, error) { return quo(in["R1"]*in["R2"], in["R1"]+in["R2"], "R1+R2") },
				"R1": func(in Values) (float64, error) { return quo(in["Rp"]*in["R2"], in["R2"]-in["Rp"], "R2-Rp") },
				"R2": func(in Values) (float64, error) { return quo(in["Rp"]*in["R1"], in["R1"]-in["Rp"], "R1-Rp") },
			}),

		define(cat, "Resistivity", "R = ρ * L / A",
			vars(
				sym("R", quantity.Resistance, "resistance"),
				sym("ρ", quantity.Dimensionless, "resistivity (Ω·m)"),
				sym("L", quantity.Length, "conductor length"),
				sym("A", quantity.Dimensionless, "cross-sectional area (m²)"),
			),
			map[string]Inversion{
				"R": func(in Values) (float64, error) { return quo(in["ρ"]*in["L"], in["A"], "A") },
				"ρ": func(in Values) (float64, error) { return quo(in["R"]*in["A"], in["L"], "L") },
				"L": func(in Values) (float64, error) { return quo(in["R"]*in["A"], in["ρ"], "ρ") },
				"A": func(in Values) (float64, error) { return quo(in["ρ"]*in["L"], in["R"], "R") },
			}),

		define(cat, "Conductivity", "σ = L / (R * A)",
			vars(
				sym("σ", quantity.Dimensionless, "conductivity (S/m)"),
				sym("L", quantity.Length, "conductor length"),
				sym("R", quantity.Resistance, "resistance"),
				sym("A", quantity.Dimensionless, "cross-sectional area (m²)"),
			),
			map[string]Inversion{
				"σ": func(in Values) (float64, error) { return quo(in["L"], in["R"]*in["A"], "R·A") },
				"L": func(in Values) (float64, error) { return in["σ"] * in["R"] * in["A"], nil },
				"R": func(in Values) (float64, error) { return quo(in["L"], in["σ"]*in["A"], "σ·A") },
				"A": func(in Values) (float64, error) { return quo(in["L"], in["σ"]*in["R"], "σ·R") },
			}),

		define(cat, "Charge", "Q = I * t",
			vars(
				sym("Q", quantity.Charge, "charge"),
				sym("I", quantity.Current, "current"),
				sym("t", quantity.Time, "time"),
			),
			map[string]Inversion{
				"Q": func(in Values) (float64, error) { return in["I"] * in["t"], nil },
				"I": func(in Values) (float64, error) { return quo(in["Q"], in["t"], "t") },
				"t": func(in Values) (float64, error) { return quo(in["Q"], in["I"], "I") },
			}),

		define(cat, "Magnetic Field", "B = μ0 * I / (2π * r)",
			vars(
				sym("B", quantity.Dimensionless, "magnetic flux density (T)"),
				sym("I", quantity.Current, "current in the wire"),
				sym("r", quantity.Length, "distance from the wire"),
			),
			map[string]Inversion{
				"B": func(in Values) (float64, error) {
					return quo(VacuumPermeability*in["I"], 2*math.Pi*in["r"], "r")
				},
				"I": func(in Values) (float64, error) {
					return 2 * math.Pi * in["r"] * in["B"] / VacuumPermeability, nil
				},
				"r": func(in Values) (float64, error) {
					return quo(VacuumPermeability*in["I"], 2*math.Pi*in["B"], "B")
				},
			}),

		define(cat, "Inductance", "ε = L * ΔI / Δt",
			vars(
				sym("ε", quantity.Voltage, "induced emf"),
				sym("L", quantity.Dimensionless, "inductance (H)"),
				sym("ΔI", quantity.Current, "change in current"),
				sym("Δt", quantity.Time, "time interval"),
			),
			map[string]Inversion{
				"ε":  func(in Values) (float64, error) { return quo(in["L"]*in["ΔI"], in["Δt"], "Δt") },
				"L":  func(in Values) (float64, error) { return quo(in["ε"]*in["Δt"], in["ΔI"], "ΔI") },
				"ΔI": func(in Values) (float64, error) { return quo(in["ε"]*in["Δt"], in["L"], "L") },
				"Δt": func(in Values) (float64, error) { return quo(in["L"]*in["ΔI"], in["ε"], "ε") },
			}),

		define(cat, "Faraday's Law", "ε = N * ΔΦ / Δt",
			vars(
				sym("ε", quantity.Voltage, "induced emf"),
				sym("N", quantity.Dimensionless, "number of turns"),
				sym("ΔΦ", quantity.Dimensionless, "change in magnetic flux (Wb)"),
				sym("Δt", quantity.Time, "time interval"),
			),
			map[string]Inversion{
				"ε":  func(in Values) (float64, error) { return quo(in["N"]*in["ΔΦ"], in["Δt"], "Δt") },
				"N":  func(in Values) (float64, error) { return quo(in["ε"]*in["Δt"], in["ΔΦ"], "ΔΦ") },
				"ΔΦ": func(in Values) (float64, error) { return quo(in["ε"]*in["Δt"], in["N"], "N") },
				"Δt": func(in Values) (float64, error) { return quo(in["N"]*in["ΔΦ"], in["ε"], "ε") },
			}),
	}
}
