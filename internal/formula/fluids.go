package formula

import "physiquist/internal/quantity"

func fluids() []*Formula {
	cat := CategoryFluids
	volume := func(symbol, desc string) Variable { return sym(symbol, quantity.Dimensionless, desc+" (m³)") }
	return []*Formula{
		define(cat, "Pressure", "P = F / A",
			vars(
				sym("P", quantity.Pressure, "pressure"),
				sym("F", quantity.Force, "normal force"),
				sym("A", quantity.Dimensionless, "area (m²)"),
			),
			map[string]Inversion{
				"P": func(in Values) (float64, error) { return quo(in["F"], in["A"], "A") },
				"F": func(in Values) (float64, error) { return in["P"] * in["A"], nil },
				"A": func(in Values) (float64, error) { return quo(in["F"], in["P"], "P") },
			}),

		define(cat, "Density", "ρ = m / V",
			vars(
				sym("ρ", quantity.Dimensionless, "density (kg/m³)"),
				sym("m", quantity.Mass, "mass"),
				volume("V", "volume"),
			),
			map[string]Inversion{
				"ρ": func(in Values) (float64, error) { return quo(in["m"], in["V"], "V") },
				"m": func(in Values) (float64, error) { return in["ρ"] * in["V"], nil },
				"V": func(in Values) (float64, error) { return quo(in["m"], in["ρ"], "ρ") },
			}),

		define(cat, "Pressure due to Depth", "P = ρ * g * h",
			vars(
				sym("P", quantity.Pressure, "hydrostatic pressure"),
				sym("ρ", quantity.Dimensionless, "fluid density (kg/m³)"),
				sym("h", quantity.Length, "depth"),
			),
			map[string]Inversion{
				"P": func(in Values) (float64, error) { return in["ρ"] * g * in["h"], nil },
				"ρ": func(in Values) (float64, error) { return quo(in["P"], g*in["h"], "h") },
				"h": func(in Values) (float64, error) { return quo(in["P"], in["ρ"]*g, "ρ") },
			}),

		define(cat, "Pascal's Law", "F1 / A1 = F2 / A2",
			vars(
				sym("F1", quantity.Force, "input force"),
				sym("A1", quantity.Dimensionless, "input piston area (m²)"),
				sym("F2", quantity.Force, "output force"),
				sym("A2", quantity.Dimensionless, "output piston area (m²)"),
			),
			map[string]Inversion{
				"F1": func(in Values) (float64, error) { return quo(in["F2"]*in["A1"], in["A2"], "A2") },
				"A1": func(in Values) (float64, error) { return quo(in["F1"]*in["A2"], in["F2"], "F2") },
				"F2": func(in Values) (float64, error) { return quo(in["F1"]*in["A2"], in["A1"], "A1") },
				"A2": func(in Values) (float64, error) { return quo(in["F2"]*in["A1"], in["F1"], "F1") },
			}),

		define(cat, "Elasticity", "Y = (F / A) / (ΔL / L)",
			vars(
				sym("Y", quantity.Pressure, "Young's modulus"),
				sym("F", quantity.Force, "applied force"),
				sym("A", quantity.Dimensionless, "cross-sectional area (m²)"),
				sym("ΔL", quantity.Length, "extension"),
				sym("L", quantity.Length, "original length"),
			),
			map[string]Inversion{
				"Y":  func(in Values) (float64, error) { return quo(in["F"]*in["L"], in["A"]*in["ΔL"], "A·ΔL") },
				"F":  func(in Values) (float64, error) { return quo(in["Y"]*in["A"]*in["ΔL"], in["L"], "L") },
				"A":  func(in Values) (float64, error) { return quo(in["F"]*in["L"], in["Y"]*in["ΔL"], "Y·ΔL") },
				"ΔL": func(in Values) (float64, error) { return quo(in["F"]*in["L"], in["Y"]*in["A"], "Y·A") },
				"L":  func(in Values) (float64, error) { return quo(in["Y"]*in["A"]*in["ΔL"], in["F"], "F") },
			}),

		define(cat, "Boyle's Law", "P1 * V1 = P2 * V2",
			vars(
				sym("P1", quantity.Pressure, "initial pressure"),
				volume("V1", "initial volume"),
				sym("P2", quantity.Pressure, "final pressure"),
				volume("V2", "final volume"),
			),
			map[string]Inversion{
				"P1": func(in Values) (float64, error) { return quo(in["P2"]*in["V2"], in["V1"], "V1") },
				"V1": func(in Values) (float64, error) { return quo(in["P2"]*in["V2"], in["P1"], "P1") },
				"P2": func(in Values) (float64, error) { return quo(in["P1"]*in["V1"], in["V2"], "V2") },
				"V2": func(in Values) (float64, error) { return quo(in["P1"]*in["V1"], in["P2"], "P2") },
			}),

		define(cat, "Charles's Law", "V1 / T1 = V2 / T2",
			vars(
				volume("V1", "initial volume"),
				sym("T1", quantity.Temperature, "initial temperature"),
				volume("V2", "final volume"),
				sym("T2", quantity.Temperature, "final temperature"),
			),
			map[string]Inversion{
				"V1": func(in Values) (float64, error) { return quo(in["V2"]*in["T1"], in["T2"], "T2") },
				"T1": func(in Values) (float64, error) { return quo(in["V1"]*in["T2"], in["V2"], "V2") },
				"V2": func(in Values) (float64, error) { return quo(in["V1"]*in["T2"], in["T1"], "T1") },
				"T2": func(in Values) (float64, error) { return quo(in["V2"]*in["T1"], in["V1"], "V1") },
			}),

		define(cat, "Gay-Lussac's Law", "P1 / T1 = P2 / T2",
			vars(
				sym("P1", quantity.Pressure, "initial pressure"),
				sym("T1", quantity.Temperature, "initial temperature"),
				sym("P2", quantity.Pressure, "final pressure"),
				sym("T2", quantity.Temperature, "final temperature"),
			),
			map[string]Inversion{
				"P1": func(in Values) (float64, error) { return quo(in["P2"]*in["T1"], in["T2"], "T2") },
				"T1": func(in Values) (float64, error) { return quo(in["P1"]*in["T2"], in["P2"], "P2") },
				"P2": func(in Values) (float64, error) { return quo(in["P1"]*in["T2"], in["T1"], "T1") },
				"T2": func(in Values) (float64, error) { return quo(in["P2"]*in["T1"], in["P1"], "P1") },
			}),

		define(cat, "Avogadro's Law", "V1 / n1 = V2 / n2",
			vars(
				volume("V1", "initial volume"),
				sym("n1", quantity.Dimensionless, "initial amount (mol)"),
				volume("V2", "final volume"),
				sym("n2", quantity.Dimensionless, "final amount (mol)"),
			),
			map[string]Inversion{
				"V1": func(in Values) (float64, error) { return quo(in["V2"]*in["n1"], in["n2"], "n2") },
				"n1": func(in Values) (float64, error) { return quo(in["V1"]*in["n2"], in["V2"], "V2") },
				"V2": func(in Values) (float64, error) { return quo(in["V1"]*in["n2"], in["n1"], "n1") },
				"n2": func(in Values) (float64, error) { return quo(in["V2"]*in["n1"], in["V1"], "V1") },
			}),

		define(cat, "Combined Gas Law", "P1*V1 / T1 = P2*V2 / T2",
			vars(
				sym("P1", quantity.Pressure, "initial pressure"),
				volume("V1", "initial volume"),
				sym("T1", quantity.Temperature, "initial temperature"),
				sym("P2", quantity.Pressure, "final pressure"),
				volume("V2", "final volume"),
				sym("T2", quantity.Temperature, "final temperature"),
			),
			map[string]Inversion{
				"P1": func(in Values) (float64, error) { return quo(in["P2"]*in["V2"]*in["T1"], in["V1"]*in["T2"], "V1·T2") },
				"V1": func(in Values) (float64, error) { return quo(in["P2"]*in["V2"]*in["T1"], in["P1"]*in["T2"], "P1·T2") },
				"T1": func(in Values) (float64, error) { return quo(in["P1"]*in["V1"]*in["T2"], in["P2"]*in["V2"], "P2·V2") },
				"P2": func(in Values) (float64, error) { return quo(in["P1"]*in["V1"]*in["T2"], in["V2"]*in["T1"], "V2·T1") },
				"V2": func(in Values) (float64, error) { return quo(in["P1"]*in["V1"]*in["T2"], in["P2"]*in["T1"], "P2·T1") },
				"T2": func(in Values) (float64, error) { return quo(in["P2"]*in["V2"]*in["T1"], in["P1"]*in["V1"], "P1·V1") },
			}),

		define(cat, "Ideal Gas Law", "P * V = n * R * T",
			vars(
				sym("P", quantity.Pressure, "pressure"),
				volume("V", "volume"),
				sym("n", quantity.Dimensionless, "amount of gas (mol)"),
				sym("T", quantity.Temperature, "absolute temperature"),
			),
			map[string]Inversion{
				"P": func(in Values) (float64, error) { return quo(in["n"]*GasConst*in["T"], in["V"], "V") },
				"V": func(in Values) (float64, error) { return quo(in["n"]*GasConst*in["T"], in["P"], "P") },
				"n": func(in Values) (float64, error) { return quo(in["P"]*in["V"], GasConst*in["T"], "T") },
				"T": func(in Values) (float64, error) { return quo(in["P"]*in["V"], in["n"]*GasConst, "n") },
			}),

		define(cat, "Dalton's Law", "Ptotal = P1 + P2 + P3",
			vars(
				sym("Ptotal", quantity.Pressure, "total pressure"),
				sym("P1", quantity.Pressure, "partial pressure 1"),
				sym("P2", quantity.Pressure, "partial pressure 2"),
				sym("P3", quantity.Pressure, "partial pressure 3"),
			),
			map[string]Inversion{
				"Ptotal": func(in Values) (float64, error) { return in["P1"] + in["P2"] + in["P3"], nil },
				"P1":     func(in Values) (float64, error) { return in["Ptotal"] - in["P2"] - in["P3"], nil },
				"P2":     func(in Values) (float64, error) { return in["Ptotal"] - in["P1"] - in["P3"], nil },
				"P3":     func(in Values) (float64, error) { return in["Ptotal"] - in["P1"] - in["P2"], nil },
			}),

		define(cat, "Pressure in Gases", "P = (1/3) * ρ * v^2",
			vars(
				sym("P", quantity.Pressure, "gas pressure"),
				sym("ρ", quantity.Dimensionless, "gas density (kg/m³)"),
				sym("v", quantity.Dimensionless, "root-mean-square speed (m/s)"),
			),
			map[string]Inversion{
				"P": func(in Values) (float64, error) { return in["ρ"] * in["v"] * in["v"] / 3, nil },
				"ρ": func(in Values) (float64, error) { return quo(3*in["P"], in["v"]*in["v"], "v") },
				"v": func(in Values) (float64, error) { return sqrtQuo(3*in["P"], in["ρ"], "ρ") },
			}),
	}
}
