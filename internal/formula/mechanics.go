package formula

import "physiquist/internal/quantity"

func sym(symbol string, kind quantity.Kind, description string) Variable {
	return Variable{Symbol: symbol, Kind: kind, Description: description}
}

func vars(v ...Variable) []Variable { return v }

const g = StandardGravity

func mechanics() []*Formula {
	cat := CategoryMechanics
	return []*Formula{
		define(cat, "Velocity", "V = d / t",
			vars(
				sym("V", quantity.Dimensionless, "velocity (m/s)"),
				sym("d", quantity.Length, "distance"),
				sym("t", quantity.Time, "time"),
			),
			map[string]Inversion{
				"V": func(in Values) (float64, error) { return quo(in["d"], in["t"], "t") },
				"d": func(in Values) (float64, error) { return in["V"] * in["t"], nil },
				"t": func(in Values) (float64, error) { return quo(in["d"], in["V"], "V") },
			}),

		define(cat, "Acceleration", "a = (v - u) / t",
			vars(
				sym("a", quantity.Dimensionless, "acceleration (m/s²)"),
				sym("v", quantity.Dimensionless, "final velocity (m/s)"),
				sym("u", quantity.Dimensionless, "initial velocity (m/s)"),
				sym("t", quantity.Time, "time"),
			),
			map[string]Inversion{
				"a": func(in Values) (float64, error) { return quo(in["v"]-in["u"], in["t"], "t") },
				"v": func(in Values) (float64, error) { return in["u"] + in["a"]*in["t"], nil },
				"u": func(in Values) (float64, error) { return in["v"] - in["a"]*in["t"], nil },
				"t": func(in Values) (float64, error) { return quo(in["v"]-in["u"], in["a"], "a") },
			}),

		define(cat, "Time", "t = (v - u) / a",
			vars(
				sym("t", quantity.Time, "time"),
				sym("v", quantity.Dimensionless, "final velocity (m/s)"),
				sym("u", quantity.Dimensionless, "initial velocity (m/s)"),
				sym("a", quantity.Dimensionless, "acceleration (m/s²)"),
			),
			map[string]Inversion{
				"t": func(in Values) (float64, error) { return quo(in["v"]-in["u"], in["a"], "a") },
				"v": func(in Values) (float64, error) { return in["u"] + in["a"]*in["t"], nil },
				"u": func(in Values) (float64, error) { return in["v"] - in["a"]*in["t"], nil },
				"a": func(in Values) (float64, error) { return quo(in["v"]-in["u"], in["t"], "t") },
			}),

		define(cat, "Force", "F = m * a",
			vars(
				sym("F", quantity.Force, "force"),
				sym("m", quantity.Mass, "mass"),
				sym("a", quantity.Dimensionless, "acceleration (m/s²)"),
			),
			map[string]Inversion{
				"F": func(in Values) (float64, error) { return in["m"] * in["a"], nil },
				"m": func(in Values) (float64, error) { return quo(in["F"], in["a"], "a") },
				"a": func(in Values) (float64, error) { return quo(in["F"], in["m"], "m") },
			}),

		define(cat, "Mass", "m = F / a",
			vars(
				sym("m", quantity.Mass, "mass"),
				sym("F", quantity.Force, "force"),
				sym("a", quantity.Dimensionless, "acceleration (m/s²)"),
			),
			map[string]Inversion{
				"m": func(in Values) (float64, error) { return quo(in["F"], in["a"], "a") },
				"F": func(in Values) (float64, error) { return in["m"] * in["a"], nil },
				"a": func(in Values) (float64, error) { return quo(in["F"], in["m"], "m") },
			}),

		define(cat, "Work", "W = F * d",
			vars(
				sym("W", quantity.Energy, "work"),
				sym("F", quantity.Force, "force"),
				sym("d", quantity.Length, "displacement"),
			),
			map[string]Inversion{
				"W": func(in Values) (float64, error) { return in["F"] * in["d"], nil },
				"F": func(in Values) (float64, error) { return quo(in["W"], in["d"], "d") },
				"d": func(in Values) (float64, error) { return quo(in["W"], in["F"], "F") },
			}),

		define(cat, "Power", "P = W / t",
			vars(
				sym("P", quantity.Power, "power"),
				sym("W", quantity.Energy, "work"),
				sym("t", quantity.Time, "time"),
			),
			map[string]Inversion{
				"P": func(in Values) (float64, error) { return quo(in["W"], in["t"], "t") },
				"W": func(in Values) (float64, error) { return in["P"] * in["t"], nil },
				"t": func(in Values) (float64, error) { return quo(in["W"], in["P"], "P") },
			}),

		define(cat, "Momentum", "p = m * v",
			vars(
				sym("p", quantity.Dimensionless, "momentum (kg·m/s)"),
				sym("m", quantity.Mass, "mass"),
				sym("v", quantity.Dimensionless, "velocity (m/s)"),
			),
			map[string]Inversion{
				"p": func(in Values) (float64, error) { return in["m"] * in["v"], nil },
				"m": func(in Values) (float64, error) { return quo(in["p"], in["v"], "v") },
				"v": func(in Values) (float64, error) { return quo(in["p"], in["m"], "m") },
			}),

		define(cat, "Impulse", "J = F * t",
			vars(
				sym("J", quantity.Dimensionless, "impulse (N·s)"),
				sym("F", quantity.Force, "force"),
				sym("t", quantity.Time, "time"),
			),
			map[string]Inversion{
				"J": func(in Values) (float64, error) { return in["F"] * in["t"], nil },
				"F": func(in Values) (float64, error) { return quo(in["J"], in["t"], "t") },
				"t": func(in Values) (float64, error) { return quo(in["J"], in["F"], "F") },
			}),

		define(cat, "Kinetic Energy", "KE = 0.5 * m * v^2",
			vars(
				sym("KE", quantity.Energy, "kinetic energy"),
				sym("m", quantity.Mass, "mass"),
				sym("v", quantity.Dimensionless, "velocity (m/s)"),
			),
			map[string]Inversion{
				"KE": func(in Values) (float64, error) { return 0.5 * in["m"] * in["v"] * in["v"], nil },
				"m":  func(in Values) (float64, error) { return quo(2*in["KE"], in["v"]*in["v"], "v") },
				"v":  func(in Values) (float64, error) { return sqrtQuo(2*in["KE"], in["m"], "m") },
			}),

		define(cat, "Potential Energy", "PE = m * g * h",
			vars(
				sym("PE", quantity.Energy, "potential energy"),
				sym("m", quantity.Mass, "mass"),
				sym("h", quantity.Length, "height"),
			),
			map[string]Inversion{
				"PE": func(in Values) (float64, error) { return in["m"] * g * in["h"], nil },
				"m":  func(in Values) (float64, error) { return quo(in["PE"], g*in["h"], "h") },
				"h":  func(in Values) (float64, error) { return quo(in["PE"], in["m"]*g, "m") },
			}),

		define(cat, "Mechanical Energy", "E = KE + PE",
			vars(
				sym("E", quantity.Energy, "mechanical energy"),
				sym("KE", quantity.Energy, "kinetic energy"),
				sym("PE", quantity.Energy, "potential energy"),
			),
			map[string]Inversion{
				"E":  func(in Values) (float64, error) { return in["KE"] + in["PE"], nil },
				"KE": func(in Values) (float64, error) { return in["E"] - in["PE"], nil },
				"PE": func(in Values) (float64, error) { return in["E"] - in["KE"], nil },
			}),

		define(cat, "Centripetal Force", "Fc = m * v^2 / r",
			vars(
				sym("Fc", quantity.Force, "centripetal force"),
				sym("m", quantity.Mass, "mass"),
				sym("v", quantity.Dimensionless, "velocity (m/s)"),
				sym("r", quantity.Length, "radius"),
			),
			map[string]Inversion{
				"Fc": func(in Values) (float64, error) { return quo(in["m"]*in["v"]*in["v"], in["r"], "r") },
				"m":  func(in Values) (float64, error) { return quo(in["Fc"]*in["r"], in["v"]*in["v"], "v") },
				"v":  func(in Values) (float64, error) { return sqrtQuo(in["Fc"]*in["r"], in["m"], "m") },
				"r":  func(in Values) (float64, error) { return quo(in["m"]*in["v"]*in["v"], in["Fc"], "Fc") },
			}),

		define(cat, "Centripetal Acceleration", "ac = v^2 / r",
			vars(
				sym("ac", quantity.Dimensionless, "centripetal acceleration (m/s²)"),
				sym("v", quantity.Dimensionless, "velocity (m/s)"),
				sym("r", quantity.Length, "radius"),
			),
			map[string]Inversion{
				"ac": func(in Values) (float64, error) { return quo(in["v"]*in["v"], in["r"], "r") },
				"v":  func(in Values) (float64, error) { return sqrt(in["ac"]*in["r"], "ac·r") },
				"r":  func(in Values) (float64, error) { return quo(in["v"]*in["v"], in["ac"], "ac") },
			}),

		define(cat, "Torque", "τ = r * F * sin(θ)",
			vars(
				sym("τ", quantity.Dimensionless, "torque (N·m)"),
				sym("r", quantity.Length, "lever arm"),
				sym("F", quantity.Force, "force"),
				sym("θ", quantity.Angle, "angle between r and F"),
			),
			map[string]Inversion{
				"τ": func(in Values) (float64, error) { return in["r"] * in["F"] * sinDeg(in["θ"]), nil },
				"r": func(in Values) (float64, error) { return quo(in["τ"], in["F"]*sinDeg(in["θ"]), "F·sin(θ)") },
				"F": func(in Values) (float64, error) { return quo(in["τ"], in["r"]*sinDeg(in["θ"]), "r·sin(θ)") },
				"θ": func(in Values) (float64, error) { return asinQuo(in["τ"], in["r"]*in["F"], "r·F") },
			}),

		define(cat, "Angular Momentum", "L = I * ω",
			vars(
				sym("L", quantity.Dimensionless, "angular momentum (kg·m²/s)"),
				sym("I", quantity.Dimensionless, "moment of inertia (kg·m²)"),
				sym("ω", quantity.Dimensionless, "angular velocity (rad/s)"),
			),
			map[string]Inversion{
				"L": func(in Values) (float64, error) { return in["I"] * in["ω"], nil },
				"I": func(in Values) (float64, error) { return quo(in["L"], in["ω"], "ω") },
				"ω": func(in Values) (float64, error) { return quo(in["L"], in["I"], "I") },
			}),

		define(cat, "Angular Velocity", "ω = θ / t",
			vars(
				sym("ω", quantity.Dimensionless, "angular velocity (rad/s)"),
				sym("θ", quantity.Angle, "angular displacement"),
				sym("t", quantity.Time, "time"),
			),
			map[string]Inversion{
				"ω": func(in Values) (float64, error) { return quo(toRad(in["θ"]), in["t"], "t") },
				"θ": func(in Values) (float64, error) { return toDeg(in["ω"] * in["t"]), nil },
				"t": func(in Values) (float64, error) { return quo(toRad(in["θ"]), in["ω"], "ω") },
			}),

		define(cat, "Angular Acceleration", "α = (ω - ω0) / t",
			vars(
				sym("α", quantity.Dimensionless, "angular acceleration (rad/s²)"),
				sym("ω", quantity.Dimensionless, "final angular velocity (rad/s)"),
				sym("ω0", quantity.Dimensionless, "initial angular velocity (rad/s)"),
				sym("t", quantity.Time, "time"),
			),
			map[string]Inversion{
				"α":  func(in Values) (float64, error) { return quo(in["ω"]-in["ω0"], in["t"], "t") },
				"ω":  func(in Values) (float64, error) { return in["ω0"] + in["α"]*in["t"], nil },
				"ω0": func(in Values) (float64, error) { return in["ω"] - in["α"]*in["t"], nil },
				"t":  func(in Values) (float64, error) { return quo(in["ω"]-in["ω0"], in["α"], "α") },
			}),

		define(cat, "Rotational Kinetic Energy", "KE(rot) = 0.5 * I * ω^2",
			vars(
				sym("KE(rot)", quantity.Energy, "rotational kinetic energy"),
				sym("I", quantity.Dimensionless, "moment of inertia (kg·m²)"),
				sym("ω", quantity.Dimensionless, "angular velocity (rad/s)"),
			),
			map[string]Inversion{
				"KE(rot)": func(in Values) (float64, error) { return 0.5 * in["I"] * in["ω"] * in["ω"], nil },
				"I":       func(in Values) (float64, error) { return quo(2*in["KE(rot)"], in["ω"]*in["ω"], "ω") },
				"ω":       func(in Values) (float64, error) { return sqrtQuo(2*in["KE(rot)"], in["I"], "I") },
			}),

		define(cat, "First Equation of Motion", "v = u + a * t",
			vars(
				sym("v", quantity.Dimensionless, "final velocity (m/s)"),
				sym("u", quantity.Dimensionless, "initial velocity (m/s)"),
				sym("a", quantity.Dimensionless, "acceleration (m/s²)"),
				sym("t", quantity.Time, "time"),
			),
			map[string]Inversion{
				"v": func(in Values) (float64, error) { return in["u"] + in["a"]*in["t"], nil },
				"u": func(in Values) (float64, error) { return in["v"] - in["a"]*in["t"], nil },
				"a": func(in Values) (float64, error) { return quo(in["v"]-in["u"], in["t"], "t") },
				"t": func(in Values) (float64, error) { return quo(in["v"]-in["u"], in["a"], "a") },
			}),

		// t appears both linearly and squared; only s, u and a have a single closed form.
		define(cat, "Second Equation of Motion", "s = u*t + 0.5*a*t^2",
			vars(
				sym("s", quantity.Length, "displacement"),
				sym("u", quantity.Dimensionless, "initial velocity (m/s)"),
				sym("a", quantity.Dimensionless, "acceleration (m/s²)"),
				sym("t", quantity.Time, "time"),
			),
			map[string]Inversion{
				"s": func(in Values) (float64, error) {
					t := in["t"]
					return in["u"]*t + 0.5*in["a"]*t*t, nil
				},
				"u": func(in Values) (float64, error) {
					t := in["t"]
					return quo(in["s"]-0.5*in["a"]*t*t, t, "t")
				},
				"a": func(in Values) (float64, error) {
					t := in["t"]
					return quo(2*(in["s"]-in["u"]*t), t*t, "t")
				},
			}),

		define(cat, "Third Equation of Motion", "v^2 = u^2 + 2*a*s",
			vars(
				sym("v", quantity.Dimensionless, "final velocity (m/s)"),
				sym("u", quantity.Dimensionless, "initial velocity (m/s)"),
				sym("a", quantity.Dimensionless, "acceleration (m/s²)"),
				sym("s", quantity.Length, "displacement"),
			),
			map[string]Inversion{
				"v": func(in Values) (float64, error) {
					return sqrt(in["u"]*in["u"]+2*in["a"]*in["s"], "u²+2as")
				},
				"u": func(in Values) (float64, error) {
					return sqrt(in["v"]*in["v"]-2*in["a"]*in["s"], "v²-2as")
				},
				"a": func(in Values) (float64, error) {
					return quo(in["v"]*in["v"]-in["u"]*in["u"], 2*in["s"], "s")
				},
				"s": func(in Values) (float64, error) {
					return quo(in["v"]*in["v"]-in["u"]*in["u"], 2*in["a"], "a")
				},
			}),

		define(cat, "Maximum Height", "H = (u^2 * sin^2θ) / (2*g)",
			vars(
				sym("H", quantity.Length, "maximum height"),
				sym("u", quantity.Dimensionless, "launch speed (m/s)"),
				sym("θ", quantity.Angle, "launch angle"),
			),
			map[string]Inversion{
				"H": func(in Values) (float64, error) {
					s := sinDeg(in["θ"])
					return in["u"] * in["u"] * s * s / (2 * g), nil
				},
				"u": func(in Values) (float64, error) {
					r, err := sqrt(2*g*in["H"], "H")
					if err != nil {
						return 0, err
					}
					return quo(r, sinDeg(in["θ"]), "sin(θ)")
				},
				"θ": func(in Values) (float64, error) {
					r, err := sqrt(2*g*in["H"], "H")
					if err != nil {
						return 0, err
					}
					return asinQuo(r, in["u"], "u")
				},
			}),

		define(cat, "Time of Flight", "T = (2*u*sinθ) / g",
			vars(
				sym("T", quantity.Time, "time of flight"),
				sym("u", quantity.Dimensionless, "launch speed (m/s)"),
				sym("θ", quantity.Angle, "launch angle"),
			),
			map[string]Inversion{
				"T": func(in Values) (float64, error) { return 2 * in["u"] * sinDeg(in["θ"]) / g, nil },
				"u": func(in Values) (float64, error) { return quo(g*in["T"], 2*sinDeg(in["θ"]), "sin(θ)") },
				"θ": func(in Values) (float64, error) { return asinQuo(g*in["T"], 2*in["u"], "u") },
			}),

		// Upward acceleration of the suspended mass; pass a negative a when it accelerates down.
		define(cat, "Tension", "T = m*(g ± a)",
			vars(
				sym("T", quantity.Force, "tension"),
				sym("m", quantity.Mass, "mass"),
				sym("a", quantity.Dimensionless, "acceleration (m/s²)"),
			),
			map[string]Inversion{
				"T": func(in Values) (float64, error) { return in["m"] * (g + in["a"]), nil },
				"m": func(in Values) (float64, error) { return quo(in["T"], g+in["a"], "g+a") },
				"a": func(in Values) (float64, error) {
					q, err := quo(in["T"], in["m"], "m")
					return q - g, err
				},
			}),

		define(cat, "Friction", "f = μ * N",
			vars(
				sym("f", quantity.Force, "friction force"),
				sym("μ", quantity.Dimensionless, "coefficient of friction"),
				sym("N", quantity.Force, "normal force"),
			),
			map[string]Inversion{
				"f": func(in Values) (float64, error) { return in["μ"] * in["N"], nil },
				"μ": func(in Values) (float64, error) { return quo(in["f"], in["N"], "N") },
				"N": func(in Values) (float64, error) { return quo(in["f"], in["μ"], "μ") },
			}),

		define(cat, "Viscosity", "F = η*A*(dv/dy)",
			vars(
				sym("F", quantity.Force, "viscous force"),
				sym("η", quantity.Dimensionless, "dynamic viscosity (Pa·s)"),
				sym("A", quantity.Dimensionless, "area (m²)"),
				sym("dv/dy", quantity.Dimensionless, "velocity gradient (1/s)"),
			),
			map[string]Inversion{
				"F":     func(in Values) (float64, error) { return in["η"] * in["A"] * in["dv/dy"], nil },
				"η":     func(in Values) (float64, error) { return quo(in["F"], in["A"]*in["dv/dy"], "A·dv/dy") },
				"A":     func(in Values) (float64, error) { return quo(in["F"], in["η"]*in["dv/dy"], "η·dv/dy") },
				"dv/dy": func(in Values) (float64, error) { return quo(in["F"], in["η"]*in["A"], "η·A") },
			}),

		define(cat, "Collision", "m1*u1 + m2*u2 = m1*v1 + m2*v2",
			vars(
				sym("v1", quantity.Dimensionless, "final velocity of body 1 (m/s)"),
				sym("v2", quantity.Dimensionless, "final velocity of body 2 (m/s)"),
				sym("m1", quantity.Mass, "mass of body 1"),
				sym("m2", quantity.Mass, "mass of body 2"),
				sym("u1", quantity.Dimensionless, "initial velocity of body 1 (m/s)"),
				sym("u2", quantity.Dimensionless, "initial velocity of body 2 (m/s)"),
			),
			map[string]Inversion{
				"v1": func(in Values) (float64, error) {
					return quo(in["m1"]*in["u1"]+in["m2"]*in["u2"]-in["m2"]*in["v2"], in["m1"], "m1")
				},
				"v2": func(in Values) (float64, error) {
					return quo(in["m1"]*in["u1"]+in["m2"]*in["u2"]-in["m1"]*in["v1"], in["m2"], "m2")
				},
				"m1": func(in Values) (float64, error) {
					return quo(in["m2"]*(in["v2"]-in["u2"]), in["u1"]-in["v1"], "u1-v1")
				},
				"m2": func(in Values) (float64, error) {
					return quo(in["m1"]*(in["u1"]-in["v1"]), in["v2"]-in["u2"], "v2-u2")
				},
				"u1": func(in Values) (float64, error) {
					return quo(in["m1"]*in["v1"]+in["m2"]*in["v2"]-in["m2"]*in["u2"], in["m1"], "m1")
				},
				"u2": func(in Values) (float64, error) {
					return quo(in["m1"]*in["v1"]+in["m2"]*in["v2"]-in["m1"]*in["u1"], in["m2"], "m2")
				},
			}),
	}
}
