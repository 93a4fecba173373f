package formula

import "physiquist/internal/quantity"

// Lens and mirror distances follow the Cartesian sign convention.
func optics() []*Formula {
	cat := CategoryOptics
	return []*Formula{
		define(cat, "Lens Formula", "1/f = 1/v - 1/u",
			vars(
				sym("f", quantity.Length, "focal length"),
				sym("v", quantity.Length, "image distance"),
				sym("u", quantity.Length, "object distance"),
			),
			map[string]Inversion{
				"f": func(in Values) (float64, error) { return quo(in["u"]*in["v"], in["u"]-in["v"], "u-v") },
				"v": func(in Values) (float64, error) { return quo(in["u"]*in["f"], in["u"]+in["f"], "u+f") },
				"u": func(in Values) (float64, error) { return quo(in["v"]*in["f"], in["f"]-in["v"], "f-v") },
			}),

		define(cat, "Mirror Formula", "1/f = 1/v + 1/u",
			vars(
				sym("f", quantity.Length, "focal length"),
				sym("v", quantity.Length, "image distance"),
				sym("u", quantity.Length, "object distance"),
			),
			map[string]Inversion{
				"f": func(in Values) (float64, error) { return quo(in["u"]*in["v"], in["u"]+in["v"], "u+v") },
				"v": func(in Values) (float64, error) { return quo(in["u"]*in["f"], in["u"]-in["f"], "u-f") },
				"u": func(in Values) (float64, error) { return quo(in["v"]*in["f"], in["v"]-in["f"], "v-f") },
			}),

		define(cat, "Magnification", "m = hi / ho",
			vars(
				sym("m", quantity.Dimensionless, "magnification"),
				sym("hi", quantity.Length, "image height"),
				sym("ho", quantity.Length, "object height"),
			),
			map[string]Inversion{
				"m":  func(in Values) (float64, error) { return quo(in["hi"], in["ho"], "ho") },
				"hi": func(in Values) (float64, error) { return in["m"] * in["ho"], nil },
				"ho": func(in Values) (float64, error) { return quo(in["hi"], in["m"], "m") },
			}),

		define(cat, "Power of a Lens", "P = 1 / f",
			vars(
				sym("P", quantity.Dimensionless, "optical power (D)"),
				sym("f", quantity.Length, "focal length"),
			),
			map[string]Inversion{
				"P": func(in Values) (float64, error) { return quo(1, in["f"], "f") },
				"f": func(in Values) (float64, error) { return quo(1, in["P"], "P") },
			}),

		define(cat, "Refractive Index", "n = c / v",
			vars(
				sym("n", quantity.Dimensionless, "refractive index"),
				sym("v", quantity.Dimensionless, "speed of light in the medium (m/s)"),
			),
			map[string]Inversion{
				"n": func(in Values) (float64, error) { return quo(SpeedOfLight, in["v"], "v") },
				"v": func(in Values) (float64, error) { return quo(SpeedOfLight, in["n"], "n") },
			}),

		define(cat, "Snell's Law", "n1 * sin(θ1) = n2 * sin(θ2)",
			vars(
				sym("n1", quantity.Dimensionless, "refractive index of the first medium"),
				sym("θ1", quantity.Angle, "angle of incidence"),
				sym("n2", quantity.Dimensionless, "refractive index of the second medium"),
				sym("θ2", quantity.Angle, "angle of refraction"),
			),
			map[string]Inversion{
				"n1": func(in Values) (float64, error) {
					return quo(in["n2"]*sinDeg(in["θ2"]), sinDeg(in["θ1"]), "sin(θ1)")
				},
				"θ1": func(in Values) (float64, error) {
					return asinQuo(in["n2"]*sinDeg(in["θ2"]), in["n1"], "n1")
				},
				"n2": func(in Values) (float64, error) {
					return quo(in["n1"]*sinDeg(in["θ1"]), sinDeg(in["θ2"]), "sin(θ2)")
				},
				"θ2": func(in Values) (float64, error) {
					return asinQuo(in["n1"]*sinDeg(in["θ1"]), in["n2"], "n2")
				},
			}),

		define(cat, "Critical Angle", "sin(θc) = n2 / n1",
			vars(
				sym("θc", quantity.Angle, "critical angle"),
				sym("n1", quantity.Dimensionless, "refractive index of the denser medium"),
				sym("n2", quantity.Dimensionless, "refractive index of the rarer medium"),
			),
			map[string]Inversion{
				"θc": func(in Values) (float64, error) { return asinQuo(in["n2"], in["n1"], "n1") },
				"n1": func(in Values) (float64, error) { return quo(in["n2"], sinDeg(in["θc"]), "sin(θc)") },
				"n2": func(in Values) (float64, error) { return in["n1"] * sinDeg(in["θc"]), nil },
			}),
	}
}
