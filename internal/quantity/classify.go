package quantity

import "strings"

// symbolKinds holds exact symbol matches. Overloaded letters are mapped to their most
// common reading; formulas override them with their own declarations.
var symbolKinds = map[string]Kind{
	// length
	"d": Length, "s": Length, "r": Length, "h": Length, "H": Length,
	"x": Length, "λ": Length,
	// time
	"t": Time, "t½": Time, "Δt": Time,
	// mass
	"m": Mass, "m1": Mass, "m2": Mass, "M": Mass,
	// force
	"F": Force, "Fc": Force, "f": Force, "N": Force,
	// energy
	"W": Energy, "E": Energy, "KE": Energy, "PE": Energy, "KE(rot)": Energy,
	"U": Energy, "Q": Energy, "ΔU": Energy, "Qh": Energy,
	// power
	"P": Power,
	// temperature
	"T": Temperature, "T1": Temperature, "T2": Temperature, "Tc": Temperature, "Th": Temperature,
	// angle
	"θ": Angle, "θ1": Angle, "θ2": Angle, "θc": Angle, "φ": Angle,
	// charge
	"q": Charge, "q1": Charge, "q2": Charge,
	// voltage
	"V": Voltage, "ε": Voltage,
	// resistance
	"R": Resistance, "R1": Resistance, "R2": Resistance, "Rs": Resistance, "Rp": Resistance,
	// current
	"I": Current,
}

type cue struct {
	substr string
	kind   Kind
}

// cues are checked in order; more specific phrases come before their substrings.
var cues = []cue{
	{"temperature", Temperature},
	{"temp", Temperature},
	{"wavelength", Length},
	{"displacement", Length},
	{"distance", Length},
	{"length", Length},
	{"height", Length},
	{"radius", Length},
	{"depth", Length},
	{"energy", Energy},
	{"work", Energy},
	{"heat", Energy},
	{"power", Power},
	{"pressure", Pressure},
	{"force", Force},
	{"tension", Force},
	{"weight", Force},
	{"mass", Mass},
	{"angle", Angle},
	{"theta", Angle},
	{"charge", Charge},
	{"voltage", Voltage},
	{"potential difference", Voltage},
	{"emf", Voltage},
	{"resistance", Resistance},
	{"current", Current},
	{"period", Time},
	{"duration", Time},
	{"time", Time},
}

// Classify maps a variable symbol or name to a quantity kind. Exact symbol matches win
// over substring cues; anything unmatched is Dimensionless.
func Classify(symbol string) Kind {
	s := strings.TrimSpace(symbol)
	if k, ok := symbolKinds[s]; ok {
		return k
	}
	lower := strings.ToLower(s)
	for _, c := range cues {
		if strings.Contains(lower, c.substr) {
			return c.kind
		}
	}
	return Dimensionless
}
