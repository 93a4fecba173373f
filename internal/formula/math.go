package formula

import "math"

// Physical constants used by the catalog.
const (
	StandardGravity    = 9.81           // m/s²
	GravitationalConst = 6.674e-11      // N·m²/kg²
	SpeedOfLight       = 299792458.0    // m/s
	PlanckConst        = 6.626e-34      // J·s
	CoulombConst       = 8.9875e9       // N·m²/C²
	GasConst           = 8.314          // J/(mol·K)
	VacuumPermeability = 4e-7 * math.Pi // T·m/A
	HearingThreshold   = 1e-12          // W/m²
)

// sinEpsilon snaps float noise such as sin(π) = 1.2e-16 to an exact zero so that a
// division by it is reported instead of producing a huge number.
const sinEpsilon = 1e-15

func sinDeg(deg float64) float64 {
	s := math.Sin(deg * math.Pi / 180)
	if math.Abs(s) < sinEpsilon {
		return 0
	}
	return s
}

func toRad(deg float64) float64 { return deg * math.Pi / 180 }

func toDeg(rad float64) float64 { return rad * 180 / math.Pi }

func quo(num, den float64, label string) (float64, error) {
	if den == 0 {
		return 0, undefined(label)
	}
	return num / den, nil
}

func sqrt(x float64, label string) (float64, error) {
	if x < 0 {
		return 0, outOfDomain(label)
	}
	return math.Sqrt(x), nil
}

// sqrtQuo is sqrt(num/den).
func sqrtQuo(num, den float64, label string) (float64, error) {
	q, err := quo(num, den, label)
	if err != nil {
		return 0, err
	}
	return sqrt(q, label)
}

// asinDeg returns asin(x) in degrees.
func asinDeg(x float64, label string) (float64, error) {
	if x < -1 || x > 1 {
		return 0, outOfDomain(label)
	}
	return toDeg(math.Asin(x)), nil
}

// asinQuo is asin(num/den) in degrees.
func asinQuo(num, den float64, label string) (float64, error) {
	q, err := quo(num, den, label)
	if err != nil {
		return 0, err
	}
	return asinDeg(q, label)
}

func ln(x float64, label string) (float64, error) {
	if x <= 0 {
		return 0, outOfDomain(label)
	}
	return math.Log(x), nil
}
