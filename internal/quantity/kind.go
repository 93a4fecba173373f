// Package quantity classifies formula variables into physical quantity kinds.
package quantity

import (
	"fmt"
	"strings"
)

// Kind is a physical dimension used to pick valid units for a variable.
type Kind int

const (
	Dimensionless Kind = iota
	Length
	Time
	Mass
	Force
	Energy
	Power
	Pressure
	Temperature
	Angle
	Charge
	Voltage
	Resistance
	Current
)

var kindNames = []string{
	"dimensionless",
	"length",
	"time",
	"mass",
	"force",
	"energy",
	"power",
	"pressure",
	"temperature",
	"angle",
	"charge",
	"voltage",
	"resistance",
	"current",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range kindNames {
		out[i] = Kind(i)
	}
	return out
}

// ParseKind is the inverse of Kind.String. Matching ignores case.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return Dimensionless, fmt.Errorf("quantity: unknown kind %q", s)
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
