package settings

import (
	"strings"

	"github.com/matzehuels/viewalign/pkg/errors"
)

// Unit is a length unit a scene can be expressed in.
type Unit string

const (
	UnitMM   Unit = "mm"
	UnitCM   Unit = "cm"
	UnitM    Unit = "m"
	UnitInch Unit = "in"
	UnitFoot Unit = "ft"
)

// millimetres per unit
var unitScale = map[Unit]float64{
	UnitMM:   1,
	UnitCM:   10,
	UnitM:    1000,
	UnitInch: 25.4,
	UnitFoot: 304.8,
}

// Units returns the supported units from smallest to largest.
func Units() []Unit {
	return []Unit{UnitMM, UnitCM, UnitInch, UnitFoot, UnitM}
}

// ParseUnit resolves a unit name. The empty string means millimetres.
func ParseUnit(s string) (Unit, error) {
	u := Unit(strings.ToLower(strings.TrimSpace(s)))
	if u == "" {
		return UnitMM, nil
	}
	if _, ok := unitScale[u]; !ok {
		return "", errors.New(errors.ErrCodeInvalidInput, "unknown unit %q (want mm, cm, m, in or ft)", s)
	}
	return u, nil
}

// Convert expresses a length given in millimetres in unit u.
func Convert(valueMM float64, u Unit) (float64, error) {
	u, err := ParseUnit(string(u))
	if err != nil {
		return 0, err
	}
	return valueMM / unitScale[u], nil
}

// ToMM expresses a length given in unit u in millimetres.
func ToMM(value float64, u Unit) (float64, error) {
	u, err := ParseUnit(string(u))
	if err != nil {
		return 0, err
	}
	return value * unitScale[u], nil
}
