package anatomy

import (
	"fmt"
	"math"

	seaofstars "github.com/tenth-speed-writer/sea-of-stars-tech-demo"
)

// DamageType enumerates the four kinds of damage an attack can carry.
type DamageType int

const (
	Impact DamageType = iota
	Shear
	Corrosive
	Energy
)

// DamageTypes lists every damage type in application order.
var DamageTypes = [...]DamageType{Impact, Shear, Corrosive, Energy}

func (t DamageType) String() string {
	switch t {
	case Impact:
		return "impact"
	case Shear:
		return "shear"
	case Corrosive:
		return "corrosive"
	case Energy:
		return "energy"
	}
	return fmt.Sprintf("DamageType(%d)", int(t))
}

// ParseDamageType returns the damage type with the given lower case name.
func ParseDamageType(s string) (DamageType, error) {
	for _, t := range DamageTypes {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, seaofstars.Validationf("unknown damage type %q", s)
}

// Damage holds the magnitude of each damage type in a single attack.
// The zero value is a valid, harmless attack.
type Damage struct {
	Impact    float64
	Shear     float64
	Corrosive float64
	Energy    float64
}

// NewDamage returns a validated Damage. Negative magnitudes are rejected.
func NewDamage(impact, shear, corrosive, energy float64) (Damage, error) {
	d := Damage{
		Impact:    impact,
		Shear:     shear,
		Corrosive: corrosive,
		Energy:    energy,
	}
	if err := d.Validate(); err != nil {
		return Damage{}, err
	}
	return d, nil
}

// Validate returns an ErrValidation if any magnitude is negative or not finite.
func (d Damage) Validate() error {
	for _, t := range DamageTypes {
		v := d.Of(t)
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return seaofstars.Validationf("%v damage must be a finite value >= 0; got %v", t, v)
		}
	}
	return nil
}

// Of returns the magnitude of damage type t.
func (d Damage) Of(t DamageType) float64 {
	switch t {
	case Impact:
		return d.Impact
	case Shear:
		return d.Shear
	case Corrosive:
		return d.Corrosive
	case Energy:
		return d.Energy
	}
	return 0
}

// With returns a copy of d with the magnitude of t replaced by v.
func (d Damage) With(t DamageType, v float64) Damage {
	switch t {
	case Impact:
		d.Impact = v
	case Shear:
		d.Shear = v
	case Corrosive:
		d.Corrosive = v
	case Energy:
		d.Energy = v
	}
	return d
}

// Add returns the per-type sum of d and o.
func (d Damage) Add(o Damage) Damage {
	return Damage{
		Impact:    d.Impact + o.Impact,
		Shear:     d.Shear + o.Shear,
		Corrosive: d.Corrosive + o.Corrosive,
		Energy:    d.Energy + o.Energy,
	}
}

// Scale returns d with every magnitude multiplied by f.
func (d Damage) Scale(f float64) Damage {
	return Damage{
		Impact:    d.Impact * f,
		Shear:     d.Shear * f,
		Corrosive: d.Corrosive * f,
		Energy:    d.Energy * f,
	}
}

// IsZero is true when every magnitude is exactly zero.
func (d Damage) IsZero() bool {
	return d.Impact == 0 && d.Shear == 0 && d.Corrosive == 0 && d.Energy == 0
}

func (d Damage) String() string {
	return fmt.Sprintf("impact=%g shear=%g corrosive=%g energy=%g", d.Impact, d.Shear, d.Corrosive, d.Energy)
}
