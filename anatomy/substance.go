package anatomy

import (
	"math"

	"github.com/pkg/errors"

	seaofstars "github.com/tenth-speed-writer/sea-of-stars-tech-demo"
)

// Resistances holds one resistance factor per damage type, each in [-1, 1].
// A factor of 1 negates that damage type entirely, -1 doubles it.
type Resistances struct {
	Impact    float64
	Shear     float64
	Corrosive float64
	Energy    float64
}

// Of returns the resistance factor for damage type t.
func (r Resistances) Of(t DamageType) float64 {
	switch t {
	case Impact:
		return r.Impact
	case Shear:
		return r.Shear
	case Corrosive:
		return r.Corrosive
	case Energy:
		return r.Energy
	}
	return 0
}

// Validate returns an ErrValidation if any factor lies outside [-1, 1].
func (r Resistances) Validate() error {
	for _, t := range DamageTypes {
		if v := r.Of(t); !(v >= -1 && v <= 1) {
			return seaofstars.Validationf("%v resistance must be in range [-1.0, 1.0]; got %v", t, v)
		}
	}
	return nil
}

// Substance is a material body parts are built from, such as flesh, bone or copper wiring.
type Substance struct {
	// Name must be unique among the substances of a blueprint.
	Name string
	// Density in kg/m3, equivalently g/L. Water is about 1000.
	Density float64
	// IntegrityPerLiter is the integrity a liter of this substance adds to a part.
	IntegrityPerLiter float64
	Resist            Resistances
}

// NewSubstance returns a validated Substance.
func NewSubstance(name string, density, integrityPerLiter float64, resist Resistances) (Substance, error) {
	s := Substance{
		Name:              name,
		Density:           density,
		IntegrityPerLiter: integrityPerLiter,
		Resist:            resist,
	}
	if err := s.Validate(); err != nil {
		return Substance{}, err
	}
	return s, nil
}

func (s Substance) Validate() error {
	if s.Name == "" {
		return seaofstars.Validationf("substance name must not be empty")
	}
	if !(s.Density > 0) || math.IsInf(s.Density, 0) {
		return seaofstars.Validationf("substance %q: density must be greater than zero; got %v", s.Name, s.Density)
	}
	if !(s.IntegrityPerLiter > 0) || math.IsInf(s.IntegrityPerLiter, 0) {
		return seaofstars.Validationf("substance %q: integrity per liter must be greater than zero; got %v", s.Name, s.IntegrityPerLiter)
	}
	if err := s.Resist.Validate(); err != nil {
		return errors.Wrapf(err, "substance %q", s.Name)
	}
	return nil
}

// SubstanceAndVolume is an amount, in liters, of a substance within a body part.
type SubstanceAndVolume struct {
	Substance Substance
	Volume    float64
}

// NewSubstanceAndVolume returns a validated pairing. Volume must be positive.
func NewSubstanceAndVolume(substance Substance, volume float64) (SubstanceAndVolume, error) {
	sv := SubstanceAndVolume{
		Substance: substance,
		Volume:    volume,
	}
	if err := sv.Validate(); err != nil {
		return SubstanceAndVolume{}, err
	}
	return sv, nil
}

func (sv SubstanceAndVolume) Validate() error {
	if err := sv.Substance.Validate(); err != nil {
		return err
	}
	if !(sv.Volume > 0) || math.IsInf(sv.Volume, 0) {
		return seaofstars.Validationf("volume of %q must be greater than zero; got %v", sv.Substance.Name, sv.Volume)
	}
	return nil
}
