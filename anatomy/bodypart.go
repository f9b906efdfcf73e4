package anatomy

import (
	"math"

	"github.com/pkg/errors"

	seaofstars "github.com/tenth-speed-writer/sea-of-stars-tech-demo"
)

// BodyPart is a single part of a limb layer, with physical stats derived
// from its substances and a current integrity that damage wears down.
type BodyPart struct {
	Name       string
	Substances []string
	// Volume in liters.
	Volume float64
	// Mass in kg.
	Mass         float64
	MaxIntegrity float64
	Integrity    float64
	Resist       Resistances
}

// NewBodyPart derives a BodyPart from its components.
// Volume, mass and max integrity are sums over the components, resistances
// are volume-weighted averages. Integrity starts at max.
func NewBodyPart(name string, components []SubstanceAndVolume) (BodyPart, error) {
	if name == "" {
		return BodyPart{}, seaofstars.Validationf("body part name must not be empty")
	}
	if len(components) == 0 {
		return BodyPart{}, seaofstars.Validationf("body part %q has no components", name)
	}
	part := BodyPart{
		Name:       name,
		Substances: make([]string, 0, len(components)),
	}
	var resist Resistances
	for _, c := range components {
		if err := c.Validate(); err != nil {
			return BodyPart{}, errors.Wrapf(err, "body part %q", name)
		}
		part.Substances = append(part.Substances, c.Substance.Name)
		part.Volume += c.Volume
		// Density is per m3 and volume is in liters.
		part.Mass += c.Substance.Density * c.Volume / 1000
		part.MaxIntegrity += c.Substance.IntegrityPerLiter * c.Volume
		resist.Impact += c.Substance.Resist.Impact * c.Volume
		resist.Shear += c.Substance.Resist.Shear * c.Volume
		resist.Corrosive += c.Substance.Resist.Corrosive * c.Volume
		resist.Energy += c.Substance.Resist.Energy * c.Volume
	}
	part.Resist = Resistances{
		Impact:    resist.Impact / part.Volume,
		Shear:     resist.Shear / part.Volume,
		Corrosive: resist.Corrosive / part.Volume,
		Energy:    resist.Energy / part.Volume,
	}
	part.Integrity = part.MaxIntegrity
	return part, nil
}

// Validate checks a part that was not produced by NewBodyPart, e.g. one decoded from a snapshot.
func (p BodyPart) Validate() error {
	if p.Name == "" {
		return seaofstars.Validationf("body part name must not be empty")
	}
	if !(p.Volume > 0) || math.IsInf(p.Volume, 0) {
		return seaofstars.Validationf("body part %q: volume must be greater than zero; got %v", p.Name, p.Volume)
	}
	if !(p.MaxIntegrity > 0) || math.IsInf(p.MaxIntegrity, 0) {
		return seaofstars.Validationf("body part %q: max integrity must be greater than zero; got %v", p.Name, p.MaxIntegrity)
	}
	if !(p.Integrity >= 0 && p.Integrity <= p.MaxIntegrity) {
		return seaofstars.Validationf("body part %q: integrity %v outside [0, %v]", p.Name, p.Integrity, p.MaxIntegrity)
	}
	if err := p.Resist.Validate(); err != nil {
		return errors.Wrapf(err, "body part %q", p.Name)
	}
	return nil
}

// Apply wears down the part's integrity by d, each damage type scaled by
// (1 - resistance). Types are subtracted in the order impact, shear,
// corrosive, energy, and integrity is floored at zero after each one.
func (p *BodyPart) Apply(d Damage) {
	for _, t := range DamageTypes {
		loss := d.Of(t) * (1 - p.Resist.Of(t))
		if !(loss > 0) {
			continue
		}
		p.Integrity = math.Max(0, p.Integrity-loss)
	}
}

// Damaged returns a copy of p with d applied.
func (p BodyPart) Damaged(d Damage) BodyPart {
	p.Apply(d)
	return p
}

// Restore resets integrity to max.
func (p *BodyPart) Restore() {
	p.Integrity = p.MaxIntegrity
}

// IsDestroyed is true once integrity has reached zero.
func (p BodyPart) IsDestroyed() bool {
	return p.Integrity == 0
}
