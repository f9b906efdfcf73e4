package anatomy

import (
	seaofstars "github.com/tenth-speed-writer/sea-of-stars-tech-demo"
)

// Spillover holds, per damage type, the fraction of a layer's starting
// integrity past which damage of that type spills into the next layer in.
// When remaining/initial exceeds the threshold, only remaining*threshold is
// applied to the layer and the rest carries inward.
type Spillover struct {
	Impact    float64
	Shear     float64
	Corrosive float64
	Energy    float64
}

// DefaultSpillover returns the built-in thresholds.
func DefaultSpillover() Spillover {
	return Spillover{
		Impact:    0.30,
		Shear:     0.45,
		Corrosive: 0.80,
		Energy:    0.65,
	}
}

// Of returns the threshold for damage type t.
func (s Spillover) Of(t DamageType) float64 {
	switch t {
	case Impact:
		return s.Impact
	case Shear:
		return s.Shear
	case Corrosive:
		return s.Corrosive
	case Energy:
		return s.Energy
	}
	return 0
}

// Validate returns an ErrValidation unless every threshold is in (0, 1].
func (s Spillover) Validate() error {
	for _, t := range DamageTypes {
		if v := s.Of(t); !(v > 0 && v <= 1) {
			return seaofstars.Validationf("%v spillover threshold must be in range (0, 1]; got %v", t, v)
		}
	}
	return nil
}
