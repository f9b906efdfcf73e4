package anatomy

import (
	"github.com/pkg/errors"

	seaofstars "github.com/tenth-speed-writer/sea-of-stars-tech-demo"
)

// Limb is a named stack of layers. Layers[0] is the innermost layer,
// higher indices lie further out. A layer may hold any number of parts.
//
// Name must be unique among the limbs of a body.
type Limb struct {
	Name   string
	Layers [][]BodyPart
}

// NewLimb returns a validated Limb. At least one layer is required, but
// any layer, the innermost included, may be empty.
func NewLimb(name string, layers [][]BodyPart) (Limb, error) {
	l := Limb{
		Name:   name,
		Layers: layers,
	}
	if err := l.Validate(); err != nil {
		return Limb{}, err
	}
	return l, nil
}

func (l Limb) Validate() error {
	if l.Name == "" {
		return seaofstars.Validationf("limb name must not be empty")
	}
	if len(l.Layers) == 0 {
		return seaofstars.Validationf("limb %q has no layers", l.Name)
	}
	for _, layer := range l.Layers {
		for _, part := range layer {
			if err := part.Validate(); err != nil {
				return errors.Wrapf(err, "limb %q", l.Name)
			}
		}
	}
	return nil
}

// Volume is the total volume of every part in every layer.
func (l Limb) Volume() float64 {
	sum := 0.0
	for _, layer := range l.Layers {
		sum += layerVolume(layer)
	}
	return sum
}

// Integrity is the total current integrity of every part in every layer.
func (l Limb) Integrity() float64 {
	sum := 0.0
	for _, layer := range l.Layers {
		sum += layerIntegrity(layer)
	}
	return sum
}

// MaxIntegrity is the total max integrity of every part in every layer.
func (l Limb) MaxIntegrity() float64 {
	sum := 0.0
	for _, layer := range l.Layers {
		for _, part := range layer {
			sum += part.MaxIntegrity
		}
	}
	return sum
}

// InnermostIntegrity is the total integrity of the parts in layer 0.
func (l Limb) InnermostIntegrity() float64 {
	if len(l.Layers) == 0 {
		return 0
	}
	return layerIntegrity(l.Layers[0])
}

// IsDestroyed is true when the innermost layer has no integrity left.
func (l Limb) IsDestroyed() bool {
	return l.InnermostIntegrity() == 0
}

// Restore resets every part to max integrity.
func (l *Limb) Restore() {
	for i := range l.Layers {
		for j := range l.Layers[i] {
			l.Layers[i][j].Restore()
		}
	}
}

// Clone returns a deep copy that shares no layer storage with l.
func (l Limb) Clone() Limb {
	layers := make([][]BodyPart, len(l.Layers))
	for i, layer := range l.Layers {
		layers[i] = make([]BodyPart, len(layer))
		for j, part := range layer {
			part.Substances = append([]string(nil), part.Substances...)
			layers[i][j] = part
		}
	}
	return Limb{Name: l.Name, Layers: layers}
}

func layerVolume(layer []BodyPart) float64 {
	sum := 0.0
	for _, part := range layer {
		sum += part.Volume
	}
	return sum
}

func layerIntegrity(layer []BodyPart) float64 {
	sum := 0.0
	for _, part := range layer {
		sum += part.Integrity
	}
	return sum
}
