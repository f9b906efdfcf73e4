package catalog

import (
	"github.com/pkg/errors"

	seaofstars "github.com/tenth-speed-writer/sea-of-stars-tech-demo"
	"github.com/tenth-speed-writer/sea-of-stars-tech-demo/anatomy"
)

// ComponentSpec names an amount of a substance in a part.
type ComponentSpec struct {
	Substance string
	// Volume in liters.
	Volume float64
}

// PartSpec describes a body part by its components.
type PartSpec struct {
	Name       string
	Components []ComponentSpec
}

// LimbSpec describes a limb as layers of parts, innermost first.
type LimbSpec struct {
	Name   string
	Layers [][]PartSpec
}

// Blueprint is the definition bodies are instantiated from.
type Blueprint struct {
	Name       string
	Substances []anatomy.Substance
	Limbs      []LimbSpec
	Joints     []anatomy.LimbJoint
	// Spillover overrides anatomy.DefaultSpillover when set.
	Spillover *anatomy.Spillover
}

// Validate checks that the blueprint builds.
func (bp *Blueprint) Validate() error {
	_, err := bp.Build()
	return err
}

// Build instantiates a fresh body from the blueprint.
func (bp *Blueprint) Build() (*anatomy.Body, error) {
	substances := make(map[string]anatomy.Substance, len(bp.Substances))
	for _, s := range bp.Substances {
		if err := s.Validate(); err != nil {
			return nil, errors.Wrapf(err, "blueprint %q", bp.Name)
		}
		if _, found := substances[s.Name]; found {
			return nil, seaofstars.Validationf("blueprint %q: duplicate substance %q", bp.Name, s.Name)
		}
		substances[s.Name] = s
	}

	limbs := make([]anatomy.Limb, 0, len(bp.Limbs))
	for _, ls := range bp.Limbs {
		layers := make([][]anatomy.BodyPart, len(ls.Layers))
		for li, layer := range ls.Layers {
			layers[li] = make([]anatomy.BodyPart, 0, len(layer))
			for _, ps := range layer {
				components := make([]anatomy.SubstanceAndVolume, 0, len(ps.Components))
				for _, cs := range ps.Components {
					s, found := substances[cs.Substance]
					if !found {
						return nil, seaofstars.Validationf("blueprint %q: part %q uses unknown substance %q", bp.Name, ps.Name, cs.Substance)
					}
					sv, err := anatomy.NewSubstanceAndVolume(s, cs.Volume)
					if err != nil {
						return nil, errors.Wrapf(err, "blueprint %q: part %q", bp.Name, ps.Name)
					}
					components = append(components, sv)
				}
				part, err := anatomy.NewBodyPart(ps.Name, components)
				if err != nil {
					return nil, errors.Wrapf(err, "blueprint %q: limb %q", bp.Name, ls.Name)
				}
				layers[li] = append(layers[li], part)
			}
		}
		limb, err := anatomy.NewLimb(ls.Name, layers)
		if err != nil {
			return nil, errors.Wrapf(err, "blueprint %q", bp.Name)
		}
		limbs = append(limbs, limb)
	}

	spillover := anatomy.DefaultSpillover()
	if bp.Spillover != nil {
		spillover = *bp.Spillover
	}
	body, err := anatomy.NewBody(limbs, bp.Joints, spillover)
	if err != nil {
		return nil, errors.Wrapf(err, "blueprint %q", bp.Name)
	}
	return body, nil
}
