package anatomy

import (
	"math/rand/v2"

	"github.com/pkg/errors"

	"github.com/tenth-speed-writer/sea-of-stars-tech-demo/sampler"
)

// Hit records one application of damage to one part during penetration.
type Hit struct {
	Layer int
	Part  int
	// PartName is the name of the part at Layers[Layer][Part].
	PartName string
	// Applied is the damage delivered, before resistances.
	Applied Damage
	// Overflow is true for the even share of damage left over after every layer was penetrated.
	Overflow bool
}

type target struct {
	layer   int
	part    int
	initial float64
}

// samplePath picks one part per non-empty layer, innermost first,
// weighted by part volume.
func samplePath(rng *rand.Rand, limb *Limb) ([]target, error) {
	targets := make([]target, 0, len(limb.Layers))
	for li, layer := range limb.Layers {
		if len(layer) == 0 {
			continue
		}
		weights := make([]float64, len(layer))
		for pi, part := range layer {
			weights[pi] = part.Volume
		}
		pi, err := sampler.DrawIndex(rng, weights)
		if err != nil {
			return nil, errors.Wrapf(err, "limb %q layer %d", limb.Name, li)
		}
		targets = append(targets, target{
			layer:   li,
			part:    pi,
			initial: layer[pi].Integrity,
		})
	}
	return targets, nil
}

// Penetrate resolves damage against limb in place and returns the
// applications made, outermost first.
//
// One part per non-empty layer is chosen as the penetration path. Walking
// that path from the outside in, each damage type is delivered whole unless
// remaining/initialIntegrity exceeds the type's spillover threshold, in
// which case only remaining*threshold is delivered and the rest carries to
// the next part in. Whatever is left once the innermost part is reached is
// split evenly across every part on the path.
func Penetrate(rng *rand.Rand, limb *Limb, damage Damage, spill Spillover) ([]Hit, error) {
	targets, err := samplePath(rng, limb)
	if err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		return nil, nil
	}

	hits := make([]Hit, 0, len(targets))
	remaining := damage
	for i := len(targets) - 1; i >= 0; i-- {
		tgt := targets[i]
		var applied Damage
		for _, t := range DamageTypes {
			left := remaining.Of(t)
			amount := left
			// A zero initial integrity makes any positive remainder spill.
			if left/tgt.initial > spill.Of(t) {
				amount = left * spill.Of(t)
			}
			applied = applied.With(t, amount)
			remaining = remaining.With(t, left-amount)
		}
		part := &limb.Layers[tgt.layer][tgt.part]
		part.Apply(applied)
		hits = append(hits, Hit{
			Layer:    tgt.layer,
			Part:     tgt.part,
			PartName: part.Name,
			Applied:  applied,
		})
		if remaining.IsZero() {
			return hits, nil
		}
	}

	share := remaining.Scale(1 / float64(len(targets)))
	for i := len(targets) - 1; i >= 0; i-- {
		tgt := targets[i]
		part := &limb.Layers[tgt.layer][tgt.part]
		part.Apply(share)
		hits = append(hits, Hit{
			Layer:    tgt.layer,
			Part:     tgt.part,
			PartName: part.Name,
			Applied:  share,
			Overflow: true,
		})
	}
	return hits, nil
}
