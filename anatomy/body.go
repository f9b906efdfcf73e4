package anatomy

import (
	"iter"
	"math/rand/v2"
	"slices"

	"github.com/pkg/errors"

	seaofstars "github.com/tenth-speed-writer/sea-of-stars-tech-demo"
	"github.com/tenth-speed-writer/sea-of-stars-tech-demo/sampler"
)

// LimbJoint links two limbs by name. Destroying Origin destroys Extension,
// which may in turn be the origin of further joints.
type LimbJoint struct {
	Origin    string
	Extension string
}

// DamageResult describes the consequences of one TakeDamage call.
type DamageResult struct {
	// Limb is the name of the limb the attack struck.
	Limb string
	// Hits lists every application made to a part of Limb, outermost first.
	Hits []Hit
	// Destroyed names every limb removed by this attack, dependents before
	// the limbs they hang off. Empty if the struck limb survived.
	Destroyed []string
}

// Applied sums the damage delivered across all hits.
func (r *DamageResult) Applied() Damage {
	var sum Damage
	for _, h := range r.Hits {
		sum = sum.Add(h.Applied)
	}
	return sum
}

// Body owns the limbs and joints of a single entity.
//
// A Body is not safe for concurrent use. Callers must serialize damage
// events on the same body.
type Body struct {
	limbs     []Limb
	joints    []LimbJoint
	spillover Spillover
	index     map[string]int
}

// NewBody returns a validated body holding deep copies of limbs. Limb names
// must be unique, every limb must hold at least one part, every joint must
// name existing limbs, and the joint graph must be acyclic.
func NewBody(limbs []Limb, joints []LimbJoint, spillover Spillover) (*Body, error) {
	return newBody(limbs, joints, spillover, true)
}

// newBody builds a body. Without strict, joints may point at extensions that
// no longer exist, as they do after a limb is destroyed directly.
func newBody(limbs []Limb, joints []LimbJoint, spillover Spillover, strict bool) (*Body, error) {
	if err := spillover.Validate(); err != nil {
		return nil, err
	}
	b := &Body{
		limbs:     make([]Limb, len(limbs)),
		joints:    slices.Clone(joints),
		spillover: spillover,
	}
	for i, l := range limbs {
		if err := l.Validate(); err != nil {
			return nil, err
		}
		// A limb with no parts could never be struck or destroyed.
		if l.Volume() <= 0 {
			return nil, seaofstars.Validationf("limb %q has no parts", l.Name)
		}
		b.limbs[i] = l.Clone()
	}
	if err := b.reindex(); err != nil {
		return nil, err
	}
	for _, j := range joints {
		if _, found := b.index[j.Origin]; !found {
			return nil, seaofstars.Validationf("joint %q -> %q: unknown origin limb", j.Origin, j.Extension)
		}
		if _, found := b.index[j.Extension]; strict && !found {
			return nil, seaofstars.Validationf("joint %q -> %q: unknown extension limb", j.Origin, j.Extension)
		}
	}
	if err := checkAcyclic(joints); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Body) reindex() error {
	b.index = make(map[string]int, len(b.limbs))
	for i, l := range b.limbs {
		if _, found := b.index[l.Name]; found {
			return seaofstars.Validationf("duplicate limb name %q", l.Name)
		}
		b.index[l.Name] = i
	}
	return nil
}

// checkAcyclic rejects joint graphs where destruction could recurse forever.
func checkAcyclic(joints []LimbJoint) error {
	const (
		unvisited = iota
		visiting
		done
	)
	extensions := map[string][]string{}
	for _, j := range joints {
		extensions[j.Origin] = append(extensions[j.Origin], j.Extension)
	}
	state := map[string]int{}
	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case visiting:
			return seaofstars.Validationf("joint cycle through limb %q", name)
		case done:
			return nil
		}
		state[name] = visiting
		for _, ext := range extensions[name] {
			if err := visit(ext); err != nil {
				return err
			}
		}
		state[name] = done
		return nil
	}
	for _, j := range joints {
		if err := visit(j.Origin); err != nil {
			return err
		}
	}
	return nil
}

// Spillover returns the body's spillover thresholds.
func (b *Body) Spillover() Spillover {
	return b.spillover
}

// Limb returns the named limb. The pointer is valid until the next limb is destroyed.
func (b *Body) Limb(name string) (*Limb, bool) {
	idx, found := b.index[name]
	if !found {
		return nil, false
	}
	return &b.limbs[idx], true
}

// Limbs iterates over the remaining limbs in order.
func (b *Body) Limbs() iter.Seq2[int, *Limb] {
	return func(yield func(int, *Limb) bool) {
		for i := range b.limbs {
			if !yield(i, &b.limbs[i]) {
				return
			}
		}
	}
}

// LimbNames returns the names of the remaining limbs in order.
func (b *Body) LimbNames() []string {
	names := make([]string, len(b.limbs))
	for i, l := range b.limbs {
		names[i] = l.Name
	}
	return names
}

// Joints returns a copy of the remaining joints.
func (b *Body) Joints() []LimbJoint {
	return slices.Clone(b.joints)
}

// IsEmpty is true once every limb has been destroyed.
func (b *Body) IsEmpty() bool {
	return len(b.limbs) == 0
}

// Volume is the total volume of all remaining limbs.
func (b *Body) Volume() float64 {
	sum := 0.0
	for _, l := range b.limbs {
		sum += l.Volume()
	}
	return sum
}

// Integrity is the total integrity of all remaining limbs.
func (b *Body) Integrity() float64 {
	sum := 0.0
	for _, l := range b.limbs {
		sum += l.Integrity()
	}
	return sum
}

// Clone returns a deep copy of b.
func (b *Body) Clone() *Body {
	limbs := make([]Limb, len(b.limbs))
	for i, l := range b.limbs {
		limbs[i] = l.Clone()
	}
	index := make(map[string]int, len(b.index))
	for k, v := range b.index {
		index[k] = v
	}
	return &Body{
		limbs:     limbs,
		joints:    slices.Clone(b.joints),
		spillover: b.spillover,
		index:     index,
	}
}

// TakeDamage strikes one limb, chosen at random weighted by volume, with damage.
// The limb is penetrated in place, and if its innermost layer is left with no
// integrity it is destroyed along with every limb that depends on it.
//
// Errors are returned for invalid damage, or if the body has no limb with
// any volume left to hit.
func (b *Body) TakeDamage(rng *rand.Rand, damage Damage) (*DamageResult, error) {
	if err := damage.Validate(); err != nil {
		return nil, err
	}
	if len(b.limbs) == 0 {
		return nil, seaofstars.Preconditionf("body has no limbs left to hit")
	}

	weights := make([]float64, len(b.limbs))
	for i, l := range b.limbs {
		weights[i] = l.Volume()
	}
	idx, err := sampler.DrawIndex(rng, weights)
	if err != nil {
		return nil, errors.Wrap(err, "selecting limb")
	}
	limb := &b.limbs[idx]

	hits, err := Penetrate(rng, limb, damage, b.spillover)
	if err != nil {
		return nil, err
	}
	result := &DamageResult{
		Limb: limb.Name,
		Hits: hits,
	}
	if limb.IsDestroyed() {
		result.Destroyed = b.DestroyLimb(limb.Name)
	}
	return result, nil
}

// DestroyLimb removes the named limb after first destroying, depth first,
// every limb reachable through joints originating at it. Joints originating
// at a removed limb are removed too.
//
// Destroying a limb that is not present does nothing. Returns the names of
// the removed limbs in removal order.
func (b *Body) DestroyLimb(name string) []string {
	var destroyed []string
	b.destroyLimb(name, &destroyed)
	return destroyed
}

func (b *Body) destroyLimb(name string, destroyed *[]string) {
	if _, found := b.index[name]; !found {
		return
	}

	var extensions []string
	for _, j := range b.joints {
		if j.Origin == name {
			extensions = append(extensions, j.Extension)
		}
	}
	for _, ext := range extensions {
		b.destroyLimb(ext, destroyed)
	}

	idx := b.index[name]
	b.limbs = slices.Delete(b.limbs, idx, idx+1)
	b.joints = slices.DeleteFunc(b.joints, func(j LimbJoint) bool {
		return j.Origin == name
	})
	// Names were unique before removal, so this cannot fail.
	_ = b.reindex()
	*destroyed = append(*destroyed, name)
}
