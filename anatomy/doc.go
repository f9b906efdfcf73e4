// Package anatomy models destructible, layered bodies.
//
// A Body is a set of named limbs. Each Limb is a stack of layers, innermost
// first, and each layer holds body parts built from substances. An attack
// (Damage) carries impact, shear, corrosive and energy components. It strikes
// one limb chosen by volume, penetrates one part per layer from the outside
// in, spilling damage deeper per the body's Spillover thresholds, and a limb
// whose innermost layer loses all integrity is destroyed together with every
// limb jointed to it.
//
// The package performs no I/O and holds no global state. Randomness comes from
// the *rand.Rand passed to TakeDamage, so a fixed seed replays exactly.
package anatomy
