package anatomy

import (
	"math"
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/bxcodec/faker/v4"
)

func assertClose[T float64 | float32 | int](t *testing.T, f1, f2, delta T) {
	t.Helper()
	if math.Abs(float64(f1)-float64(f2)) > float64(delta) {
		t.Errorf("got %v, want %v", f1, f2)
	}
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// randomAttack is filled by faker with magnitudes in [0, 100).
type randomAttack struct {
	Impact    float64 `faker:"magnitude"`
	Shear     float64 `faker:"magnitude"`
	Corrosive float64 `faker:"magnitude"`
	Energy    float64 `faker:"magnitude"`
	Resist    float64 `faker:"resistance"`
}

func (r randomAttack) damage() Damage {
	return Damage{Impact: r.Impact, Shear: r.Shear, Corrosive: r.Corrosive, Energy: r.Energy}
}

func init() {
	if err := faker.AddProvider("magnitude", func(v reflect.Value) (any, error) {
		return rand.Float64() * 100, nil
	}); err != nil {
		panic(err)
	}
	if err := faker.AddProvider("resistance", func(v reflect.Value) (any, error) {
		return rand.Float64()*2 - 1, nil
	}); err != nil {
		panic(err)
	}
}

func fakeAttack(t *testing.T) randomAttack {
	t.Helper()
	var a randomAttack
	if err := faker.FakeData(&a); err != nil {
		t.Fatal(err)
	}
	return a
}

func mustSubstance(t *testing.T, name string, density, ipl float64, r Resistances) Substance {
	t.Helper()
	s, err := NewSubstance(name, density, ipl, r)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func mustPart(t *testing.T, name string, components ...SubstanceAndVolume) BodyPart {
	t.Helper()
	p, err := NewBodyPart(name, components)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func mustLimb(t *testing.T, name string, layers ...[]BodyPart) Limb {
	t.Helper()
	l, err := NewLimb(name, layers)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func flesh(t *testing.T) Substance {
	return mustSubstance(t, "flesh", 1010, 10, Resistances{Impact: 0.20, Shear: 0, Corrosive: -0.15, Energy: 0.15})
}

func bone(t *testing.T) Substance {
	return mustSubstance(t, "bone", 1400, 15, Resistances{Impact: -0.15, Shear: 0.25, Corrosive: 0, Energy: 0.25})
}

// plate has no resistances and 10 integrity per liter, so a part of v liters has 10*v integrity.
func plate(t *testing.T) Substance {
	return mustSubstance(t, "plate", 1000, 10, Resistances{})
}

func platePart(t *testing.T, name string, integrity float64) BodyPart {
	return mustPart(t, name, SubstanceAndVolume{Substance: plate(t), Volume: integrity / 10})
}

// humanoid builds the torso/pelvis test dummy.
func humanoid(t *testing.T) *Body {
	t.Helper()
	f, b := flesh(t), bone(t)
	sv := func(s Substance, v float64) SubstanceAndVolume {
		return SubstanceAndVolume{Substance: s, Volume: v}
	}
	torso := mustLimb(t, "Torso",
		[]BodyPart{mustPart(t, "Spine", sv(f, 1), sv(b, 4))},
		[]BodyPart{mustPart(t, "Torso Tissue", sv(f, 12), sv(b, 8)), mustPart(t, "Heart", sv(f, 1))},
	)
	pelvis := mustLimb(t, "Pelvis",
		[]BodyPart{mustPart(t, "Pelvic Bone", sv(b, 4))},
		[]BodyPart{mustPart(t, "Pelvic Tissue", sv(f, 8), sv(b, 1)), mustPart(t, "Geldables", sv(f, 0.5))},
	)
	body, err := NewBody([]Limb{torso, pelvis}, []LimbJoint{{Origin: "Torso", Extension: "Pelvis"}}, DefaultSpillover())
	if err != nil {
		t.Fatal(err)
	}
	return body
}
