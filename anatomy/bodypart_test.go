package anatomy

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	seaofstars "github.com/tenth-speed-writer/sea-of-stars-tech-demo"
)

func TestNewBodyPartDerivedStats(t *testing.T) {
	part := mustPart(t, "Torso Tissue",
		SubstanceAndVolume{Substance: flesh(t), Volume: 12},
		SubstanceAndVolume{Substance: bone(t), Volume: 8},
	)
	if diff := cmp.Diff([]string{"flesh", "bone"}, part.Substances); diff != "" {
		t.Errorf("substances (-want +got):\n%s", diff)
	}
	assertClose(t, part.Volume, 20, 1e-9)
	assertClose(t, part.Mass, (1010*12+1400*8)/1000.0, 1e-9)
	assertClose(t, part.MaxIntegrity, 240, 1e-9)
	assertClose(t, part.Integrity, part.MaxIntegrity, 0)
	assertClose(t, part.Resist.Impact, (0.20*12-0.15*8)/20, 1e-9)
	assertClose(t, part.Resist.Shear, (0.25*8)/20, 1e-9)
	assertClose(t, part.Resist.Corrosive, (-0.15*12)/20, 1e-9)
	assertClose(t, part.Resist.Energy, (0.15*12+0.25*8)/20, 1e-9)
}

func TestNewBodyPartRejectsEmpty(t *testing.T) {
	if _, err := NewBodyPart("Nothing", nil); !errors.Is(err, seaofstars.ErrValidation) {
		t.Errorf("got %v, want ErrValidation", err)
	}
	if _, err := NewBodyPart("", []SubstanceAndVolume{{Substance: flesh(t), Volume: 1}}); !errors.Is(err, seaofstars.ErrValidation) {
		t.Errorf("got %v, want ErrValidation", err)
	}
	if _, err := NewBodyPart("Bad", []SubstanceAndVolume{{Substance: flesh(t), Volume: 0}}); !errors.Is(err, seaofstars.ErrValidation) {
		t.Errorf("got %v, want ErrValidation", err)
	}
}

func TestApplyResistances(t *testing.T) {
	for _, tc := range []struct {
		name   string
		resist Resistances
		damage Damage
		want   float64
	}{
		{name: "no resistance", damage: Damage{Impact: 10}, want: 90},
		{name: "full resistance negates", resist: Resistances{Shear: 1}, damage: Damage{Shear: 50}, want: 100},
		{name: "negative resistance doubles", resist: Resistances{Corrosive: -1}, damage: Damage{Corrosive: 10}, want: 80},
		{name: "half resistance", resist: Resistances{Energy: 0.5}, damage: Damage{Energy: 10}, want: 95},
		{name: "all types", resist: Resistances{Impact: 0.5, Shear: 0, Corrosive: -0.5, Energy: 1}, damage: Damage{Impact: 10, Shear: 10, Corrosive: 10, Energy: 10}, want: 100 - 5 - 10 - 15},
		{name: "zero vector", resist: Resistances{Impact: -1}, damage: Damage{}, want: 100},
		{name: "floored", damage: Damage{Impact: 60, Shear: 60}, want: 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			part := BodyPart{Name: "p", Volume: 1, MaxIntegrity: 100, Integrity: 100, Resist: tc.resist}
			part.Apply(tc.damage)
			assertClose(t, part.Integrity, tc.want, 1e-9)
		})
	}
}

func TestDamagedLeavesOriginal(t *testing.T) {
	part := platePart(t, "p", 50)
	hurt := part.Damaged(Damage{Impact: 20})
	assertClose(t, part.Integrity, 50, 1e-9)
	assertClose(t, hurt.Integrity, 30, 1e-9)
}

func TestIntegrityFloor(t *testing.T) {
	for range 1000 {
		a := fakeAttack(t)
		part := BodyPart{
			Name:         "p",
			Volume:       1,
			MaxIntegrity: 50,
			Integrity:    50,
			Resist:       Resistances{Impact: a.Resist, Shear: -a.Resist, Corrosive: a.Resist / 2, Energy: -1},
		}
		for range 5 {
			before := part.Integrity
			part.Apply(a.damage())
			if part.Integrity < 0 || part.Integrity > part.MaxIntegrity {
				t.Fatalf("integrity %v outside [0, %v] after %v", part.Integrity, part.MaxIntegrity, a.damage())
			}
			if part.Integrity > before {
				t.Fatalf("integrity rose from %v to %v", before, part.Integrity)
			}
		}
	}
}

func TestRestore(t *testing.T) {
	part := platePart(t, "p", 40)
	part.Apply(Damage{Impact: 100})
	if !part.IsDestroyed() {
		t.Fatalf("got integrity %v, want 0", part.Integrity)
	}
	part.Restore()
	assertClose(t, part.Integrity, 40, 1e-9)
}
