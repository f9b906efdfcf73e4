package anatomy

import (
	"errors"
	"math"
	"testing"

	seaofstars "github.com/tenth-speed-writer/sea-of-stars-tech-demo"
)

func TestNewDamage(t *testing.T) {
	if _, err := NewDamage(0, 0, 0, 0); err != nil {
		t.Errorf("zero vector: got %v", err)
	}
	for _, d := range [][4]float64{
		{-1, 0, 0, 0},
		{0, -0.1, 0, 0},
		{0, 0, -5, 0},
		{0, 0, 0, -1e-9},
		{math.Inf(1), 0, 0, 0},
	} {
		if _, err := NewDamage(d[0], d[1], d[2], d[3]); !errors.Is(err, seaofstars.ErrValidation) {
			t.Errorf("%v: got %v, want ErrValidation", d, err)
		}
	}
}

func TestDamageTypeAccessors(t *testing.T) {
	var d Damage
	for i, typ := range DamageTypes {
		d = d.With(typ, float64(i+1))
	}
	want := Damage{Impact: 1, Shear: 2, Corrosive: 3, Energy: 4}
	if d != want {
		t.Errorf("got %+v, want %+v", d, want)
	}
	for _, typ := range DamageTypes {
		parsed, err := ParseDamageType(typ.String())
		if err != nil || parsed != typ {
			t.Errorf("ParseDamageType(%q) = %v, %v", typ.String(), parsed, err)
		}
	}
	if _, err := ParseDamageType("psychic"); !errors.Is(err, seaofstars.ErrValidation) {
		t.Errorf("got %v, want ErrValidation", err)
	}
	if got := d.Add(d).Scale(0.5); got != d {
		t.Errorf("got %+v, want %+v", got, d)
	}
}
