package anatomy

import (
	goccy "github.com/goccy/go-json"
)

// bodyJSON is the snapshot format of a Body.
type bodyJSON struct {
	Limbs     []Limb
	Joints    []LimbJoint
	Spillover Spillover
}

// MarshalJSON implements json.Marshaler for Body.
func (b *Body) MarshalJSON() ([]byte, error) {
	return goccy.Marshal(bodyJSON{
		Limbs:     b.limbs,
		Joints:    b.joints,
		Spillover: b.spillover,
	})
}

// UnmarshalJSON implements json.Unmarshaler for Body. The snapshot is
// validated as NewBody would, except that joints may name extensions that
// have already been destroyed.
func (b *Body) UnmarshalJSON(data []byte) error {
	var j bodyJSON
	if err := goccy.Unmarshal(data, &j); err != nil {
		return err
	}
	nb, err := newBody(j.Limbs, j.Joints, j.Spillover, false)
	if err != nil {
		return err
	}
	*b = *nb
	return nil
}
