package catalog

import "github.com/tenth-speed-writer/sea-of-stars-tech-demo/anatomy"

func component(substance string, volume float64) ComponentSpec {
	return ComponentSpec{Substance: substance, Volume: volume}
}

func part(name string, components ...ComponentSpec) PartSpec {
	return PartSpec{Name: name, Components: components}
}

func limb(name string, layers ...[]PartSpec) LimbSpec {
	return LimbSpec{Name: name, Layers: layers}
}

func layer(parts ...PartSpec) []PartSpec {
	return parts
}

// DefaultBlueprints returns the built-in blueprints.
func DefaultBlueprints() map[string]*Blueprint {
	flesh := anatomy.Substance{
		Name:              "flesh",
		Density:           1010,
		IntegrityPerLiter: 10,
		Resist:            anatomy.Resistances{Impact: 0.20, Shear: 0, Corrosive: -0.15, Energy: 0.15},
	}
	bone := anatomy.Substance{
		Name:              "bone",
		Density:           1400,
		IntegrityPerLiter: 15,
		Resist:            anatomy.Resistances{Impact: -0.15, Shear: 0.25, Corrosive: 0, Energy: 0.25},
	}
	nerve := anatomy.Substance{
		Name:              "nerve",
		Density:           1040,
		IntegrityPerLiter: 4,
		Resist:            anatomy.Resistances{Impact: -0.10, Shear: -0.20, Corrosive: -0.30, Energy: -0.50},
	}
	steel := anatomy.Substance{
		Name:              "steel",
		Density:           7850,
		IntegrityPerLiter: 60,
		Resist:            anatomy.Resistances{Impact: 0.50, Shear: 0.60, Corrosive: -0.25, Energy: 0.10},
	}
	copper := anatomy.Substance{
		Name:              "copper wiring",
		Density:           8960,
		IntegrityPerLiter: 8,
		Resist:            anatomy.Resistances{Impact: 0, Shear: -0.25, Corrosive: -0.10, Energy: -0.75},
	}
	materia := anatomy.Substance{
		Name:              "materia",
		Density:           2650,
		IntegrityPerLiter: 25,
		Resist:            anatomy.Resistances{Impact: -0.40, Shear: 0.30, Corrosive: 0.90, Energy: 0.50},
	}

	return map[string]*Blueprint{
		"humanoid": {
			Name:       "humanoid",
			Substances: []anatomy.Substance{flesh, bone, nerve},
			Limbs: []LimbSpec{
				limb("Torso",
					layer(part("Spine", component("bone", 4), component("nerve", 1))),
					layer(part("Heart", component("flesh", 1)), part("Ribs", component("bone", 3)), part("Lungs", component("flesh", 4))),
					layer(part("Torso Tissue", component("flesh", 12), component("bone", 8))),
				),
				limb("Head",
					layer(part("Brain", component("nerve", 1.3))),
					layer(part("Skull", component("bone", 1.2))),
					layer(part("Face", component("flesh", 1.5)), part("Scalp", component("flesh", 0.5))),
				),
				limb("Pelvis",
					layer(part("Pelvic Bone", component("bone", 4))),
					layer(part("Pelvic Tissue", component("flesh", 8), component("bone", 1)), part("Geldables", component("flesh", 0.5))),
				),
				limb("Left Arm",
					layer(part("Humerus", component("bone", 0.6))),
					layer(part("Arm Tissue", component("flesh", 3.4))),
				),
				limb("Right Arm",
					layer(part("Humerus", component("bone", 0.6))),
					layer(part("Arm Tissue", component("flesh", 3.4))),
				),
				limb("Left Leg",
					layer(part("Femur", component("bone", 1.2))),
					layer(part("Leg Tissue", component("flesh", 8.8))),
				),
				limb("Right Leg",
					layer(part("Femur", component("bone", 1.2))),
					layer(part("Leg Tissue", component("flesh", 8.8))),
				),
			},
			Joints: []anatomy.LimbJoint{
				{Origin: "Torso", Extension: "Head"},
				{Origin: "Torso", Extension: "Pelvis"},
				{Origin: "Torso", Extension: "Left Arm"},
				{Origin: "Torso", Extension: "Right Arm"},
				{Origin: "Pelvis", Extension: "Left Leg"},
				{Origin: "Pelvis", Extension: "Right Leg"},
			},
		},
		"drone": {
			Name:       "drone",
			Substances: []anatomy.Substance{steel, copper, materia},
			Limbs: []LimbSpec{
				limb("Chassis",
					layer(part("Materia Core", component("materia", 0.8))),
					layer(part("Wiring Loom", component("copper wiring", 1.5)), part("Capacitor Bank", component("copper wiring", 0.5), component("steel", 0.5))),
					layer(part("Hull Plating", component("steel", 3))),
				),
				limb("Sensor Mast",
					layer(part("Sensor Array", component("copper wiring", 0.4), component("materia", 0.1))),
					layer(part("Mast Housing", component("steel", 0.6))),
				),
				limb("Manipulator",
					layer(part("Servo", component("copper wiring", 0.3), component("steel", 0.3))),
					// The manipulator has no armor layer of its own; the empty slot is kept for fitting one.
					layer(),
				),
			},
			Joints: []anatomy.LimbJoint{
				{Origin: "Chassis", Extension: "Sensor Mast"},
				{Origin: "Chassis", Extension: "Manipulator"},
			},
		},
	}
}
