package reassemble

// ReferencePose is the assembled pose of one part of the reference robot.
type ReferencePose struct {
	Name     string
	Position Vec3
	Radius   float64
}

// ReferencePoses lays out the reference rescue robot, in ReferencePartNames
// order. Radii are pick radii.
var ReferencePoses = []ReferencePose{
	{"leftArm", Vec3{-0.75, 1.15, 0}, 0.22},
	{"rightArm", Vec3{0.75, 1.15, 0}, 0.22},
	{"armor_part_1", Vec3{-0.25, 1.35, -0.1}, 0.2},
	{"armor_part_2", Vec3{0.25, 1.35, -0.1}, 0.2},
	{"armor_part_3", Vec3{0, 1.0, -0.15}, 0.22},
	{"armor_part_4", Vec3{-0.25, 0.7, -0.1}, 0.2},
	{"armor_part_5", Vec3{0.25, 0.7, -0.1}, 0.2},
	{"head", Vec3{0, 1.8, 0}, 0.26},
	{"legs", Vec3{0, 0.3, 0}, 0.3},
}

// NewReferenceRig builds the reference robot with every part assembled. It
// panics if ReferencePoses names a part twice.
func NewReferenceRig() *Rig {
	rig := NewRig("rescue_robot")
	for _, p := range ReferencePoses {
		if _, err := rig.AddPart(p.Name, p.Position, p.Radius); err != nil {
			panic(err)
		}
	}
	return rig
}
