package workspace

import "copycat/internal/slipnet"

// Description attaches a descriptor (a concept node) to an object under a
// description type, e.g. letterCategory: b, or stringPositionCategory:
// leftmost.
type Description struct {
	Strengths

	Object          Object
	DescriptionType *slipnet.Node
	Descriptor      *slipnet.Node
}

// NewDescription pairs the object with a typed descriptor. The description
// is not registered as a built structure until Build.
func NewDescription(object Object, descriptionType, descriptor *slipnet.Node) *Description {
	return &Description{
		Object:          object,
		DescriptionType: descriptionType,
		Descriptor:      descriptor,
	}
}

// UpdateInternalStrength takes the descriptor's conceptual depth.
func (d *Description) UpdateInternalStrength() {
	d.InternalStrength = d.Descriptor.Depth
}

// UpdateExternalStrength averages local support with the description
// type's activation.
func (d *Description) UpdateExternalStrength() {
	d.ExternalStrength = (d.localSupport() + d.DescriptionType.Activation) / 2.0
}

// localSupport counts other, non-nested objects described with the same
// type, on a saturating 0/20/60/90/100 scale.
func (d *Description) localSupport() float64 {
	workspace := d.Object.Base().workspace()
	describedLikeSelf := 0
	for _, other := range workspace.Objects {
		if d.Object == other {
			continue
		}
		if d.Object.Base().IsWithin(other) || other.Base().IsWithin(d.Object) {
			continue
		}
		for _, description := range other.Base().Descriptions {
			if description.DescriptionType == d.DescriptionType {
				describedLikeSelf++
			}
		}
	}
	switch describedLikeSelf {
	case 0:
		return 0.0
	case 1:
		return 20.0
	case 2:
		return 60.0
	case 3:
		return 90.0
	}
	return 100.0
}

// Build posts full activation to both concept nodes and attaches the
// description to its object if an equivalent one is not already there.
func (d *Description) Build() {
	d.DescriptionType.Buffer = 100.0
	d.Descriptor.Buffer = 100.0
	base := d.Object.Base()
	if !base.Described(d.Descriptor) {
		base.Descriptions = append(base.Descriptions, d)
	}
}

// Break removes the description from the built structures and from its
// object.
func (d *Description) Break() {
	workspace := d.Object.Base().workspace()
	workspace.removeStructure(d)
	base := d.Object.Base()
	for i, description := range base.Descriptions {
		if description == d {
			base.Descriptions = append(base.Descriptions[:i], base.Descriptions[i+1:]...)
			break
		}
	}
}
