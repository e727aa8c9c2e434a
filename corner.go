package xbrz

// cornerClass is the blending decision for one inter-pixel corner.
type cornerClass uint8

const (
	// cornerNone: no blending at this corner.
	cornerNone cornerClass = iota
	// cornerNormal: blend, deferring to neighbour context (may be vetoed).
	cornerNormal
	// cornerDominant: blend unconditionally; the diagonal edge here
	// dominates its neighbourhood strongly enough that neighbour context
	// must not veto it. Do not merge with cornerNormal: the L-shape
	// exclusion in the blender depends on the distinction.
	cornerDominant
)

func (c cornerClass) String() string {
	switch c {
	case cornerNone:
		return "."
	case cornerNormal:
		return "N"
	case cornerDominant:
		return "D"
	default:
		return "?"
	}
}

// blend2x2 holds the four corner classifications around a kernel's centre
// pixel F: the corners of the 2x2 square F,G,J,K.
type blend2x2 struct {
	topLeft     cornerClass
	topRight    cornerClass
	bottomLeft  cornerClass
	bottomRight cornerClass
}

// needsBlending reports whether any corner is non-none.
func (b blend2x2) needsBlending() bool {
	return b != blend2x2{}
}

// rotationEnum is a runtime rotation amount, used wherever compile-time
// dispatch isn't load-bearing (blend2x2 rotation and outputMatrix writes;
// contrast rotView3x3's compile-time rotator, used for the blender's kernel
// reads).
type rotationEnum int

const (
	rotation0 rotationEnum = iota
	rotation90
	rotation180
	rotation270
)

// rotate re-assigns corners cyclically for rotation r.
func (b blend2x2) rotate(r rotationEnum) blend2x2 {
	switch r {
	case rotation0:
		return b
	case rotation90:
		return blend2x2{
			topLeft:     b.bottomLeft,
			topRight:    b.topLeft,
			bottomLeft:  b.bottomRight,
			bottomRight: b.topRight,
		}
	case rotation180:
		return blend2x2{
			topLeft:     b.bottomRight,
			topRight:    b.bottomLeft,
			bottomLeft:  b.topRight,
			bottomRight: b.topLeft,
		}
	default: // rotation270
		return blend2x2{
			topLeft:     b.topRight,
			topRight:    b.bottomRight,
			bottomLeft:  b.topLeft,
			bottomRight: b.bottomLeft,
		}
	}
}
