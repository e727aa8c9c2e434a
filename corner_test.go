package xbrz

import "testing"

func TestCornerClassString(t *testing.T) {
	cases := map[cornerClass]string{
		cornerNone:     ".",
		cornerNormal:   "N",
		cornerDominant: "D",
	}
	for c, want := range cases {
		if got := c.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", c, got, want)
		}
	}
}

func TestBlend2x2NeedsBlending(t *testing.T) {
	var zero blend2x2
	if zero.needsBlending() {
		t.Errorf("zero-value blend2x2 should not need blending")
	}
	nonZero := blend2x2{topLeft: cornerNormal}
	if !nonZero.needsBlending() {
		t.Errorf("blend2x2 with a non-none corner should need blending")
	}
}

func TestBlend2x2RotateIsPermutation(t *testing.T) {
	b := blend2x2{
		topLeft:     cornerNormal,
		topRight:    cornerDominant,
		bottomLeft:  cornerNone,
		bottomRight: cornerNormal,
	}

	r0 := b.rotate(rotation0)
	if r0 != b {
		t.Errorf("rotate(0) changed the value: got %+v, want %+v", r0, b)
	}

	r360 := b.rotate(rotation90).rotate(rotation90).rotate(rotation90).rotate(rotation90)
	if r360 != b {
		t.Errorf("four 90-degree rotations should be identity: got %+v, want %+v", r360, b)
	}

	r180ViaTwo90 := b.rotate(rotation90).rotate(rotation90)
	if r180ViaTwo90 != b.rotate(rotation180) {
		t.Errorf("two 90-degree rotations should equal one 180-degree rotation")
	}
}

func TestBlend2x2Rotate90FieldMapping(t *testing.T) {
	b := blend2x2{topLeft: cornerNormal, topRight: cornerNone, bottomLeft: cornerNone, bottomRight: cornerNone}
	got := b.rotate(rotation90)
	want := blend2x2{topLeft: cornerNone, topRight: cornerNormal, bottomLeft: cornerNone, bottomRight: cornerNone}
	if got != want {
		t.Errorf("rotate(90) = %+v, want %+v", got, want)
	}
}
