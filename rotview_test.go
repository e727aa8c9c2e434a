package xbrz

import "testing"

func sampleKernel3x3() kernel3x3 {
	return kernel3x3{
		a: newPixel(1, 0, 0, 255), b: newPixel(2, 0, 0, 255), c: newPixel(3, 0, 0, 255),
		d: newPixel(4, 0, 0, 255), e: newPixel(5, 0, 0, 255), f: newPixel(6, 0, 0, 255),
		g: newPixel(7, 0, 0, 255), h: newPixel(8, 0, 0, 255), i: newPixel(9, 0, 0, 255),
	}
}

func TestRotView3x3CentreInvariant(t *testing.T) {
	k := sampleKernel3x3()
	if v := newRotView3x3[rot0](&k); v.e() != k.e {
		t.Errorf("rot0 centre mismatch")
	}
	if v := newRotView3x3[rot90](&k); v.e() != k.e {
		t.Errorf("rot90 centre mismatch")
	}
	if v := newRotView3x3[rot180](&k); v.e() != k.e {
		t.Errorf("rot180 centre mismatch")
	}
	if v := newRotView3x3[rot270](&k); v.e() != k.e {
		t.Errorf("rot270 centre mismatch")
	}
}

func TestRotView3x3Rotation90Mapping(t *testing.T) {
	k := sampleKernel3x3()
	v := newRotView3x3[rot90](&k)

	if v.b() != k.d {
		t.Errorf("rot90 b() = %v, want k.d = %v", v.b(), k.d)
	}
	if v.c() != k.a {
		t.Errorf("rot90 c() = %v, want k.a = %v", v.c(), k.a)
	}
	if v.f() != k.b {
		t.Errorf("rot90 f() = %v, want k.b = %v", v.f(), k.b)
	}
	if v.h() != k.f {
		t.Errorf("rot90 h() = %v, want k.f = %v", v.h(), k.f)
	}
}

func TestRotView3x3Rotation180IsSelfInverse(t *testing.T) {
	k := sampleKernel3x3()
	v0 := newRotView3x3[rot0](&k)
	v180 := newRotView3x3[rot180](&k)

	// Applying rotation180 twice (conceptually) returns every field to its
	// rot0 value; verified here by checking rot180 is its own inverse
	// pairing (b<->h, c<->g, d<->f).
	if v180.b() != k.h || v180.h() != k.b {
		t.Errorf("rot180 b/h pairing broken")
	}
	if v180.c() != k.g || v180.g() != k.c {
		t.Errorf("rot180 c/g pairing broken")
	}
	if v180.d() != k.f || v180.f() != k.d {
		t.Errorf("rot180 d/f pairing broken")
	}
	_ = v0
}
