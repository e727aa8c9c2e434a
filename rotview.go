package xbrz

// rotator is implemented by the four zero-size rotation markers. Each method
// returns the kernel3x3 field that ends up at that rotated position, the
// same permutation the engine's OutputMatrix applies to destination writes.
// There is deliberately no A getter: the top-left corner of the 3x3 view is
// never read by the blender.
type rotator interface {
	enum() rotationEnum
	b(*kernel3x3) pixel
	c(*kernel3x3) pixel
	d(*kernel3x3) pixel
	e(*kernel3x3) pixel
	f(*kernel3x3) pixel
	g(*kernel3x3) pixel
	h(*kernel3x3) pixel
	i(*kernel3x3) pixel
}

type rot0 struct{}

func (rot0) enum() rotationEnum  { return rotation0 }
func (rot0) b(k *kernel3x3) pixel { return k.b }
func (rot0) c(k *kernel3x3) pixel { return k.c }
func (rot0) d(k *kernel3x3) pixel { return k.d }
func (rot0) e(k *kernel3x3) pixel { return k.e }
func (rot0) f(k *kernel3x3) pixel { return k.f }
func (rot0) g(k *kernel3x3) pixel { return k.g }
func (rot0) h(k *kernel3x3) pixel { return k.h }
func (rot0) i(k *kernel3x3) pixel { return k.i }

type rot90 struct{}

func (rot90) enum() rotationEnum  { return rotation90 }
func (rot90) b(k *kernel3x3) pixel { return k.d }
func (rot90) c(k *kernel3x3) pixel { return k.a }
func (rot90) d(k *kernel3x3) pixel { return k.h }
func (rot90) e(k *kernel3x3) pixel { return k.e }
func (rot90) f(k *kernel3x3) pixel { return k.b }
func (rot90) g(k *kernel3x3) pixel { return k.i }
func (rot90) h(k *kernel3x3) pixel { return k.f }
func (rot90) i(k *kernel3x3) pixel { return k.c }

type rot180 struct{}

func (rot180) enum() rotationEnum  { return rotation180 }
func (rot180) b(k *kernel3x3) pixel { return k.h }
func (rot180) c(k *kernel3x3) pixel { return k.g }
func (rot180) d(k *kernel3x3) pixel { return k.f }
func (rot180) e(k *kernel3x3) pixel { return k.e }
func (rot180) f(k *kernel3x3) pixel { return k.d }
func (rot180) g(k *kernel3x3) pixel { return k.c }
func (rot180) h(k *kernel3x3) pixel { return k.b }
func (rot180) i(k *kernel3x3) pixel { return k.a }

type rot270 struct{}

func (rot270) enum() rotationEnum  { return rotation270 }
func (rot270) b(k *kernel3x3) pixel { return k.f }
func (rot270) c(k *kernel3x3) pixel { return k.i }
func (rot270) d(k *kernel3x3) pixel { return k.b }
func (rot270) e(k *kernel3x3) pixel { return k.e }
func (rot270) f(k *kernel3x3) pixel { return k.h }
func (rot270) g(k *kernel3x3) pixel { return k.a }
func (rot270) h(k *kernel3x3) pixel { return k.d }
func (rot270) i(k *kernel3x3) pixel { return k.g }

// rotView3x3 is a compile-time rotated lens over a kernel3x3: the blender
// reads view.f(), view.g() and so on without ever branching on rotation.
type rotView3x3[R rotator] struct {
	k *kernel3x3
}

func newRotView3x3[R rotator](k *kernel3x3) rotView3x3[R] {
	return rotView3x3[R]{k: k}
}

func (v rotView3x3[R]) b() pixel { var r R; return r.b(v.k) }
func (v rotView3x3[R]) c() pixel { var r R; return r.c(v.k) }
func (v rotView3x3[R]) d() pixel { var r R; return r.d(v.k) }
func (v rotView3x3[R]) e() pixel { var r R; return r.e(v.k) }
func (v rotView3x3[R]) f() pixel { var r R; return r.f(v.k) }
func (v rotView3x3[R]) g() pixel { var r R; return r.g(v.k) }
func (v rotView3x3[R]) h() pixel { var r R; return r.h(v.k) }
func (v rotView3x3[R]) i() pixel { var r R; return r.i(v.k) }
