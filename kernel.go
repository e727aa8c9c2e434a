package xbrz

// kernel4x4 is the 4x4 sliding window of source pixels:
//
//	A B C D
//	E F G H
//	I J K L
//	M N O P
//
// F is the centre, the source pixel currently being enlarged.
type kernel4x4 struct {
	a, b, c, d pixel
	e, f, g, h pixel
	i, j, k, l pixel
	m, n, o, p pixel
}

// kernel3x3 reinterprets the top-left 3x3 of a kernel4x4 (A B C / E F G /
// I J K), the neighbourhood rotView3x3 rotates around centre F.
type kernel3x3 struct {
	a, b, c pixel
	d, e, f pixel
	g, h, i pixel
}

func (k *kernel4x4) as3x3() kernel3x3 {
	return kernel3x3{
		a: k.a, b: k.b, c: k.c,
		d: k.e, e: k.f, f: k.g,
		g: k.i, h: k.j, i: k.k,
	}
}

// initRow positions the kernel one column left of the row served by oob
// (centre F at x=-1): the reader is queried four times at x = -4..-1, each
// call filling the rightmost column before the earlier columns shift left.
// The first nextColumn call, at x=0, then centres it on the row's first pixel.
func initRow(oob oobReader) kernel4x4 {
	var k kernel4x4

	oob.fill(&k, -4)
	k.a, k.e, k.i, k.m = k.d, k.h, k.l, k.p

	oob.fill(&k, -3)
	k.b, k.f, k.j, k.n = k.d, k.h, k.l, k.p

	oob.fill(&k, -2)
	k.c, k.g, k.k, k.o = k.d, k.h, k.l, k.p

	oob.fill(&k, -1)

	return k
}

// nextColumn advances the kernel one column to the right: every column
// shifts left, and the new rightmost column is filled from oob at x.
func (k *kernel4x4) nextColumn(oob oobReader, x int) {
	k.a, k.e, k.i, k.m = k.b, k.f, k.j, k.n
	k.b, k.f, k.j, k.n = k.c, k.g, k.k, k.o
	k.c, k.g, k.k, k.o = k.d, k.h, k.l, k.p

	oob.fill(k, x)
}

// preProcessCorners classifies the four corners around the centre 2x2
// square F, G, J, K using the configured thresholds.
func (k *kernel4x4) preProcessCorners(cfg ScalerConfig) blend2x2 {
	var result blend2x2

	if k.f == k.g && k.j == k.k {
		return result
	}
	if k.f == k.j && k.g == k.k {
		return result
	}

	cBias := float32(cfg.CenterDirectionBias)
	dirThresh := float32(cfg.DominantDirectionThreshold)

	jg := dist(k.i, k.f) + dist(k.f, k.c) + dist(k.n, k.k) + dist(k.k, k.h) + cBias*dist(k.j, k.g)
	fk := dist(k.e, k.j) + dist(k.j, k.o) + dist(k.b, k.g) + dist(k.g, k.l) + cBias*dist(k.f, k.k)

	switch {
	case jg < fk:
		mode := cornerNormal
		if dirThresh*jg < fk {
			mode = cornerDominant
		}
		if k.f != k.g && k.f != k.j {
			result.topLeft = mode
		}
		if k.k != k.j && k.k != k.g {
			result.bottomRight = mode
		}
	case fk < jg:
		mode := cornerNormal
		if dirThresh*fk < jg {
			mode = cornerDominant
		}
		if k.j != k.f && k.j != k.k {
			result.bottomLeft = mode
		}
		if k.g != k.f && k.g != k.k {
			result.topRight = mode
		}
	}

	return result
}
