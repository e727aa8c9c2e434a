package xbrz

// blendStep is one write into an NxN output block: a blend toward front
// with weight num/den, or (num == den) a plain overwrite.
type blendStep struct {
	i, j     int
	num, den int
}

func isEq(cfg ScalerConfig, d float32) bool {
	return float64(d) < cfg.EqualColorTolerance
}

// blendPixel applies at most one of five blending patterns to the rotated
// NxN output window for one corner of one source pixel, per the xBRZ
// corner-classification dispatch.
func blendPixel[R rotator](k *kernel3x3, info blend2x2, cfg ScalerConfig, out outputMatrix) {
	b := info.rotate(out.rot)
	if b.bottomRight == cornerNone {
		return
	}

	view := newRotView3x3[R](k)

	eq := func(x, y pixel) bool { return isEq(cfg, dist(x, y)) }
	neq := func(x, y pixel) bool { return !eq(x, y) }

	e, f, g, h, c, d, bb, i := view.e(), view.f(), view.g(), view.h(), view.c(), view.d(), view.b(), view.i()

	doLine := true
	switch {
	case b.bottomRight == cornerDominant:
		doLine = true
	case b.topRight != cornerNone && neq(e, g):
		doLine = false
	case b.bottomLeft != cornerNone && neq(e, c):
		doLine = false
	case neq(e, i) && eq(g, h) && eq(h, i) && eq(i, f) && eq(f, c):
		doLine = false
	}

	var px pixel
	if dist(e, f) <= dist(e, h) {
		px = f
	} else {
		px = h
	}

	n := out.n

	if doLine {
		fg := dist(f, g)
		hc := dist(h, c)
		tau := float32(cfg.SteepDirectionThreshold)

		shallow := tau*fg <= hc && neq(e, g) && neq(d, g)
		steep := tau*hc <= fg && neq(e, c) && neq(bb, c)

		switch {
		case shallow && steep:
			applySteps(out, px, lineSteepAndShallowSteps(n))
		case shallow:
			applySteps(out, px, lineShallowSteps(n))
		case steep:
			applySteps(out, px, lineSteepSteps(n))
		default:
			applySteps(out, px, lineDiagonalSteps(n))
		}
		return
	}

	applySteps(out, px, cornerSteps(n))
}

func applySteps(out outputMatrix, front pixel, steps []blendStep) {
	for _, s := range steps {
		if s.num == s.den {
			out.set(s.i, s.j, front)
		} else {
			out.blend(s.i, s.j, front, s.num, s.den)
		}
	}
}

// cornerSteps is the "round corner" pattern: the reference's named weights
// for N=2 (21/100), N=3 (45/100 center, 7/256 shoulders), N=4 (68/100
// center, two 9/100 shoulders). N=5,6 continue the same center/shoulder
// shape; those two scales' exact reference constants were not recoverable
// from the retrieval pack, so their values are an extrapolation of the
// N=2..4 progression (see DESIGN.md).
func cornerSteps(n int) []blendStep {
	switch n {
	case 2:
		return []blendStep{{1, 1, 21, 100}}
	case 3:
		return []blendStep{
			{2, 2, 45, 100},
			{2, 1, 7, 256},
			{1, 2, 7, 256},
		}
	case 4:
		return []blendStep{
			{3, 3, 68, 100},
			{3, 2, 9, 100},
			{2, 3, 9, 100},
		}
	case 5:
		return []blendStep{
			{4, 4, 83, 100},
			{4, 3, 11, 100},
			{3, 4, 11, 100},
			{4, 2, 3, 100},
			{2, 4, 3, 100},
		}
	default: // 6
		return []blendStep{
			{5, 5, 97, 100},
			{5, 4, 13, 100},
			{4, 5, 13, 100},
			{5, 3, 4, 100},
			{3, 5, 4, 100},
		}
	}
}

// shallowWeight gives the blend fraction for the cell d cells back from the
// far corner along a shallow line: 3/4 at the corner itself,
// halving for each row further out (1/4, 1/8, 1/16, ...).
func shallowWeight(d int) (num, den int) {
	if d == 0 {
		return 3, 4
	}
	return 1, 1 << uint(d+1)
}

// lineShallowSteps blends row N-1 across all N columns, weight increasing
// toward the far corner (which still only reaches 3/4, not a full
// overwrite: the line pattern never fully erases the far pixel the way
// corner does).
func lineShallowSteps(n int) []blendStep {
	steps := make([]blendStep, 0, n)
	for c := 0; c < n; c++ {
		num, den := shallowWeight(n - 1 - c)
		steps = append(steps, blendStep{n - 1, c, num, den})
	}
	return steps
}

// lineSteepSteps is lineShallowSteps transposed: the same staircase along
// column N-1 instead of row N-1.
func lineSteepSteps(n int) []blendStep {
	shallow := lineShallowSteps(n)
	steps := make([]blendStep, len(shallow))
	for idx, s := range shallow {
		steps[idx] = blendStep{s.j, s.i, s.num, s.den}
	}
	return steps
}

// lineSteepAndShallowSteps combines both staircases (minus their shared far
// corner) with a single corner weight that climbs toward 1 as N grows:
// 5/6, 11/12, 17/18, ... i.e. 1 - 1/(6*(N-1)).
func lineSteepAndShallowSteps(n int) []blendStep {
	steps := make([]blendStep, 0, 2*n-1)
	for r := 0; r < n-1; r++ {
		num, den := shallowWeight(n - 1 - r)
		steps = append(steps, blendStep{r, n - 1, num, den})
		steps = append(steps, blendStep{n - 1, r, num, den})
	}
	steps = append(steps, blendStep{n - 1, n - 1, 6*n - 7, 6 * (n - 1)})
	return steps
}

// lineDiagonalSteps blends the far corner at 1 - 1/(2*(N-1)) (1/2, 3/4,
// 5/6, ...) plus, for N>2, symmetric shoulder taps at each Chebyshev
// distance further out reusing shallowWeight's halving sequence.
func lineDiagonalSteps(n int) []blendStep {
	steps := make([]blendStep, 0, n)
	steps = append(steps, blendStep{n - 1, n - 1, 2*n - 3, 2 * (n - 1)})
	for d := 1; d <= n-2; d++ {
		num, den := shallowWeight(d)
		steps = append(steps, blendStep{n - 1 - d, n - 1, num, den})
		steps = append(steps, blendStep{n - 1, n - 1 - d, num, den})
	}
	return steps
}
