package xbrz

import "github.com/pixelscale/xbrz/internal/buffer"

// rotateCCW is the inverse step used by rotateIndex to walk a rotation down
// to rotation0 one quarter-turn at a time.
func rotateCCW(r rotationEnum) rotationEnum {
	switch r {
	case rotation0:
		return rotation270
	case rotation90:
		return rotation0
	case rotation180:
		return rotation90
	default:
		return rotation180
	}
}

// rotateIndex maps (i,j) in an n x n square under rotation rot. It is a
// bijection on {0..n-1}^2 for every rot: each step strips one quarter-turn
// and recurses toward rotation0, where the map is the identity.
func rotateIndex(i, j, n int, rot rotationEnum) (int, int) {
	if rot == rotation0 {
		return i, j
	}
	return rotateIndex(n-1-j, i, n, rotateCCW(rot))
}

// outputMatrix is a rotated view into the NxN destination block for one
// source pixel. blockX/blockY is the block's top-left corner in
// unrotated destination coordinates; writes at logical (i,j) land at the
// rotated position within that block.
type outputMatrix struct {
	dest   *buffer.RenderingBuffer[pixel]
	n      int
	rot    rotationEnum
	blockX int
	blockY int
}

func newOutputMatrix(dest *buffer.RenderingBuffer[pixel], n int, rot rotationEnum, blockX, blockY int) outputMatrix {
	return outputMatrix{dest: dest, n: n, rot: rot, blockX: blockX, blockY: blockY}
}

func (m outputMatrix) rotatedIndex(i, j int) (int, int) {
	return rotateIndex(i, j, m.n, m.rot)
}

// set overwrites logical cell (i,j) with p.
func (m outputMatrix) set(i, j int, p pixel) {
	ri, rj := m.rotatedIndex(i, j)
	m.dest.Row(m.blockY + ri)[m.blockX+rj] = p
}

// blend applies the Pixel gradient at logical cell (i,j): back is the cell's
// current value, front is the blender's paint colour, weight front*num/den.
func (m outputMatrix) blend(i, j int, front pixel, num, den int) {
	ri, rj := m.rotatedIndex(i, j)
	row := m.dest.Row(m.blockY + ri)
	idx := m.blockX + rj
	row[idx] = gradient(front, row[idx], num, den)
}

// fill overwrites every cell of the block with p (the engine's initial
// fill-with-centre-pixel step; rotation-invariant so it bypasses
// rotatedIndex).
func (m outputMatrix) fill(p pixel) {
	for i := 0; i < m.n; i++ {
		row := m.dest.Row(m.blockY + i)
		for j := 0; j < m.n; j++ {
			row[m.blockX+j] = p
		}
	}
}
