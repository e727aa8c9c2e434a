package xbrz

import "github.com/pixelscale/xbrz/internal/buffer"

// oobReader is the transparent-border out-of-bounds policy: reads outside
// the source image resolve to the zero pixel. It is built once per source
// row y and then queried once per kernel column advance.
type oobReader struct {
	rowYm1 []pixel
	rowY   []pixel
	rowYp1 []pixel
	rowYp2 []pixel
	width  int
}

// newOobReader captures the four source rows (y-1, y, y+1, y+2) a 4x4
// kernel positioned at row y will ever need, substituting nil for rows that
// fall outside [0, height).
func newOobReader(src *buffer.RenderingBuffer[pixel], width, height, y int) oobReader {
	rowOrNil := func(row int) []pixel {
		if row < 0 || row >= height {
			return nil
		}
		return src.Row(row)
	}

	return oobReader{
		rowYm1: rowOrNil(y - 1),
		rowY:   rowOrNil(y),
		rowYp1: rowOrNil(y + 1),
		rowYp2: rowOrNil(y + 2),
		width:  width,
	}
}

// fill writes the rightmost column (D, H, L, P) of the kernel for the
// column at x, i.e. source column x+2, substituting the zero pixel whenever
// that column lies outside [0, width).
func (o oobReader) fill(k *kernel4x4, x int) {
	xp2 := x + 2
	if xp2 < 0 || xp2 >= o.width {
		k.d, k.h, k.l, k.p = zeroPixel, zeroPixel, zeroPixel, zeroPixel
		return
	}

	k.d = pixelAt(o.rowYm1, xp2)
	k.h = pixelAt(o.rowY, xp2)
	k.l = pixelAt(o.rowYp1, xp2)
	k.p = pixelAt(o.rowYp2, xp2)
}

func pixelAt(row []pixel, x int) pixel {
	if row == nil {
		return zeroPixel
	}
	return row[x]
}
