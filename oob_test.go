package xbrz

import (
	"testing"

	"github.com/pixelscale/xbrz/internal/buffer"
)

func makeTestSource(width, height int, fn func(x, y int) pixel) *buffer.RenderingBuffer[pixel] {
	px := make([]pixel, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			px[y*width+x] = fn(x, y)
		}
	}
	return buffer.NewRenderingBufferWithData(px, width, height, width)
}

func solidSource(width, height int, p pixel) *buffer.RenderingBuffer[pixel] {
	return makeTestSource(width, height, func(x, y int) pixel { return p })
}

func TestOobReaderInBounds(t *testing.T) {
	p := newPixel(1, 2, 3, 255)
	src := solidSource(4, 4, p)
	oob := newOobReader(src, 4, 4, 1)

	var k kernel4x4
	oob.fill(&k, 0)
	if k.d != p || k.h != p || k.l != p || k.p != p {
		t.Errorf("in-bounds fill did not read solid colour: got d=%v h=%v l=%v p=%v", k.d, k.h, k.l, k.p)
	}
}

func TestOobReaderOutOfBoundsRow(t *testing.T) {
	p := newPixel(1, 2, 3, 255)
	src := solidSource(4, 4, p)

	// y = -1 means rows y-1=-2 and y=-1 are both out of bounds; only
	// y+1=0 and y+2=1 are real rows.
	oob := newOobReader(src, 4, 4, -1)
	var k kernel4x4
	oob.fill(&k, 0)
	if k.d != zeroPixel || k.h != zeroPixel {
		t.Errorf("expected zero pixel for out-of-bounds rows, got d=%v h=%v", k.d, k.h)
	}
	if k.l != p || k.p != p {
		t.Errorf("expected solid colour for in-bounds rows, got l=%v p=%v", k.l, k.p)
	}
}

func TestOobReaderOutOfBoundsColumn(t *testing.T) {
	p := newPixel(1, 2, 3, 255)
	src := solidSource(4, 4, p)
	oob := newOobReader(src, 4, 4, 1)

	var k kernel4x4
	oob.fill(&k, 3) // x+2 = 5, out of [0,4)
	if k.d != zeroPixel || k.h != zeroPixel || k.l != zeroPixel || k.p != zeroPixel {
		t.Errorf("expected all-zero fill for out-of-bounds column, got d=%v h=%v l=%v p=%v", k.d, k.h, k.l, k.p)
	}
}
