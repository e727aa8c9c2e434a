package xbrz

import "github.com/pixelscale/xbrz/internal/buffer"

// scaleStripe runs the engine over source rows [yFirst, yLast) of src,
// writing the corresponding destination rows into dst. src and dst must
// already be sized for the full image (not just the stripe): the row-ahead
// buffer is always initialised fresh at yFirst-1, so stripes covering
// disjoint row ranges of the same image may run independently and
// concurrently without synchronisation, and their combined output is
// identical to running the whole image as one stripe.
func scaleStripe(src *buffer.RenderingBuffer[pixel], dst *buffer.RenderingBuffer[pixel], width, height, scale int, cfg ScalerConfig, yFirst, yLast int) {
	buf := make([]blend2x2, width)

	// Row-ahead pre-pass: populate buf as if row yFirst-1 had just been
	// processed, using the virtual row y = yFirst-1.
	{
		oob := newOobReader(src, width, height, yFirst-1)
		k := initRow(oob)

		c := k.preProcessCorners(cfg)
		buf[0].topLeft = c.bottomRight

		for x := 0; x < width; x++ {
			k.nextColumn(oob, x)
			c = k.preProcessCorners(cfg)
			buf[x].topRight = c.bottomLeft
			if x+1 < width {
				buf[x+1] = blend2x2{}
				buf[x+1].topLeft = c.bottomRight
			}
		}
	}

	for y := yFirst; y < yLast; y++ {
		oob := newOobReader(src, width, height, y)
		k := initRow(oob)

		c0 := k.preProcessCorners(cfg)
		next := blend2x2{topLeft: c0.bottomRight}
		buf[0].topLeft = c0.topRight

		destRowBase := y * scale

		for x := 0; x < width; x++ {
			k.nextColumn(oob, x)
			c := k.preProcessCorners(cfg)

			blendXY := buf[x]
			blendXY.bottomRight = c.topLeft

			next.topRight = c.bottomLeft
			buf[x] = next

			if x+1 < width {
				next = blend2x2{topLeft: c.bottomRight}
				buf[x+1].bottomLeft = c.topRight
			}

			block := newOutputMatrix(dst, scale, rotation0, x*scale, destRowBase)
			block.fill(k.f)

			if !blendXY.needsBlending() {
				continue
			}

			k3 := k.as3x3()
			blendPixel[rot0](&k3, blendXY, cfg, newOutputMatrix(dst, scale, rotation0, x*scale, destRowBase))
			blendPixel[rot90](&k3, blendXY, cfg, newOutputMatrix(dst, scale, rotation90, x*scale, destRowBase))
			blendPixel[rot180](&k3, blendXY, cfg, newOutputMatrix(dst, scale, rotation180, x*scale, destRowBase))
			blendPixel[rot270](&k3, blendXY, cfg, newOutputMatrix(dst, scale, rotation270, x*scale, destRowBase))
		}
	}
}
