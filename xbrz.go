// Package xbrz implements the core of the xBRZ 1.8 pixel-art upscaler: a
// sliding 4x4 kernel, corner pre-classification, and a four-rotation
// blending pass that enlarges an RGBA8888 raster by an integer factor of
// 1 to 6 while preserving sharp diagonal edges.
//
// Image decoding/encoding, file I/O, and striping policy beyond the single
// row-range contract of ScaleStripe are callers' responsibility; the core
// only ever sees flat RGBA byte buffers.
package xbrz

import "github.com/pixelscale/xbrz/internal/buffer"

const (
	minFactor = 1
	maxFactor = 6
)

// Scale enlarges srcBytes, a width*height*4 RGBA8888 raster, by factor
// (1..6), returning a newly allocated (width*factor)*(height*factor)*4
// raster in the same layout. factor=1 copies the source verbatim. A
// width or height of 0 returns an empty buffer rather than an error.
func Scale(srcBytes []byte, width, height, factor int) ([]byte, error) {
	return ScaleWithConfig(srcBytes, width, height, factor, DefaultScalerConfig())
}

// ScaleWithConfig is Scale with an explicit ScalerConfig instead of the
// xBRZ 1.8 defaults.
func ScaleWithConfig(srcBytes []byte, width, height, factor int, cfg ScalerConfig) ([]byte, error) {
	if width == 0 || height == 0 {
		return []byte{}, nil
	}

	if len(srcBytes) != width*height*4 {
		return nil, newError(DimensionMismatch, "source length %d != %d*%d*4", len(srcBytes), width, height)
	}

	if factor < minFactor || factor > maxFactor {
		return nil, newError(FactorOutOfRange, "factor %d not in [%d,%d]", factor, minFactor, maxFactor)
	}

	if factor == 1 {
		out := make([]byte, len(srcBytes))
		copy(out, srcBytes)
		return out, nil
	}

	srcPix := decodeRGBA(srcBytes, width, height)
	dstWidth, dstHeight := width*factor, height*factor
	dstPix := make([]pixel, dstWidth*dstHeight)

	srcBuf := buffer.NewRenderingBufferWithData(srcPix, width, height, width)
	dstBuf := buffer.NewRenderingBufferWithData(dstPix, dstWidth, dstHeight, dstWidth)

	scaleStripe(srcBuf, dstBuf, width, height, factor, cfg, 0, height)

	return encodeRGBA(dstPix), nil
}

// ScaleStripe scales only source rows [yFirst, yLast) of srcBytes into the
// corresponding rows of a full-sized dstBytes buffer the caller has already
// allocated ((width*factor)*(height*factor)*4 bytes). Multiple calls over
// disjoint, non-empty row ranges of the same source and destination may run
// concurrently: each owns its destination rows exclusively, and the
// row-ahead corner buffer is always reinitialised fresh per call rather
// than carried over from a neighbouring stripe.
func ScaleStripe(srcBytes []byte, dstBytes []byte, width, height, factor int, cfg ScalerConfig, yFirst, yLast int) error {
	if factor < minFactor || factor > maxFactor {
		return newError(FactorOutOfRange, "factor %d not in [%d,%d]", factor, minFactor, maxFactor)
	}
	if len(srcBytes) != width*height*4 {
		return newError(DimensionMismatch, "source length %d != %d*%d*4", len(srcBytes), width, height)
	}
	if yFirst >= yLast || yFirst < 0 || yLast > height {
		return newError(EmptyRange, "y range [%d,%d) invalid for height %d", yFirst, yLast, height)
	}

	dstWidth, dstHeight := width*factor, height*factor
	if len(dstBytes) != dstWidth*dstHeight*4 {
		return newError(DimensionMismatch, "destination length %d != %d*%d*4", len(dstBytes), dstWidth, dstHeight)
	}

	srcPix := decodeRGBA(srcBytes, width, height)
	// Every destination pixel is fully overwritten by block.fill before any
	// blend reads it back, and a stripe only ever touches its own block
	// range, so the rest of dstPix can start zeroed rather than decoded
	// from dstBytes.
	dstPix := make([]pixel, dstWidth*dstHeight)

	srcBuf := buffer.NewRenderingBufferWithData(srcPix, width, height, width)
	dstBuf := buffer.NewRenderingBufferWithData(dstPix, dstWidth, dstHeight, dstWidth)

	scaleStripe(srcBuf, dstBuf, width, height, factor, cfg, yFirst, yLast)

	rowBytes := dstWidth * 4
	start := yFirst * factor * rowBytes
	end := yLast * factor * rowBytes
	copy(dstBytes[start:end], encodeRGBA(dstPix[start/4:end/4]))
	return nil
}

// decodeRGBA unpacks RGBA bytes into pixels; a fully transparent source
// pixel (alpha 0) becomes the zero pixel whatever its colour channels hold.
func decodeRGBA(b []byte, width, height int) []pixel {
	px := make([]pixel, width*height)
	for i := range px {
		o := i * 4
		if b[o+3] == 0 {
			continue
		}
		px[i] = newPixel(b[o], b[o+1], b[o+2], b[o+3])
	}
	return px
}

func encodeRGBA(px []pixel) []byte {
	b := make([]byte, len(px)*4)
	for i, p := range px {
		o := i * 4
		b[o], b[o+1], b[o+2], b[o+3] = p.R(), p.G(), p.B(), p.A()
	}
	return b
}
