// Package buffer provides a stride-aware row accessor over a flat pixel
// slice, shared by the xbrz engine for both its source and destination
// rasters.
package buffer

import "github.com/pixelscale/xbrz/internal/basics"

// RenderingBuffer provides access to a pixel buffer with a non-negative
// stride in elements per row; stride need not equal width when a caller
// pads rows.
type RenderingBuffer[T any] struct {
	buf    []T
	width  int
	height int
	stride int
}

// NewRenderingBuffer creates an unattached rendering buffer.
func NewRenderingBuffer[T any]() *RenderingBuffer[T] {
	return &RenderingBuffer[T]{}
}

// NewRenderingBufferWithData creates a rendering buffer already attached to buf.
func NewRenderingBufferWithData[T any](buf []T, width, height, stride int) *RenderingBuffer[T] {
	rb := &RenderingBuffer[T]{}
	rb.Attach(buf, width, height, stride)
	return rb
}

// Attach attaches a flat pixel slice to the rendering buffer.
func (rb *RenderingBuffer[T]) Attach(buf []T, width, height, stride int) {
	rb.buf = buf
	rb.width = width
	rb.height = height
	rb.stride = stride
}

func (rb *RenderingBuffer[T]) Width() int  { return rb.width }
func (rb *RenderingBuffer[T]) Height() int { return rb.height }
func (rb *RenderingBuffer[T]) Stride() int { return rb.stride }

// Row returns the full row y, or nil if y is outside the attached buffer.
func (rb *RenderingBuffer[T]) Row(y int) []T {
	if y < 0 || y >= rb.height {
		return nil
	}

	rowOffset := y * rb.stride
	if rowOffset < 0 || rowOffset >= len(rb.buf) {
		return nil
	}

	end := basics.IMin(rowOffset+rb.stride, len(rb.buf))
	return rb.buf[rowOffset:end]
}
