// Package imaging defines the pixel surface per-pixel filters run on and
// provides a pure in-memory implementation of it.
package imaging

// Image is the narrow capability set a per-pixel filter needs from an
// image buffer: dimensions, channel count, and raw byte access per
// channel. gocv.Mat satisfies it as-is, so OpenCV buffers and in-memory
// buffers are interchangeable to these filters.
type Image interface {
	Rows() int
	Cols() int
	Channels() int
	GetUCharAt3(row, col, channel int) uint8
	SetUCharAt3(row, col, channel int, value uint8)
}
