package imaging

// Buffer is an in-memory Image: row-major layout, interleaved channels,
// 8-bit samples. Reads outside the buffer return 0 and writes outside it
// are dropped.
type Buffer struct {
	rows     int
	cols     int
	channels int
	data     []uint8
}

// NewBuffer allocates a zeroed buffer. Non-positive dimensions yield an
// empty buffer.
func NewBuffer(rows, cols, channels int) *Buffer {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	if channels < 0 {
		channels = 0
	}
	return &Buffer{
		rows:     rows,
		cols:     cols,
		channels: channels,
		data:     make([]uint8, rows*cols*channels),
	}
}

func (b *Buffer) Rows() int     { return b.rows }
func (b *Buffer) Cols() int     { return b.cols }
func (b *Buffer) Channels() int { return b.channels }

func (b *Buffer) index(row, col, channel int) (int, bool) {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols || channel < 0 || channel >= b.channels {
		return 0, false
	}
	return (row*b.cols+col)*b.channels + channel, true
}

// GetUCharAt3 returns the sample at (row, col, channel), or 0 when the
// position is outside the buffer.
func (b *Buffer) GetUCharAt3(row, col, channel int) uint8 {
	i, ok := b.index(row, col, channel)
	if !ok {
		return 0
	}
	return b.data[i]
}

// SetUCharAt3 stores value at (row, col, channel). Positions outside the
// buffer are ignored.
func (b *Buffer) SetUCharAt3(row, col, channel int, value uint8) {
	if i, ok := b.index(row, col, channel); ok {
		b.data[i] = value
	}
}

// Data returns the live backing slice in row-major interleaved order.
func (b *Buffer) Data() []uint8 {
	return b.data
}

// Clone returns an independent copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	clone := NewBuffer(b.rows, b.cols, b.channels)
	copy(clone.data, b.data)
	return clone
}

// Equal reports whether both buffers have identical shape and samples.
func (b *Buffer) Equal(other *Buffer) bool {
	if other == nil || b.rows != other.rows || b.cols != other.cols || b.channels != other.channels {
		return false
	}
	for i, v := range b.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}
