package imaging

import "testing"

func TestNewBufferDimensions(t *testing.T) {
	tests := []struct {
		name     string
		rows     int
		cols     int
		channels int
		wantLen  int
	}{
		{"gray 2x3", 2, 3, 1, 6},
		{"color 4x4", 4, 4, 3, 48},
		{"single pixel", 1, 1, 4, 4},
		{"zero rows", 0, 5, 3, 0},
		{"negative clamped", -2, 3, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(tt.rows, tt.cols, tt.channels)
			if got := len(b.Data()); got != tt.wantLen {
				t.Errorf("len(Data()) = %d, want %d", got, tt.wantLen)
			}
		})
	}
}

func TestBufferGetSetRoundTrip(t *testing.T) {
	b := NewBuffer(2, 2, 3)
	b.SetUCharAt3(1, 0, 2, 99)
	if got := b.GetUCharAt3(1, 0, 2); got != 99 {
		t.Errorf("GetUCharAt3(1,0,2) = %d, want 99", got)
	}
	if got := b.GetUCharAt3(1, 0, 1); got != 0 {
		t.Errorf("untouched sample = %d, want 0", got)
	}
}

func TestBufferRowMajorLayout(t *testing.T) {
	b := NewBuffer(2, 2, 2)
	b.SetUCharAt3(0, 1, 0, 10)
	b.SetUCharAt3(1, 0, 1, 20)
	data := b.Data()
	if data[2] != 10 {
		t.Errorf("data[2] = %d, want 10", data[2])
	}
	if data[5] != 20 {
		t.Errorf("data[5] = %d, want 20", data[5])
	}
}

// Out-of-range access must not panic: reads yield zero, writes disappear.
func TestBufferOutOfRange(t *testing.T) {
	b := NewBuffer(2, 2, 1)
	positions := []struct{ row, col, channel int }{
		{-1, 0, 0}, {2, 0, 0}, {0, -1, 0}, {0, 2, 0}, {0, 0, -1}, {0, 0, 1},
	}
	for _, p := range positions {
		b.SetUCharAt3(p.row, p.col, p.channel, 255)
		if got := b.GetUCharAt3(p.row, p.col, p.channel); got != 0 {
			t.Errorf("GetUCharAt3(%d,%d,%d) = %d, want 0", p.row, p.col, p.channel, got)
		}
	}
	for _, v := range b.Data() {
		if v != 0 {
			t.Fatalf("out-of-range write leaked into buffer: %v", b.Data())
		}
	}
}

func TestBufferCloneIndependent(t *testing.T) {
	b := NewBuffer(1, 2, 1)
	b.SetUCharAt3(0, 0, 0, 5)
	clone := b.Clone()
	clone.SetUCharAt3(0, 1, 0, 7)

	if !b.Equal(b) {
		t.Error("buffer not equal to itself")
	}
	if b.Equal(clone) {
		t.Error("mutated clone still equal to original")
	}
	if got := b.GetUCharAt3(0, 1, 0); got != 0 {
		t.Errorf("original changed through clone: got %d, want 0", got)
	}
}

func TestBufferEqualShape(t *testing.T) {
	a := NewBuffer(2, 3, 1)
	b := NewBuffer(3, 2, 1)
	if a.Equal(b) {
		t.Error("buffers with different shapes reported equal")
	}
	if a.Equal(nil) {
		t.Error("buffer equal to nil")
	}
}
