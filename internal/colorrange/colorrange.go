// Package colorrange implements an inclusive per-channel range test that
// keeps or removes pixels of an 8-bit image.
package colorrange

import (
	"errors"
	"fmt"
	"sync"

	"filter-workbench/internal/imaging"
)

// ErrInvalidConfiguration reports min/max range arrays whose lengths
// differ or are zero.
var ErrInvalidConfiguration = errors.New("min and max ranges must have equal nonzero lengths")

// Listener is the opaque handle returned by AddListener and accepted by
// RemoveListener.
type Listener struct {
	fn func()
}

// Filter holds one inclusive [min, max] interval per channel and a keep
// flag. A pixel is in range when every channel value falls inside its
// interval; processing zeroes all channels of each pixel whose in-range
// result disagrees with the keep flag. The filter carries configuration
// only, never image data, so one instance serves any number of images of
// any size.
type Filter struct {
	mu sync.RWMutex
	// min and max are replaced wholesale on reconfiguration and never
	// mutated in place, so snapshots taken under the read lock stay valid.
	min       []int
	max       []int
	keep      bool
	listeners []*Listener
}

// New builds a Filter from one [min, max] interval per channel. keep
// selects whether in-range pixels survive (true) or are cleared (false).
// The input slices are copied.
func New(min, max []int, keep bool) (*Filter, error) {
	if err := validateRanges(min, max); err != nil {
		return nil, err
	}
	return &Filter{
		min:  append([]int(nil), min...),
		max:  append([]int(nil), max...),
		keep: keep,
	}, nil
}

func validateRanges(min, max []int) error {
	if len(min) == 0 || len(min) != len(max) {
		return fmt.Errorf("colorrange: %d min and %d max values: %w", len(min), len(max), ErrInvalidConfiguration)
	}
	return nil
}

// SetRanges replaces both range arrays as one unit. When validation fails
// the previous configuration stays in effect untouched.
func (f *Filter) SetRanges(min, max []int) error {
	if err := validateRanges(min, max); err != nil {
		return err
	}
	minCopy := append([]int(nil), min...)
	maxCopy := append([]int(nil), max...)

	f.mu.Lock()
	f.min = minCopy
	f.max = maxCopy
	f.mu.Unlock()
	return nil
}

// SetKeep replaces the keep flag. The range arrays are unaffected.
func (f *Filter) SetKeep(keep bool) {
	f.mu.Lock()
	f.keep = keep
	f.mu.Unlock()
}

// Ranges returns copies of the current min and max arrays.
func (f *Filter) Ranges() (min, max []int) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]int(nil), f.min...), append([]int(nil), f.max...)
}

// Keep reports whether in-range pixels survive processing.
func (f *Filter) Keep() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.keep
}

// Process applies the range test to img in place and returns the same
// handle; callers that need the original must clone it first. An image
// whose channel count differs from the configured range length is
// returned unmodified; the mismatch is deliberately not an error, so an
// instance can stay wired to sources of varying depth.
func (f *Filter) Process(img imaging.Image) imaging.Image {
	f.mu.RLock()
	min, max, keep := f.min, f.max, f.keep
	f.mu.RUnlock()

	if img.Channels() != len(min) {
		return img
	}

	rows, cols, channels := img.Rows(), img.Cols(), img.Channels()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			inRange := true
			for c := 0; c < channels; c++ {
				v := int(img.GetUCharAt3(row, col, c))
				if v < min[c] || v > max[c] {
					inRange = false
					break
				}
			}
			if inRange != keep {
				for c := 0; c < channels; c++ {
					img.SetUCharAt3(row, col, c, 0)
				}
			}
		}
	}
	return img
}

// AddListener registers fn for change notifications and returns the
// handle that removes it again. Listeners run in registration order.
func (f *Filter) AddListener(fn func()) *Listener {
	l := &Listener{fn: fn}
	f.mu.Lock()
	f.listeners = append(f.listeners, l)
	f.mu.Unlock()
	return l
}

// RemoveListener drops a previously registered listener. Handles that are
// not registered are ignored.
func (f *Filter) RemoveListener(l *Listener) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, registered := range f.listeners {
		if registered == l {
			f.listeners = append(f.listeners[:i], f.listeners[i+1:]...)
			return
		}
	}
}

// NotifyListeners invokes every registered listener synchronously on the
// calling goroutine, in registration order, with no payload. It is the
// surrounding glue's job to call this after interactive configuration
// changes; SetRanges and SetKeep do not notify on their own.
func (f *Filter) NotifyListeners() {
	f.mu.RLock()
	listeners := make([]*Listener, len(f.listeners))
	copy(listeners, f.listeners)
	f.mu.RUnlock()

	for _, l := range listeners {
		l.fn()
	}
}
