// Package workspace owns the working image of a session: the current
// Mat, a single undo slot, and the last loaded image for reverts.
package workspace

import (
	"errors"
	"sync"

	"gocv.io/x/gocv"

	"filter-workbench/internal/filter"
)

// ErrNoImage reports an operation that needs a working image before one
// was loaded.
var ErrNoImage = errors.New("no image loaded")

// Workspace holds the session's Mats behind one mutex. Mats handed to
// SetImage and SetLoaded become workspace-owned and are closed when
// evicted; handles returned by Image stay shared, so callers must not
// close them.
type Workspace struct {
	mu         sync.Mutex
	current    gocv.Mat
	undo       gocv.Mat
	lastLoaded gocv.Mat
	onChange   func()
}

func New() *Workspace {
	return &Workspace{
		current:    gocv.NewMat(),
		undo:       gocv.NewMat(),
		lastLoaded: gocv.NewMat(),
	}
}

// SetOnChange registers the callback fired after every change to the
// working image. The callback runs outside the workspace lock.
func (w *Workspace) SetOnChange(fn func()) {
	w.mu.Lock()
	w.onChange = fn
	w.mu.Unlock()
}

// SetImage installs img as the working image, moving the previous one
// into the undo slot.
func (w *Workspace) SetImage(img gocv.Mat) {
	w.mu.Lock()
	w.undo.Close()
	w.undo = w.current
	w.current = img
	onChange := w.onChange
	w.mu.Unlock()

	if onChange != nil {
		onChange()
	}
}

// Image returns the working image as a shared handle.
func (w *Workspace) Image() (gocv.Mat, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.current.Empty() {
		return gocv.Mat{}, ErrNoImage
	}
	return w.current, nil
}

// HasImage reports whether a working image is loaded.
func (w *Workspace) HasImage() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return !w.current.Empty()
}

// Apply runs f on a clone of the working image and installs the result.
// The clone is what lets every filter work destructively while undo
// still restores the input.
func (w *Workspace) Apply(f filter.Filter) error {
	w.mu.Lock()
	if w.current.Empty() {
		w.mu.Unlock()
		return ErrNoImage
	}
	working := w.current.Clone()
	w.mu.Unlock()

	w.SetImage(f.Process(working))
	return nil
}

// Undo swaps the working image with the undo slot, so a second call
// redoes. It reports whether there was anything to restore.
func (w *Workspace) Undo() bool {
	w.mu.Lock()
	if w.undo.Empty() {
		w.mu.Unlock()
		return false
	}
	w.current, w.undo = w.undo, w.current
	onChange := w.onChange
	w.mu.Unlock()

	if onChange != nil {
		onChange()
	}
	return true
}

// SetLoaded records img as the revert target and installs a clone of it
// as the working image.
func (w *Workspace) SetLoaded(img gocv.Mat) {
	w.mu.Lock()
	w.lastLoaded.Close()
	w.lastLoaded = img
	w.mu.Unlock()

	w.SetImage(img.Clone())
}

// Revert installs a fresh clone of the last loaded image, keeping the
// revert target itself pristine. It reports whether one was loaded.
func (w *Workspace) Revert() bool {
	w.mu.Lock()
	if w.lastLoaded.Empty() {
		w.mu.Unlock()
		return false
	}
	restored := w.lastLoaded.Clone()
	w.mu.Unlock()

	w.SetImage(restored)
	return true
}

// Close releases every Mat the workspace owns.
func (w *Workspace) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.current.Close()
	w.undo.Close()
	w.lastLoaded.Close()
	return nil
}
