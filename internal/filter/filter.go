// Package filter collects the image operations the workbench applies to
// a gocv.Mat and the registry that builds them from textual specs.
package filter

import (
	"gocv.io/x/gocv"

	"filter-workbench/internal/imaging"
)

// A Mat provides the imaging accessors directly, so per-pixel filters
// written against imaging.Image run on Mats without conversion.
var _ imaging.Image = &gocv.Mat{}

// Filter transforms an image in place and returns the same handle. The
// pixel data changes, and with some operations the channel count does
// too; callers clone first when the input must survive.
type Filter interface {
	Process(img gocv.Mat) gocv.Mat
}
