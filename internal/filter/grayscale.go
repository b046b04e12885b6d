package filter

import (
	"gocv.io/x/gocv"
)

// GrayScale collapses a color image to a single gray channel. Images
// that are already single-channel pass through untouched.
type GrayScale struct{}

func NewGrayScale() GrayScale {
	return GrayScale{}
}

func (GrayScale) Process(img gocv.Mat) gocv.Mat {
	switch img.Channels() {
	case 3:
		gocv.CvtColor(img, &img, gocv.ColorBGRToGray)
	case 4:
		gocv.CvtColor(img, &img, gocv.ColorBGRAToGray)
	}
	return img
}
