package filter

import (
	"gocv.io/x/gocv"
)

// ColorSpace reinterprets a three-channel image in another color space.
// Anything but three channels passes through untouched, since the
// conversion codes are only meaningful there.
type ColorSpace struct {
	code gocv.ColorConversionCode
}

func (c ColorSpace) Process(img gocv.Mat) gocv.Mat {
	if img.Channels() != 3 {
		return img
	}
	gocv.CvtColor(img, &img, c.code)
	return img
}

func NewBGRToHSV() ColorSpace { return ColorSpace{code: gocv.ColorBGRToHSV} }
func NewHSVToBGR() ColorSpace { return ColorSpace{code: gocv.ColorHSVToBGR} }
func NewRGBToHSV() ColorSpace { return ColorSpace{code: gocv.ColorRGBToHSV} }
func NewHSVToRGB() ColorSpace { return ColorSpace{code: gocv.ColorHSVToRGB} }
func NewBGRToXYZ() ColorSpace { return ColorSpace{code: gocv.ColorBGRToXYZ} }
func NewXYZToBGR() ColorSpace { return ColorSpace{code: gocv.ColorXYZToBGR} }
func NewRGBToXYZ() ColorSpace { return ColorSpace{code: gocv.ColorRGBToXYZ} }
func NewXYZToRGB() ColorSpace { return ColorSpace{code: gocv.ColorXYZToRGB} }
