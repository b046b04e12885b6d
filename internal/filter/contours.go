package filter

import (
	"fmt"
	"image/color"
	"strconv"

	"gocv.io/x/gocv"
)

// Contours binarizes a scratch copy of the image, finds the external
// contours there, and draws their outlines onto the original.
type Contours struct {
	thickness int
	color     color.RGBA
}

func NewContours(thickness int, c color.RGBA) Contours {
	if thickness < 1 {
		thickness = 1
	}
	return Contours{thickness: thickness, color: c}
}

func (f Contours) Process(img gocv.Mat) gocv.Mat {
	gray := gocv.NewMat()
	defer gray.Close()

	switch img.Channels() {
	case 1:
		img.CopyTo(&gray)
	case 3:
		gocv.CvtColor(img, &gray, gocv.ColorBGRToGray)
	case 4:
		gocv.CvtColor(img, &gray, gocv.ColorBGRAToGray)
	default:
		return img
	}

	gocv.Threshold(gray, &gray, 128, 255, gocv.ThresholdBinary)

	contours := gocv.FindContours(gray, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	for i := 0; i < contours.Size(); i++ {
		gocv.DrawContours(&img, contours, i, f.color, f.thickness)
	}
	return img
}

func parseContours(args string) (Filter, error) {
	thickness := 2
	if args != "" {
		parsed, err := strconv.Atoi(args)
		if err != nil {
			return nil, fmt.Errorf("contours: thickness %q: %w", args, err)
		}
		thickness = parsed
	}
	return NewContours(thickness, color.RGBA{R: 255, A: 255}), nil
}
