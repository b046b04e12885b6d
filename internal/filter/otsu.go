package filter

import "gocv.io/x/gocv"

// Otsu binarizes with a threshold chosen from the image histogram, so it
// needs no threshold parameter. Color input is grayscaled first.
type Otsu struct{}

func NewOtsu() Otsu {
	return Otsu{}
}

func (o Otsu) Process(img gocv.Mat) gocv.Mat {
	img = NewGrayScale().Process(img)
	gocv.Threshold(img, &img, 0, 255, gocv.ThresholdBinary+gocv.ThresholdOtsu)
	return img
}
