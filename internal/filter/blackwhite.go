package filter

import (
	"fmt"
	"strconv"

	"gocv.io/x/gocv"
)

// BlackWhite binarizes to pure black and white: gray values above the
// threshold become 255, the rest 0. Color input is grayscaled first.
type BlackWhite struct {
	threshold float32
}

func NewBlackWhite(threshold float32) BlackWhite {
	return BlackWhite{threshold: threshold}
}

func (b BlackWhite) Process(img gocv.Mat) gocv.Mat {
	img = NewGrayScale().Process(img)
	gocv.Threshold(img, &img, b.threshold, 255, gocv.ThresholdBinary)
	return img
}

func parseBlackWhite(args string) (Filter, error) {
	if args == "" {
		return NewBlackWhite(128), nil
	}
	threshold, err := strconv.ParseFloat(args, 32)
	if err != nil {
		return nil, fmt.Errorf("bw: threshold %q: %w", args, err)
	}
	if threshold < 0 || threshold > 255 {
		return nil, fmt.Errorf("bw: threshold %v outside 0-255", threshold)
	}
	return NewBlackWhite(float32(threshold)), nil
}
