package filter

import (
	"fmt"
	"strconv"

	"gocv.io/x/gocv"
)

// Median replaces each pixel with the median of a size x size window,
// which removes salt-and-pepper noise without softening edges.
type Median struct {
	size int
}

// NewMedian forces the window odd and at least 3.
func NewMedian(size int) Median {
	if size < 3 {
		size = 3
	}
	if size%2 == 0 {
		size++
	}
	return Median{size: size}
}

func (m Median) Process(img gocv.Mat) gocv.Mat {
	dst := gocv.NewMat()
	defer dst.Close()
	gocv.MedianBlur(img, &dst, m.size)
	dst.CopyTo(&img)
	return img
}

func parseMedian(args string) (Filter, error) {
	if args == "" {
		return NewMedian(3), nil
	}
	size, err := strconv.Atoi(args)
	if err != nil {
		return nil, fmt.Errorf("median: window %q: %w", args, err)
	}
	return NewMedian(size), nil
}
