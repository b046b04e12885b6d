package filter

import (
	"fmt"
	"image"
	"strconv"

	"gocv.io/x/gocv"
)

// Gaussian is a gaussian blur parameterized by sigma alone. The kernel
// spans six sigma, forced odd and clamped to 3-15.
type Gaussian struct {
	sigma float64
}

// NewGaussian falls back to sigma 1 for non-positive input.
func NewGaussian(sigma float64) Gaussian {
	if sigma <= 0 {
		sigma = 1
	}
	return Gaussian{sigma: sigma}
}

func (g Gaussian) Process(img gocv.Mat) gocv.Mat {
	size := int(g.sigma*6) + 1
	if size%2 == 0 {
		size++
	}
	size = max(3, min(size, 15))
	gocv.GaussianBlur(img, &img, image.Pt(size, size), g.sigma, g.sigma, gocv.BorderDefault)
	return img
}

func parseGaussian(args string) (Filter, error) {
	if args == "" {
		return NewGaussian(1), nil
	}
	sigma, err := strconv.ParseFloat(args, 64)
	if err != nil {
		return nil, fmt.Errorf("gaussian: sigma %q: %w", args, err)
	}
	if sigma <= 0 {
		return nil, fmt.Errorf("gaussian: sigma %v must be positive", sigma)
	}
	return NewGaussian(sigma), nil
}
