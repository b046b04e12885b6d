package filter

import (
	"fmt"
	"strconv"

	"gocv.io/x/gocv"
)

// ContrastBrightness computes dst = gain*src + bias per channel,
// saturated at the source depth. Contrast adjustments use the gain,
// brightness adjustments the bias.
type ContrastBrightness struct {
	gain float64
	bias float64
}

func NewContrastBrightness(gain, bias float64) ContrastBrightness {
	return ContrastBrightness{gain: gain, bias: bias}
}

func (c ContrastBrightness) Process(img gocv.Mat) gocv.Mat {
	img.ConvertToWithParams(&img, img.Type(), float32(c.gain), float32(c.bias))
	return img
}

func parseContrast(args string) (Filter, error) {
	gain, err := strconv.ParseFloat(args, 64)
	if err != nil {
		return nil, fmt.Errorf("contrast: gain %q: %w", args, err)
	}
	if gain <= 0 {
		return nil, fmt.Errorf("contrast: gain %v, want > 0", gain)
	}
	return NewContrastBrightness(gain, 0), nil
}

func parseBrightness(args string) (Filter, error) {
	bias, err := strconv.ParseFloat(args, 64)
	if err != nil {
		return nil, fmt.Errorf("brightness: bias %q: %w", args, err)
	}
	return NewContrastBrightness(1, bias), nil
}
