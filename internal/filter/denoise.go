package filter

import (
	"fmt"
	"strconv"

	"gocv.io/x/gocv"
)

const (
	denoiseTemplateWindow = 7
	denoiseSearchWindow   = 21
)

// Denoise runs non-local means denoising. Strength trades noise removal
// against fine detail; 10 suits moderate gaussian noise.
type Denoise struct {
	strength float32
}

// NewDenoise falls back to strength 10 for non-positive input.
func NewDenoise(strength float32) Denoise {
	if strength <= 0 {
		strength = 10
	}
	return Denoise{strength: strength}
}

func (d Denoise) Process(img gocv.Mat) gocv.Mat {
	dst := gocv.NewMat()
	defer dst.Close()
	gocv.FastNlMeansDenoisingWithParams(img, &dst, d.strength, denoiseTemplateWindow, denoiseSearchWindow)
	dst.CopyTo(&img)
	return img
}

func parseDenoise(args string) (Filter, error) {
	if args == "" {
		return NewDenoise(10), nil
	}
	strength, err := strconv.ParseFloat(args, 32)
	if err != nil {
		return nil, fmt.Errorf("denoise: strength %q: %w", args, err)
	}
	if strength <= 0 {
		return nil, fmt.Errorf("denoise: strength %v must be positive", strength)
	}
	return NewDenoise(float32(strength)), nil
}
