package filter

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"gocv.io/x/gocv"
)

// Blur is a box blur with a WxH kernel.
type Blur struct {
	width  int
	height int
}

// NewBlur clamps both dimensions to at least 1.
func NewBlur(width, height int) Blur {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return Blur{width: width, height: height}
}

func (b Blur) Process(img gocv.Mat) gocv.Mat {
	gocv.Blur(img, &img, image.Pt(b.width, b.height))
	return img
}

func parseBlur(args string) (Filter, error) {
	if args == "" {
		return NewBlur(3, 3), nil
	}
	widthPart, heightPart, ok := strings.Cut(args, "x")
	if !ok {
		return nil, fmt.Errorf("blur: kernel %q, want WxH", args)
	}
	width, err := strconv.Atoi(widthPart)
	if err != nil {
		return nil, fmt.Errorf("blur: width %q: %w", widthPart, err)
	}
	height, err := strconv.Atoi(heightPart)
	if err != nil {
		return nil, fmt.Errorf("blur: height %q: %w", heightPart, err)
	}
	return NewBlur(width, height), nil
}
