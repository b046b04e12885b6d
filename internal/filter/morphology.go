package filter

import (
	"fmt"
	"image"
	"strconv"

	"gocv.io/x/gocv"
)

// Erode shrinks bright regions with a rectangular size x size element.
type Erode struct {
	size int
}

func NewErode(size int) Erode {
	if size < 1 {
		size = 1
	}
	return Erode{size: size}
}

func (e Erode) Process(img gocv.Mat) gocv.Mat {
	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(e.size, e.size))
	defer kernel.Close()
	gocv.Erode(img, &img, kernel)
	return img
}

// Dilate grows bright regions with a rectangular size x size element.
type Dilate struct {
	size int
}

func NewDilate(size int) Dilate {
	if size < 1 {
		size = 1
	}
	return Dilate{size: size}
}

func (d Dilate) Process(img gocv.Mat) gocv.Mat {
	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Pt(d.size, d.size))
	defer kernel.Close()
	gocv.Dilate(img, &img, kernel)
	return img
}

func parseKernelSize(name, args string, fallback int) (int, error) {
	if args == "" {
		return fallback, nil
	}
	size, err := strconv.Atoi(args)
	if err != nil {
		return 0, fmt.Errorf("%s: size %q: %w", name, args, err)
	}
	return size, nil
}

func parseErode(args string) (Filter, error) {
	size, err := parseKernelSize("erode", args, 3)
	if err != nil {
		return nil, err
	}
	return NewErode(size), nil
}

func parseDilate(args string) (Filter, error) {
	size, err := parseKernelSize("dilate", args, 3)
	if err != nil {
		return nil, err
	}
	return NewDilate(size), nil
}
