package filter

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"gocv.io/x/gocv"
)

// CLAHE equalizes contrast per tile with a clip limit on the histogram.
// It operates on gray values, so color input is grayscaled first and the
// channel count may drop to one.
type CLAHE struct {
	clipLimit float64
	tileSize  int
}

// NewCLAHE falls back to clip limit 3 and tile size 8 for out-of-range input.
func NewCLAHE(clipLimit float64, tileSize int) CLAHE {
	if clipLimit <= 0 {
		clipLimit = 3
	}
	if tileSize < 1 {
		tileSize = 8
	}
	return CLAHE{clipLimit: clipLimit, tileSize: tileSize}
}

func (c CLAHE) Process(img gocv.Mat) gocv.Mat {
	img = NewGrayScale().Process(img)

	clahe := gocv.NewCLAHEWithParams(c.clipLimit, image.Pt(c.tileSize, c.tileSize))
	defer clahe.Close()

	dst := gocv.NewMat()
	defer dst.Close()
	clahe.Apply(img, &dst)
	dst.CopyTo(&img)
	return img
}

func parseCLAHE(args string) (Filter, error) {
	if args == "" {
		return NewCLAHE(3, 8), nil
	}
	clipPart, tilePart, hasTile := strings.Cut(args, ",")
	clip, err := strconv.ParseFloat(clipPart, 64)
	if err != nil {
		return nil, fmt.Errorf("clahe: clip limit %q: %w", clipPart, err)
	}
	tile := 8
	if hasTile {
		tile, err = strconv.Atoi(tilePart)
		if err != nil {
			return nil, fmt.Errorf("clahe: tile size %q: %w", tilePart, err)
		}
	}
	return NewCLAHE(clip, tile), nil
}
