package filter

import (
	"fmt"
	"strconv"
	"strings"

	"gocv.io/x/gocv"

	"filter-workbench/internal/colorrange"
)

// ColorRange runs the per-channel range test on a Mat. The embedded
// filter exposes reconfiguration and listeners; the spec form is
// "LO-HI[,LO-HI...][:keep|remove]" with one pair per channel.
type ColorRange struct {
	*colorrange.Filter
}

// NewColorRange builds a range filter with one inclusive [min, max]
// interval per channel.
func NewColorRange(min, max []int, keep bool) (ColorRange, error) {
	core, err := colorrange.New(min, max, keep)
	if err != nil {
		return ColorRange{}, err
	}
	return ColorRange{Filter: core}, nil
}

func (c ColorRange) Process(img gocv.Mat) gocv.Mat {
	c.Filter.Process(&img)
	return img
}

func parseColorRange(args string) (Filter, error) {
	keep := true
	ranges := args
	if i := strings.LastIndex(args, ":"); i >= 0 {
		switch mode := args[i+1:]; mode {
		case "keep":
			keep = true
		case "remove":
			keep = false
		default:
			return nil, fmt.Errorf("colorrange: mode %q, want keep or remove", mode)
		}
		ranges = args[:i]
	}

	var min, max []int
	for _, pair := range strings.Split(ranges, ",") {
		lo, hi, ok := strings.Cut(pair, "-")
		if !ok {
			return nil, fmt.Errorf("colorrange: pair %q, want LO-HI", pair)
		}
		loVal, err := strconv.Atoi(lo)
		if err != nil {
			return nil, fmt.Errorf("colorrange: pair %q: %w", pair, err)
		}
		hiVal, err := strconv.Atoi(hi)
		if err != nil {
			return nil, fmt.Errorf("colorrange: pair %q: %w", pair, err)
		}
		min = append(min, loVal)
		max = append(max, hiVal)
	}

	f, err := NewColorRange(min, max, keep)
	if err != nil {
		return nil, err
	}
	return f, nil
}
