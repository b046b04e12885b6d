package filter

import (
	"fmt"
	"strconv"
	"strings"

	"gocv.io/x/gocv"

	"filter-workbench/internal/imaging"
)

// FillChannel writes one constant value into a single channel of every
// pixel. A channel index outside the image is a silent no-op.
type FillChannel struct {
	channel int
	value   uint8
}

func NewFillChannel(channel int, value uint8) FillChannel {
	return FillChannel{channel: channel, value: value}
}

func (f FillChannel) Process(img gocv.Mat) gocv.Mat {
	fillChannel(&img, f.channel, f.value)
	return img
}

func fillChannel(img imaging.Image, channel int, value uint8) {
	if channel < 0 || channel >= img.Channels() {
		return
	}
	rows, cols := img.Rows(), img.Cols()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			img.SetUCharAt3(row, col, channel, value)
		}
	}
}

func parseFillChannel(args string) (Filter, error) {
	channelPart, valuePart, hasValue := strings.Cut(args, ",")
	channel, err := strconv.Atoi(channelPart)
	if err != nil {
		return nil, fmt.Errorf("fill: channel %q: %w", channelPart, err)
	}
	value := 0
	if hasValue {
		value, err = strconv.Atoi(valuePart)
		if err != nil {
			return nil, fmt.Errorf("fill: value %q: %w", valuePart, err)
		}
		if value < 0 || value > 255 {
			return nil, fmt.Errorf("fill: value %d outside 0-255", value)
		}
	}
	return NewFillChannel(channel, uint8(value)), nil
}
