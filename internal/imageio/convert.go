package imageio

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// matToImage copies a Mat into a stdlib image, swapping BGR channel
// order to RGB on the way.
func matToImage(mat gocv.Mat) (image.Image, error) {
	rows, cols := mat.Rows(), mat.Cols()

	switch channels := mat.Channels(); channels {
	case 1:
		img := image.NewGray(image.Rect(0, 0, cols, rows))
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				img.SetGray(x, y, color.Gray{Y: mat.GetUCharAt(y, x)})
			}
		}
		return img, nil
	case 3:
		img := image.NewRGBA(image.Rect(0, 0, cols, rows))
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				b := mat.GetUCharAt3(y, x, 0)
				g := mat.GetUCharAt3(y, x, 1)
				r := mat.GetUCharAt3(y, x, 2)
				img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
			}
		}
		return img, nil
	case 4:
		img := image.NewRGBA(image.Rect(0, 0, cols, rows))
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				b := mat.GetUCharAt3(y, x, 0)
				g := mat.GetUCharAt3(y, x, 1)
				r := mat.GetUCharAt3(y, x, 2)
				a := mat.GetUCharAt3(y, x, 3)
				img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: a})
			}
		}
		return img, nil
	default:
		return nil, fmt.Errorf("converting %d-channel image unsupported", channels)
	}
}
