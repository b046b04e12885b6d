package imageio

import (
	"errors"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"gocv.io/x/gocv"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"filter-workbench/internal/logger"
)

const jpegQuality = 95

var saveExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

type Saver struct {
	log logger.Logger
}

func NewSaver(log logger.Logger) *Saver {
	return &Saver{log: log}
}

// SaveFile writes mat to path, with the format chosen by the extension.
func (s *Saver) SaveFile(path string, mat gocv.Mat) error {
	if mat.Empty() {
		return errors.New("nothing to save")
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !saveExtensions[ext] {
		return fmt.Errorf("unsupported extension %q", ext)
	}

	if ok := gocv.IMWrite(path, mat); !ok {
		return fmt.Errorf("writing %s failed", path)
	}

	s.log.Info("imageio", "image saved", map[string]interface{}{
		"path":     path,
		"width":    mat.Cols(),
		"height":   mat.Rows(),
		"channels": mat.Channels(),
	})
	return nil
}

// Save encodes mat to w in the named format. Formats without an encoder
// fall back to png with a warning.
func (s *Saver) Save(w io.Writer, format string, mat gocv.Mat) error {
	if mat.Empty() {
		return errors.New("nothing to save")
	}

	img, err := matToImage(mat)
	if err != nil {
		return err
	}

	switch strings.ToLower(format) {
	case "jpg", "jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	case "png":
		return png.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "tif", "tiff":
		return tiff.Encode(w, img, nil)
	default:
		s.log.Warning("imageio", "no encoder for format, writing png", map[string]interface{}{
			"format": format,
		})
		return png.Encode(w, img)
	}
}
