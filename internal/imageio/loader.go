// Package imageio moves images between files, HTTP sources, writers,
// and working Mats. OpenCV does the pixel decoding; the stdlib and
// x/image registrations identify formats and encode for writers.
package imageio

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "image/gif"

	"gocv.io/x/gocv"
	_ "golang.org/x/image/webp"

	"filter-workbench/internal/logger"
)

// ImageData is a decoded image plus what is known about where it came
// from. The Mat is owned by the receiver of the ImageData.
type ImageData struct {
	Mat      gocv.Mat
	Width    int
	Height   int
	Channels int
	Format   string
	Source   string
}

type Loader struct {
	log logger.Logger
}

func NewLoader(log logger.Logger) *Loader {
	return &Loader{log: log}
}

// LoadFile reads and decodes one image file.
func (l *Loader) LoadFile(path string) (*ImageData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return l.Load(f, path)
}

// Load decodes an image from r. source names the origin for logs and
// errors; when it carries a file extension that disagrees with the
// sniffed content the mismatch is logged and the content wins.
func (l *Loader) Load(r io.Reader, source string) (*ImageData, error) {
	start := time.Now()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("reading %s: empty input", source)
	}

	format := sniffFormat(data)
	if ext := normalizedExt(source); ext != "" && format != "" && ext != format {
		l.log.Warning("imageio", "file extension disagrees with content", map[string]interface{}{
			"source":    source,
			"extension": ext,
			"format":    format,
		})
	}

	mat, err := gocv.IMDecode(data, gocv.IMReadColor)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", source, err)
	}
	if mat.Empty() {
		mat.Close()
		return nil, fmt.Errorf("decoding %s: no image data", source)
	}

	result := &ImageData{
		Mat:      mat,
		Width:    mat.Cols(),
		Height:   mat.Rows(),
		Channels: mat.Channels(),
		Format:   format,
		Source:   source,
	}
	l.log.Info("imageio", "image loaded", map[string]interface{}{
		"source":   source,
		"width":    result.Width,
		"height":   result.Height,
		"channels": result.Channels,
		"format":   format,
		"elapsed":  time.Since(start).String(),
	})
	return result, nil
}

// sniffFormat identifies the encoded format from the registered
// decoders, empty when none recognizes the data.
func sniffFormat(data []byte) string {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return ""
	}
	return format
}

func normalizedExt(source string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(source), "."))
	switch ext {
	case "jpg":
		return "jpeg"
	case "tif":
		return "tiff"
	}
	return ext
}
