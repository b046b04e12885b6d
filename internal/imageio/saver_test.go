package imageio

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"testing"

	"gocv.io/x/gocv"

	"filter-workbench/internal/logger"
)

func testMat(t *testing.T) gocv.Mat {
	t.Helper()
	mat := gocv.NewMatWithSize(2, 3, gocv.MatTypeCV8UC3)
	t.Cleanup(func() { mat.Close() })
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			mat.SetUCharAt3(y, x, 0, uint8(40*y+10*x))
			mat.SetUCharAt3(y, x, 1, uint8(40*y+10*x+1))
			mat.SetUCharAt3(y, x, 2, uint8(40*y+10*x+2))
		}
	}
	return mat
}

func matsEqual(t *testing.T, a, b gocv.Mat) bool {
	t.Helper()
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() || a.Channels() != b.Channels() {
		return false
	}
	for y := 0; y < a.Rows(); y++ {
		for x := 0; x < a.Cols(); x++ {
			for c := 0; c < a.Channels(); c++ {
				if a.GetUCharAt3(y, x, c) != b.GetUCharAt3(y, x, c) {
					return false
				}
			}
		}
	}
	return true
}

func TestSaveFileRoundTrip(t *testing.T) {
	mat := testMat(t)
	path := filepath.Join(t.TempDir(), "out.png")

	if err := NewSaver(logger.Nop{}).SaveFile(path, mat); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}

	loaded, err := NewLoader(logger.Nop{}).LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	defer loaded.Mat.Close()

	if !matsEqual(t, mat, loaded.Mat) {
		t.Errorf("pixels changed across png save/load")
	}
}

func TestSaveFileUnsupportedExtension(t *testing.T) {
	mat := testMat(t)
	path := filepath.Join(t.TempDir(), "out.txt")

	if err := NewSaver(logger.Nop{}).SaveFile(path, mat); err == nil {
		t.Fatalf("SaveFile accepted a .txt path")
	}
	if _, err := os.Stat(path); err == nil {
		t.Errorf("rejected save still created %s", path)
	}
}

func TestSaveFileEmptyMat(t *testing.T) {
	empty := gocv.NewMat()
	defer empty.Close()

	err := NewSaver(logger.Nop{}).SaveFile(filepath.Join(t.TempDir(), "out.png"), empty)
	if err == nil {
		t.Errorf("SaveFile accepted an empty Mat")
	}
}

func TestSaveWriterPNGRoundTrip(t *testing.T) {
	mat := testMat(t)

	var buf bytes.Buffer
	if err := NewSaver(logger.Nop{}).Save(&buf, "png", mat); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := NewLoader(logger.Nop{}).Load(bytes.NewReader(buf.Bytes()), "roundtrip.png")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	defer loaded.Mat.Close()

	if loaded.Format != "png" {
		t.Errorf("format = %q, want png", loaded.Format)
	}
	if !matsEqual(t, mat, loaded.Mat) {
		t.Errorf("pixels changed across png encode/decode")
	}
}

func TestSaveWriterFormats(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"jpeg", "jpeg"},
		{"jpg", "jpeg"},
		{"bmp", "bmp"},
		{"tiff", "tiff"},
		{"tif", "tiff"},
		{"gif", "png"}, // no encoder wired, falls back
	}
	mat := testMat(t)
	saver := NewSaver(logger.Nop{})

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := saver.Save(&buf, tt.format, mat); err != nil {
				t.Fatalf("Save(%q): %v", tt.format, err)
			}

			cfg, format, err := image.DecodeConfig(bytes.NewReader(buf.Bytes()))
			if err != nil {
				t.Fatalf("DecodeConfig: %v", err)
			}
			if format != tt.want {
				t.Errorf("encoded format = %q, want %q", format, tt.want)
			}
			if cfg.Width != 3 || cfg.Height != 2 {
				t.Errorf("dimensions = %dx%d, want 3x2", cfg.Width, cfg.Height)
			}
		})
	}
}

func TestSaveGrayMat(t *testing.T) {
	gray := gocv.NewMatWithSize(2, 2, gocv.MatTypeCV8UC1)
	defer gray.Close()
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			gray.SetUCharAt(y, x, uint8(60*y+30*x))
		}
	}

	var buf bytes.Buffer
	if err := NewSaver(logger.Nop{}).Save(&buf, "png", gray); err != nil {
		t.Fatalf("Save: %v", err)
	}

	img, _, err := image.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	r, g, b, _ := img.At(1, 1).RGBA()
	if r>>8 != 90 || g>>8 != 90 || b>>8 != 90 {
		t.Errorf("pixel (1,1) = (%d,%d,%d), want gray 90", r>>8, g>>8, b>>8)
	}
}

func TestSaveWriterEmptyMat(t *testing.T) {
	empty := gocv.NewMat()
	defer empty.Close()

	var buf bytes.Buffer
	if err := NewSaver(logger.Nop{}).Save(&buf, "png", empty); err == nil {
		t.Errorf("Save accepted an empty Mat")
	}
}
