package filter

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Factory builds a filter from the argument part of a spec.
type Factory func(args string) (Filter, error)

// Registry maps filter names to factories. Specs have the form
// "name[:args]"; everything after the first colon goes to the factory.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]registration
}

type registration struct {
	usage   string
	factory Factory
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]registration)}
}

// Register adds a factory under name, replacing any previous one.
func (r *Registry) Register(name, usage string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[name] = registration{usage: usage, factory: factory}
}

// Create builds the filter a spec describes.
func (r *Registry) Create(spec string) (Filter, error) {
	name, args, _ := strings.Cut(spec, ":")

	r.mu.RLock()
	entry, exists := r.entries[name]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("unknown filter: %s", name)
	}
	return entry.factory(args)
}

// Names returns the registered filter names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Usage returns the usage line of one filter, empty when unknown.
func (r *Registry) Usage(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entries[name].usage
}

// Default returns a registry preloaded with every built-in filter.
func Default() *Registry {
	r := NewRegistry()

	r.Register("grayscale", "grayscale - collapse a color image to gray",
		func(string) (Filter, error) { return NewGrayScale(), nil })
	r.Register("bw", "bw[:threshold] - binarize to black and white, default threshold 128", parseBlackWhite)
	r.Register("otsu", "otsu - binarize with an automatically chosen threshold",
		func(string) (Filter, error) { return NewOtsu(), nil })
	r.Register("blur", "blur[:WxH] - box blur, default kernel 3x3", parseBlur)
	r.Register("gaussian", "gaussian[:sigma] - gaussian blur, default sigma 1", parseGaussian)
	r.Register("median", "median[:size] - median blur with an odd window, default size 3", parseMedian)
	r.Register("denoise", "denoise[:strength] - non-local means denoising, default strength 10", parseDenoise)
	r.Register("clahe", "clahe[:clip[,tile]] - equalize local contrast on the gray image, defaults 3 and 8", parseCLAHE)
	r.Register("erode", "erode[:size] - shrink bright regions, default size 3", parseErode)
	r.Register("dilate", "dilate[:size] - grow bright regions, default size 3", parseDilate)
	r.Register("contrast", "contrast:gain - scale pixel values, gain > 0", parseContrast)
	r.Register("brightness", "brightness:bias - add bias to pixel values", parseBrightness)
	r.Register("fill", "fill:channel[,value] - write a constant into one channel, default value 0", parseFillChannel)
	r.Register("colorrange", "colorrange:LO-HI[,LO-HI...][:keep|remove] - keep or remove pixels inside the per-channel ranges", parseColorRange)
	r.Register("contours", "contours[:thickness] - outline external contours, default thickness 2", parseContours)

	for name, f := range map[string]ColorSpace{
		"bgr2hsv": NewBGRToHSV(),
		"hsv2bgr": NewHSVToBGR(),
		"rgb2hsv": NewRGBToHSV(),
		"hsv2rgb": NewHSVToRGB(),
		"bgr2xyz": NewBGRToXYZ(),
		"xyz2bgr": NewXYZToBGR(),
		"rgb2xyz": NewRGBToXYZ(),
		"xyz2rgb": NewXYZToRGB(),
	} {
		conversion := f
		r.Register(name, name+" - reinterpret a three-channel image in the target color space",
			func(string) (Filter, error) { return conversion, nil })
	}

	return r
}
