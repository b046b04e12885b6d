package imageio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"filter-workbench/internal/logger"
)

const (
	grabTimeout  = 30 * time.Second
	maxGrabBytes = 64 << 20
)

// Grabber fetches a single image over HTTP, suited to camera endpoints
// that serve one frame per request.
type Grabber struct {
	client *http.Client
	loader *Loader
	log    logger.Logger
}

func NewGrabber(log logger.Logger) *Grabber {
	return &Grabber{
		client: &http.Client{Timeout: grabTimeout},
		loader: NewLoader(log),
		log:    log,
	}
}

// Grab fetches and decodes the image at url. One attempt, no retries:
// a frame that failed is stale by the time a retry would land.
func (g *Grabber) Grab(ctx context.Context, url string) (*ImageData, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "image/*")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: status %s", url, resp.Status)
	}

	data, err := g.loader.Load(io.LimitReader(resp.Body, maxGrabBytes), url)
	if err != nil {
		return nil, err
	}

	g.log.Debug("imageio", "image grabbed", map[string]interface{}{
		"url":     url,
		"status":  resp.StatusCode,
		"elapsed": time.Since(start).String(),
	})
	return data, nil
}
