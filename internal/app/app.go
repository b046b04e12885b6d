// Package app wires the workbench together: preferences, workspace,
// filters, image transfer, and timing.
package app

import (
	"context"
	"fmt"
	"time"

	"filter-workbench/internal/config"
	"filter-workbench/internal/filter"
	"filter-workbench/internal/imageio"
	"filter-workbench/internal/logger"
	"filter-workbench/internal/timing"
	"filter-workbench/internal/workspace"
)

// App is the orchestrator behind the CLI: one working image, a filter
// registry, and the load/save/grab plumbing around them.
type App struct {
	log       logger.Logger
	prefs     config.Preferences
	prefsPath string
	workspace *workspace.Workspace
	registry  *filter.Registry
	loader    *imageio.Loader
	saver     *imageio.Saver
	grabber   *imageio.Grabber
	tracker   *timing.Tracker
}

// New builds a ready-to-use App. prefsPath may be empty, in which case
// Close skips persisting preferences.
func New(log logger.Logger, prefsPath string, prefs config.Preferences) *App {
	a := &App{
		log:       log,
		prefs:     prefs,
		prefsPath: prefsPath,
		workspace: workspace.New(),
		registry:  filter.Default(),
		loader:    imageio.NewLoader(log),
		saver:     imageio.NewSaver(log),
		grabber:   imageio.NewGrabber(log),
		tracker:   timing.NewTracker(),
	}

	a.workspace.SetOnChange(func() {
		a.log.Debug("app", "working image changed", nil)
	})

	a.log.Info("app", "initialization complete", nil)
	return a
}

// OpenImage loads a file into the workspace and remembers the path.
func (a *App) OpenImage(path string) error {
	ctx := a.tracker.Start("open")
	data, err := a.loader.LoadFile(path)
	if err != nil {
		return err
	}

	a.workspace.SetLoaded(data.Mat)
	a.prefs.LastOpenedFile = path

	a.log.Info("app", "image opened", map[string]interface{}{
		"path":    path,
		"elapsed": a.tracker.End(ctx).String(),
	})
	return nil
}

// Grab fetches one frame into the workspace. An empty url falls back to
// the preferences URL; a successful grab becomes the new preference.
func (a *App) Grab(ctx context.Context, url string) error {
	if url == "" {
		url = a.prefs.GrabURL
	}

	span := a.tracker.Start("grab")
	data, err := a.grabber.Grab(ctx, url)
	if err != nil {
		return err
	}

	a.workspace.SetLoaded(data.Mat)
	a.prefs.GrabURL = url

	a.log.Info("app", "image grabbed", map[string]interface{}{
		"url":     url,
		"elapsed": a.tracker.End(span).String(),
	})
	return nil
}

// SaveImage writes the working image. An empty path falls back to the
// last saved path.
func (a *App) SaveImage(path string) error {
	if path == "" {
		path = a.prefs.LastSavedFile
	}
	if path == "" {
		return fmt.Errorf("no output path given and none remembered")
	}

	img, err := a.workspace.Image()
	if err != nil {
		return err
	}

	ctx := a.tracker.Start("save")
	if err := a.saver.SaveFile(path, img); err != nil {
		return err
	}
	a.prefs.LastSavedFile = path

	a.log.Info("app", "image saved", map[string]interface{}{
		"path":    path,
		"elapsed": a.tracker.End(ctx).String(),
	})
	return nil
}

// ApplySpec builds the filter a spec describes and applies it.
func (a *App) ApplySpec(spec string) error {
	f, err := a.registry.Create(spec)
	if err != nil {
		return err
	}
	return a.Apply(spec, f)
}

// Apply runs one filter on the working image, timed under the given
// name.
func (a *App) Apply(name string, f filter.Filter) error {
	ctx := a.tracker.Start("filter")
	if err := a.workspace.Apply(f); err != nil {
		return fmt.Errorf("applying %s: %w", name, err)
	}

	a.log.Info("app", "filter applied", map[string]interface{}{
		"filter":  name,
		"elapsed": a.tracker.End(ctx).String(),
	})
	return nil
}

// Undo swaps the working image with the undo slot.
func (a *App) Undo() bool {
	restored := a.workspace.Undo()
	a.log.Info("app", "undo", map[string]interface{}{"restored": restored})
	return restored
}

// Revert restores the last loaded image.
func (a *App) Revert() bool {
	reverted := a.workspace.Revert()
	a.log.Info("app", "revert", map[string]interface{}{"reverted": reverted})
	return reverted
}

// Filters returns the registered filter names.
func (a *App) Filters() []string {
	return a.registry.Names()
}

// Usage returns the usage line of one filter.
func (a *App) Usage(name string) string {
	return a.registry.Usage(name)
}

// Workspace exposes the session for direct image access.
func (a *App) Workspace() *workspace.Workspace {
	return a.workspace
}

// Timings returns every recorded operation duration.
func (a *App) Timings() map[string][]time.Duration {
	return a.tracker.All()
}

// Preferences returns the current preference values.
func (a *App) Preferences() config.Preferences {
	return a.prefs
}

// Close persists preferences and releases the workspace.
func (a *App) Close() error {
	if a.prefsPath != "" {
		if err := config.Save(a.prefsPath, a.prefs); err != nil {
			a.log.Error("app", "persisting preferences failed", err, map[string]interface{}{
				"path": a.prefsPath,
			})
		}
	}
	return a.workspace.Close()
}
