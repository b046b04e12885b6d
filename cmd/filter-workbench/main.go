// Command filter-workbench loads an image from a file or camera URL,
// runs a chain of filters over it, and writes the result.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"filter-workbench/internal/app"
	"filter-workbench/internal/config"
	"filter-workbench/internal/filter"
	"filter-workbench/internal/logger"
	"filter-workbench/internal/shutdown"
)

const (
	AppName    = "filter-workbench"
	AppVersion = "1.0.0"
)

// filterSpecs collects repeated -filter flags in order.
type filterSpecs []string

func (f *filterSpecs) String() string {
	return strings.Join(*f, ",")
}

func (f *filterSpecs) Set(value string) error {
	*f = append(*f, value)
	return nil
}

func main() {
	os.Exit(run())
}

func run() int {
	var filters filterSpecs
	inPath := flag.String("in", "", "image file to open")
	grabURL := flag.String("grab", "", "fetch the working image from this URL (empty uses the preferred URL)")
	outPath := flag.String("out", "", "write the result to this file")
	listOnly := flag.Bool("list", false, "print the available filters and exit")
	configPath := flag.String("config", "", "preferences file (default under the user config directory)")
	logLevel := flag.String("log-level", "", "log level: debug, info, warn, error")
	version := flag.Bool("version", false, "print the version and exit")
	flag.Var(&filters, "filter", "filter spec name[:args], repeatable, applied in order")
	flag.Parse()

	if *version {
		fmt.Printf("%s %s\n", AppName, AppVersion)
		return 0
	}

	if *listOnly {
		registry := filter.Default()
		for _, name := range registry.Names() {
			fmt.Println(registry.Usage(name))
		}
		return 0
	}

	grabRequested := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "grab" {
			grabRequested = true
		}
	})

	if *inPath == "" && !grabRequested {
		fmt.Fprintf(os.Stderr, "%s: no input, use -in FILE or -grab URL\n", AppName)
		flag.Usage()
		return 2
	}
	if *inPath != "" && grabRequested {
		fmt.Fprintf(os.Stderr, "%s: -in and -grab are mutually exclusive\n", AppName)
		return 2
	}

	prefsPath := *configPath
	if prefsPath == "" {
		path, err := config.DefaultPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v, continuing without preferences\n", AppName, err)
		} else {
			prefsPath = path
		}
	}

	prefs, err := config.Load(prefsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", AppName, err)
		return 1
	}

	log := logger.NewConsole(resolveLogLevel(*logLevel, prefs.LogLevel))
	log.Info("main", "starting", map[string]interface{}{
		"version": AppVersion,
		"input":   *inPath,
		"grab":    grabRequested,
		"filters": len(filters),
	})

	workbench := app.New(log, prefsPath, prefs)

	manager := shutdown.NewManager(log)
	manager.Register("workbench", workbench)
	manager.Listen()
	defer manager.Shutdown()

	ctx := manager.Context()

	if *inPath != "" {
		if err := workbench.OpenImage(*inPath); err != nil {
			log.Error("main", "opening image failed", err, nil)
			return 1
		}
	} else {
		if err := workbench.Grab(ctx, *grabURL); err != nil {
			log.Error("main", "grabbing image failed", err, nil)
			return 1
		}
	}

	for _, spec := range filters {
		select {
		case <-ctx.Done():
			log.Warning("main", "aborted before filter", map[string]interface{}{"filter": spec})
			return 1
		default:
		}

		if err := workbench.ApplySpec(spec); err != nil {
			log.Error("main", "filter failed", err, map[string]interface{}{"filter": spec})
			return 1
		}
	}

	if *outPath != "" {
		if err := workbench.SaveImage(*outPath); err != nil {
			log.Error("main", "saving image failed", err, nil)
			return 1
		}
	}

	return 0
}

// resolveLogLevel applies the precedence flag > LOG_LEVEL env >
// preferences > info.
func resolveLogLevel(flagValue, prefValue string) zerolog.Level {
	if flagValue != "" {
		return logger.ParseLevel(flagValue)
	}
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		return logger.ParseLevel(env)
	}
	if prefValue != "" {
		return logger.ParseLevel(prefValue)
	}
	return zerolog.InfoLevel
}
