package main

import (
	"github.com/spf13/pflag"

	"github.com/ukaji3/conspire-go/internal/config"
	"github.com/ukaji3/conspire-go/pkg/conspire"
	"github.com/ukaji3/conspire-go/pkg/conspire/backend"
	"github.com/ukaji3/conspire-go/pkg/conspire/output"
)

func addGlobalFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to a YAML configuration file")
	fs.String("log-level", "info", "Log level: debug, info, warn, error, disabled")
	fs.Bool("log-json", false, "Emit logs as JSON")
	fs.Bool("log-source", false, "Include source locations in logs")
}

func addPublishFlags(fs *pflag.FlagSet) {
	fs.StringP("output", "o", "", "Output file path (default from config, render.html)")
	fs.String("backend", "", "Rendering backend (default from config, plotly)")
	fs.Bool("display", false, "Open the rendered document after writing it")
}

// backendFlag returns the --backend value when set, otherwise fallback.
func backendFlag(fs *pflag.FlagSet, fallback string) (backend.ID, error) {
	name := fallback
	if fs.Changed("backend") {
		v, err := fs.GetString("backend")
		if err != nil {
			return "", err
		}
		name = v
	}
	return backend.ParseID(name)
}

// publishOptions merges the publish flags over cfg.
func publishOptions(fs *pflag.FlagSet, cfg *config.Config) (conspire.PublishOptions, error) {
	opts := conspire.DefaultPublishOptions()
	opts.Path = cfg.Output.Path
	if fs.Changed("output") {
		v, err := fs.GetString("output")
		if err != nil {
			return opts, err
		}
		opts.Path = v
	}
	if fs.Changed("display") {
		v, err := fs.GetBool("display")
		if err != nil {
			return opts, err
		}
		opts.Display = &v
	} else if cfg.Output.Display {
		display := true
		opts.Display = &display
	}
	opts.Opener = output.NewOpener(cfg.Viewer.Command)
	return opts, nil
}
