package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/newthinker/opinionlab/internal/app"
	"github.com/newthinker/opinionlab/internal/config"
	"github.com/newthinker/opinionlab/internal/logger"
	"github.com/newthinker/opinionlab/internal/metrics"
	"go.uber.org/zap"
)

// setup loads configuration and wires the application for one command
func setup() (*app.App, *config.Config, *zap.Logger, error) {
	var cfg *config.Config
	var err error

	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("loading config: %w", err)
		}
	} else {
		cfg = config.Defaults()
	}

	log := logger.Must(debug || cfg.Log.Development)
	if cfgFile == "" {
		log.Debug("no config file specified, using defaults")
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, nil, log, fmt.Errorf("config validation failed: %w", err)
	}

	src, err := app.NewSource(cfg.Source)
	if err != nil {
		return nil, nil, log, fmt.Errorf("opening snapshot source: %w", err)
	}

	var reg *metrics.Registry
	if cfg.Metrics.Enabled {
		reg = metrics.NewRegistry()
	}

	return app.New(cfg, src, reg, log), cfg, log, nil
}

// finish flushes metrics and logs, keeping the command error first
func finish(a *app.App, log *zap.Logger, err error) error {
	if a != nil {
		if ferr := a.Flush(); ferr != nil && err == nil {
			err = ferr
		}
	}
	if log != nil {
		_ = log.Sync()
	}
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
