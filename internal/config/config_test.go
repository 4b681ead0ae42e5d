package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/newthinker/opinionlab/internal/core"
	"github.com/newthinker/opinionlab/internal/strategy"
)

func TestLoad_FromFile(t *testing.T) {
	content := []byte(`
source:
  type: s3
  s3:
    bucket: "opinion-history"
    region: "us-east-1"

candles:
  interval: 5m

backtest:
  strategy: market_making
  slippage: 0.01
  params:
    spreadWidth: 0.06
`)

	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(cfgPath, content, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Source.Type != "s3" || cfg.Source.S3.Bucket != "opinion-history" {
		t.Errorf("unexpected source %+v", cfg.Source)
	}
	if cfg.Candles.Interval != 5*time.Minute {
		t.Errorf("expected 5m interval, got %s", cfg.Candles.Interval)
	}
	// unset keys keep their defaults
	if cfg.Signals.Window != 20 {
		t.Errorf("expected default window 20, got %d", cfg.Signals.Window)
	}
	if cfg.Backtest.InitialWallet != 1000 {
		t.Errorf("expected default wallet 1000, got %f", cfg.Backtest.InitialWallet)
	}

	sc := cfg.StrategyConfig()
	if sc.Type != strategy.TypeMarketMaking {
		t.Errorf("expected MARKET_MAKING, got %s", sc.Type)
	}
	if sc.Params.Get("spreadWidth", 0) != 0.06 {
		t.Errorf("spread width param not loaded: %v", sc.Params)
	}
	if sc.Slippage != 0.01 {
		t.Errorf("expected slippage 0.01, got %f", sc.Slippage)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config should validate: %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.Signals.Window != 20 {
		t.Errorf("expected default window 20, got %d", cfg.Signals.Window)
	}
	if cfg.Backtest.Slippage != 0.005 {
		t.Errorf("expected default slippage 0.005, got %f", cfg.Backtest.Slippage)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr *core.Error
	}{
		{"valid config", func(c *Config) {}, nil},
		{"unknown source", func(c *Config) { c.Source.Type = "ftp" }, core.ErrConfigInvalid},
		{"localfs without path", func(c *Config) { c.Source.Path = "" }, core.ErrConfigMissing},
		{"s3 without bucket", func(c *Config) { c.Source.Type = "s3" }, core.ErrConfigMissing},
		{"zero window", func(c *Config) { c.Signals.Window = 0 }, core.ErrConfigInvalid},
		{"negative interval", func(c *Config) { c.Candles.Interval = -time.Second }, core.ErrConfigInvalid},
		{"zero wallet", func(c *Config) { c.Backtest.InitialWallet = 0 }, core.ErrConfigInvalid},
		{"slippage too high", func(c *Config) { c.Backtest.Slippage = 0.11 }, core.ErrConfigInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
