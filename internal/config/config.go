package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/newthinker/opinionlab/internal/core"
	"github.com/newthinker/opinionlab/internal/strategy"
	"github.com/spf13/viper"
)

type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Source   SourceConfig   `mapstructure:"source"`
	Candles  CandlesConfig  `mapstructure:"candles"`
	Signals  SignalsConfig  `mapstructure:"signals"`
	Backtest BacktestConfig `mapstructure:"backtest"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

type LogConfig struct {
	Development bool `mapstructure:"development"`
}

// SourceConfig selects where input snapshots are read from
type SourceConfig struct {
	Type string   `mapstructure:"type"` // "localfs" or "s3"
	Path string   `mapstructure:"path"` // For localfs
	S3   S3Config `mapstructure:"s3"`   // For S3
}

type S3Config struct {
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Prefix    string `mapstructure:"prefix"`
}

// CandlesConfig controls candle synthesis
type CandlesConfig struct {
	Interval time.Duration `mapstructure:"interval"`
	FillGaps bool          `mapstructure:"fill_gaps"`
}

// SignalsConfig controls the technical signal pass
type SignalsConfig struct {
	Window int `mapstructure:"window"`
}

// BacktestConfig holds the defaults of a backtest run
type BacktestConfig struct {
	InitialWallet  float64            `mapstructure:"initial_wallet"`
	Slippage       float64            `mapstructure:"slippage"`
	Strategy       string             `mapstructure:"strategy"`
	Params         map[string]float64 `mapstructure:"params"`
	RandomBaseline bool               `mapstructure:"random_baseline"`
	Seed           uint64             `mapstructure:"seed"`
}

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Textfile string `mapstructure:"textfile"` // written on exit when set
}

// Load reads configuration from file on top of Defaults
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	setDefaults(v)

	// Support environment variable overrides
	v.SetEnvPrefix("OPINIONLAB")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Expand environment variables in string values
	for _, key := range v.AllKeys() {
		val := v.GetString(key)
		if strings.HasPrefix(val, "${") && strings.HasSuffix(val, "}") {
			envKey := strings.TrimSuffix(strings.TrimPrefix(val, "${"), "}")
			v.Set(key, os.Getenv(envKey))
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("source.type", d.Source.Type)
	v.SetDefault("source.path", d.Source.Path)
	v.SetDefault("candles.interval", d.Candles.Interval)
	v.SetDefault("candles.fill_gaps", d.Candles.FillGaps)
	v.SetDefault("signals.window", d.Signals.Window)
	v.SetDefault("backtest.initial_wallet", d.Backtest.InitialWallet)
	v.SetDefault("backtest.slippage", d.Backtest.Slippage)
	v.SetDefault("backtest.strategy", d.Backtest.Strategy)
	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
}

// Defaults returns a config with sensible defaults
func Defaults() *Config {
	return &Config{
		Source: SourceConfig{
			Type: "localfs",
			Path: ".",
		},
		Candles: CandlesConfig{
			Interval: time.Minute,
			FillGaps: true,
		},
		Signals: SignalsConfig{
			Window: 20,
		},
		Backtest: BacktestConfig{
			InitialWallet: 1000,
			Slippage:      0.005,
			Strategy:      string(strategy.TypeEarlyEntry),
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	switch c.Source.Type {
	case "localfs":
		if c.Source.Path == "" {
			return core.WrapError(core.ErrConfigMissing,
				fmt.Errorf("source path required when type is localfs"))
		}
	case "s3":
		if c.Source.S3.Bucket == "" {
			return core.WrapError(core.ErrConfigMissing,
				fmt.Errorf("s3 bucket required when source type is s3"))
		}
	default:
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("unknown source type %q", c.Source.Type))
	}

	if c.Candles.Interval < 0 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("candle interval cannot be negative, got %s", c.Candles.Interval))
	}

	if c.Signals.Window < 1 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("signal window must be at least 1, got %d", c.Signals.Window))
	}

	if c.Backtest.InitialWallet <= 0 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("initial_wallet must be positive, got %f", c.Backtest.InitialWallet))
	}
	if c.Backtest.Slippage < 0 || c.Backtest.Slippage > strategy.MaxSlippage {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("slippage must be between 0 and %v, got %f", strategy.MaxSlippage, c.Backtest.Slippage))
	}

	return nil
}

// StrategyConfig returns the configured strategy run settings
func (c *Config) StrategyConfig() strategy.Config {
	return strategy.Config{
		Type:     strategy.Type(strings.ToUpper(c.Backtest.Strategy)),
		Params:   strategy.Params(c.Backtest.Params).Normalize(),
		Slippage: c.Backtest.Slippage,
	}
}
