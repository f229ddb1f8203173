package framex

import (
	"fmt"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/tuannm99/framex/pkg/lrukx"
)

// Config describes a replacer and the simulated workload the replsim
// command drives against it.
type Config struct {
	Replacer struct {
		Algorithm string `mapstructure:"algorithm"`
		Capacity  int    `mapstructure:"capacity"`
		K         int    `mapstructure:"k"`
	} `mapstructure:"replacer"`

	Workload struct {
		Pattern     string  `mapstructure:"pattern"`
		Operations  int     `mapstructure:"operations"`
		Seed        int64   `mapstructure:"seed"`
		HotFraction float64 `mapstructure:"hot_fraction"`
	} `mapstructure:"workload"`

	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

// SlogLevel maps the configured level name onto a slog level. Unknown
// names fall back to info.
func (c *Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("replacer.algorithm", LRU.String())
	v.SetDefault("replacer.capacity", DefaultCapacity)
	v.SetDefault("replacer.k", lrukx.DefaultK)
	v.SetDefault("workload.pattern", "hot_cold")
	v.SetDefault("workload.operations", 10000)
	v.SetDefault("workload.seed", 1)
	v.SetDefault("workload.hot_fraction", 0.2)
	v.SetDefault("log.level", "info")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

// NewFromConfig builds the replacer the config describes.
func NewFromConfig(cfg *Config) (Replacer, error) {
	algorithm, err := GetAlgorithm(cfg.Replacer.Algorithm)
	if err != nil {
		return nil, err
	}

	if algorithm == LRUK {
		return NewLRUK(cfg.Replacer.Capacity, cfg.Replacer.K), nil
	}
	return New(algorithm, cfg.Replacer.Capacity)
}
