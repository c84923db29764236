package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"

	decisiontree "github.com/billylozowski/PitchClassification-decisiontree"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	envPrefix         = "SPORTCLASS_"
	defaultConfigFile = "sportclass.yaml"
)

// Config holds the settings shared by every command. It is loaded from
// defaults, a YAML file, SPORTCLASS_* environment variables and flags, in
// increasing order of precedence.
type Config struct {
	Verbose     bool   `koanf:"verbose"`
	MetricsFile string `koanf:"metrics_file"`
	// Seed drives every random choice: splits, folds and simulations.
	Seed int64 `koanf:"seed"`
	// Table is the SQL table or MongoDB collection holding samples.
	Table string `koanf:"table"`

	MinNodeSize         int     `koanf:"min_node_size"`
	MinSplitImprovement float64 `koanf:"min_split_improvement"`
	MaxDepth            int     `koanf:"max_depth"`
	Concurrency         int     `koanf:"concurrency"`
	// SplitPruner is a comma separated list of strategies discarding
	// splits, see splitPruner.
	SplitPruner string `koanf:"split_pruner"`

	Folds int    `koanf:"folds"`
	Rule  string `koanf:"rule"`

	Redis RedisConfig `koanf:"redis"`
}

// RedisConfig locates the Redis server trees are stored in.
type RedisConfig struct {
	Addr     string `koanf:"addr"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
	Prefix   string `koanf:"prefix"`
}

func defaults() map[string]interface{} {
	dc := decisiontree.DefaultConfig()
	return map[string]interface{}{
		"verbose":               false,
		"seed":                  1,
		"table":                 "samples",
		"min_node_size":         dc.MinNodeSize,
		"min_split_improvement": dc.MinSplitImprovement,
		"max_depth":             0,
		"concurrency":           0,
		"split_pruner":          "default",
		"folds":                 10,
		"rule":                  decisiontree.MinDeviance.String(),
		"redis.addr":            "localhost:6379",
		"redis.db":              0,
		"redis.prefix":          "sportclass:trees",
	}
}

// loadConfig loads the configuration from cfgFile, or from sportclass.yaml
// in the working directory when it exists, the environment and the flags
// that were explicitly set.
func loadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}
	if cfgFile == "" {
		if _, err := os.Stat(defaultConfigFile); err == nil {
			cfgFile = defaultConfigFile
		}
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", cfgFile, err)
		}
	}
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return configKey(strings.ToLower(strings.TrimPrefix(s, envPrefix)))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return configKey(strings.ReplaceAll(f.Name, "-", "_")), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &cfg, nil
}

// configKey maps flat names such as redis_addr to the nested redis.addr.
func configKey(name string) string {
	if rest, ok := strings.CutPrefix(name, "redis_"); ok {
		return "redis." + rest
	}
	return name
}

// treeConfig returns the options to grow trees with.
func (c *Config) treeConfig(logger *slog.Logger) (decisiontree.Config, error) {
	pruner, err := splitPruner(c.SplitPruner)
	if err != nil {
		return decisiontree.Config{}, err
	}
	tc := decisiontree.Config{
		MinNodeSize:         c.MinNodeSize,
		MinSplitImprovement: c.MinSplitImprovement,
		MaxDepth:            c.MaxDepth,
		Concurrency:         c.Concurrency,
		Pruner:              pruner,
		Logger:              logger,
	}
	return tc, tc.Validate()
}

// cvConfig returns the options to cross-validate with, drawing folds
// from a generator seeded with Seed.
func (c *Config) cvConfig() (decisiontree.CVConfig, error) {
	rule, err := decisiontree.ParseSelectionRule(c.Rule)
	if err != nil {
		return decisiontree.CVConfig{}, err
	}
	if c.Folds < 2 {
		return decisiontree.CVConfig{}, &decisiontree.InvalidConfigError{Reason: fmt.Sprintf("at least 2 folds are needed, got %d", c.Folds)}
	}
	return decisiontree.CVConfig{Folds: c.Folds, Rule: rule, Rand: c.rand()}, nil
}

func (c *Config) rand() *rand.Rand {
	return rand.New(rand.NewSource(c.Seed))
}
