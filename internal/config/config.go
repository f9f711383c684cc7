package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EvalConfig holds configuration for batch valuation, loaded from flags,
// env, or config file.
type EvalConfig struct {
	Input     string
	Out       string
	PGDSN     string
	BatchSize int
	LogLevel  string
}

// LoadEval merges config file, environment variables, and flags into
// EvalConfig.
func LoadEval(cfgFile string, flags *pflag.FlagSet) (EvalConfig, error) {
	v := viper.New()
	v.SetEnvPrefix("LPCALC")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("batch-size", 1000)
	v.SetDefault("out", "./data/valuations.jsonl")
	v.SetDefault("log-level", "info")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return EvalConfig{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return EvalConfig{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return EvalConfig{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := EvalConfig{
		Input:     v.GetString("in"),
		Out:       v.GetString("out"),
		PGDSN:     v.GetString("pg-dsn"),
		BatchSize: v.GetInt("batch-size"),
		LogLevel:  v.GetString("log-level"),
	}

	return cfg, nil
}
