package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/tinytelemetry/courtside/internal/model"
	"github.com/tinytelemetry/courtside/internal/nbadata"
)

const (
	defaultFetchTimeout    = model.DefaultFetchTimeout
	defaultRefreshInterval = model.DefaultRefreshInterval
	defaultSkin            = model.DefaultSkin
	defaultTimezone        = model.DefaultTimezone
)

// cliConfig holds only TUI-relevant configuration.
type cliConfig struct {
	Timezone         string        `mapstructure:"timezone"`
	Origin           string        `mapstructure:"origin"`
	ScoreboardURL    string        `mapstructure:"scoreboard-url"`
	ScoreboardSuffix string        `mapstructure:"scoreboard-suffix"`
	BoxscoreURL      string        `mapstructure:"boxscore-url"`
	BoxscoreMid      string        `mapstructure:"boxscore-mid"`
	BoxscoreSuffix   string        `mapstructure:"boxscore-suffix"`
	RelayURL         string        `mapstructure:"relay-url"`
	FetchTimeout     time.Duration `mapstructure:"fetch-timeout"`
	RefreshInterval  time.Duration `mapstructure:"refresh-interval"`
	Skin             string        `mapstructure:"skin"`
}

func (c cliConfig) feedConfig() nbadata.Config {
	return nbadata.Config{
		ScoreboardURL:    c.ScoreboardURL,
		ScoreboardSuffix: c.ScoreboardSuffix,
		BoxscoreURL:      c.BoxscoreURL,
		BoxscoreMid:      c.BoxscoreMid,
		BoxscoreSuffix:   c.BoxscoreSuffix,
		RelayURL:         c.RelayURL,
		Origin:           c.Origin,
		Timeout:          c.FetchTimeout,
	}
}

func loadCLIConfig(configPath string) (cliConfig, error) {
	var cfg cliConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("COURTSIDE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("timezone", defaultTimezone)
	v.SetDefault("origin", "")
	v.SetDefault("scoreboard-url", model.DefaultScoreboardURL)
	v.SetDefault("scoreboard-suffix", model.DefaultScoreboardSuffix)
	v.SetDefault("boxscore-url", model.DefaultBoxscoreURL)
	v.SetDefault("boxscore-mid", model.DefaultBoxscoreMid)
	v.SetDefault("boxscore-suffix", model.DefaultBoxscoreSuffix)
	v.SetDefault("relay-url", model.DefaultRelayURL)
	v.SetDefault("fetch-timeout", defaultFetchTimeout)
	v.SetDefault("refresh-interval", defaultRefreshInterval)
	v.SetDefault("skin", defaultSkin)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "courtside", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	if cfg.FetchTimeout <= 0 {
		return cfg, fmt.Errorf("invalid fetch-timeout: %s", cfg.FetchTimeout)
	}
	if cfg.RefreshInterval < 0 {
		return cfg, fmt.Errorf("invalid refresh-interval: %s", cfg.RefreshInterval)
	}

	return cfg, nil
}
