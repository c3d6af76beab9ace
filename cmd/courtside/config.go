package main

import (
	"time"

	"github.com/tinytelemetry/courtside/internal/model"
	"github.com/tinytelemetry/courtside/internal/nbadata"
)

const (
	defaultFetchTimeout    = model.DefaultFetchTimeout
	defaultRefreshInterval = model.DefaultRefreshInterval
	defaultTimezone        = model.DefaultTimezone
	defaultBindHost        = "127.0.0.1"
	defaultAPIPort         = 3000
)

// appConfig is internal runtime configuration.
// It is package-private to keep defaults and shape local to the CLI entrypoint.
type appConfig struct {
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
	APIPort          int           `mapstructure:"api-port"`
	APIAddr          string        `mapstructure:"api-addr"`
	ConfigPath       string        `mapstructure:"-"` // not from config file
}

// feedConfig maps the feed settings onto the nbadata client config.
func (c appConfig) feedConfig() nbadata.Config {
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
