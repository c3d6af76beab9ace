package model

import "time"

// Shared defaults used by both the service and TUI binaries.
const (
	DefaultFetchTimeout                  = 10 * time.Second
	DefaultRefreshInterval time.Duration = 0 // disabled; manual refresh only
	DefaultSkin                          = "default"
	DefaultTimezone                      = "Local"

	DefaultScoreboardURL    = "https://data.nba.net/prod/v2/"
	DefaultScoreboardSuffix = "/scoreboard.json?noCache="
	DefaultBoxscoreURL      = "https://data.nba.com/data/v2015/json/mobile_teams/nba/"
	DefaultBoxscoreMid      = "/scores/gamedetail/"
	DefaultBoxscoreSuffix   = "_gamedetail.json"
	DefaultRelayURL         = "https://corsrouter.herokuapp.com/"
)
