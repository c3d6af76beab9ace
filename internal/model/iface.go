package model

import "context"

// ScoreboardSource retrieves the list of games for one calendar day.
// dayKey is the zero-padded YYYYMMDD form of the day.
type ScoreboardSource interface {
	Scoreboard(ctx context.Context, dayKey string, cacheToken int64) ([]GameSummary, error)
}

// BoxscoreSource retrieves the detailed record of one game.
type BoxscoreSource interface {
	Boxscore(ctx context.Context, gameID, season string) (BoxscoreRecord, error)
}

// ScoreSource is the unified read contract used by the engine.
type ScoreSource interface {
	ScoreboardSource
	BoxscoreSource
}
