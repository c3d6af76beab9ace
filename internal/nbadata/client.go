// Package nbadata fetches scoreboard and game-detail documents from the
// public NBA data feeds and normalizes them into model types.
package nbadata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/tinytelemetry/courtside/internal/model"
)

// relayOrigins matches deployment origins whose browsers cannot reach the
// detail feed directly and must go through the relay.
var relayOrigins = regexp.MustCompile(`github\.io`)

// Config holds feed endpoints and deployment routing.
type Config struct {
	ScoreboardURL    string
	ScoreboardSuffix string
	BoxscoreURL      string
	BoxscoreMid      string
	BoxscoreSuffix   string
	RelayURL         string
	Origin           string // address this deployment is served from
	Timeout          time.Duration
}

// DefaultConfig returns the production feed endpoints.
func DefaultConfig() Config {
	return Config{
		ScoreboardURL:    model.DefaultScoreboardURL,
		ScoreboardSuffix: model.DefaultScoreboardSuffix,
		BoxscoreURL:      model.DefaultBoxscoreURL,
		BoxscoreMid:      model.DefaultBoxscoreMid,
		BoxscoreSuffix:   model.DefaultBoxscoreSuffix,
		RelayURL:         model.DefaultRelayURL,
		Timeout:          model.DefaultFetchTimeout,
	}
}

// StatusError is returned when a feed answers with a non-200 status.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("feed error: status=%d url=%s body=%s", e.StatusCode, e.URL, e.Body)
}

// Client handles feed requests.
type Client struct {
	httpClient *http.Client
	cfg        Config
	relay      string
	userAgent  string
}

// New creates a feed client. Empty endpoint fields fall back to defaults.
func New(cfg Config) *Client {
	def := DefaultConfig()
	if cfg.ScoreboardURL == "" {
		cfg.ScoreboardURL = def.ScoreboardURL
	}
	if cfg.ScoreboardSuffix == "" {
		cfg.ScoreboardSuffix = def.ScoreboardSuffix
	}
	if cfg.BoxscoreURL == "" {
		cfg.BoxscoreURL = def.BoxscoreURL
	}
	if cfg.BoxscoreMid == "" {
		cfg.BoxscoreMid = def.BoxscoreMid
	}
	if cfg.BoxscoreSuffix == "" {
		cfg.BoxscoreSuffix = def.BoxscoreSuffix
	}
	if cfg.RelayURL == "" {
		cfg.RelayURL = def.RelayURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		relay:      RelayPrefix(cfg.Origin, cfg.RelayURL),
		userAgent:  "courtside/1.0",
	}
}

// RelayPrefix returns relayURL when origin is a deployment that must route
// detail requests through the relay, and "" otherwise.
func RelayPrefix(origin, relayURL string) string {
	if relayOrigins.MatchString(origin) {
		return relayURL
	}
	return ""
}

// ScoreboardURL builds the day's scoreboard URL.
func (c *Client) ScoreboardURL(dayKey string, cacheToken int64) string {
	return c.cfg.ScoreboardURL + dayKey + c.cfg.ScoreboardSuffix + strconv.FormatInt(cacheToken, 10)
}

// BoxscoreURL builds the game-detail URL, including the relay prefix when the
// deployment requires one.
func (c *Client) BoxscoreURL(gameID, season string) string {
	return c.relay + c.cfg.BoxscoreURL + season + c.cfg.BoxscoreMid + gameID + c.cfg.BoxscoreSuffix
}

// Scoreboard fetches and normalizes the games for dayKey (YYYYMMDD).
func (c *Client) Scoreboard(ctx context.Context, dayKey string, cacheToken int64) ([]model.GameSummary, error) {
	var doc scoreboardDoc
	if err := c.fetch(ctx, c.ScoreboardURL(dayKey, cacheToken), &doc); err != nil {
		return nil, err
	}
	if doc.Games == nil {
		return nil, fmt.Errorf("decoding scoreboard %s: missing games array", dayKey)
	}

	games := make([]model.GameSummary, 0, len(*doc.Games))
	for _, g := range *doc.Games {
		games = append(games, g.normalize())
	}
	return games, nil
}

// Boxscore fetches and normalizes one game's detail record.
func (c *Client) Boxscore(ctx context.Context, gameID, season string) (model.BoxscoreRecord, error) {
	var doc gameDetailDoc
	if err := c.fetch(ctx, c.BoxscoreURL(gameID, season), &doc); err != nil {
		return model.BoxscoreRecord{}, err
	}
	if doc.G == nil {
		return model.BoxscoreRecord{}, fmt.Errorf("decoding game detail %s: missing g object", gameID)
	}

	rec := doc.G.normalize()
	if rec.GameID == "" {
		rec.GameID = gameID
	}
	return rec, nil
}

// fetch makes an HTTP GET request and decodes the JSON body into out.
func (c *Client) fetch(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{URL: url, StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
