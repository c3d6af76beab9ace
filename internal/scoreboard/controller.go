package scoreboard

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/tinytelemetry/courtside/internal/model"
)

var (
	// ErrSelectionOutOfRange is returned by Controller.Select for an index
	// outside the current game list.
	ErrSelectionOutOfRange = errors.New("selection out of range")
	// ErrInvalidDate is returned by Controller.Load for text that is not MM/DD/YYYY.
	ErrInvalidDate = errors.New("invalid date, expected MM/DD/YYYY")
)

// ControllerConfig holds Controller settings.
type ControllerConfig struct {
	// Context bounds every fetch for the life of the service. Nil means
	// context.Background().
	Context      context.Context
	Location     *time.Location
	FetchTimeout time.Duration
	Now          func() time.Time
}

// Controller serializes access to a Session for the headless service. Fetches
// run outside the lock; generation checks make late responses harmless.
type Controller struct {
	mu      sync.Mutex
	sess    *Session
	src     model.ScoreSource
	base    context.Context
	now     func() time.Time
	timeout time.Duration

	// notifyMu is held from snapshot to fan-out so subscribers see
	// snapshots in the order the state changed.
	notifyMu sync.Mutex

	subsMu sync.RWMutex
	subs   map[int]func(View)
	nextID int
}

// NewController creates a controller reading from src.
func NewController(src model.ScoreSource, cfg ControllerConfig) *Controller {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = model.DefaultFetchTimeout
	}
	if cfg.Context == nil {
		cfg.Context = context.Background()
	}
	return &Controller{
		sess:    NewSession(cfg.Location),
		src:     src,
		base:    cfg.Context,
		now:     cfg.Now,
		timeout: cfg.FetchTimeout,
		subs:    make(map[int]func(View)),
	}
}

// Subscribe registers fn to receive a snapshot after every state change.
// Deliveries are serialized, so fn must not call back into Load, Refresh,
// Select or Navigate. The returned func removes the subscription.
func (c *Controller) Subscribe(fn func(View)) func() {
	c.subsMu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	c.subsMu.Unlock()

	return func() {
		c.subsMu.Lock()
		delete(c.subs, id)
		c.subsMu.Unlock()
	}
}

// View returns the current snapshot.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sess.View()
}

// Load fetches the scoreboard for date (empty means today) and then the
// selected game's box score. Fetch failures land in the view's error flags;
// only an invalid date is returned.
func (c *Controller) Load(ctx context.Context, date string) error {
	c.mu.Lock()
	req, ok := c.sess.BeginScoreboard(date, c.now(), nil)
	c.mu.Unlock()
	if !ok {
		return ErrInvalidDate
	}
	c.runScoreboard(ctx, req)
	c.syncBoxscore(ctx)
	return nil
}

// Refresh re-fetches the scoreboard and forces a new box-score fetch for the
// selected game.
func (c *Controller) Refresh(ctx context.Context) {
	c.mu.Lock()
	req := c.sess.Refresh(c.now())
	c.mu.Unlock()

	c.runScoreboard(ctx, req)
	c.syncBoxscore(ctx)
}

// Select makes game i the selected one.
func (c *Controller) Select(ctx context.Context, i int) error {
	c.mu.Lock()
	if i < 0 || i >= len(c.sess.Games()) {
		c.mu.Unlock()
		return ErrSelectionOutOfRange
	}
	c.sess.Select(i)
	c.mu.Unlock()

	c.notify()
	c.syncBoxscore(ctx)
	return nil
}

// Navigate steps the selection and reports whether it moved.
func (c *Controller) Navigate(ctx context.Context, dir Direction) bool {
	c.mu.Lock()
	moved := c.sess.Navigate(dir)
	c.mu.Unlock()
	if !moved {
		return false
	}
	c.notify()
	c.syncBoxscore(ctx)
	return true
}

// fetchContext drops the caller's cancellation. A fetch ends on its own
// timeout or when the controller's context is done, never because the
// request that started it went away.
func (c *Controller) fetchContext(ctx context.Context) (context.Context, context.CancelFunc) {
	fctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	stop := context.AfterFunc(c.base, cancel)
	return fctx, func() {
		stop()
		cancel()
	}
}

func (c *Controller) runScoreboard(ctx context.Context, req ScoreboardRequest) {
	fctx, cancel := c.fetchContext(ctx)
	games, err := FetchScoreboard(fctx, c.src, req, c.timeout)
	cancel()

	c.mu.Lock()
	applied := c.sess.ApplyScoreboard(req, games, err)
	c.mu.Unlock()
	if applied {
		c.notify()
	}
}

func (c *Controller) syncBoxscore(ctx context.Context) {
	c.mu.Lock()
	req, ok := c.sess.NextBoxscore()
	c.mu.Unlock()
	if !ok {
		return
	}

	fctx, cancel := c.fetchContext(ctx)
	rec, err := FetchBoxscore(fctx, c.src, req, c.timeout)
	cancel()

	c.mu.Lock()
	applied := c.sess.ApplyBoxscore(req, rec, err)
	c.mu.Unlock()
	if applied {
		c.notify()
	}
}

func (c *Controller) notify() {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	v := c.View()

	c.subsMu.RLock()
	fns := make([]func(View), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.subsMu.RUnlock()

	for _, fn := range fns {
		fn(v)
	}
}

// FetchScoreboard runs one scoreboard request under its own timeout.
func FetchScoreboard(ctx context.Context, src model.ScoreboardSource, req ScoreboardRequest, timeout time.Duration) ([]model.GameSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return src.Scoreboard(ctx, req.DayKey(), req.CacheToken)
}

// FetchBoxscore runs one box-score request under its own timeout.
func FetchBoxscore(ctx context.Context, src model.BoxscoreSource, req BoxscoreRequest, timeout time.Duration) (model.BoxscoreRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return src.Boxscore(ctx, req.Key.GameID, req.Key.Season)
}
