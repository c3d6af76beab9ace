package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/tinytelemetry/courtside/internal/scoreboard"

	"github.com/gin-gonic/gin"
)

// Controller is the scoreboard contract required by the HTTP API.
type Controller interface {
	View() scoreboard.View
	Load(ctx context.Context, date string) error
	Refresh(ctx context.Context)
	Select(ctx context.Context, i int) error
	Navigate(ctx context.Context, dir scoreboard.Direction) bool
}

// Feed is the websocket endpoint and its connection counters.
type Feed interface {
	HandleWebSocket(w http.ResponseWriter, r *http.Request)
	Metrics() map[string]any
}

// Server provides an HTTP API over the live scoreboard.
type Server struct {
	addr      string
	ctrl      Controller
	feed      Feed
	server    *http.Server
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
}

// NewServer creates a new HTTP API server. feed, when non-nil, serves the
// websocket endpoint and adds its counters to the health report.
func NewServer(addr string, ctrl Controller, feed Feed) *Server {
	if addr == "" {
		addr = "0.0.0.0:3000"
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:   addr,
		ctrl:   ctrl,
		feed:   feed,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.addr }

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	api.GET("/health", s.handleHealth)
	api.GET("/view", s.handleView)
	api.POST("/select", s.handleSelect)
	api.POST("/navigate", s.handleNavigate)
	api.POST("/refresh", s.handleRefresh)
	api.POST("/date", s.handleDate)
	if s.feed != nil {
		api.GET("/ws", gin.WrapF(s.feed.HandleWebSocket))
	}
	return r
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)

	s.server = &http.Server{
		Handler:           s.routes(),
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	s.startTime = time.Now()

	go s.server.Serve(listener)
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	s.cancel()
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	v := s.ctrl.View()
	body := gin.H{
		"status":           "ok",
		"uptime":           time.Since(s.startTime).String(),
		"screen":           v.Screen,
		"games":            len(v.Options),
		"scoreboard_error": v.ScoreboardErr != "",
		"boxscore_error":   v.BoxscoreErr != "",
	}
	if s.feed != nil {
		body["feed"] = s.feed.Metrics()
	}
	c.JSON(http.StatusOK, body)
}

func (s *Server) handleView(c *gin.Context) {
	c.JSON(http.StatusOK, s.ctrl.View())
}

func (s *Server) handleSelect(c *gin.Context) {
	var req struct {
		Index *int `json:"index" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body or missing index field"})
		return
	}

	if err := s.ctrl.Select(c.Request.Context(), *req.Index); err != nil {
		if errors.Is(err, scoreboard.ErrSelectionOutOfRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.ctrl.View())
}

func (s *Server) handleNavigate(c *gin.Context) {
	var req struct {
		Direction string `json:"direction" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body or missing direction field"})
		return
	}
	dir, ok := scoreboard.ParseDirection(req.Direction)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "direction must be previous or next"})
		return
	}

	moved := s.ctrl.Navigate(c.Request.Context(), dir)
	c.JSON(http.StatusOK, gin.H{
		"moved": moved,
		"view":  s.ctrl.View(),
	})
}

func (s *Server) handleRefresh(c *gin.Context) {
	s.ctrl.Refresh(c.Request.Context())
	c.JSON(http.StatusOK, s.ctrl.View())
}

func (s *Server) handleDate(c *gin.Context) {
	var req struct {
		Date string `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	if err := s.ctrl.Load(c.Request.Context(), req.Date); err != nil {
		if errors.Is(err, scoreboard.ErrInvalidDate) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, s.ctrl.View())
}
