package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/tinytelemetry/courtside/internal/feed"
	"github.com/tinytelemetry/courtside/internal/gamedate"
	"github.com/tinytelemetry/courtside/internal/httpserver"
	"github.com/tinytelemetry/courtside/internal/nbadata"
	"github.com/tinytelemetry/courtside/internal/scoreboard"
	"golang.org/x/sync/errgroup"
)

// runServer starts the headless scoreboard service with the HTTP API.
func runServer(cfg appConfig) error {
	cleanupLogger := configureRuntimeLogger()
	defer cleanupLogger()

	loc, err := gamedate.LoadLocation(cfg.Timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}

	// Set up context and signal handling before errgroup
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := nbadata.New(cfg.feedConfig())
	ctrl := scoreboard.NewController(client, scoreboard.ControllerConfig{
		Context:      ctx,
		Location:     loc,
		FetchTimeout: cfg.FetchTimeout,
	})

	hub := feed.NewHub()
	unsubscribe := ctrl.Subscribe(hub.PublishView)
	defer unsubscribe()

	apiServer := httpserver.NewServer(cfg.APIAddr, ctrl, feed.NewHandler(ctx, hub))
	if err := apiServer.Start(); err != nil {
		return fmt.Errorf("failed to start API server: %w", err)
	}
	defer apiServer.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Println("\nShutting down gracefully... (press Ctrl+C again to force)")
		cancel()

		deadline := time.NewTimer(10 * time.Second)
		defer deadline.Stop()

		select {
		case <-sigCh:
			fmt.Println("\nForce shutdown.")
		case <-deadline.C:
			fmt.Println("Shutdown timed out, forcing exit.")
		}
		os.Exit(1)
	}()

	printStartupBanner(cfg, nbadata.RelayPrefix(cfg.Origin, cfg.RelayURL) != "")

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hub.Run(gctx)
		return nil
	})

	// Initial load of today's slate.
	g.Go(func() error {
		if err := ctrl.Load(gctx, ""); err != nil {
			log.Printf("server: initial load: %v", err)
		}
		return nil
	})

	if cfg.RefreshInterval > 0 {
		g.Go(func() error {
			return refreshLoop(gctx, ctrl, cfg.RefreshInterval)
		})
	}

	// Wait for context cancellation (from signal handler) in the errgroup
	g.Go(func() error {
		<-gctx.Done()
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Printf("server: errgroup exited with error: %v", err)
	}

	signal.Stop(sigCh)
	return nil
}

// refreshLoop re-fetches the current date on every tick until ctx is done.
func refreshLoop(ctx context.Context, ctrl *scoreboard.Controller, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			ctrl.Refresh(ctx)
		}
	}
}

func configureRuntimeLogger() func() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	home, err := os.UserHomeDir()
	if err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	logDir := filepath.Join(home, ".local", "state", "courtside")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	f, err := os.OpenFile(filepath.Join(logDir, "courtside.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	log.SetOutput(f)
	return func() {
		_ = f.Close()
	}
}

func printStartupBanner(cfg appConfig, relayed bool) {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	cyan := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	yellow := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	bold := lipgloss.NewStyle().Bold(true)

	check := green.Render("●")
	dot := dim.Render("●")

	logo := cyan.Bold(true).Render(`
    ╔═╗╔═╗╦ ╦╦═╗╔╦╗╔═╗╦╔╦╗╔═╗
    ║  ║ ║║ ║╠╦╝ ║ ╚═╗║ ║║║╣
    ╚═╝╚═╝╚═╝╩╚═ ╩ ╚═╝╩═╩╝╚═╝`)

	var lines []string
	lines = append(lines, "", logo, "    "+dim.Render("v"+version), "")

	separator := dim.Render("    ─────────────────────────────────")
	lines = append(lines, separator, "")

	lines = append(lines, bold.Render("    Gateway"), "")
	lines = append(lines, fmt.Sprintf("    %s  HTTP API       %s", check, cyan.Render(cfg.APIAddr)))
	lines = append(lines, fmt.Sprintf("    %s  Live Feed      %s", check, cyan.Render(cfg.APIAddr+"/api/ws")))
	lines = append(lines, "")

	lines = append(lines, bold.Render("    Data"), "")
	lines = append(lines, fmt.Sprintf("    %s  Scoreboard     %s", check, dim.Render(cfg.ScoreboardURL)))
	lines = append(lines, fmt.Sprintf("    %s  Box Scores     %s", check, dim.Render(cfg.BoxscoreURL)))
	if relayed {
		lines = append(lines, fmt.Sprintf("    %s  Relay          %s", check, dim.Render(cfg.RelayURL)))
	} else {
		lines = append(lines, fmt.Sprintf("    %s  Relay          %s", dot, dim.Render("direct")))
	}
	lines = append(lines, "")

	lines = append(lines, bold.Render("    Runtime"), "")
	lines = append(lines, fmt.Sprintf("    %s  Timezone       %s", check, dim.Render(cfg.Timezone)))
	lines = append(lines, fmt.Sprintf("    %s  Fetch Timeout  %s", check, dim.Render(cfg.FetchTimeout.String())))
	if cfg.RefreshInterval > 0 {
		lines = append(lines, fmt.Sprintf("    %s  Auto Refresh   %s", check, dim.Render(cfg.RefreshInterval.String())))
	} else {
		lines = append(lines, fmt.Sprintf("    %s  Auto Refresh   %s", dot, dim.Render("disabled")))
	}
	lines = append(lines, "")

	lines = append(lines, bold.Render("    Config"), "")
	if cfg.ConfigPath != "" {
		lines = append(lines, fmt.Sprintf("    %s  Config File    %s", check, dim.Render(shortenPath(cfg.ConfigPath))))
	} else {
		lines = append(lines, fmt.Sprintf("    %s  Config File    %s", dot, dim.Render("default (no file)")))
	}

	lines = append(lines, "", separator, "")
	lines = append(lines, "    "+dim.Render("Press ")+yellow.Render("Ctrl+C")+dim.Render(" to stop"), "")

	fmt.Println(strings.Join(lines, "\n"))
}

func shortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + path[len(home):]
	}
	return path
}
