package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/tinytelemetry/courtside/internal/gamedate"
	"github.com/tinytelemetry/courtside/internal/nbadata"
	"github.com/tinytelemetry/courtside/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	var configPath string
	var date string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/courtside/config.yml)")
	flag.StringVar(&date, "date", "", "open on a specific date (MM/DD/YYYY)")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("Courtside CLI - Scoreboard Client\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	if date != "" {
		if _, ok := gamedate.ValidateDate(date); !ok {
			fmt.Fprintf(os.Stderr, "Error: invalid date %q (use MM/DD/YYYY)\n", date)
			os.Exit(1)
		}
	}

	cfg, err := loadCLIConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := runTUI(cfg, date); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cfg cliConfig, date string) error {
	cleanupLogger := configureLogger()
	defer cleanupLogger()

	configDir := os.Getenv("HOME") + "/.config/courtside"
	if err := tui.InitializeSkin(cfg.Skin, configDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load skin '%s': %v (using default)\n", cfg.Skin, err)
	}

	loc, err := gamedate.LoadLocation(cfg.Timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}

	dataSource := "Direct"
	if nbadata.RelayPrefix(cfg.Origin, cfg.RelayURL) != "" {
		dataSource = "Relay"
	}

	scoreboard := tui.NewScoreboardModel(tui.Options{
		Source:          nbadata.New(cfg.feedConfig()),
		Location:        loc,
		FetchTimeout:    cfg.FetchTimeout,
		RefreshInterval: cfg.RefreshInterval,
		DataSource:      dataSource,
		Date:            date,
	})
	page := tui.NewScoreboardPage(scoreboard)
	app := tui.NewApp(page)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// configureLogger keeps log output off the alternate screen.
func configureLogger() func() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	home, err := os.UserHomeDir()
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}

	logDir := filepath.Join(home, ".local", "state", "courtside")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}

	f, err := os.OpenFile(filepath.Join(logDir, "courtside-tui.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}

	log.SetOutput(f)
	return func() {
		_ = f.Close()
	}
}
