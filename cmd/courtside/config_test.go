package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tinytelemetry/courtside/internal/model"
)

func TestLoadConfig_Defaults(t *testing.T) {
	resetCourtsideEnv(t)

	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("loadConfig returned error: %v", err)
	}

	if cfg.ConfigPath != "" {
		t.Fatalf("ConfigPath = %q, want empty for missing file", cfg.ConfigPath)
	}
	if cfg.APIAddr != "127.0.0.1:3000" {
		t.Fatalf("APIAddr = %q, want %q", cfg.APIAddr, "127.0.0.1:3000")
	}
	if cfg.FetchTimeout != model.DefaultFetchTimeout {
		t.Fatalf("FetchTimeout = %s, want %s", cfg.FetchTimeout, model.DefaultFetchTimeout)
	}
	if cfg.RefreshInterval != 0 {
		t.Fatalf("RefreshInterval = %s, want 0", cfg.RefreshInterval)
	}
	if cfg.ScoreboardURL != model.DefaultScoreboardURL {
		t.Fatalf("ScoreboardURL = %q, want %q", cfg.ScoreboardURL, model.DefaultScoreboardURL)
	}
	if cfg.Timezone != model.DefaultTimezone {
		t.Fatalf("Timezone = %q, want %q", cfg.Timezone, model.DefaultTimezone)
	}
}

func TestLoadConfig_FileAndValidation(t *testing.T) {
	resetCourtsideEnv(t)

	tests := []struct {
		name         string
		configYAML   string
		wantErr      bool
		errSubstring string
		assert       func(t *testing.T, cfg appConfig)
	}{
		{
			name: "port derives api address",
			configYAML: `
api-port: 3100
`,
			assert: func(t *testing.T, cfg appConfig) {
				t.Helper()
				if cfg.APIAddr != "127.0.0.1:3100" {
					t.Fatalf("APIAddr = %q, want %q", cfg.APIAddr, "127.0.0.1:3100")
				}
				if cfg.ConfigPath == "" {
					t.Fatal("ConfigPath should be set when the file exists")
				}
			},
		},
		{
			name: "explicit address overrides port",
			configYAML: `
api-port: 3200
api-addr: 0.0.0.0:8888
`,
			assert: func(t *testing.T, cfg appConfig) {
				t.Helper()
				if cfg.APIAddr != "0.0.0.0:8888" {
					t.Fatalf("APIAddr = %q, want %q", cfg.APIAddr, "0.0.0.0:8888")
				}
			},
		},
		{
			name: "durations and feed settings",
			configYAML: `
fetch-timeout: 3s
refresh-interval: 30s
timezone: America/New_York
origin: https://someone.github.io
scoreboard-url: http://localhost:9000/scoreboard/
`,
			assert: func(t *testing.T, cfg appConfig) {
				t.Helper()
				if cfg.FetchTimeout != 3*time.Second {
					t.Fatalf("FetchTimeout = %s, want 3s", cfg.FetchTimeout)
				}
				if cfg.RefreshInterval != 30*time.Second {
					t.Fatalf("RefreshInterval = %s, want 30s", cfg.RefreshInterval)
				}
				fc := cfg.feedConfig()
				if fc.Origin != "https://someone.github.io" {
					t.Fatalf("Origin = %q", fc.Origin)
				}
				if fc.ScoreboardURL != "http://localhost:9000/scoreboard/" {
					t.Fatalf("ScoreboardURL = %q", fc.ScoreboardURL)
				}
				if fc.Timeout != 3*time.Second {
					t.Fatalf("Timeout = %s, want 3s", fc.Timeout)
				}
			},
		},
		{
			name: "invalid port rejected",
			configYAML: `
api-port: 70000
`,
			wantErr:      true,
			errSubstring: "invalid api-port",
		},
		{
			name: "zero fetch timeout rejected",
			configYAML: `
fetch-timeout: 0s
`,
			wantErr:      true,
			errSubstring: "invalid fetch-timeout",
		},
		{
			name: "negative refresh interval rejected",
			configYAML: `
refresh-interval: -5s
`,
			wantErr:      true,
			errSubstring: "invalid refresh-interval",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := writeTempConfig(t, tt.configYAML)
			cfg, err := loadConfig(configPath)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errSubstring != "" && !strings.Contains(err.Error(), tt.errSubstring) {
					t.Fatalf("error = %q, want substring %q", err.Error(), tt.errSubstring)
				}
				return
			}
			if err != nil {
				t.Fatalf("loadConfig returned error: %v", err)
			}
			tt.assert(t, cfg)
		})
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	resetCourtsideEnv(t)

	configPath := writeTempConfig(t, `
api-port: 3100
fetch-timeout: 3s
`)
	t.Setenv("COURTSIDE_API_PORT", "3300")
	t.Setenv("COURTSIDE_FETCH_TIMEOUT", "7s")

	cfg, err := loadConfig(configPath)
	if err != nil {
		t.Fatalf("loadConfig returned error: %v", err)
	}
	if cfg.APIAddr != "127.0.0.1:3300" {
		t.Fatalf("APIAddr = %q, want %q", cfg.APIAddr, "127.0.0.1:3300")
	}
	if cfg.FetchTimeout != 7*time.Second {
		t.Fatalf("FetchTimeout = %s, want 7s", cfg.FetchTimeout)
	}
}

func TestShortenPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got := shortenPath(filepath.Join(home, ".config", "courtside", "config.yml"))
	want := "~" + string(filepath.Separator) + filepath.Join(".config", "courtside", "config.yml")
	if got != want {
		t.Fatalf("shortenPath = %q, want %q", got, want)
	}
	outside := filepath.Join(t.TempDir(), "config.yml")
	if !strings.HasPrefix(outside, home) {
		if got := shortenPath(outside); got != outside {
			t.Fatalf("shortenPath = %q, want unchanged", got)
		}
	}
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte(strings.TrimSpace(content)+"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func resetCourtsideEnv(t *testing.T) {
	t.Helper()

	for _, kv := range os.Environ() {
		key, _, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, "COURTSIDE_") {
			continue
		}
		// t.Setenv restores the original value on cleanup.
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}
}
