package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tinytelemetry/courtside/internal/model"
)

func TestLoadCLIConfig(t *testing.T) {
	t.Setenv("COURTSIDE_SKIN", "")
	os.Unsetenv("COURTSIDE_SKIN")
	t.Setenv("COURTSIDE_REFRESH_INTERVAL", "")
	os.Unsetenv("COURTSIDE_REFRESH_INTERVAL")

	tests := []struct {
		name         string
		configYAML   string
		errSubstring string
		assert       func(t *testing.T, cfg cliConfig)
	}{
		{
			name:       "defaults",
			configYAML: `timezone: UTC`,
			assert: func(t *testing.T, cfg cliConfig) {
				t.Helper()
				if cfg.Skin != model.DefaultSkin {
					t.Fatalf("Skin = %q, want %q", cfg.Skin, model.DefaultSkin)
				}
				if cfg.FetchTimeout != model.DefaultFetchTimeout {
					t.Fatalf("FetchTimeout = %s, want %s", cfg.FetchTimeout, model.DefaultFetchTimeout)
				}
				if cfg.feedConfig().BoxscoreURL != model.DefaultBoxscoreURL {
					t.Fatalf("BoxscoreURL = %q", cfg.feedConfig().BoxscoreURL)
				}
			},
		},
		{
			name: "skin and refresh",
			configYAML: `
skin: night
refresh-interval: 15s
`,
			assert: func(t *testing.T, cfg cliConfig) {
				t.Helper()
				if cfg.Skin != "night" {
					t.Fatalf("Skin = %q, want night", cfg.Skin)
				}
				if cfg.RefreshInterval != 15*time.Second {
					t.Fatalf("RefreshInterval = %s, want 15s", cfg.RefreshInterval)
				}
			},
		},
		{
			name:         "negative refresh rejected",
			configYAML:   `refresh-interval: -1s`,
			errSubstring: "invalid refresh-interval",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yml")
			if err := os.WriteFile(path, []byte(strings.TrimSpace(tt.configYAML)+"\n"), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}

			cfg, err := loadCLIConfig(path)
			if tt.errSubstring != "" {
				if err == nil || !strings.Contains(err.Error(), tt.errSubstring) {
					t.Fatalf("error = %v, want substring %q", err, tt.errSubstring)
				}
				return
			}
			if err != nil {
				t.Fatalf("loadCLIConfig returned error: %v", err)
			}
			tt.assert(t, cfg)
		})
	}
}
