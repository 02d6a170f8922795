package config

import (
	"testing"
	"time"

	"github.com/leaguedesk/airbase-client/pkg/model"
)

func TestLoad(t *testing.T) {
	t.Setenv("AIRBASE_BASE_ID", "appBase1")
	t.Setenv("AIRBASE_API_KEY", "key123")
	t.Setenv("AIRBASE_MAX_PAGES", "10")
	t.Setenv("AIRBASE_REQUEST_TIMEOUT", "5s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.BaseID != "appBase1" {
		t.Errorf("BaseID = %q, want %q", cfg.BaseID, "appBase1")
	}
	if cfg.MaxPages != 10 {
		t.Errorf("MaxPages = %d, want 10", cfg.MaxPages)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("RequestTimeout = %v, want 5s", cfg.RequestTimeout)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want default %q", cfg.LogLevel, "info")
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("AIRBASE_BASE_ID", "")
	t.Setenv("AIRBASE_API_KEY", "key123")

	if _, err := Load(); err == nil {
		t.Error("Expected error for missing base ID")
	}

	t.Setenv("AIRBASE_BASE_ID", "appBase1")
	t.Setenv("AIRBASE_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Error("Expected error for missing API key")
	}
}

func TestConfig_TableOverrides(t *testing.T) {
	cfg := Config{ScorersTable: "LegacyScorers"}

	overrides := cfg.TableOverrides()
	if got := overrides[model.KindScorer]; got != "LegacyScorers" {
		t.Errorf("Scorer override = %q, want %q", got, "LegacyScorers")
	}
	if _, ok := overrides[model.KindTeamWeekScorer]; ok {
		t.Error("Unset override should be absent from the map")
	}
}
