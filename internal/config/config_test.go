package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StorageDriver != StorageMemory {
		t.Fatalf("expected memory storage by default, got %q", cfg.StorageDriver)
	}
	if cfg.DraftNumTeams != 10 || cfg.DraftNumRounds != 16 {
		t.Fatalf("unexpected draft shape: teams=%d rounds=%d", cfg.DraftNumTeams, cfg.DraftNumRounds)
	}
	if !cfg.DraftThirdRoundReversal || !cfg.DraftStrictTurns {
		t.Fatalf("expected third-round reversal and strict turns on by default")
	}
	if cfg.DraftTimerSeconds != 90 {
		t.Fatalf("unexpected timer: %d", cfg.DraftTimerSeconds)
	}
	if cfg.SessionIdleTTL != 6*time.Hour {
		t.Fatalf("unexpected session ttl: %s", cfg.SessionIdleTTL)
	}
	if cfg.NATSEnabled || cfg.WebhookEnabled {
		t.Fatalf("expected event sinks disabled by default")
	}
}

func TestLoad_StorageDriverValidation(t *testing.T) {
	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("STORAGE_DRIVER", "mongo")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for unknown STORAGE_DRIVER")
		}
	})

	t.Run("driver is case insensitive", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("STORAGE_DRIVER", " SQLite ")
		t.Setenv("SQLITE_PATH", "/tmp/drafts.db")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.StorageDriver != StorageSQLite || cfg.SQLitePath != "/tmp/drafts.db" {
			t.Fatalf("unexpected storage config: %q %q", cfg.StorageDriver, cfg.SQLitePath)
		}
	})
}

func TestLoad_WebhookRequiresURLWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("WEBHOOK_ENABLED", "true")
	t.Setenv("WEBHOOK_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when WEBHOOK_ENABLED=true without WEBHOOK_URL")
	}
}

func TestLoad_WebhookCircuitParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("WEBHOOK_ENABLED", "true")
	t.Setenv("WEBHOOK_URL", "https://hooks.example.test/draft")
	t.Setenv("WEBHOOK_TIMEOUT", "2s")
	t.Setenv("WEBHOOK_CIRCUIT_FAILURE_COUNT", "3")
	t.Setenv("WEBHOOK_CIRCUIT_OPEN_TIMEOUT", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.WebhookTimeout != 2*time.Second {
		t.Fatalf("unexpected WebhookTimeout: %s", cfg.WebhookTimeout)
	}
	if cfg.WebhookCircuitFailureCount != 3 || cfg.WebhookCircuitOpenTimeout != 30*time.Second {
		t.Fatalf("unexpected circuit config: %d %s", cfg.WebhookCircuitFailureCount, cfg.WebhookCircuitOpenTimeout)
	}

	t.Setenv("WEBHOOK_CIRCUIT_FAILURE_COUNT", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero failure count")
	}
}

func TestLoad_DraftOverrides(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DRAFT_NUM_TEAMS", "12")
	t.Setenv("DRAFT_NUM_ROUNDS", "15")
	t.Setenv("DRAFT_THIRD_ROUND_REVERSAL", "false")
	t.Setenv("DRAFT_TIMER_SECONDS", "0")
	t.Setenv("DRAFT_TEAM_NAMES", " Alpha, Beta ,,Gamma ")
	t.Setenv("DRAFT_SEED", "42")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DraftNumTeams != 12 || cfg.DraftNumRounds != 15 {
		t.Fatalf("unexpected draft shape: teams=%d rounds=%d", cfg.DraftNumTeams, cfg.DraftNumRounds)
	}
	if cfg.DraftThirdRoundReversal {
		t.Fatalf("expected reversal disabled")
	}
	if cfg.DraftTimerSeconds != 0 {
		t.Fatalf("expected timer disabled, got %d", cfg.DraftTimerSeconds)
	}
	want := []string{"Alpha", "Beta", "Gamma"}
	if len(cfg.DraftTeamNames) != len(want) {
		t.Fatalf("unexpected team names: %v", cfg.DraftTeamNames)
	}
	for i := range want {
		if cfg.DraftTeamNames[i] != want[i] {
			t.Fatalf("unexpected team names: %v", cfg.DraftTeamNames)
		}
	}
	if cfg.DraftSeed != 42 {
		t.Fatalf("unexpected seed: %d", cfg.DraftSeed)
	}
}

func TestLoad_DraftValidation(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "too few teams", key: "DRAFT_NUM_TEAMS", val: "1"},
		{name: "non numeric rounds", key: "DRAFT_NUM_ROUNDS", val: "many"},
		{name: "negative timer", key: "DRAFT_TIMER_SECONDS", val: "-5"},
		{name: "bad bool", key: "DRAFT_STRICT_TURNS", val: "sometimes"},
		{name: "zero workers", key: "SIMULATION_WORKERS", val: "0"},
		{name: "bad ttl", key: "SESSION_IDLE_TTL", val: "soon"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv(tc.key, tc.val)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", tc.key, tc.val)
			}
		})
	}
}

func TestLoad_SwaggerDefaultsByEnv(t *testing.T) {
	t.Run("prod disables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("ADMIN_TOKEN", "secret")
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=false in prod by default")
		}
	})

	t.Run("dev enables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=true in dev by default")
		}
	})
}

func TestLoad_ProdRequiresAdminToken(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("ADMIN_TOKEN", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when ADMIN_TOKEN is missing in prod")
	}

	t.Setenv("ADMIN_TOKEN", "secret")
	if _, err := Load(); err != nil {
		t.Fatalf("load config: %v", err)
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "x-other=1, uptrace-dsn=\"https://token@api.uptrace.dev?grpc=4317\"")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("DRAFT_NUM_TEAMS=8\nAPP_SERVICE_NAME=from-file\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_SERVICE_NAME", "from-env")
	t.Setenv("DRAFT_NUM_TEAMS", "")
	os.Unsetenv("DRAFT_NUM_TEAMS")

	if err := LoadDotEnv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("load dotenv: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DraftNumTeams != 8 {
		t.Fatalf("expected value from env file, got %d", cfg.DraftNumTeams)
	}
	if cfg.ServiceName != "from-env" {
		t.Fatalf("expected process env to win, got %q", cfg.ServiceName)
	}
}
