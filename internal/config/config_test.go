package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoadDefaultsForDevProfile(t *testing.T) {
	lookup := mapLookup(map[string]string{})
	cfg, err := Load("tablewisectl", lookup)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Profile != ProfileDev {
		t.Fatalf("Profile = %q, want %q", cfg.Profile, ProfileDev)
	}
	if cfg.Service.Name != "tablewisectl" {
		t.Fatalf("Service.Name = %q", cfg.Service.Name)
	}
	if cfg.Engine.URL != "sqlite:///tablewise.db" {
		t.Fatalf("Engine.URL = %q", cfg.Engine.URL)
	}
	if cfg.Engine.ConnMaxLifetime != time.Hour {
		t.Fatalf("Engine.ConnMaxLifetime = %s", cfg.Engine.ConnMaxLifetime)
	}
	if cfg.Engine.PingTimeout != 5*time.Second {
		t.Fatalf("Engine.PingTimeout = %s", cfg.Engine.PingTimeout)
	}
	if cfg.Observability.LogLevel != slog.LevelDebug {
		t.Fatalf("LogLevel = %v", cfg.Observability.LogLevel)
	}
	if cfg.Archive.Endpoint != "localhost:9000" {
		t.Fatalf("Archive.Endpoint = %q", cfg.Archive.Endpoint)
	}
	if !cfg.Archive.AutoCreateBucket {
		t.Fatal("Archive.AutoCreateBucket should default to true in dev")
	}
}

func TestLoadProdProfileDefaults(t *testing.T) {
	lookup := mapLookup(map[string]string{"TABLEWISE_PROFILE": "prod"})
	cfg, err := Load("tablewisectl", lookup)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Profile != ProfileProd {
		t.Fatalf("Profile = %q, want %q", cfg.Profile, ProfileProd)
	}
	if cfg.Observability.LogLevel != slog.LevelInfo {
		t.Fatalf("LogLevel = %v", cfg.Observability.LogLevel)
	}
	if !cfg.Archive.UseSSL {
		t.Fatal("Archive.UseSSL should default to true in prod")
	}
	if cfg.Archive.AutoCreateBucket {
		t.Fatal("Archive.AutoCreateBucket should default to false in prod")
	}
}

func TestLoadTestProfileDefaults(t *testing.T) {
	lookup := mapLookup(map[string]string{"TABLEWISE_PROFILE": "test"})
	cfg, err := Load("tablewisectl", lookup)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Engine.URL != "sqlite://" {
		t.Fatalf("Engine.URL = %q, want in-memory", cfg.Engine.URL)
	}
	if cfg.Observability.LogLevel != slog.LevelWarn {
		t.Fatalf("LogLevel = %v", cfg.Observability.LogLevel)
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	lookup := mapLookup(map[string]string{
		"TABLEWISE_PROFILE":                    "test",
		"TABLEWISE_SERVICE_NAME":               "tablewise-custom",
		"TABLEWISE_URL":                        "postgres://app@db.internal:5432/orders",
		"TABLEWISE_CONN_MAX_LIFETIME":          "45m",
		"TABLEWISE_PING_TIMEOUT":               "2s",
		"TABLEWISE_OP_TIMEOUT":                 "90s",
		"TABLEWISE_ARCHIVE_ENDPOINT":           "s3.example.com",
		"TABLEWISE_ARCHIVE_REGION":             "us-west-2",
		"TABLEWISE_ARCHIVE_BUCKET":             "tablewise-prod",
		"TABLEWISE_ARCHIVE_ACCESS_KEY":         "abc",
		"TABLEWISE_ARCHIVE_SECRET_KEY":         "def",
		"TABLEWISE_ARCHIVE_USE_SSL":            "true",
		"TABLEWISE_ARCHIVE_PREFIX":             "tenant-root",
		"TABLEWISE_ARCHIVE_AUTO_CREATE_BUCKET": "false",
		"TABLEWISE_LOG_JSON":                   "false",
		"TABLEWISE_LOG_LEVEL":                  "error",
	})
	cfg, err := Load("tablewisectl", lookup)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Service.Name != "tablewise-custom" {
		t.Fatalf("Service.Name = %q", cfg.Service.Name)
	}
	if cfg.Engine.URL != "postgres://app@db.internal:5432/orders" {
		t.Fatalf("Engine.URL = %q", cfg.Engine.URL)
	}
	if cfg.Engine.ConnMaxLifetime != 45*time.Minute {
		t.Fatalf("Engine.ConnMaxLifetime = %s", cfg.Engine.ConnMaxLifetime)
	}
	if cfg.Engine.PingTimeout != 2*time.Second {
		t.Fatalf("Engine.PingTimeout = %s", cfg.Engine.PingTimeout)
	}
	if cfg.Engine.OpTimeout != 90*time.Second {
		t.Fatalf("Engine.OpTimeout = %s", cfg.Engine.OpTimeout)
	}
	if cfg.Archive.Endpoint != "s3.example.com" {
		t.Fatalf("Archive.Endpoint = %q", cfg.Archive.Endpoint)
	}
	if cfg.Archive.Region != "us-west-2" {
		t.Fatalf("Archive.Region = %q", cfg.Archive.Region)
	}
	if cfg.Archive.Bucket != "tablewise-prod" {
		t.Fatalf("Archive.Bucket = %q", cfg.Archive.Bucket)
	}
	if !cfg.Archive.UseSSL {
		t.Fatal("Archive.UseSSL = false, want true")
	}
	if cfg.Archive.Prefix != "tenant-root" {
		t.Fatalf("Archive.Prefix = %q", cfg.Archive.Prefix)
	}
	if cfg.Archive.AutoCreateBucket {
		t.Fatal("Archive.AutoCreateBucket = true, want false")
	}
	if cfg.Observability.LogJSON {
		t.Fatal("Observability.LogJSON = true, want false")
	}
	if cfg.Observability.LogLevel != slog.LevelError {
		t.Fatalf("LogLevel = %v", cfg.Observability.LogLevel)
	}
}

func TestLoadErrorsOnInvalidValues(t *testing.T) {
	tests := []map[string]string{
		{"TABLEWISE_PROFILE": "oops"},
		{"TABLEWISE_CONN_MAX_LIFETIME": "NaN"},
		{"TABLEWISE_PING_TIMEOUT": "soon"},
		{"TABLEWISE_ARCHIVE_USE_SSL": "not-bool"},
		{"TABLEWISE_LOG_LEVEL": "verbose"},
		{"TABLEWISE_URL": "   "},
	}
	for _, env := range tests {
		_, err := Load("tablewisectl", mapLookup(env))
		if err == nil {
			t.Fatalf("Load() expected error for env %#v", env)
		}
	}
}

func mapLookup(values map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	}
}
