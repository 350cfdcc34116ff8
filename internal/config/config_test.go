package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	t.Setenv("APP_PORT", "8080")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("MONGO_DB", "skeleton")
}

func TestLoadRequiredValues(t *testing.T) {
	setRequired(t)

	cfg := Load()

	if cfg.Env != "test" {
		t.Errorf("Env = %q, want %q", cfg.Env, "test")
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want %q", cfg.Port, "8080")
	}
	if cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("MongoURI = %q", cfg.MongoURI)
	}
	if cfg.MongoDB != "skeleton" {
		t.Errorf("MongoDB = %q, want %q", cfg.MongoDB, "skeleton")
	}
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg := Load()

	if cfg.ServiceName != "go-api-skeleton" {
		t.Errorf("ServiceName = %q", cfg.ServiceName)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.MongoTimeout != 10*time.Second {
		t.Errorf("MongoTimeout = %v, want 10s", cfg.MongoTimeout)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v, want [*]", cfg.CORSOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("SERVICE_NAME", "billing")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MONGO_TIMEOUT", "3s")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg := Load()

	if cfg.ServiceName != "billing" {
		t.Errorf("ServiceName = %q, want billing", cfg.ServiceName)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.MongoTimeout != 3*time.Second {
		t.Errorf("MongoTimeout = %v, want 3s", cfg.MongoTimeout)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[0] != want[0] || cfg.CORSOrigins[1] != want[1] {
		t.Errorf("CORSOrigins = %v, want %v", cfg.CORSOrigins, want)
	}
}

func TestEnvBool(t *testing.T) {
	tests := []struct {
		name  string
		value string
		def   bool
		want  bool
	}{
		{name: "unset uses default", value: "", def: true, want: true},
		{name: "true", value: "true", def: false, want: true},
		{name: "numeric one", value: "1", def: false, want: true},
		{name: "on", value: "on", def: false, want: true},
		{name: "false", value: "false", def: true, want: false},
		{name: "off", value: "OFF", def: true, want: false},
		{name: "garbage uses default", value: "maybe", def: true, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv("TEST_BOOL", tt.value)
			}
			if got := envBool("TEST_BOOL", tt.def); got != tt.want {
				t.Errorf("envBool(%q, %v) = %v, want %v", tt.value, tt.def, got, tt.want)
			}
		})
	}
}

func TestEnvIntAndDur(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	if got := envInt("TEST_INT", 7); got != 42 {
		t.Errorf("envInt = %d, want 42", got)
	}
	t.Setenv("TEST_INT", "nope")
	if got := envInt("TEST_INT", 7); got != 7 {
		t.Errorf("envInt with garbage = %d, want default 7", got)
	}

	t.Setenv("TEST_DUR", "90s")
	if got := envDur("TEST_DUR", time.Second); got != 90*time.Second {
		t.Errorf("envDur = %v, want 90s", got)
	}
	t.Setenv("TEST_DUR", "soon")
	if got := envDur("TEST_DUR", time.Second); got != time.Second {
		t.Errorf("envDur with garbage = %v, want default 1s", got)
	}
}

func TestEnvList(t *testing.T) {
	t.Setenv("TEST_LIST", "a, b ,,c")
	got := envList("TEST_LIST", []string{"x"})
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("envList = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("envList[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
