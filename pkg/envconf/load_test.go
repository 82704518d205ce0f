package envconf

import (
	"errors"
	"log/slog"
	"testing"
	"time"
)

type nested struct {
	DSN string `env:"TEST_DSN"`
}

type testConfig struct {
	Port     uint16        `env:"TEST_PORT" envDefault:"8080"`
	Level    slog.Level    `env:"TEST_LOG_LEVEL" envDefault:"INFO"`
	Timeout  time.Duration `env:"TEST_TIMEOUT" envDefault:"10s"`
	Debug    bool          `env:"TEST_DEBUG" envDefault:"false"`
	Nested   nested
	internal string //nolint:unused
}

func TestLoadDefaultsAndOverrides(t *testing.T) {
	t.Setenv("TEST_DSN", "postgres://localhost/db")
	t.Setenv("TEST_PORT", "9090")

	cfg := new(testConfig)

	err := Load(cfg)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != 9090 {
		t.Fatalf("env should win over default: got %d", cfg.Port)
	}
	if cfg.Level != slog.LevelInfo {
		t.Fatalf("level default: got %v", cfg.Level)
	}
	if cfg.Timeout != 10*time.Second {
		t.Fatalf("duration default: got %v", cfg.Timeout)
	}
	if cfg.Nested.DSN != "postgres://localhost/db" {
		t.Fatalf("nested field: got %q", cfg.Nested.DSN)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	// TEST_DSN has no default and is deliberately unset.
	cfg := new(testConfig)

	err := Load(cfg)
	if !errors.Is(err, ErrMissingRequired) {
		t.Fatalf("want ErrMissingRequired, got %v", err)
	}
}

func TestLoadRejectsNonStruct(t *testing.T) {
	t.Parallel()

	err := Load(nil)
	if err == nil {
		t.Fatal("nil destination must be rejected")
	}

	var s string
	err = Load(&s)
	if err == nil {
		t.Fatal("non-struct destination must be rejected")
	}
}
