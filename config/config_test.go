package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{"TIMEZONE", "WEEKDAY_LOCALE", "LOG_LEVEL", "LOG_FORMAT", "SERVER_ADDR"} {
		// viper ignores empty variables
		t.Setenv("SESSIONLIST_"+key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Timezone != "UTC" {
		t.Errorf("expected timezone UTC, got %q", cfg.Timezone)
	}
	if cfg.WeekdayLocale != "en" {
		t.Errorf("expected locale en, got %q", cfg.WeekdayLocale)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("expected addr :8080, got %q", cfg.Server.Addr)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("unexpected log defaults: %+v", cfg.Log)
	}
	if cfg.Telemetry.Enabled {
		t.Error("expected telemetry disabled by default")
	}
}

func TestLoad_FileEnvAndFlags(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "timezone: Europe/Madrid\nweekday_locale: es\nlog:\n  level: debug\nserver:\n  addr: \":9000\"\n"
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	t.Setenv("SESSIONLIST_LOG_LEVEL", "warn")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("addr", "", "")
	if err := flags.Parse([]string{"--addr", ":7000"}); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}

	cfg, err := Load(path, flags)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Timezone != "Europe/Madrid" {
		t.Errorf("expected timezone from file, got %q", cfg.Timezone)
	}
	if cfg.WeekdayLocale != "es" {
		t.Errorf("expected locale from file, got %q", cfg.WeekdayLocale)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("expected env to override file, got %q", cfg.Log.Level)
	}
	if cfg.Server.Addr != ":7000" {
		t.Errorf("expected flag to override file, got %q", cfg.Server.Addr)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)

	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestLoad_InvalidTimezone(t *testing.T) {
	isolate(t)
	t.Setenv("SESSIONLIST_TIMEZONE", "Mars/Olympus")

	if _, err := Load("", nil); err == nil {
		t.Error("expected error for invalid timezone")
	}
}

func TestLoad_InvalidLocale(t *testing.T) {
	isolate(t)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("locale", "", "")
	if err := flags.Parse([]string{"--locale", "fr"}); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}

	if _, err := Load("", flags); err == nil {
		t.Error("expected error for unsupported weekday locale")
	}
}

func TestLocation_EmptyIsUTC(t *testing.T) {
	t.Parallel()

	loc, err := (&Config{}).Location()
	if err != nil {
		t.Fatalf("Location failed: %v", err)
	}
	if loc != time.UTC {
		t.Errorf("expected UTC, got %v", loc)
	}
}
