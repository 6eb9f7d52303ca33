//nolint:testpackage // Testing the reflective override helpers requires same package access
package config

import (
	"os"
	"path/filepath"
	"testing"
)

const testYAML = `
service:
  name: sotd-matcher
  port: 9000
  concurrency: 4
database:
  driver: sqlite3
  path: test.db
catalogs:
  dir: testdata/catalogs
logging:
  level: debug
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Helper()

	cfg, err := Load[Config](writeConfig(t, testYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Service.Name != "sotd-matcher" {
		t.Errorf("name = %q", cfg.Service.Name)
	}
	if cfg.Service.Port != 9000 {
		t.Errorf("port = %d", cfg.Service.Port)
	}
	if cfg.Database.Driver != "sqlite3" || cfg.Database.Path != "test.db" {
		t.Errorf("database = %+v", cfg.Database)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q", cfg.Logging.Level)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Helper()

	t.Setenv("MATCHER_PORT", "9999")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("APP_DEBUG", "true")

	cfg, err := Load[Config](writeConfig(t, testYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Service.Port != 9999 {
		t.Errorf("port = %d, want env override 9999", cfg.Service.Port)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("driver = %q, want env override postgres", cfg.Database.Driver)
	}
	if !cfg.Service.Debug {
		t.Error("debug should be true from env")
	}
}

func TestLoadWithDefaults(t *testing.T) {
	t.Helper()

	cfg, err := LoadWithDefaults[Config](writeConfig(t, "service:\n  name: minimal\n"),
		func(c *Config) { c.SetDefaults() })
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Service.Name != "minimal" {
		t.Errorf("explicit value lost: %q", cfg.Service.Name)
	}
	if cfg.Service.Port == 0 {
		t.Error("port default not applied")
	}
	if cfg.Catalogs.Dir == "" {
		t.Error("catalog dir default not applied")
	}
	if cfg.Database.Driver == "" {
		t.Error("database driver default not applied")
	}
}

func TestLoadWithDefaults_EnvBeatsDefaults(t *testing.T) {
	t.Helper()

	t.Setenv("MATCHER_PORT", "7777")

	cfg, err := LoadWithDefaults[Config](writeConfig(t, "service:\n  name: minimal\n"),
		func(c *Config) { c.SetDefaults() })
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Service.Port != 7777 {
		t.Errorf("port = %d, want env value 7777", cfg.Service.Port)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Helper()

	if _, err := Load[Config](filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
