package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	cfg "github.com/toeirei/ssr/internal/config"
)

func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	// Force the user config dir to tmp and keep the cwd free of ssr.yaml.
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	t.Chdir(tmp)
	return tmp
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolate(t)

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.Language != "en" || got.Color != cfg.ColorNever || got.Lock || got.Backup {
		t.Fatalf("unexpected defaults: %+v", got)
	}
	if got.LockTimeout != cfg.DefaultLockTimeout {
		t.Fatalf("unexpected lock timeout default %s", got.LockTimeout)
	}
	if got.Audit.Enabled || got.Audit.Type != "sqlite" {
		t.Fatalf("unexpected audit defaults: %+v", got.Audit)
	}
	if err := got.Validate(); err != nil {
		t.Fatalf("defaults do not validate: %v", err)
	}
}

func TestLoadConfig_ReadsUserConfigDir(t *testing.T) {
	isolate(t)
	userPath, err := cfg.GetConfigPath(false)
	if err != nil {
		t.Fatal(err)
	}
	dir := filepath.Dir(userPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(userPath, []byte("lock: true\naudit:\n  enabled: true\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !got.Lock || !got.Audit.Enabled {
		t.Fatalf("config file not applied: %+v", got)
	}
}

func TestLoadConfig_ReadsExplicitFile(t *testing.T) {
	tmp := isolate(t)
	file := filepath.Join(tmp, "custom.yaml")
	if err := os.WriteFile(file, []byte("language: de\ncolor: never\nbackup: true\n"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if got.Language != "de" || got.Color != cfg.ColorNever || !got.Backup {
		t.Fatalf("explicit file not applied: %+v", got)
	}
}

func TestLoadConfig_EnvAndFlagsOverride(t *testing.T) {
	isolate(t)
	t.Setenv("SSR_LANGUAGE", "de")
	t.Setenv("SSR_AUDIT_TYPE", "postgres")
	t.Setenv("SSR_LOCK_TIMEOUT", "250ms")

	cmd := &cobra.Command{}
	cmd.Flags().Bool("lock", false, "")
	cmd.Flags().String("language", "en", "")
	if err := cmd.Flags().Set("lock", "true"); err != nil {
		t.Fatal(err)
	}

	got, err := cfg.LoadConfig[cfg.Config](cmd, cfg.Defaults(), nil)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !got.Lock {
		t.Fatal("changed flag did not override default")
	}
	if got.Language != "de" {
		t.Fatalf("env did not override unchanged flag default, got %q", got.Language)
	}
	if got.Audit.Type != "postgres" {
		t.Fatalf("nested env key not applied, got %q", got.Audit.Type)
	}
	if got.LockTimeout != 250*time.Millisecond {
		t.Fatalf("lock timeout from env not applied, got %s", got.LockTimeout)
	}
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	tmp := isolate(t)
	file := filepath.Join(tmp, "bad.yaml")
	if err := os.WriteFile(file, []byte("language: [unclosed\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := cfg.LoadConfig[cfg.Config](&cobra.Command{}, cfg.Defaults(), &file); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	valid := func() cfg.Config {
		return cfg.Config{Language: "en", Color: cfg.ColorNever, Audit: cfg.AuditConfig{Type: "sqlite"}}
	}
	tests := []struct {
		name    string
		mutate  func(*cfg.Config)
		wantErr bool
	}{
		{"valid", func(*cfg.Config) {}, false},
		{"german", func(c *cfg.Config) { c.Language = "de" }, false},
		{"unknown language", func(c *cfg.Config) { c.Language = "xx" }, true},
		{"invalid color", func(c *cfg.Config) { c.Color = "sometimes" }, true},
		{"unsupported audit type", func(c *cfg.Config) { c.Audit.Type = "oracle" }, true},
		{"negative lock timeout", func(c *cfg.Config) { c.LockTimeout = -time.Second }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAuditDSN(t *testing.T) {
	isolate(t)
	userPath, err := cfg.GetConfigPath(false)
	if err != nil {
		t.Fatal(err)
	}

	c := cfg.Config{Audit: cfg.AuditConfig{Type: "sqlite"}}
	dsn, err := c.AuditDSN()
	if err != nil {
		t.Fatalf("AuditDSN: %v", err)
	}
	if dsn != filepath.Join(filepath.Dir(userPath), "history.db") {
		t.Fatalf("unexpected default dsn %q", dsn)
	}

	c = cfg.Config{Audit: cfg.AuditConfig{Type: "postgres"}}
	if _, err := c.AuditDSN(); err == nil {
		t.Fatal("expected error for postgres without dsn")
	}
}

func TestEncode(t *testing.T) {
	c := cfg.Config{Language: "en", Color: cfg.ColorNever, Audit: cfg.AuditConfig{Type: "sqlite"}}
	var buf bytes.Buffer
	if err := cfg.Encode(&buf, &c); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"language: en", "color: never", "type: sqlite"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
}
