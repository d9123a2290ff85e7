package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quichefs/quiche/test"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiche.yaml")
	data := "server:\n  addr: 127.0.0.1:9000\n  root: /srv/www\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	var cfg Config
	test.NoError(t, Load(path, &cfg))
	test.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	test.Equal(t, "/srv/www", cfg.Server.Root)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	var cfg Config
	test.NoError(t, Load(filepath.Join(t.TempDir(), "missing.yaml"), &cfg))
	test.Equal(t, DefaultAddr, cfg.Server.Addr)
	test.Equal(t, DefaultRoot, cfg.Server.Root)
}

func TestLoadPartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiche.yaml")
	if err := os.WriteFile(path, []byte("server:\n  addr: :8081\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var cfg Config
	test.NoError(t, Load(path, &cfg))
	test.Equal(t, ":8081", cfg.Server.Addr)
	test.Equal(t, DefaultRoot, cfg.Server.Root)
}

func TestLoadMalformedYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiche.yaml")
	if err := os.WriteFile(path, []byte("server: [not a mapping"), 0644); err != nil {
		t.Fatal(err)
	}

	var cfg Config
	if err := Load(path, &cfg); err == nil {
		t.Error("expected an error for malformed yaml")
	}
}
