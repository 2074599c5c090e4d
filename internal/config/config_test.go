package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("got %+v, want defaults", cfg)
	}
}

func TestLoadEmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("got %+v, want defaults", cfg)
	}
}

func TestLoadOverridesFieldsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.toml")
	contents := "assets_root = \"/data/assets\"\nemit_identification_message = false\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AssetsRoot != "/data/assets" {
		t.Fatalf("AssetsRoot = %q", cfg.AssetsRoot)
	}
	if cfg.EmitIdentification {
		t.Fatal("EmitIdentification should have been overridden to false")
	}
	if cfg.ReservedPreludeLen != Default().ReservedPreludeLen {
		t.Fatalf("ReservedPreludeLen = %d, want default %d", cfg.ReservedPreludeLen, Default().ReservedPreludeLen)
	}
}
