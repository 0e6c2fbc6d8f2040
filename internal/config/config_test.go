package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/maiitrapatel-code/Task-Management-System/internal/config"
)

func TestNew_DefaultsWithoutFile(t *testing.T) {
	cfg, err := config.New(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != config.DefaultBaseURL {
		t.Errorf("expected default base url, got %q", cfg.BaseURL)
	}
	if cfg.Timeout != config.DefaultTimeoutSeconds*time.Second {
		t.Errorf("expected default timeout, got %v", cfg.Timeout)
	}
}

func TestNew_ReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "base_url: https://tasks.example.com\ntimeout_seconds: 10\n"
	if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseURL != "https://tasks.example.com" {
		t.Errorf("expected configured base url, got %q", cfg.BaseURL)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %v", cfg.Timeout)
	}
}

func TestNew_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte("base_url: https://tasks.example.com\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Timeout != config.DefaultTimeoutSeconds*time.Second {
		t.Errorf("expected default timeout, got %v", cfg.Timeout)
	}
}

func TestNew_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte(":\tnot yaml"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := config.New(dir); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestWriteDefault_Roundtrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	cfg := &config.Config{Dir: dir}
	if err := cfg.WriteDefault(); err != nil {
		t.Fatalf("write default failed: %v", err)
	}

	loaded, err := config.New(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.BaseURL != config.DefaultBaseURL {
		t.Errorf("expected default base url, got %q", loaded.BaseURL)
	}
}

func TestSessionPath(t *testing.T) {
	cfg := &config.Config{Dir: "/tmp/taskman-test"}
	want := filepath.Join("/tmp/taskman-test", config.SessionFile)
	if got := cfg.SessionPath(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
