package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/andyrewlee/snapscroll/internal/snap"
)

func TestDefaultConfig(t *testing.T) {
	cfg, err := DefaultConfig()
	if err != nil {
		t.Fatalf("DefaultConfig() error = %v", err)
	}
	if cfg.Paths == nil {
		t.Fatal("DefaultConfig() returned nil Paths")
	}
	if cfg.Policy != snap.DefaultPolicy() {
		t.Fatalf("unexpected default policy %+v", cfg.Policy)
	}
	if cfg.WheelDelta != DefaultWheelDelta {
		t.Fatalf("unexpected wheel delta %v", cfg.WheelDelta)
	}
}

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(PathsAt(t.TempDir()))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Policy != snap.DefaultPolicy() {
		t.Fatalf("expected default policy, got %+v", cfg.Policy)
	}
}

func TestLoadFromOverrides(t *testing.T) {
	paths := PathsAt(t.TempDir())
	body := `{
  "policy": {"threshold": 80, "lock_ms": 500, "visible_fraction": 0.9, "confirm_release": true},
  "wheel_delta": 40,
  "document": "/tmp/doc.yaml",
  "keymap": {"bindings": {"next": ["n"]}},
  "ui": {"theme": "day-light", "show_keymap_hints": false}
}`
	if err := os.MkdirAll(paths.Home, 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(paths.ConfigPath, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadFrom(paths)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	want := snap.Policy{Threshold: 80, LockDuration: 500 * time.Millisecond, VisibleFraction: 0.9, ConfirmRelease: true}
	if cfg.Policy != want {
		t.Fatalf("policy = %+v, want %+v", cfg.Policy, want)
	}
	if cfg.WheelDelta != 40 || cfg.Document != "/tmp/doc.yaml" {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if keys, ok := cfg.KeyMap.BindingFor("NEXT"); !ok || keys[0] != "n" {
		t.Fatalf("expected keymap override, got %v %v", keys, ok)
	}
	if cfg.UI.Theme != "day-light" || cfg.UI.ShowKeymapHints {
		t.Fatalf("unexpected ui settings %+v", cfg.UI)
	}
}

func TestLoadFromIgnoresInvalidPolicyValues(t *testing.T) {
	paths := PathsAt(t.TempDir())
	body := `{"policy": {"threshold": -1, "lock_ms": 0, "visible_fraction": 3}}`
	_ = os.MkdirAll(paths.Home, 0o755)
	if err := os.WriteFile(paths.ConfigPath, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	cfg, err := LoadFrom(paths)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Policy != snap.DefaultPolicy() {
		t.Fatalf("invalid values should keep defaults, got %+v", cfg.Policy)
	}
}

func TestLoadFromMalformed(t *testing.T) {
	paths := PathsAt(t.TempDir())
	_ = os.MkdirAll(paths.Home, 0o755)
	if err := os.WriteFile(paths.ConfigPath, []byte("{"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := LoadFrom(paths); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestPathsAt(t *testing.T) {
	root := filepath.Join("x", ".snapscroll")
	p := PathsAt(root)
	if p.ConfigPath != filepath.Join(root, "config.json") || p.LogDir != filepath.Join(root, "logs") {
		t.Fatalf("unexpected paths %+v", p)
	}
}
