package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/andyrewlee/snapscroll/internal/snap"
)

// DefaultWheelDelta is the scroll magnitude credited per wheel notch.
const DefaultWheelDelta = 25

// KeyMapConfig holds user overrides for keybindings.
type KeyMapConfig struct {
	Bindings map[string][]string `json:"bindings,omitempty"`
}

// BindingFor returns the configured keys for an action, if present.
func (k KeyMapConfig) BindingFor(action string) ([]string, bool) {
	if len(k.Bindings) == 0 {
		return nil, false
	}
	if keys, ok := k.Bindings[action]; ok {
		return keys, true
	}
	if keys, ok := k.Bindings[strings.ToLower(action)]; ok {
		return keys, true
	}
	return nil, false
}

// Config holds the application configuration
type Config struct {
	Paths      *Paths
	Policy     snap.Policy
	WheelDelta float64
	Document   string // optional document path used when none is given on the command line
	KeyMap     KeyMapConfig
	UI         UISettings
}

type policyFile struct {
	Threshold       *float64 `json:"threshold"`
	LockMs          *int     `json:"lock_ms"`
	VisibleFraction *float64 `json:"visible_fraction"`
	ConfirmRelease  *bool    `json:"confirm_release"`
}

type configFile struct {
	Policy     policyFile   `json:"policy"`
	WheelDelta *float64     `json:"wheel_delta"`
	Document   string       `json:"document"`
	KeyMap     KeyMapConfig `json:"keymap,omitempty"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() (*Config, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}
	return defaultConfigAt(paths), nil
}

func defaultConfigAt(paths *Paths) *Config {
	return &Config{
		Paths:      paths,
		Policy:     snap.DefaultPolicy(),
		WheelDelta: DefaultWheelDelta,
		UI:         defaultUISettings(),
	}
}

// Load loads config overrides from ~/.snapscroll/config.json if present.
func Load() (*Config, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}
	return LoadFrom(paths)
}

// LoadFrom loads the config file described by paths over the defaults.
func LoadFrom(paths *Paths) (*Config, error) {
	cfg := defaultConfigAt(paths)

	data, err := os.ReadFile(paths.ConfigPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var user configFile
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", paths.ConfigPath, err)
	}
	user.Policy.apply(&cfg.Policy)
	if user.WheelDelta != nil && *user.WheelDelta > 0 {
		cfg.WheelDelta = *user.WheelDelta
	}
	cfg.Document = user.Document
	if len(user.KeyMap.Bindings) > 0 {
		cfg.KeyMap = user.KeyMap
	}
	cfg.UI = loadUISettings(paths.ConfigPath)
	return cfg, nil
}

func (p policyFile) apply(dst *snap.Policy) {
	if p.Threshold != nil && *p.Threshold > 0 {
		dst.Threshold = *p.Threshold
	}
	if p.LockMs != nil && *p.LockMs > 0 {
		dst.LockDuration = time.Duration(*p.LockMs) * time.Millisecond
	}
	if p.VisibleFraction != nil && *p.VisibleFraction > 0 && *p.VisibleFraction <= 1 {
		dst.VisibleFraction = *p.VisibleFraction
	}
	if p.ConfirmRelease != nil {
		dst.ConfirmRelease = *p.ConfirmRelease
	}
}
