package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded config does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded config differs from Default():\n%+v\n%+v", cfg, Default())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config is invalid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "speed:\n  zombie: 0.5\nworld:\n  zombies: 9\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Speed.Zombie != 0.5 || cfg.World.Zombies != 9 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Speed.Default != 1.0 || cfg.Log.Limit != 5 {
		t.Errorf("missing keys should keep defaults: %+v", cfg)
	}

	rules := cfg.Rules()
	if rules.ZombieSpeed != 0.5 || rules.DefaultSpeed != 1.0 {
		t.Errorf("Rules() = %+v", rules)
	}
	if cfg.Setup().Zombies != 9 {
		t.Errorf("Setup() = %+v", cfg.Setup())
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for a missing custom file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("sim: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("speed:\n  default: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(invalid)
	if err == nil || !strings.Contains(err.Error(), "speed.default") {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Sim.TickRate = 0
	cfg.Log.Limit = -1
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, key := range []string{"sim.tick_rate", "log.limit"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q does not mention %s", err, key)
		}
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := ExpandHome("~/.gravedigger/save")
	if err != nil {
		t.Fatalf("ExpandHome failed: %v", err)
	}
	if got != filepath.Join(home, ".gravedigger/save") {
		t.Errorf("ExpandHome = %q", got)
	}
	if got, _ := ExpandHome("/tmp/x"); got != "/tmp/x" {
		t.Errorf("absolute paths should be kept, got %q", got)
	}
}
