package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cpereira/forcedraw/pkg/layout"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "params.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig error: %v", err)
	}
	if cfg != layout.DefaultConfig() {
		t.Errorf("empty path should yield defaults, got %+v", cfg)
	}
}

func TestLoadConfigOverlay(t *testing.T) {
	path := writeTempConfig(t, `
[simulation]
repulsion_scale = 9000.0
seed = 7
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig error: %v", err)
	}

	// Listed keys override, omitted keys keep their defaults.
	if cfg.RepulsionScale != 9000 {
		t.Errorf("RepulsionScale = %v, want 9000", cfg.RepulsionScale)
	}
	if cfg.Seed != 7 {
		t.Errorf("Seed = %v, want 7", cfg.Seed)
	}
	if cfg.SpringForce != layout.DefaultConfig().SpringForce {
		t.Errorf("SpringForce = %v, want default", cfg.SpringForce)
	}
}

func TestLoadConfigValidates(t *testing.T) {
	path := writeTempConfig(t, `
[simulation]
speed = -1.0
`)
	_, err := loadConfig(path)
	if !errors.Is(err, layout.ErrInvalidConfig) {
		t.Errorf("error = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := loadConfig("/does/not/exist.toml"); err == nil {
		t.Error("missing file should error")
	}
}

func TestLoadConfigBadTOML(t *testing.T) {
	path := writeTempConfig(t, `not [valid toml`)
	if _, err := loadConfig(path); err == nil {
		t.Error("malformed TOML should error")
	}
}
