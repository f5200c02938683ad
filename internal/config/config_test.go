package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

// isolate points HOME and the working directory at empty temp dirs so
// the search order only finds the embedded defaults.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	isolate(t)

	iso, err := LoadIsoCoins("")
	if err != nil {
		t.Fatalf("LoadIsoCoins() error = %v", err)
	}
	if !reflect.DeepEqual(iso, DefaultIsoCoinsConfig()) {
		t.Errorf("embedded isocoins.yaml differs from DefaultIsoCoinsConfig():\n got %+v\nwant %+v", iso, DefaultIsoCoinsConfig())
	}

	cw, err := LoadColorWipe("")
	if err != nil {
		t.Fatalf("LoadColorWipe() error = %v", err)
	}
	if !reflect.DeepEqual(cw, DefaultColorWipeConfig()) {
		t.Errorf("embedded colorwipe.yaml differs from DefaultColorWipeConfig():\n got %+v\nwant %+v", cw, DefaultColorWipeConfig())
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "iso.yaml")
	data := "rules:\n  move_cooldown: 350ms\nmaps:\n  default: maze\n  lenient: true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadIsoCoins(path)
	if err != nil {
		t.Fatalf("LoadIsoCoins(%q) error = %v", path, err)
	}
	if cfg.Rules.MoveCooldown != 350*time.Millisecond {
		t.Errorf("MoveCooldown = %v, expected 350ms", cfg.Rules.MoveCooldown)
	}
	if cfg.Maps.Default != "maze" || !cfg.Maps.Lenient {
		t.Errorf("Maps = %+v, expected maze/lenient", cfg.Maps)
	}
	// Untouched keys keep their defaults.
	if cfg.Rules.HazardTile != 3 || cfg.Animations.Coin.Frames != 10 {
		t.Errorf("defaults lost: hazard=%d coin frames=%d", cfg.Rules.HazardTile, cfg.Animations.Coin.Frames)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, err := LoadIsoCoins(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("grid: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadColorWipe(bad); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("expected parse error, got %v", err)
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("grid:\n  rows: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadColorWipe(invalid); err == nil || !strings.Contains(err.Error(), "invalid colorwipe config") {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := isolate(t)

	// Local ./configs is used when the user dir has nothing.
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "colorwipe.yaml"), []byte("grid:\n  rows: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadColorWipe("")
	if err != nil {
		t.Fatalf("LoadColorWipe() error = %v", err)
	}
	if cfg.Grid.Rows != 3 {
		t.Errorf("Rows = %d, expected 3 from ./configs", cfg.Grid.Rows)
	}

	// The user dir wins over ./configs.
	userDir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "colorwipe.yaml"), []byte("grid:\n  rows: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadColorWipe("")
	if err != nil {
		t.Fatalf("LoadColorWipe() error = %v", err)
	}
	if cfg.Grid.Rows != 4 {
		t.Errorf("Rows = %d, expected 4 from the user dir", cfg.Grid.Rows)
	}
}

func TestValidate(t *testing.T) {
	iso := DefaultIsoCoinsConfig()
	if err := iso.Validate(); err != nil {
		t.Errorf("default isocoins config invalid: %v", err)
	}
	iso.Rules.MoveCooldown = -time.Second
	iso.Terminal.TileWidth = 1
	err := iso.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "move_cooldown") || !strings.Contains(err.Error(), "terminal tile") {
		t.Errorf("error should list every problem, got %v", err)
	}

	cw := DefaultColorWipeConfig()
	if err := cw.Validate(); err != nil {
		t.Errorf("default colorwipe config invalid: %v", err)
	}
	cw.Grid.Threshold = -1
	if err := cw.Validate(); err == nil {
		t.Error("expected error for negative threshold")
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"normal", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"nightmare", "", true},
	}
	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDifficulty(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestPresets(t *testing.T) {
	iso := DefaultIsoCoinsConfig()
	ApplyIsoCoinsPreset(&iso, DifficultyNormal)
	if iso.Rules.MoveCooldown != 200*time.Millisecond {
		t.Errorf("normal preset changed cooldown to %v", iso.Rules.MoveCooldown)
	}
	ApplyIsoCoinsPreset(&iso, DifficultyHard)
	if iso.Rules.MoveCooldown <= 200*time.Millisecond {
		t.Errorf("hard preset cooldown = %v, expected longer than default", iso.Rules.MoveCooldown)
	}

	cw := DefaultColorWipeConfig()
	ApplyColorWipePreset(&cw, DifficultyHard)
	if cw.Grid.Threshold >= 0.5 || cw.Grid.Rows != 8 || cw.Grid.Cols != 10 {
		t.Errorf("hard preset = %+v", cw.Grid)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in, want string
	}{
		{"~", home},
		{"~/maps", filepath.Join(home, "maps")},
		{"/abs/maps", "/abs/maps"},
		{"rel/~maps", "rel/~maps"},
		{"~other/maps", "~other/maps"},
	}
	for _, tc := range tests {
		if got := ExpandHome(tc.in); got != tc.want {
			t.Errorf("ExpandHome(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}
