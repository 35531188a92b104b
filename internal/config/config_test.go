package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Model != "life" {
		t.Errorf("expected model life, got %s", cfg.Model)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		t.Error("grid size should be positive")
	}
	if cfg.Cutoff != 0.5 {
		t.Errorf("expected default cutoff 0.5, got %f", cfg.Cutoff)
	}
	if cfg.FPS <= 0 {
		t.Error("fps should be positive")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	cfg := DefaultConfig()
	cfg.Model = "elementary"
	cfg.Rule = 30
	cfg.Mode = "braille"
	cfg.Cutoff = 0.3

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Model != "elementary" || loaded.Rule != 30 || loaded.Mode != "braille" {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
	if loaded.Cutoff != 0.3 {
		t.Errorf("cutoff = %f, want 0.3", loaded.Cutoff)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("elementary", "rule30")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Rule != 30 {
		t.Errorf("expected rule 30, got %d", cfg.Rule)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("life", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "soup") != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets("life")) == 0 {
		t.Error("expected presets for life")
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent model")
	}
}
