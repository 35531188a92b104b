package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultModel  = "life"
	DefaultWidth  = 128
	DefaultHeight = 96
	DefaultRule   = 110
	DefaultMode   = "block"
	DefaultCutoff = 0.5
	DefaultFPS    = 20
	DefaultTheme  = "retro"
)

type Config struct {
	Model  string  `yaml:"model"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Rule   uint8   `yaml:"rule"`
	Seed   int64   `yaml:"seed"`
	Mode   string  `yaml:"mode"`
	Cutoff float64 `yaml:"cutoff"`
	Theme  string  `yaml:"theme"`
	FPS    int     `yaml:"fps"`
	Steps  int     `yaml:"steps"`
	Retain int     `yaml:"retain"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:  DefaultModel,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Rule:   DefaultRule,
		Mode:   DefaultMode,
		Cutoff: DefaultCutoff,
		Theme:  DefaultTheme,
		FPS:    DefaultFPS,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
