package config

var Presets = map[string]map[string]*Config{
	"life": {
		"soup": {
			Model: "life", Width: 160, Height: 120, Mode: "braille", FPS: 30, Cutoff: 0.5, Theme: "retro",
		},
		"coarse": {
			Model: "life", Width: 80, Height: 48, Mode: "block", FPS: 15, Cutoff: 0.5, Theme: "minimal",
		},
	},
	"brain": {
		"storm": {
			Model: "brain", Width: 160, Height: 120, Mode: "braille", FPS: 30, Cutoff: 0.5, Theme: "cyberpunk",
		},
		"halo": {
			Model: "brain", Width: 120, Height: 80, Mode: "braille", FPS: 20, Cutoff: 0.3, Theme: "cyberpunk",
		},
	},
	"elementary": {
		"rule110": {
			Model: "elementary", Width: 160, Rule: 110, Mode: "braille", FPS: 40, Cutoff: 0.5, Theme: "minimal",
		},
		"rule30": {
			Model: "elementary", Width: 160, Rule: 30, Mode: "block", FPS: 40, Cutoff: 0.5, Theme: "minimal",
		},
	},
}

// GetPreset returns a named preset or nil when unknown.
func GetPreset(model, name string) *Config {
	presets, ok := Presets[model]
	if !ok {
		return nil
	}
	return presets[name]
}

// ListPresets returns preset names for a model, or nil when unknown.
func ListPresets(model string) []string {
	presets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}
