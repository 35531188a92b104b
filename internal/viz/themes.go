package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the TUI.
type Theme struct {
	Name    string
	Grid    lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Warning lipgloss.Color
}

var (
	ThemeRetroGreen = Theme{
		Name:    "retro",
		Grid:    lipgloss.Color("#00ff00"),
		Accent:  lipgloss.Color("#88ff88"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
		Warning: lipgloss.Color("#ffff00"),
	}

	ThemeCyberpunk = Theme{
		Name:    "cyberpunk",
		Grid:    lipgloss.Color("#ff00ff"),
		Accent:  lipgloss.Color("#00ffff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666666"),
		Warning: lipgloss.Color("#ff8800"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Grid:    lipgloss.Color("#ffffff"),
		Accent:  lipgloss.Color("#0088ff"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#888888"),
		Warning: lipgloss.Color("#ffaa00"),
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Grid:    lipgloss.Color("#00a8cc"),
		Accent:  lipgloss.Color("#ffd700"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
		Warning: lipgloss.Color("#ffcc00"),
	}

	Themes = []Theme{ThemeRetroGreen, ThemeCyberpunk, ThemeMinimal, ThemeOcean}
)

// GetTheme returns a theme by name, defaulting to retro.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeRetroGreen
}

// ThemeNames lists the available theme names.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
