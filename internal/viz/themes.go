package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the viewer chrome and snapshot background.
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
}

// Available themes
var (
	ThemeCyberpunk = Theme{
		Name:       "cyberpunk",
		Primary:    lipgloss.Color("#e040c8"),
		Secondary:  lipgloss.Color("#36d6e7"),
		Accent:     lipgloss.Color("#f4e04d"),
		Background: lipgloss.Color("#0c0c12"),
		Text:       lipgloss.Color("#f2f2f7"),
		Muted:      lipgloss.Color("#5f5f73"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Primary:    lipgloss.Color("#33ff66"), // phosphor
		Secondary:  lipgloss.Color("#22bb4a"),
		Accent:     lipgloss.Color("#b8ffa0"),
		Background: lipgloss.Color("#031005"),
		Text:       lipgloss.Color("#7dff9a"),
		Muted:      lipgloss.Color("#1f5a2c"),
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Primary:    lipgloss.Color("#eeeeee"),
		Secondary:  lipgloss.Color("#bdbdbd"),
		Accent:     lipgloss.Color("#ff7f0e"), // matplotlib orange
		Background: lipgloss.Color("#101010"),
		Text:       lipgloss.Color("#e6e6e6"),
		Muted:      lipgloss.Color("#7a7a7a"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Primary:    lipgloss.Color("#1f77b4"), // matplotlib blue
		Secondary:  lipgloss.Color("#4fb3d9"),
		Accent:     lipgloss.Color("#ffcf40"),
		Background: lipgloss.Color("#06182b"),
		Text:       lipgloss.Color("#d8ecfa"),
		Muted:      lipgloss.Color("#3f7396"),
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Primary:    lipgloss.Color("#f2705e"),
		Secondary:  lipgloss.Color("#f7b955"),
		Accent:     lipgloss.Color("#e88fd8"),
		Background: lipgloss.Color("#24141f"),
		Text:       lipgloss.Color("#fbeee9"),
		Muted:      lipgloss.Color("#80606f"),
	}

	// All available themes
	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to cyberpunk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
