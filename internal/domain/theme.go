package domain

// Theme selects the visual style of an invite page.
type Theme string

// Available themes.
const (
	ThemeRomantic Theme = "romantic"
	ThemeFun      Theme = "fun"
	ThemeMinimal  Theme = "minimal"
)

// DefaultTheme is applied when the requested theme is unknown.
const DefaultTheme = ThemeRomantic

// ThemeInfo describes a theme for clients building the creation form.
type ThemeInfo struct {
	Key             Theme  `json:"key"`
	Name            string `json:"name"`
	Emoji           string `json:"emoji"`
	TemplateMessage string `json:"template_message"`
}

var themes = []ThemeInfo{
	{
		Key:             ThemeRomantic,
		Name:            "Romantic",
		Emoji:           "💖",
		TemplateMessage: "Hey {{name}}, I've been meaning to ask… would you like to go on a date with me this Valentine's? 💖",
	},
	{
		Key:             ThemeFun,
		Name:            "Fun",
		Emoji:           "🎉",
		TemplateMessage: "Roses are red, violets are blue, I made this page just to ask you out 👀",
	},
	{
		Key:             ThemeMinimal,
		Name:            "Minimal",
		Emoji:           "✨",
		TemplateMessage: "No pressure, just vibes—want to grab coffee this Valentine's?",
	},
}

// Themes returns every available theme in display order.
func Themes() []ThemeInfo {
	out := make([]ThemeInfo, len(themes))
	copy(out, themes)
	return out
}

// IsValid returns true if t is one of the enumerated themes.
func (t Theme) IsValid() bool {
	for _, info := range themes {
		if info.Key == t {
			return true
		}
	}
	return false
}

// NormalizeTheme returns the theme named by raw, or DefaultTheme if it is unknown.
// Unknown themes are not an error.
func NormalizeTheme(raw string) Theme {
	t := Theme(raw)
	if t.IsValid() {
		return t
	}
	return DefaultTheme
}
