package base

import "github.com/charmbracelet/lipgloss"

// ColorPalette defines the chrome colors and one color per token class.
type ColorPalette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Error     lipgloss.Color
	Muted     lipgloss.Color

	Keyword    lipgloss.Color
	Identifier lipgloss.Color
	Number     lipgloss.Color
	String     lipgloss.Color
	Literal    lipgloss.Color // true, false, null
	Symbol     lipgloss.Color
}

// DarkPalette is the default dark theme palette
var DarkPalette = ColorPalette{
	Primary:   lipgloss.Color("#7C3AED"), // Purple
	Secondary: lipgloss.Color("#06B6D4"), // Cyan
	Success:   lipgloss.Color("#10B981"), // Emerald
	Error:     lipgloss.Color("#EF4444"), // Red
	Muted:     lipgloss.Color("#94A3B8"), // Slate

	Keyword:    lipgloss.Color("#FF79C6"),
	Identifier: lipgloss.Color("#F8F8F2"),
	Number:     lipgloss.Color("#BD93F9"),
	String:     lipgloss.Color("#F1FA8C"),
	Literal:    lipgloss.Color("#8BE9FD"),
	Symbol:     lipgloss.Color("#FFB86C"),
}

// LightPalette is used when the terminal has a light background.
var LightPalette = ColorPalette{
	Primary:   lipgloss.Color("#5A56E0"),
	Secondary: lipgloss.Color("#EE6FF8"),
	Success:   lipgloss.Color("#02BA84"),
	Error:     lipgloss.Color("#FF5F56"),
	Muted:     lipgloss.Color("#9B9B9B"),

	Keyword:    lipgloss.Color("#D6336C"),
	Identifier: lipgloss.Color("#1F2937"),
	Number:     lipgloss.Color("#6741D9"),
	String:     lipgloss.Color("#A16207"),
	Literal:    lipgloss.Color("#0B7285"),
	Symbol:     lipgloss.Color("#E8590C"),
}

func adaptive(light, dark lipgloss.Color) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: string(light), Dark: string(dark)}
}

// Adaptive colors pick the light or dark variant from the terminal background.
var (
	AdaptivePrimary    = adaptive(LightPalette.Primary, DarkPalette.Primary)
	AdaptiveError      = adaptive(LightPalette.Error, DarkPalette.Error)
	AdaptiveMuted      = adaptive(LightPalette.Muted, DarkPalette.Muted)
	AdaptiveKeyword    = adaptive(LightPalette.Keyword, DarkPalette.Keyword)
	AdaptiveIdentifier = adaptive(LightPalette.Identifier, DarkPalette.Identifier)
	AdaptiveNumber     = adaptive(LightPalette.Number, DarkPalette.Number)
	AdaptiveString     = adaptive(LightPalette.String, DarkPalette.String)
	AdaptiveLiteral    = adaptive(LightPalette.Literal, DarkPalette.Literal)
	AdaptiveSymbol     = adaptive(LightPalette.Symbol, DarkPalette.Symbol)
)
