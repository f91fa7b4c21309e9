package ui

import (
	"exprlex/pkg/ui/base"

	"github.com/charmbracelet/lipgloss"
)

var (
	palette = base.DarkPalette

	primaryColor   = palette.Primary
	secondaryColor = palette.Secondary
	accentColor    = palette.Success
	errorColor     = palette.Error

	bgDark   = lipgloss.Color("#0F172A")
	bgMedium = lipgloss.Color("#1E293B")
	bgLight  = lipgloss.Color("#334155")

	textPrimary   = lipgloss.Color("#F8FAFC")
	textSecondary = lipgloss.Color("#CBD5E1")
	textMuted     = palette.Muted
)

// Styles for the explorer chrome
var (
	appStyle = lipgloss.NewStyle().
			Background(bgDark).
			Foreground(textPrimary).
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#8B5CF6")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 2).
			MarginBottom(1)

	badgeStyle = lipgloss.NewStyle().
			Background(secondaryColor).
			Foreground(bgDark).
			Bold(true).
			Padding(0, 1).
			MarginRight(2)

	statusBarStyle = lipgloss.NewStyle().
			Background(bgMedium).
			Foreground(textSecondary).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Background(errorColor).
			Foreground(textPrimary).
			Bold(true).
			Padding(0, 1)

	editorStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)

	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(bgLight).
			Padding(0, 1)
)

// classStyles colors source text by token class. They use adaptive colors
// because they are also printed outside the explorer, and keep tabs as is.
var classStyles = map[Class]lipgloss.Style{
	PlainClass:      sourceStyle(),
	KeywordClass:    sourceStyle().Foreground(base.AdaptiveKeyword).Bold(true),
	IdentifierClass: sourceStyle().Foreground(base.AdaptiveIdentifier),
	NumberClass:     sourceStyle().Foreground(base.AdaptiveNumber),
	StringClass:     sourceStyle().Foreground(base.AdaptiveString),
	LiteralClass:    sourceStyle().Foreground(base.AdaptiveLiteral).Italic(true),
	SymbolClass:     sourceStyle().Foreground(base.AdaptiveSymbol),
	ErrorClass:      sourceStyle().Foreground(base.AdaptiveError).Underline(true),
}

func sourceStyle() lipgloss.Style {
	return lipgloss.NewStyle().TabWidth(lipgloss.NoTabConversion)
}

var (
	mutedStyle     = lipgloss.NewStyle().Foreground(base.AdaptiveMuted)
	errorTextStyle = lipgloss.NewStyle().Foreground(base.AdaptiveError).Bold(true)
)
