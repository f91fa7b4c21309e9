package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"exprlex/pkg/lexer"
	"exprlex/pkg/logging"
	"exprlex/pkg/ui/base"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Model is the token explorer: an expression editor with a live highlighted
// preview, and the token table of the last scan.
type Model struct {
	keywords        []string
	caseInsensitive bool
	lexer           *lexer.Lexer
	highlighter     *Highlighter

	editor     textarea.Model
	errorView  viewport.Model
	tokenTable table.Model
	spinner    spinner.Model
	help       help.Model

	width       int
	height      int
	scanning    bool
	showHelp    bool
	tableFocus  bool
	tokens      []lexer.Token
	lastError   error
	scanCount   int
	lastScanDur time.Duration

	keys keyMap
}

func NewModel(keywords []string, caseInsensitive bool) Model {
	ta := textarea.New()
	ta.Placeholder = "Enter an expression, e.g. price >= 10.5m && tag in ['a', 'b']"
	ta.CharLimit = 5000
	ta.ShowLineNumbers = true
	ta.SetHeight(4)
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle().Background(bgLight)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(textMuted)
	ta.FocusedStyle.Text = lipgloss.NewStyle().Foreground(textPrimary)
	ta.FocusedStyle.LineNumber = lipgloss.NewStyle().Foreground(textMuted)

	vp := viewport.New(80, 4)

	t := table.New(
		table.WithColumns(tokenColumns(80)),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(primaryColor).
		BorderBottom(true).
		Bold(true).
		Foreground(primaryColor)
	s.Selected = s.Selected.
		Foreground(bgDark).
		Background(secondaryColor).
		Bold(false)
	t.SetStyles(s)

	sp := spinner.New()
	sp.Spinner = spinner.Points
	sp.Style = lipgloss.NewStyle().Foreground(primaryColor)

	m := Model{
		keywords:        keywords,
		caseInsensitive: caseInsensitive,
		editor:          ta,
		errorView:       vp,
		tokenTable:      t,
		spinner:         sp,
		help:            help.New(),
		keys:            keys,
	}
	m.rebuildLexer()
	return m
}

func (m *Model) rebuildLexer() {
	var opts []lexer.Option
	if len(m.keywords) > 0 {
		opts = append(opts, lexer.WithKeywords(m.caseInsensitive, m.keywords...))
	}
	m.lexer = lexer.New(opts...)
	m.highlighter = NewHighlighter(m.lexer)
}

// tokenColumns sizes the table to width; the last column takes the rest.
func tokenColumns(width int) []table.Column {
	fixed := 5 + 8 + 11 + 26
	return []table.Column{
		{Title: "#", Width: 5},
		{Title: "Pos", Width: 8},
		{Title: "Kind", Width: 11},
		{Title: "Text", Width: 26},
		{Title: "Token", Width: base.Clamp(width-fixed-10, 20, 60)},
	}
}

func tokenRows(tokens []lexer.Token) []table.Row {
	rows := make([]table.Row, len(tokens))
	for i, tok := range tokens {
		rows[i] = table.Row{
			strconv.Itoa(i + 1),
			tok.Pos.String(),
			tok.Kind.String(),
			base.TruncateString(tok.Text, 24),
			base.TruncateString(tok.String(), 60),
		}
	}
	return rows
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		textarea.Blink,
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()

	case tea.KeyMsg:
		if m.scanning {
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Scan):
			src := m.editor.Value()
			if strings.TrimSpace(src) != "" {
				m.scanning = true
				return m, tea.Batch(m.scan(src), m.spinner.Tick)
			}
			return m, nil

		case key.Matches(msg, m.keys.Clear):
			m.editor.SetValue("")
			m.tokens = nil
			m.lastError = nil
			m.tokenTable.SetRows([]table.Row{})
			return m, nil

		case key.Matches(msg, m.keys.ToggleCase):
			m.caseInsensitive = !m.caseInsensitive
			m.rebuildLexer()
			return m, nil

		case key.Matches(msg, m.keys.Focus):
			m.tableFocus = !m.tableFocus
			if m.tableFocus {
				m.editor.Blur()
				m.tokenTable.Focus()
			} else {
				m.tokenTable.Blur()
				cmds = append(cmds, m.editor.Focus())
			}
			return m, tea.Batch(cmds...)

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil
		}

	case scanResultMsg:
		m.scanning = false
		m.scanCount++
		m.tokens = msg.tokens
		m.lastError = msg.err
		m.lastScanDur = msg.duration
		m.tokenTable.SetRows(tokenRows(msg.tokens))
		if msg.err != nil {
			m.errorView.SetContent(FormatError(msg.err, true))
			logging.WithComponent("ui").Debug("scan failed", "error", msg.err)
		}
		return m, nil

	case spinner.TickMsg:
		if m.scanning {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	if m.scanning {
		return m, nil
	}

	var cmd tea.Cmd
	if m.tableFocus {
		m.tokenTable, cmd = m.tokenTable.Update(msg)
	} else {
		m.editor, cmd = m.editor.Update(msg)
	}
	cmds = append(cmds, cmd)

	m.errorView, cmd = m.errorView.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	sections := []string{
		m.renderHeader(),
		m.renderEditor(),
		m.renderPreview(),
	}

	switch {
	case m.scanning:
		sections = append(sections, m.renderScanning())
	case m.lastError != nil:
		sections = append(sections, m.renderError())
	}
	if len(m.tokens) > 0 {
		sections = append(sections, m.tokenTable.View())
	}

	sections = append(sections, m.renderStatusBar())

	if m.showHelp {
		sections = append(sections, m.renderHelp())
	}

	return appStyle.Render(strings.Join(sections, "\n"))
}

func (m Model) renderHelp() string {
	helpText := m.help.FullHelpView([][]key.Binding{m.keys.bindings()})

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(primaryColor).
		Padding(1, 2).
		Background(bgMedium).
		Render(helpText)
}

func (m Model) keywordBadge() string {
	if len(m.keywords) == 0 {
		return "no keywords"
	}
	mode := "case-sensitive"
	if m.caseInsensitive {
		mode = "case-insensitive"
	}
	return fmt.Sprintf("keywords: %s (%s)", strings.Join(m.keywords, ", "), mode)
}

func (m Model) renderHeader() string {
	title := titleStyle.Render("exprlex token explorer")
	badge := badgeStyle.Render(m.keywordBadge())
	stats := lipgloss.NewStyle().
		Foreground(textSecondary).
		Render(fmt.Sprintf("Tokens: %d | Scans: %d", len(m.tokens), m.scanCount))

	header := lipgloss.JoinHorizontal(lipgloss.Left, title, "  ", badge, "  ", stats)

	separator := strings.Repeat("─", base.Clamp(m.width-4, 0, m.width))
	sep := lipgloss.NewStyle().Foreground(bgLight).Render(separator)

	return header + "\n" + sep
}

func (m Model) renderEditor() string {
	label := lipgloss.NewStyle().
		Foreground(primaryColor).
		Bold(true).
		Render("Expression")

	return fmt.Sprintf("%s\n%s", label, editorStyle.Render(m.editor.View()))
}

func (m Model) renderPreview() string {
	src := m.editor.Value()
	if strings.TrimSpace(src) == "" {
		return previewStyle.Render(mutedStyle.Render("(preview)"))
	}
	return previewStyle.Render(m.highlighter.Highlight(src))
}

func (m Model) renderScanning() string {
	content := lipgloss.JoinHorizontal(lipgloss.Left, m.spinner.View(), " Scanning...")

	return lipgloss.NewStyle().
		Foreground(primaryColor).
		Padding(1, 0).
		Render(content)
}

func (m Model) renderError() string {
	icon := errorStyle.Render(" ⚠ LEX ERROR ")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(errorColor).
		Padding(0, 1).
		Render(icon + "\n" + m.errorView.View())
}

func (m Model) renderStatusBar() string {
	status := "● Ready"
	statusColor := accentColor
	if m.lastError != nil {
		status = "● Error"
		statusColor = errorColor
	}

	timer := ""
	if m.lastScanDur > 0 {
		timer = fmt.Sprintf(" | Last scan: %v", m.lastScanDur)
	}

	content := lipgloss.NewStyle().Foreground(statusColor).Render(status) +
		lipgloss.NewStyle().Foreground(textMuted).Render(timer+" | Press Ctrl+H for help")

	return statusBarStyle.
		Width(base.Clamp(m.width-4, 0, m.width)).
		Render(content)
}

// updateLayout adjusts component sizes based on window size
func (m *Model) updateLayout() {
	tableHeight := base.Clamp(m.height-22, 3, m.height)

	m.editor.SetWidth(base.Clamp(m.width-6, 10, m.width))
	m.errorView.Width = base.Clamp(m.width-10, 10, m.width)
	m.tokenTable.SetColumns(tokenColumns(m.width))
	m.tokenTable.SetHeight(tableHeight)
}

type scanResultMsg struct {
	src      string
	tokens   []lexer.Token
	err      error
	duration time.Duration
}

// scan tokenizes src off the update loop.
func (m Model) scan(src string) tea.Cmd {
	lx := m.lexer
	return func() tea.Msg {
		start := time.Now()
		tokens, err := lx.Tokenize(src)
		return scanResultMsg{
			src:      src,
			tokens:   tokens,
			err:      err,
			duration: time.Since(start),
		}
	}
}
