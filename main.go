package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"exprlex/pkg/batch"
	"exprlex/pkg/lexer"
	"exprlex/pkg/logging"
	"exprlex/pkg/repl"
	"exprlex/pkg/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type Configuration struct {
	Mode            string
	Keywords        []string
	CaseInsensitive bool
	Format          string
	Workers         int
	Expr            string
	Files           []string

	LogLevel  string
	LogFile   string
	LogFormat string
}

func main() {
	config, err := parseArguments(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := initLogging(config); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.Close()
	logging.Debug("starting", "mode", config.Mode, "keywords", len(config.Keywords), "files", len(config.Files))

	switch config.Mode {
	case "tokens":
		err = runTokens(config, os.Stdout)
	case "repl":
		err = repl.NewSession(repl.Config{
			Keywords:        config.Keywords,
			CaseInsensitive: config.CaseInsensitive,
			Styled:          true,
		}, os.Stdout).Run()
	case "tui":
		err = startInteractiveMode(config)
	}

	if err != nil {
		logging.Error("run failed", "mode", config.Mode, "error", err)
		fmt.Fprintln(os.Stderr, ui.FormatError(err, true))
		logging.Close()
		os.Exit(1)
	}
}

// parseArguments processes command-line flags
func parseArguments(args []string) (Configuration, error) {
	var (
		config   Configuration
		keywords string
	)

	fs := flag.NewFlagSet("exprlex", flag.ContinueOnError)
	fs.StringVar(&config.Mode, "mode", "tokens", "Run mode: tokens, repl or tui")
	fs.StringVar(&keywords, "keywords", "", "Comma-separated reserved words, e.g. in,between")
	fs.BoolVar(&config.CaseInsensitive, "ci", false, "Match keywords case-insensitively")
	fs.StringVar(&config.Format, "format", "text", "Token output format: text or json")
	fs.IntVar(&config.Workers, "workers", 4, "Files lexed concurrently (0 for no limit)")
	fs.StringVar(&config.Expr, "expr", "", "Expression to lex instead of files")
	fs.StringVar(&config.LogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	fs.StringVar(&config.LogFile, "log-file", "", "Log file path (default stderr)")
	fs.StringVar(&config.LogFormat, "log-format", "text", "Log format: text or json")

	if err := fs.Parse(args); err != nil {
		return config, err
	}
	config.Files = fs.Args()

	for _, w := range strings.Split(keywords, ",") {
		if w = strings.TrimSpace(w); w != "" {
			config.Keywords = append(config.Keywords, w)
		}
	}

	switch config.Mode {
	case "tokens", "repl", "tui":
	default:
		return config, fmt.Errorf("unknown mode %q", config.Mode)
	}
	switch config.Format {
	case "text", "json":
	default:
		return config, fmt.Errorf("unknown format %q", config.Format)
	}
	if config.Workers < 0 {
		return config, fmt.Errorf("workers must not be negative, got %d", config.Workers)
	}
	return config, nil
}

func initLogging(config Configuration) error {
	level, err := logging.ParseLevel(config.LogLevel)
	if err != nil {
		return err
	}
	return logging.Init(logging.Config{
		Level:      level,
		OutputPath: config.LogFile,
		Format:     config.LogFormat,
	})
}

func buildLexer(config Configuration) *lexer.Lexer {
	var opts []lexer.Option
	if len(config.Keywords) > 0 {
		opts = append(opts, lexer.WithKeywords(config.CaseInsensitive, config.Keywords...))
	}
	return lexer.New(opts...)
}

func inputs(config Configuration) []batch.Input {
	if config.Expr != "" {
		return []batch.Input{batch.StringInput("expr", config.Expr)}
	}
	if len(config.Files) == 0 {
		return []batch.Input{stdinInput()}
	}

	ins := make([]batch.Input, 0, len(config.Files))
	for _, f := range config.Files {
		if f == "-" {
			ins = append(ins, stdinInput())
			continue
		}
		ins = append(ins, batch.FileInput(f))
	}
	return ins
}

func stdinInput() batch.Input {
	return batch.Input{
		Name: "stdin",
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(os.Stdin), nil
		},
	}
}

// runTokens lexes every input and prints the tokens.
func runTokens(config Configuration, out io.Writer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ins := inputs(config)
	results, err := batch.Run(ctx, buildLexer(config), ins, config.Workers)
	if err != nil {
		return err
	}

	if config.Format == "json" {
		return writeJSON(out, results)
	}

	header := lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	for _, r := range results {
		if len(results) > 1 {
			fmt.Fprintln(out, header.Render("== "+r.Name))
		}
		if err := ui.WriteTokens(out, r.Tokens, true); err != nil {
			return err
		}
	}
	return nil
}

type jsonResult struct {
	Input  string        `json:"input"`
	Tokens []lexer.Token `json:"tokens"`
}

func writeJSON(out io.Writer, results []batch.Result) error {
	enc := json.NewEncoder(out)
	for _, r := range results {
		tokens := r.Tokens
		if tokens == nil {
			tokens = []lexer.Token{}
		}
		if err := enc.Encode(jsonResult{Input: r.Name, Tokens: tokens}); err != nil {
			return err
		}
	}
	return nil
}

func showSplashScreen() {
	splash := `
╔══════════════════════════════════════╗
║   exprlex · expression token lab     ║
╚══════════════════════════════════════╝`

	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7C3AED")).
		Bold(true)

	fmt.Println(style.Render(splash))
}

// startInteractiveMode launches the Bubble Tea UI
func startInteractiveMode(config Configuration) error {
	showSplashScreen()

	p := tea.NewProgram(
		ui.NewModel(config.Keywords, config.CaseInsensitive),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
