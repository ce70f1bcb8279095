package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/crosscheck"
	"github.com/fwojciec/crosscheck/fs"
	"github.com/fwojciec/crosscheck/gemini"
	"github.com/fwojciec/crosscheck/goquery"
	"github.com/fwojciec/crosscheck/htmltomarkdown"
	cchttp "github.com/fwojciec/crosscheck/http"
	cclipgloss "github.com/fwojciec/crosscheck/lipgloss"
	"github.com/fwojciec/crosscheck/orchestrate"
	ccslog "github.com/fwojciec/crosscheck/slog"
	"github.com/fwojciec/crosscheck/sqlite"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing. When set they replace the HTTP
	// backend, the Gemini analyzer and the SQLite history respectively.
	WebSearcher        crosscheck.WebSearcher
	DiscussionSearcher crosscheck.DiscussionSearcher
	ConflictAnalyzer   crosscheck.ConflictAnalyzer
	ComparisonService  crosscheck.ComparisonService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("crosscheck"),
		kong.Description("Compare what the web says with what people say in discussions"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'crosscheck --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	deps.Logger = newLogger(stderr, cli.Verbose)
	deps.Converter = htmltomarkdown.NewConverter()
	deps.Renderer = cclipgloss.NewRenderer(cli.Width, goquery.NewTextCleaner())
	deps.NewExporter = func(dir string) crosscheck.ComparisonExporter {
		dir = filepath.Clean(dir)
		return fs.NewExporter(filepath.Dir(dir), filepath.Base(dir), deps.Converter)
	}

	if needsHistory(cmd, cli) {
		comparisons, err := m.openHistory(stderr)
		if err != nil {
			return err
		}
		defer m.Close()
		deps.Comparisons = ccslog.NewLoggingComparisonService(comparisons, deps.Logger)
	}

	if cmd == "ask" || cmd == "tui" {
		orch, err := m.newOrchestrator(ctx, cli, deps.Logger, stderr)
		if err != nil {
			return err
		}
		orch.Subscribe(ccslog.StateLogger(deps.Logger))
		deps.Orchestrator = orch
	}

	return kongCtx.Run(deps)
}

func needsHistory(cmd string, cli *CLI) bool {
	switch cmd {
	case "ask":
		return !cli.Ask.NoSave
	case "tui":
		return !cli.TUI.NoSave
	case "history", "show", "delete", "export":
		return true
	}
	return false
}

func (m *Main) openHistory(stderr io.Writer) (crosscheck.ComparisonService, error) {
	if m.ComparisonService != nil {
		return m.ComparisonService, nil
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set CROSSCHECK_DB to use a different database path\n")
		return nil, fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	m.ComparisonService = sqlite.NewComparisonService(m.DB)
	return m.ComparisonService, nil
}

func (m *Main) newOrchestrator(ctx context.Context, cli *CLI, logger *slog.Logger, stderr io.Writer) (*orchestrate.Orchestrator, error) {
	client := cchttp.NewClient(cli.APIURL,
		cchttp.WithTimeout(cli.Timeout),
		cchttp.WithRateLimit(cli.RateLimit),
	)

	web := m.WebSearcher
	if web == nil {
		web = client
	}
	discussions := m.DiscussionSearcher
	if discussions == nil {
		discussions = client
	}

	analyzer := m.ConflictAnalyzer
	if analyzer == nil {
		analyzer = client
		if cli.Analyzer == "gemini" {
			a, err := newGeminiAnalyzer(ctx, cli, stderr)
			if err != nil {
				return nil, err
			}
			analyzer = a
		}
	}

	return orchestrate.New(
		ccslog.NewLoggingWebSearcher(web, logger),
		ccslog.NewLoggingDiscussionSearcher(discussions, logger),
		ccslog.NewLoggingConflictAnalyzer(analyzer, logger),
	), nil
}

func newGeminiAnalyzer(ctx context.Context, cli *CLI, stderr io.Writer) (*gemini.Analyzer, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	opts := []gemini.Option{gemini.WithModel(cli.Model)}
	if cli.MaxTokens > 0 {
		counter, err := gemini.NewTokenCounter(tokenizerModel)
		if err != nil {
			return nil, fmt.Errorf("failed to create token counter: %w", err)
		}
		opts = append(opts, gemini.WithContentBudget(counter, cli.MaxTokens))
	}

	return gemini.NewAnalyzer(client, opts...), nil
}

// tokenizerModel is used for token counting. The local tokenizer only
// ships vocabularies for released models.
const tokenizerModel = "gemini-2.5-flash"

func newLogger(stderr io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func defaultDBPath() string {
	if path := os.Getenv("CROSSCHECK_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "crosscheck.db"
	}
	dir := filepath.Join(home, ".crosscheck")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "crosscheck.db")
}
