package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/readable"
	"github.com/fwojciec/readable/bluemonday"
	"github.com/fwojciec/readable/goquery"
	"github.com/fwojciec/readable/htmltomarkdown"
	"github.com/fwojciec/readable/readability"
	rslog "github.com/fwojciec/readable/slog"
	"github.com/fwojciec/readable/sqlite"
	"github.com/fwojciec/readable/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if code := ExitCode(err); code != 0 {
		if code != exitNoContent {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(code)
	}
}

// exitNoContent is the exit status when a page holds no article.
const exitNoContent = 2

// ExitCode maps a command error to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case readable.IsNoContent(err):
		return exitNoContent
	default:
		return 1
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	DocumentService readable.DocumentService
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
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:       ctx,
		Stdin:     stdin,
		Stdout:    stdout,
		Stderr:    stderr,
		Converter: htmltomarkdown.NewConverter(),
		Sanitizer: bluemonday.NewSanitizer(),
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("readable"),
		kong.Description("Extract the main article content from HTML pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'readable --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = newLogger(stderr, cli.debug(cmd))
	deps.NewExtractor = func(opts readable.Options) readable.Extractor {
		p := goquery.NewParser(goquery.WithOptions(opts), goquery.WithLogger(deps.Logger))
		return rslog.NewLoggingExtractor(p, deps.Logger)
	}
	deps.Baselines = []Baseline{
		{Name: "readability", Extractor: readability.NewExtractor()},
		{Name: "trafilatura", Extractor: trafilatura.NewExtractor()},
	}

	// Only storage commands open the database
	if needsDB(cmd, cli) {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set READABLE_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.DocumentService = rslog.NewLoggingDocumentService(sqlite.NewDocumentService(m.DB), deps.Logger)
		deps.Documents = m.DocumentService
		deps.Hash = sqlite.HashContent
	}

	return kongCtx.Run(deps)
}

func needsDB(cmd string, cli *CLI) bool {
	switch cmd {
	case "list", "show", "delete":
		return true
	case "batch":
		return cli.Batch.Store
	}
	return false
}

// newLogger returns a text logger on w. Debug enables engine diagnostics.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	if path := os.Getenv("READABLE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "readable.db"
	}
	dir := filepath.Join(home, ".readable")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "readable.db")
}
