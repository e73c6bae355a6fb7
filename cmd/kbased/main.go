package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"kbase"
	"kbase/bloom"
	"kbase/convert"
	"kbase/etree"
	"kbase/goquery"
	"kbase/htmltomarkdown"
	"kbase/ingest"
	kbslog "kbase/slog"
	"kbase/sqlite"
	"kbase/trafilatura"
)

// seenFilterSize is the expected number of imported sections per process.
const seenFilterSize = 100000

func main() {
	ctx := context.Background()

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

	// Services for end-to-end testing.
	ArticleService kbase.ArticleService
	CounterService kbase.CounterService
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
		kong.Name("kbased"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'kbased --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set KBASE_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ArticleService = kbslog.NewLoggingArticleService(sqlite.NewArticleService(m.DB), logger)
	m.CounterService = sqlite.NewCounterService(m.DB)
	deps.DB = m.DB
	deps.Articles = m.ArticleService
	deps.Counters = m.CounterService

	registry := convert.NewRegistry()
	registry.Register("txt", convert.NewPlain())
	registry.Register("md", convert.NewPlain())
	registry.Register("docx", etree.NewConverter())
	registry.Register("html", trafilatura.NewConverter())
	registry.Register("htm", trafilatura.NewConverter())

	pipeline := &ingest.Pipeline{
		Articles:     m.ArticleService,
		Counters:     m.CounterService,
		Converter:    registry,
		Markdown:     htmltomarkdown.NewConverter(),
		HTMLSplitter: goquery.NewSplitter(),
		Seen:         bloom.NewFilter(seenFilterSize, 0.01),
	}
	deps.Importer = kbslog.NewLoggingImporter(pipeline, logger)

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("KBASE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "kbase.db"
	}
	dir := filepath.Join(home, ".kbase")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "kbase.db")
}
