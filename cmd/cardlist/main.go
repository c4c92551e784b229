package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/cardlist"
	"github.com/fwojciec/cardlist/goquery"
	cardslog "github.com/fwojciec/cardlist/slog"
	"github.com/fwojciec/cardlist/sqlite"
)

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
	// Card index path. Set before calling Run().
	DBPath string

	// SQLite database, opened only by commands that use the card index.
	DB *sqlite.DB
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
		kong.Name("cardlist"),
		kong.Description("Extract trading cards from card list HTML into CSV for CMS import"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'cardlist --help' to see available commands")
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
	command := kongCtx.Selected().Name

	deps.Logger = newLogger(stderr, cli.Verbose)

	if cli.DB != "" {
		m.DBPath = cli.DB
	}

	if command == "parse" {
		extractor := goquery.NewCardExtractor(goquery.WithImageHost(cli.Parse.ImageHost))
		deps.Extractor = cardslog.NewLoggingExtractor(extractor, deps.Logger)
	}

	if command == "cards" || (command == "parse" && cli.Parse.Index) {
		if err := os.MkdirAll(filepath.Dir(m.DBPath), 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set CARDLIST_DB or --db to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		deps.Cards = cardslog.NewLoggingCardService(sqlite.NewCardService(m.DB), deps.Logger)
	}

	return kongCtx.Run(deps)
}

// newLogger returns a debug logger on w when verbose, otherwise a logger
// that discards everything.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func defaultDBPath() string {
	if path := os.Getenv("CARDLIST_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "cardlist.db"
	}
	return filepath.Join(home, ".cardlist", "cards.db")
}

// errorf prints the user-facing message of err to stderr and returns err.
func errorf(deps *Dependencies, err error) error {
	if cardlist.ErrorCode(err) == cardlist.EINTERNAL {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
	} else {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cardlist.ErrorMessage(err))
	}
	return err
}
