package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/paperdex/fs"
	"github.com/fwojciec/paperdex/goquery"
	"github.com/fwojciec/paperdex/scan"
	pdslog "github.com/fwojciec/paperdex/slog"
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
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("paperdex"),
		kong.Description("Build a browsable catalog from folders of analyzed papers"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags. No arguments is a valid invocation: it runs a
	// default update over the "AI" directory.
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire services into dependencies
	deps.Scanner = &scan.Scanner{
		Extractor: pdslog.NewLoggingExtractor(goquery.NewExtractor(), logger),
	}
	deps.Merger = &scan.Merger{
		Store: pdslog.NewLoggingCatalogStore(fs.NewCatalogStore(cli.Update.Output), logger),
	}
	deps.Catalogs = fs.NewCatalogStore(cli.Stats.Catalog)

	return kongCtx.Run(deps)
}
