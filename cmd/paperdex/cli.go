package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/paperdex"
	"github.com/fwojciec/paperdex/scan"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Scanner  *scan.Scanner
	Merger   *scan.Merger
	Catalogs paperdex.CatalogStore
}

// CLI defines the command-line interface structure for Kong. Update is
// the default command so a bare "paperdex" rebuilds the catalog.
type CLI struct {
	Update UpdateCmd `cmd:"" default:"withargs" help:"Scan the papers directory and rebuild the catalog"`
	Stats  StatsCmd  `cmd:"" help:"Show catalog statistics"`
}

// UpdateCmd is the "update" subcommand.
type UpdateCmd struct {
	Dir     string `arg:"" optional:"" default:"AI" help:"Papers root directory"`
	Output  string `short:"o" default:"meta.json" env:"PAPERDEX_OUT" help:"Catalog output path"`
	Preview bool   `short:"p" help:"Scan and report without writing the catalog"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct {
	Catalog string `arg:"" optional:"" default:"meta.json" help:"Catalog path"`
}
