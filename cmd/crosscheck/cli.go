package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/crosscheck"
	cclipgloss "github.com/fwojciec/crosscheck/lipgloss"
	"github.com/fwojciec/crosscheck/orchestrate"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx          context.Context
	Stdout       io.Writer
	Stderr       io.Writer
	Logger       *slog.Logger
	Orchestrator *orchestrate.Orchestrator
	Comparisons  crosscheck.ComparisonService
	Renderer     *cclipgloss.Renderer
	Converter    crosscheck.Converter

	// NewExporter creates the exporter for a target directory.
	NewExporter func(dir string) crosscheck.ComparisonExporter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	APIURL    string        `name:"api-url" env:"CROSSCHECK_API_URL" default:"http://localhost:8000/api" help:"Backend API base URL"`
	Timeout   time.Duration `default:"60s" help:"Per-request timeout"`
	RateLimit float64       `name:"rate-limit" default:"0" help:"Maximum backend requests per second (0 = unlimited)"`
	Analyzer  string        `enum:"backend,gemini" default:"backend" help:"Conflict analyzer (backend or gemini)"`
	Model     string        `default:"gemini-2.5-flash" help:"Gemini model for --analyzer gemini"`
	MaxTokens int           `name:"max-tokens" default:"100000" help:"Discussion token budget for --analyzer gemini (0 = unlimited)"`
	Width     int           `env:"COLUMNS" default:"0" help:"Output width in columns (0 = default)"`
	Verbose   bool          `short:"v" help:"Log backend calls to stderr"`

	Ask     AskCmd     `cmd:"" help:"Compare web results and discussions for a question"`
	TUI     TUICmd     `cmd:"" name:"tui" help:"Start the interactive interface"`
	History HistoryCmd `cmd:"" help:"List saved comparisons"`
	Show    ShowCmd    `cmd:"" help:"Show a saved comparison"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a saved comparison"`
	Export  ExportCmd  `cmd:"" help:"Export saved comparisons as markdown files"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Query  string `arg:"" help:"Question to cross-check"`
	Format string `short:"f" enum:"text,markdown,json" default:"text" help:"Output format (text, markdown, json)"`
	NoSave bool   `name:"no-save" help:"Do not save the comparison to history"`
}

// TUICmd is the "tui" subcommand.
type TUICmd struct {
	NoSave bool `name:"no-save" help:"Do not save comparisons to history"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Query string `short:"q" help:"Only show comparisons whose query contains this text"`
	Limit int    `short:"n" default:"20" help:"Maximum number of comparisons to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID     string `arg:"" help:"Comparison ID"`
	Format string `short:"f" enum:"text,markdown,json" default:"text" help:"Output format (text, markdown, json)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Comparison ID"`
	Force bool   `help:"Confirm deletion"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir   string `arg:"" help:"Output directory (replaced on success)"`
	Query string `short:"q" help:"Only export comparisons whose query contains this text"`
	Limit int    `short:"n" default:"0" help:"Maximum number of comparisons to export (0 = all)"`
}
