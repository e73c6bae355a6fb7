package main

import (
	"context"
	"io"
	"log/slog"

	"kbase"
	"kbase/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	DB       *sqlite.DB
	Articles kbase.ArticleService
	Counters kbase.CounterService
	Importer kbase.Importer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug bool `help:"Enable debug logging"`

	Serve  ServeCmd  `cmd:"" help:"Serve the article API over HTTP"`
	Import ImportCmd `cmd:"" help:"Import articles from a text file or stdin"`
	Upload UploadCmd `cmd:"" help:"Import a document file (docx, html, txt)"`
	List   ListCmd   `cmd:"" help:"List all articles"`
	Search SearchCmd `cmd:"" help:"Search published articles"`
	Get    GetCmd    `cmd:"" help:"Show one article"`
	Delete DeleteCmd `cmd:"" help:"Delete an article"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr   string  `default:":8080" help:"Listen address"`
	Rate   float64 `default:"5" help:"Ingest requests per second per client"`
	Tokens string  `help:"Path to a JSON token table for authentication"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	File     string   `arg:"" optional:"" help:"Text file to import (defaults to stdin)"`
	Marker   string   `short:"m" help:"Split on a marker phrase instead of headings"`
	Prefix   string   `short:"p" help:"Identifier prefix"`
	Start    int64    `help:"Number this batch locally from a starting value"`
	Tags     []string `short:"t" help:"Tags applied to every article"`
	Category string   `help:"Category applied to every article"`
	Status   string   `help:"Status applied to every article (published or draft)"`
}

// UploadCmd is the "upload" subcommand.
type UploadCmd struct {
	File     string   `arg:"" help:"Document file to import"`
	Mode     string   `default:"single" enum:"single,split" help:"Store as one article or split into sections"`
	Marker   string   `short:"m" help:"Split on a marker phrase instead of headings"`
	Prefix   string   `short:"p" help:"Identifier prefix"`
	Start    int64    `help:"Number this batch locally from a starting value"`
	Tags     []string `short:"t" help:"Tags applied to every article"`
	Category string   `help:"Category applied to every article"`
	Status   string   `help:"Status applied to every article (published or draft)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Status   string `help:"Filter by status"`
	Category string `help:"Filter by category"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Search query"`
	Limit int    `default:"50" help:"Maximum number of results"`
}

// GetCmd is the "get" subcommand.
type GetCmd struct {
	ID string `arg:"" help:"Article identifier"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Article identifier"`
	Force bool   `help:"Confirm deletion"`
}
