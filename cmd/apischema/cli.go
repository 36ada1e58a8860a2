package main

import (
	"context"
	"io"

	"github.com/tgsdk/apischema"
	"github.com/tgsdk/apischema/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Snapshots apischema.SnapshotService
	Parser    apischema.Parser
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" help:"Fetch a documentation page and extract its schema"`
	List    ListCmd    `cmd:"" help:"List stored extraction snapshots"`
	Show    ShowCmd    `cmd:"" help:"Show the schema stored with a snapshot"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a snapshot and its schema"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL     string  `arg:"" optional:"" default:"https://core.telegram.org/bots/api" help:"Documentation page URL"`
	Out     string  `short:"o" help:"Write the extracted schema to a JSON file"`
	Force   bool    `short:"f" help:"Re-parse even if the page content is unchanged"`
	Timeout int     `default:"10" help:"Fetch timeout in seconds"`
	RPS     float64 `name:"rps" default:"1" help:"Fetch rate limit in requests per second"`
	Verbose bool    `short:"v" help:"Log fetch and parse progress"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	URL string `help:"Only list snapshots for this source URL"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Snapshot ID"`
	JSON bool   `help:"Print the schema as JSON instead of a listing"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Snapshot ID"`
	Force bool   `help:"Confirm deletion"`
}
