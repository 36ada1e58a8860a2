package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/tgsdk/apischema"
	"github.com/tgsdk/apischema/extract"
	"github.com/tgsdk/apischema/fs"
	apihttp "github.com/tgsdk/apischema/http"
	apislog "github.com/tgsdk/apischema/slog"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	fetcher := apihttp.NewFetcher(
		apihttp.WithTimeout(time.Duration(c.Timeout)*time.Second),
		apihttp.WithRateLimit(c.RPS),
	)
	defer fetcher.Close()

	parser := deps.Parser

	extractor := &extract.Extractor{
		Fetcher:   fetcher,
		Parser:    parser,
		Snapshots: deps.Snapshots,
	}
	if c.Verbose {
		logger := slog.New(slog.NewTextHandler(deps.Stderr, nil))
		extractor.Fetcher = apislog.NewLoggingFetcher(fetcher, logger)
		extractor.Parser = apislog.NewLoggingParser(parser, logger)
	}
	if c.Out != "" {
		extractor.Writer = fs.NewWriter(c.Out)
	}

	result, err := extractor.Extract(deps.Ctx, c.URL, c.Force)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", apischema.ErrorMessage(err))
		return err
	}

	if result.Unchanged {
		fmt.Fprintf(deps.Stdout, "Unchanged since %s (snapshot %s). Use --force to re-parse.\n",
			result.Snapshot.FetchedAt.Format("2006-01-02"), result.Snapshot.ID)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Extracted %d types and %d methods from %s\n",
		result.Snapshot.TypeCount, result.Snapshot.MethodCount, c.URL)
	fmt.Fprintf(deps.Stdout, "Snapshot: %s\n", result.Snapshot.ID)
	if c.Out != "" {
		fmt.Fprintf(deps.Stdout, "Schema written to %s\n", c.Out)
	}

	return nil
}
