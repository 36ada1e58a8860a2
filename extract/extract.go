// Package extract provides schema extraction orchestration.
// It coordinates fetching the documentation page, parsing it into a
// schema, and persisting the result as a snapshot.
package extract

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/tgsdk/apischema"
)

// Extractor orchestrates one extraction run against a documentation page.
type Extractor struct {
	Fetcher   apischema.Fetcher
	Parser    apischema.Parser
	Snapshots apischema.SnapshotService
	Writer    apischema.SchemaWriter // optional, skipped when nil
}

// Result holds the outcome of an extraction run.
type Result struct {
	Snapshot *apischema.Snapshot
	Schema   *apischema.Schema

	// Unchanged reports that the page content hash matched the most
	// recent snapshot for the URL and parsing was skipped. Snapshot then
	// refers to the existing snapshot and Schema is nil.
	Unchanged bool
}

// Extract fetches url, parses it into a schema, and records a snapshot.
// When force is false and the fetched content hashes to the same value as
// the latest stored snapshot for the URL, the parse is skipped and the
// existing snapshot is returned.
func (e *Extractor) Extract(ctx context.Context, url string, force bool) (*Result, error) {
	html, err := e.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}

	hash := fmt.Sprintf("%016x", xxhash.Sum64String(html))

	if !force {
		latest, err := e.Snapshots.FindSnapshots(ctx, apischema.SnapshotFilter{SourceURL: &url, Limit: 1})
		if err != nil {
			return nil, fmt.Errorf("find latest snapshot: %w", err)
		}
		if len(latest) > 0 && latest[0].ContentHash == hash {
			return &Result{Snapshot: latest[0], Unchanged: true}, nil
		}
	}

	schema, err := e.Parser.Parse(ctx, html)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}

	snapshot := &apischema.Snapshot{
		SourceURL:   url,
		ContentHash: hash,
		TypeCount:   len(schema.Types),
		MethodCount: len(schema.Methods),
		FetchedAt:   time.Now().UTC(),
	}
	if err := e.Snapshots.CreateSnapshot(ctx, snapshot, schema); err != nil {
		return nil, fmt.Errorf("create snapshot: %w", err)
	}

	if e.Writer != nil {
		if err := e.Writer.WriteSchema(ctx, schema); err != nil {
			return nil, fmt.Errorf("write schema: %w", err)
		}
	}

	return &Result{Snapshot: snapshot, Schema: schema}, nil
}
