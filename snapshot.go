package apischema

import (
	"context"
	"time"
)

// Snapshot records one extraction of a documentation page: where it came
// from, a hash of the raw content, and summary counts. The extracted
// Schema is stored alongside it.
type Snapshot struct {
	ID          string    `json:"id"`
	SourceURL   string    `json:"sourceUrl"`
	ContentHash string    `json:"contentHash"`
	TypeCount   int       `json:"typeCount"`
	MethodCount int       `json:"methodCount"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the snapshot contains invalid fields.
func (s *Snapshot) Validate() error {
	if s.SourceURL == "" {
		return Errorf(EINVALID, "snapshot source URL required")
	}
	if s.ContentHash == "" {
		return Errorf(EINVALID, "snapshot content hash required")
	}
	return nil
}

// SnapshotService represents a service for managing extraction snapshots.
type SnapshotService interface {
	// CreateSnapshot stores a snapshot together with its schema.
	CreateSnapshot(ctx context.Context, snapshot *Snapshot, schema *Schema) error

	// FindSnapshotByID retrieves a snapshot by ID.
	// Returns ENOTFOUND if the snapshot does not exist.
	FindSnapshotByID(ctx context.Context, id string) (*Snapshot, error)

	// FindSnapshots retrieves snapshots matching the filter, newest first.
	FindSnapshots(ctx context.Context, filter SnapshotFilter) ([]*Snapshot, error)

	// FindSchemaBySnapshotID retrieves the schema stored with a snapshot.
	// Returns ENOTFOUND if the snapshot does not exist.
	FindSchemaBySnapshotID(ctx context.Context, id string) (*Schema, error)

	// DeleteSnapshot permanently removes a snapshot and its schema.
	// Returns ENOTFOUND if the snapshot does not exist.
	DeleteSnapshot(ctx context.Context, id string) error
}

// SnapshotFilter represents a filter for FindSnapshots.
type SnapshotFilter struct {
	ID        *string `json:"id"`
	SourceURL *string `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
