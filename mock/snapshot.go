package mock

import (
	"context"

	"github.com/tgsdk/apischema"
)

var _ apischema.SnapshotService = (*SnapshotService)(nil)

// SnapshotService is a mock implementation of apischema.SnapshotService.
type SnapshotService struct {
	CreateSnapshotFn         func(ctx context.Context, snapshot *apischema.Snapshot, schema *apischema.Schema) error
	FindSnapshotByIDFn       func(ctx context.Context, id string) (*apischema.Snapshot, error)
	FindSnapshotsFn          func(ctx context.Context, filter apischema.SnapshotFilter) ([]*apischema.Snapshot, error)
	FindSchemaBySnapshotIDFn func(ctx context.Context, id string) (*apischema.Schema, error)
	DeleteSnapshotFn         func(ctx context.Context, id string) error
}

func (s *SnapshotService) CreateSnapshot(ctx context.Context, snapshot *apischema.Snapshot, schema *apischema.Schema) error {
	return s.CreateSnapshotFn(ctx, snapshot, schema)
}

func (s *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*apischema.Snapshot, error) {
	return s.FindSnapshotByIDFn(ctx, id)
}

func (s *SnapshotService) FindSnapshots(ctx context.Context, filter apischema.SnapshotFilter) ([]*apischema.Snapshot, error) {
	return s.FindSnapshotsFn(ctx, filter)
}

func (s *SnapshotService) FindSchemaBySnapshotID(ctx context.Context, id string) (*apischema.Schema, error) {
	return s.FindSchemaBySnapshotIDFn(ctx, id)
}

func (s *SnapshotService) DeleteSnapshot(ctx context.Context, id string) error {
	return s.DeleteSnapshotFn(ctx, id)
}
