package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tgsdk/apischema"
	"github.com/tgsdk/apischema/sqlite"
)

// Compile-time interface verification.
var _ apischema.SnapshotService = (*sqlite.SnapshotService)(nil)

func testSchema() *apischema.Schema {
	return &apischema.Schema{
		Types: []apischema.Type{
			{
				Name:        "User",
				Description: "Represents a user.",
				Fields: []apischema.Field{
					{Name: "id", Type: "int64", Description: "Unique identifier"},
					{Name: "username", Type: "string", Optional: true, Description: "Optional. Username"},
				},
			},
			{
				Name:        "CallbackGame",
				Description: "A placeholder.",
			},
		},
		Methods: []apischema.Method{
			{
				Name:        "sendMessage",
				Description: "Sends a message.",
				Parameters: []apischema.Parameter{
					{Name: "chat_id", Type: "int64", Required: true, Description: "Target chat"},
					{Name: "parse_mode", Type: "string", Required: false, Description: "Parse mode"},
				},
			},
		},
	}
}

func testSnapshot() *apischema.Snapshot {
	return &apischema.Snapshot{
		SourceURL:   "https://core.telegram.org/bots/api",
		ContentHash: "deadbeefdeadbeef",
		FetchedAt:   time.Now().UTC().Truncate(time.Second),
	}
}

func TestSnapshotService_CreateSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID and counts", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewSnapshotService(MustOpenDB(t))
		snapshot := testSnapshot()

		err := s.CreateSnapshot(context.Background(), snapshot, testSchema())
		require.NoError(t, err)

		assert.NotEmpty(t, snapshot.ID)
		assert.Equal(t, 2, snapshot.TypeCount)
		assert.Equal(t, 1, snapshot.MethodCount)
	})

	t.Run("requires source URL", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewSnapshotService(MustOpenDB(t))
		snapshot := testSnapshot()
		snapshot.SourceURL = ""

		err := s.CreateSnapshot(context.Background(), snapshot, testSchema())
		assert.Equal(t, apischema.EINVALID, apischema.ErrorCode(err))
	})

	t.Run("requires schema", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewSnapshotService(MustOpenDB(t))

		err := s.CreateSnapshot(context.Background(), testSnapshot(), nil)
		assert.Equal(t, apischema.EINVALID, apischema.ErrorCode(err))
	})
}

func TestSnapshotService_FindSnapshotByID(t *testing.T) {
	t.Parallel()

	t.Run("round-trips a snapshot", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewSnapshotService(MustOpenDB(t))
		ctx := context.Background()
		snapshot := testSnapshot()
		require.NoError(t, s.CreateSnapshot(ctx, snapshot, testSchema()))

		got, err := s.FindSnapshotByID(ctx, snapshot.ID)
		require.NoError(t, err)

		assert.Equal(t, snapshot.SourceURL, got.SourceURL)
		assert.Equal(t, snapshot.ContentHash, got.ContentHash)
		assert.Equal(t, 2, got.TypeCount)
		assert.Equal(t, 1, got.MethodCount)
		assert.True(t, snapshot.FetchedAt.Equal(got.FetchedAt))
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewSnapshotService(MustOpenDB(t))

		_, err := s.FindSnapshotByID(context.Background(), "missing")
		assert.Equal(t, apischema.ENOTFOUND, apischema.ErrorCode(err))
	})
}

func TestSnapshotService_FindSnapshots(t *testing.T) {
	t.Parallel()

	t.Run("newest first with URL filter and limit", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewSnapshotService(MustOpenDB(t))
		ctx := context.Background()

		older := testSnapshot()
		older.FetchedAt = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		require.NoError(t, s.CreateSnapshot(ctx, older, testSchema()))

		newer := testSnapshot()
		newer.ContentHash = "feedfacefeedface"
		newer.FetchedAt = time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
		require.NoError(t, s.CreateSnapshot(ctx, newer, testSchema()))

		other := testSnapshot()
		other.SourceURL = "https://example.com/docs"
		require.NoError(t, s.CreateSnapshot(ctx, other, testSchema()))

		url := "https://core.telegram.org/bots/api"
		got, err := s.FindSnapshots(ctx, apischema.SnapshotFilter{SourceURL: &url, Limit: 1})
		require.NoError(t, err)

		require.Len(t, got, 1)
		assert.Equal(t, newer.ID, got[0].ID)
	})

	t.Run("empty result for no matches", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewSnapshotService(MustOpenDB(t))

		url := "https://nowhere.invalid"
		got, err := s.FindSnapshots(context.Background(), apischema.SnapshotFilter{SourceURL: &url})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestSnapshotService_FindSchemaBySnapshotID(t *testing.T) {
	t.Parallel()

	t.Run("round-trips the schema", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewSnapshotService(MustOpenDB(t))
		ctx := context.Background()
		snapshot := testSnapshot()
		schema := testSchema()
		require.NoError(t, s.CreateSnapshot(ctx, snapshot, schema))

		got, err := s.FindSchemaBySnapshotID(ctx, snapshot.ID)
		require.NoError(t, err)

		assert.Equal(t, schema, got)
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewSnapshotService(MustOpenDB(t))

		_, err := s.FindSchemaBySnapshotID(context.Background(), "missing")
		assert.Equal(t, apischema.ENOTFOUND, apischema.ErrorCode(err))
	})
}

func TestSnapshotService_DeleteSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("removes snapshot and schema", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewSnapshotService(db)
		ctx := context.Background()
		snapshot := testSnapshot()
		require.NoError(t, s.CreateSnapshot(ctx, snapshot, testSchema()))

		require.NoError(t, s.DeleteSnapshot(ctx, snapshot.ID))

		_, err := s.FindSnapshotByID(ctx, snapshot.ID)
		assert.Equal(t, apischema.ENOTFOUND, apischema.ErrorCode(err))

		// Declaration rows cascade.
		var count int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM fields").Scan(&count))
		assert.Zero(t, count)
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewSnapshotService(MustOpenDB(t))

		err := s.DeleteSnapshot(context.Background(), "missing")
		assert.Equal(t, apischema.ENOTFOUND, apischema.ErrorCode(err))
	})
}
