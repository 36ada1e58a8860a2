package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tgsdk/apischema"
)

// Compile-time interface verification.
var _ apischema.SnapshotService = (*SnapshotService)(nil)

// SnapshotService implements apischema.SnapshotService using SQLite.
type SnapshotService struct {
	db *DB
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(db *DB) *SnapshotService {
	return &SnapshotService{db: db}
}

// CreateSnapshot stores a snapshot together with its schema.
// The snapshot row and all declaration rows commit atomically.
func (s *SnapshotService) CreateSnapshot(ctx context.Context, snapshot *apischema.Snapshot, schema *apischema.Schema) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}
	if schema == nil {
		return apischema.Errorf(apischema.EINVALID, "snapshot schema required")
	}

	snapshot.ID = uuid.New().String()
	if snapshot.FetchedAt.IsZero() {
		snapshot.FetchedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO snapshots (id, source_url, content_hash, type_count, method_count, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, snapshot.ID, snapshot.SourceURL, snapshot.ContentHash, len(schema.Types), len(schema.Methods),
		snapshot.FetchedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	for i, t := range schema.Types {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO types (snapshot_id, position, name, description)
			VALUES (?, ?, ?, ?)
		`, snapshot.ID, i, t.Name, t.Description); err != nil {
			return err
		}
		for j, f := range t.Fields {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO fields (snapshot_id, type_name, position, name, type, optional, description)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			`, snapshot.ID, t.Name, j, f.Name, f.Type, f.Optional, f.Description); err != nil {
				return err
			}
		}
	}

	for i, m := range schema.Methods {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO methods (snapshot_id, position, name, description)
			VALUES (?, ?, ?, ?)
		`, snapshot.ID, i, m.Name, m.Description); err != nil {
			return err
		}
		for j, p := range m.Parameters {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO parameters (snapshot_id, method_name, position, name, type, required, description)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			`, snapshot.ID, m.Name, j, p.Name, p.Type, p.Required, p.Description); err != nil {
				return err
			}
		}
	}

	snapshot.TypeCount = len(schema.Types)
	snapshot.MethodCount = len(schema.Methods)

	return tx.Commit()
}

// FindSnapshotByID retrieves a snapshot by ID.
func (s *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*apischema.Snapshot, error) {
	var snapshot apischema.Snapshot
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, content_hash, type_count, method_count, fetched_at
		FROM snapshots
		WHERE id = ?
	`, id).Scan(&snapshot.ID, &snapshot.SourceURL, &snapshot.ContentHash,
		&snapshot.TypeCount, &snapshot.MethodCount, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, apischema.Errorf(apischema.ENOTFOUND, "snapshot not found")
	}
	if err != nil {
		return nil, err
	}

	snapshot.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	return &snapshot, nil
}

// FindSnapshots retrieves snapshots matching the filter, newest first.
func (s *SnapshotService) FindSnapshots(ctx context.Context, filter apischema.SnapshotFilter) ([]*apischema.Snapshot, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, content_hash, type_count, method_count, fetched_at FROM snapshots WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY fetched_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []*apischema.Snapshot
	for rows.Next() {
		var snapshot apischema.Snapshot
		var fetchedAt string

		if err := rows.Scan(&snapshot.ID, &snapshot.SourceURL, &snapshot.ContentHash,
			&snapshot.TypeCount, &snapshot.MethodCount, &fetchedAt); err != nil {
			return nil, err
		}

		snapshot.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
		if err != nil {
			return nil, err
		}

		snapshots = append(snapshots, &snapshot)
	}

	return snapshots, rows.Err()
}

// FindSchemaBySnapshotID retrieves the schema stored with a snapshot.
func (s *SnapshotService) FindSchemaBySnapshotID(ctx context.Context, id string) (*apischema.Schema, error) {
	// Verify the snapshot exists so a missing ID is ENOTFOUND rather than
	// an empty schema.
	if _, err := s.FindSnapshotByID(ctx, id); err != nil {
		return nil, err
	}

	schema := &apischema.Schema{}

	types, err := s.findTypes(ctx, id)
	if err != nil {
		return nil, err
	}
	schema.Types = types

	methods, err := s.findMethods(ctx, id)
	if err != nil {
		return nil, err
	}
	schema.Methods = methods

	return schema, nil
}

// DeleteSnapshot permanently removes a snapshot and its schema.
// Declaration rows cascade via foreign keys.
func (s *SnapshotService) DeleteSnapshot(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apischema.Errorf(apischema.ENOTFOUND, "snapshot not found")
	}

	return nil
}

func (s *SnapshotService) findTypes(ctx context.Context, snapshotID string) ([]apischema.Type, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, description
		FROM types
		WHERE snapshot_id = ?
		ORDER BY position
	`, snapshotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []apischema.Type
	for rows.Next() {
		var t apischema.Type
		if err := rows.Scan(&t.Name, &t.Description); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range types {
		fields, err := s.findFields(ctx, snapshotID, types[i].Name)
		if err != nil {
			return nil, err
		}
		types[i].Fields = fields
	}

	return types, nil
}

func (s *SnapshotService) findFields(ctx context.Context, snapshotID, typeName string) ([]apischema.Field, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, type, optional, description
		FROM fields
		WHERE snapshot_id = ? AND type_name = ?
		ORDER BY position
	`, snapshotID, typeName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fields []apischema.Field
	for rows.Next() {
		var f apischema.Field
		if err := rows.Scan(&f.Name, &f.Type, &f.Optional, &f.Description); err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}

	return fields, rows.Err()
}

func (s *SnapshotService) findMethods(ctx context.Context, snapshotID string) ([]apischema.Method, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, description
		FROM methods
		WHERE snapshot_id = ?
		ORDER BY position
	`, snapshotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var methods []apischema.Method
	for rows.Next() {
		var m apischema.Method
		if err := rows.Scan(&m.Name, &m.Description); err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range methods {
		params, err := s.findParameters(ctx, snapshotID, methods[i].Name)
		if err != nil {
			return nil, err
		}
		methods[i].Parameters = params
	}

	return methods, nil
}

func (s *SnapshotService) findParameters(ctx context.Context, snapshotID, methodName string) ([]apischema.Parameter, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, type, required, description
		FROM parameters
		WHERE snapshot_id = ? AND method_name = ?
		ORDER BY position
	`, snapshotID, methodName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var params []apischema.Parameter
	for rows.Next() {
		var p apischema.Parameter
		if err := rows.Scan(&p.Name, &p.Type, &p.Required, &p.Description); err != nil {
			return nil, err
		}
		params = append(params, p)
	}

	return params, rows.Err()
}
