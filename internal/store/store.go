package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/philipparndt/goroad/internal/road"
	"github.com/philipparndt/goroad/internal/scene"
	"github.com/philipparndt/goroad/pkg/geometry"
	"go.uber.org/zap"

	_ "modernc.org/sqlite"
)

// SchemaVersion is written to every project file
const SchemaVersion = 1

// ErrLocked is returned when another process holds the project file
var ErrLocked = errors.New("project file is locked by another process")

// Store is a road network project file
type Store struct {
	path string
	db   *sql.DB
	lock *flock.Flock
	log  *zap.Logger
}

// Open opens or creates the project file at path and locks it exclusively
func Open(path string, log *zap.Logger) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("empty project path")
	}
	if log == nil {
		log = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("could not lock %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("%s: %w", path, ErrLocked)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		_ = lock.Unlock()
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	s := &Store{path: path, db: db, lock: lock, log: log.Named("store")}
	if err := s.init(); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := s.db.Exec(p); err != nil {
			return fmt.Errorf("sqlite pragma failed (%s): %w", p, err)
		}
	}

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS segments (
			connection_id INTEGER PRIMARY KEY,
			object_id TEXT NOT NULL,
			name TEXT NOT NULL,
			geometry TEXT NOT NULL,
			start_x REAL NOT NULL,
			start_y REAL NOT NULL,
			start_z REAL NOT NULL,
			end_x REAL NOT NULL,
			end_y REAL NOT NULL,
			end_z REAL NOT NULL,
			heading REAL NOT NULL,
			length REAL NOT NULL
		);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("sqlite schema failed: %w", err)
		}
	}

	_, err := s.db.Exec(`INSERT OR IGNORE INTO meta(key, value) VALUES('schema_version', ?)`,
		strconv.Itoa(SchemaVersion))
	return err
}

// Path returns the project file location
func (s *Store) Path() string {
	return s.path
}

// Close releases the database and the lock
func (s *Store) Close() error {
	var errs []error
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	if s.lock != nil {
		errs = append(errs, s.lock.Unlock())
	}
	return errors.Join(errs...)
}

// Save replaces the stored network with the road objects of the scene
func (s *Store) Save(ctx context.Context, sc *scene.Scene) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM segments`); err != nil {
		return 0, fmt.Errorf("failed to clear segments: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO segments(
		connection_id, object_id, name, geometry,
		start_x, start_y, start_z, end_x, end_y, end_z, heading, length
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	count := 0
	for _, obj := range sc.Objects() {
		seg := obj.Segment
		if seg == nil {
			continue
		}
		_, err := stmt.ExecContext(ctx,
			seg.ConnectionID, obj.ID.String(), obj.Name, seg.Geometry,
			seg.Start.X, seg.Start.Y, seg.Start.Z,
			seg.End.X, seg.End.Y, seg.End.Z,
			seg.Heading, seg.Length)
		if err != nil {
			return 0, fmt.Errorf("failed to save %s: %w", obj.Name, err)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	s.log.Info("project saved", zap.String("path", s.path), zap.Int("segments", count))
	return count, nil
}

// Record is one stored segment
type Record struct {
	ConnectionID int
	ObjectID     uuid.UUID
	Name         string
	Geometry     string
	Start        geometry.Vector3
	End          geometry.Vector3
	Heading      float64
	Length       float64
}

// Records returns the stored segments ordered by connection id
func (s *Store) Records(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT
		connection_id, object_id, name, geometry,
		start_x, start_y, start_z, end_x, end_y, end_z, heading, length
		FROM segments ORDER BY connection_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var objectID string
		if err := rows.Scan(&r.ConnectionID, &objectID, &r.Name, &r.Geometry,
			&r.Start.X, &r.Start.Y, &r.Start.Z,
			&r.End.X, &r.End.Y, &r.End.Z,
			&r.Heading, &r.Length); err != nil {
			return nil, err
		}
		id, err := uuid.Parse(objectID)
		if err != nil {
			return nil, fmt.Errorf("segment %d: invalid object id: %w", r.ConnectionID, err)
		}
		r.ObjectID = id
		records = append(records, r)
	}
	return records, rows.Err()
}

// Load rebuilds the stored segments into the scene and links them. Connection
// ids are kept, so the scene continues numbering after the highest one.
func (s *Store) Load(ctx context.Context, sc *scene.Scene, builder *road.Builder) ([]*road.Segment, error) {
	records, err := s.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read segments: %w", err)
	}
	segments, err := s.Restore(sc, builder, records)
	if err != nil {
		return segments, err
	}
	s.log.Info("project loaded", zap.String("path", s.path), zap.Int("segments", len(segments)))
	return segments, nil
}

// Restore rebuilds previously read records into the scene, keeping their
// connection and object ids.
func (s *Store) Restore(sc *scene.Scene, builder *road.Builder, records []Record) ([]*road.Segment, error) {
	segments := make([]*road.Segment, 0, len(records))
	for _, r := range records {
		if _, taken := sc.Segment(r.ConnectionID); taken {
			return segments, fmt.Errorf("segment %d already in scene", r.ConnectionID)
		}
		seg, err := builder.Rebuild(r.ConnectionID, r.Start, r.End)
		if err != nil {
			s.log.Warn("segment skipped", zap.Int("id", r.ConnectionID), zap.Error(err))
			continue
		}
		obj := scene.NewRoadObject(sc.UniqueName(r.Name), seg)
		obj.ID = r.ObjectID
		if err := sc.Add(obj); err != nil {
			return segments, err
		}
		if err := sc.Link(obj.Name); err != nil {
			return segments, err
		}
		segments = append(segments, seg)
	}
	return segments, nil
}
