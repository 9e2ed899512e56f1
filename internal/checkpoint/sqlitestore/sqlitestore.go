// Package sqlitestore is the reference Checkpoint backend: a single SQLite
// file, opened and migrated the way the teacher's persistence layer opens
// its world database, with one table per checkpoint.Checkpoint record
// shape.
package sqlitestore

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/chronicle-sim/internal/checkpoint"
)

// Store is a sqlx-backed, modernc.org/sqlite-driven checkpoint.Checkpoint.
type Store struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at path and runs its migration.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("checkpoint: open db: %w", err)
	}
	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("checkpoint: migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.conn.Exec(`
	CREATE TABLE IF NOT EXISTS entities (
		id INTEGER PRIMARY KEY,
		kind TEXT NOT NULL,
		name TEXT NOT NULL,
		origin_year INTEGER NOT NULL,
		end_year INTEGER,
		components_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS relationships (
		kind TEXT NOT NULL,
		source_entity_id INTEGER NOT NULL,
		target_entity_id INTEGER NOT NULL,
		start_year INTEGER NOT NULL DEFAULT 0,
		end_year INTEGER,
		data_json TEXT NOT NULL DEFAULT '{}'
	);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY,
		kind TEXT NOT NULL,
		year INTEGER NOT NULL,
		description TEXT NOT NULL,
		caused_by INTEGER,
		data_json TEXT NOT NULL DEFAULT '{}'
	);

	CREATE TABLE IF NOT EXISTS participants (
		event_id INTEGER NOT NULL,
		entity_id INTEGER NOT NULL,
		role TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_relationships_source ON relationships(source_entity_id);
	CREATE INDEX IF NOT EXISTS idx_relationships_target ON relationships(target_entity_id);
	CREATE INDEX IF NOT EXISTS idx_participants_event ON participants(event_id);
	`)
	return err
}

// WriteEntities replaces the entire entities table.
func (s *Store) WriteEntities(records []checkpoint.EntityRecord) error {
	tx, err := s.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM entities"); err != nil {
		return err
	}
	stmt, err := tx.Preparex(`INSERT INTO entities
		(id, kind, name, origin_year, end_year, components_json)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.Exec(r.ID, r.Kind, r.Name, r.OriginYear, r.EndYear, r.ComponentsJSON); err != nil {
			return fmt.Errorf("insert entity %d: %w", r.ID, err)
		}
	}
	return tx.Commit()
}

// WriteRelationships replaces the entire relationships table.
func (s *Store) WriteRelationships(records []checkpoint.RelationshipRecord) error {
	tx, err := s.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM relationships"); err != nil {
		return err
	}
	stmt, err := tx.Preparex(`INSERT INTO relationships
		(kind, source_entity_id, target_entity_id, start_year, end_year, data_json)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.Exec(r.Kind, r.Source, r.Target, r.StartYear, r.EndYear, r.DataJSON); err != nil {
			return fmt.Errorf("insert relationship %s(%d,%d): %w", r.Kind, r.Source, r.Target, err)
		}
	}
	return tx.Commit()
}

// WriteEvents appends to the events table (the chronicle is append-only).
func (s *Store) WriteEvents(records []checkpoint.EventRecord) error {
	if len(records) == 0 {
		return nil
	}
	tx, err := s.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(`INSERT OR REPLACE INTO events
		(id, kind, year, description, caused_by, data_json)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.Exec(r.ID, r.Kind, r.Year, r.Description, r.CausedBy, r.DataJSON); err != nil {
			return fmt.Errorf("insert event %d: %w", r.ID, err)
		}
	}
	return tx.Commit()
}

// WriteParticipants appends to the participants table.
func (s *Store) WriteParticipants(records []checkpoint.ParticipantRecord) error {
	if len(records) == 0 {
		return nil
	}
	tx, err := s.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(`INSERT INTO participants (event_id, entity_id, role) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.Exec(r.EventID, r.EntityID, r.Role); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

var _ checkpoint.Checkpoint = (*Store)(nil)
