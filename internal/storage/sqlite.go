package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/akisliuk-cloud/TaskSchedulerApp-sub000/internal/models"
)

// SnapshotStore persists the session's task lists to a local SQLite
// file. It serializes the engine's shapes verbatim and holds no domain
// logic: the engine never knows whether a store is attached.
type SnapshotStore struct {
	path string
	db   *sql.DB
}

func NewSnapshotStore(path string) *SnapshotStore {
	return &SnapshotStore{path: path}
}

// Open opens (creating if needed) the database and ensures the schema.
func (s *SnapshotStore) Open() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS tasks (
		position INTEGER PRIMARY KEY,
		data TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS archived_tasks (
		position INTEGER PRIMARY KEY,
		data TEXT NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	s.db = db
	return nil
}

func (s *SnapshotStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save replaces the stored snapshot with the given lists, preserving
// order via the position column.
func (s *SnapshotStore) Save(active []models.Task, archived []models.ArchivedTask) error {
	if s.db == nil {
		return fmt.Errorf("storage not opened")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"tasks", "archived_tasks"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for i, task := range active {
		data, err := json.Marshal(task)
		if err != nil {
			return fmt.Errorf("failed to serialize task %d: %w", task.ID, err)
		}
		if _, err := tx.Exec("INSERT INTO tasks (position, data) VALUES (?, ?)", i, string(data)); err != nil {
			return fmt.Errorf("failed to insert task %d: %w", task.ID, err)
		}
	}
	for i, entry := range archived {
		data, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("failed to serialize archived task %d: %w", entry.ID, err)
		}
		if _, err := tx.Exec("INSERT INTO archived_tasks (position, data) VALUES (?, ?)", i, string(data)); err != nil {
			return fmt.Errorf("failed to insert archived task %d: %w", entry.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

// Load reads back both lists in stored order. An empty database yields
// empty lists, not an error.
func (s *SnapshotStore) Load() ([]models.Task, []models.ArchivedTask, error) {
	if s.db == nil {
		return nil, nil, fmt.Errorf("storage not opened")
	}

	var active []models.Task
	rows, err := s.db.Query("SELECT data FROM tasks ORDER BY position")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read tasks: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		var task models.Task
		if err := json.Unmarshal([]byte(data), &task); err != nil {
			return nil, nil, fmt.Errorf("failed to parse task row: %w", err)
		}
		active = append(active, task)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	var archived []models.ArchivedTask
	arows, err := s.db.Query("SELECT data FROM archived_tasks ORDER BY position")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read archived tasks: %w", err)
	}
	defer arows.Close()
	for arows.Next() {
		var data string
		if err := arows.Scan(&data); err != nil {
			return nil, nil, fmt.Errorf("failed to scan archived row: %w", err)
		}
		var entry models.ArchivedTask
		if err := json.Unmarshal([]byte(data), &entry); err != nil {
			return nil, nil, fmt.Errorf("failed to parse archived row: %w", err)
		}
		archived = append(archived, entry)
	}
	if err := arows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate archived tasks: %w", err)
	}

	return active, archived, nil
}
