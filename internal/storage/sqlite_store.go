package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"habitual/internal/models"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS events (
	id       TEXT PRIMARY KEY,
	user     TEXT NOT NULL,
	habit    TEXT NOT NULL,
	action   TEXT NOT NULL,
	time     TEXT NOT NULL,
	type     TEXT NOT NULL,
	duration TEXT NOT NULL DEFAULT '',
	position INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_events_user ON events(user, position);

CREATE TABLE IF NOT EXISTS goals (
	user            TEXT NOT NULL,
	habit           TEXT NOT NULL,
	target_per_week INTEGER NOT NULL,
	created         TEXT NOT NULL,
	category        TEXT NOT NULL,
	PRIMARY KEY (user, habit)
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'habitual init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Idempotent; also upgrades databases created before a table existed
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to verify schema: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) LoadEvents(user string) ([]models.HabitEvent, error) {
	rows, err := s.db.Query(`
		SELECT id, habit, action, time, type, duration
		FROM events WHERE user = ? ORDER BY position`, user)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []models.HabitEvent{}
	for rows.Next() {
		var e models.HabitEvent
		var ts, typ string
		if err := rows.Scan(&e.ID, &e.Habit, &e.Action, &ts, &typ, &e.Duration); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, fmt.Errorf("invalid event timestamp %q: %w", ts, err)
		}
		e.Time = t.Local()
		e.Type = models.EventType(typ)
		events = append(events, e)
	}

	return events, rows.Err()
}

func (s *SQLiteStore) SaveEvents(user string, events []models.HabitEvent) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// The event list is authoritative; replace the user's rows wholesale
	if _, err := tx.Exec("DELETE FROM events WHERE user = ?", user); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO events (id, user, habit, action, time, type, duration, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, e := range events {
		_, err := stmt.Exec(e.ID, user, e.Habit, e.Action, e.Time.Format(time.RFC3339), string(e.Type), e.Duration, i)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) LoadGoals(user string) (map[string]models.WeeklyGoal, error) {
	rows, err := s.db.Query(`
		SELECT habit, target_per_week, created, category
		FROM goals WHERE user = ?`, user)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := make(map[string]models.WeeklyGoal)
	for rows.Next() {
		var g models.WeeklyGoal
		var created string
		if err := rows.Scan(&g.Habit, &g.TargetPerWeek, &created, &g.Category); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339, created)
		if err != nil {
			return nil, fmt.Errorf("invalid goal timestamp %q: %w", created, err)
		}
		g.Created = t.Local()
		goals[g.Habit] = g
	}

	return goals, rows.Err()
}

func (s *SQLiteStore) SaveGoals(user string, goals map[string]models.WeeklyGoal) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM goals WHERE user = ?", user); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO goals (user, habit, target_per_week, created, category)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, g := range goals {
		_, err := stmt.Exec(user, g.Habit, g.TargetPerWeek, g.Created.Format(time.RFC3339), g.Category)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) ListUsers() ([]string, error) {
	rows, err := s.db.Query(`
		SELECT user FROM events UNION SELECT user FROM goals ORDER BY user`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []string
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}
