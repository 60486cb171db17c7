package storage

import (
	"path/filepath"
	"strings"

	"habitual/internal/models"
)

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Events
	LoadEvents(user string) ([]models.HabitEvent, error)
	SaveEvents(user string, events []models.HabitEvent) error

	// Goals
	LoadGoals(user string) (map[string]models.WeeklyGoal, error)
	SaveGoals(user string, goals map[string]models.WeeklyGoal) error

	// Users
	ListUsers() ([]string, error)

	// Utils
	GetConfigPath() string
}

// ForPath selects a provider by file extension: .json gets the flat
// JSON store, everything else the SQLite store.
func ForPath(path string) Provider {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return NewJSONStore(path)
	}
	return NewSQLiteStore(path)
}
