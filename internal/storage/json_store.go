package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"habitual/internal/models"
)

type userData struct {
	Events []models.HabitEvent          `json:"events"`
	Goals  map[string]models.WeeklyGoal `json:"goals"`
}

type Store struct {
	Version int                 `json:"version"`
	Users   map[string]userData `json:"users"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version: 1,
		Users:   make(map[string]userData),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'habitual init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure maps are initialized
	if s.store.Users == nil {
		s.store.Users = make(map[string]userData)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) LoadEvents(user string) ([]models.HabitEvent, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	// Unknown user is an empty log, not an error
	events := make([]models.HabitEvent, len(s.store.Users[user].Events))
	copy(events, s.store.Users[user].Events)
	return events, nil
}

func (s *JSONStore) SaveEvents(user string, events []models.HabitEvent) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	data := s.store.Users[user]
	data.Events = make([]models.HabitEvent, len(events))
	copy(data.Events, events)
	s.store.Users[user] = data
	return s.save()
}

func (s *JSONStore) LoadGoals(user string) (map[string]models.WeeklyGoal, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	goals := make(map[string]models.WeeklyGoal, len(s.store.Users[user].Goals))
	for habit, goal := range s.store.Users[user].Goals {
		goals[habit] = goal
	}
	return goals, nil
}

func (s *JSONStore) SaveGoals(user string, goals map[string]models.WeeklyGoal) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	data := s.store.Users[user]
	data.Goals = make(map[string]models.WeeklyGoal, len(goals))
	for habit, goal := range goals {
		data.Goals[habit] = goal
	}
	s.store.Users[user] = data
	return s.save()
}

func (s *JSONStore) ListUsers() ([]string, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	users := make([]string, 0, len(s.store.Users))
	for user := range s.store.Users {
		users = append(users, user)
	}
	sort.Strings(users)
	return users, nil
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines
//     without external synchronization.
//   - Running multiple habitual processes that share the same storage
//     path at the same time is not supported and may lead to data loss.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}
