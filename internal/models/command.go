package models

import "time"

// Intent is the classified purpose of a user command.
type Intent string

const (
	IntentLog           Intent = "log"
	IntentAdd           Intent = "add"
	IntentDelete        Intent = "delete"
	IntentSetGoal       Intent = "set_goal"
	IntentStreakQuery   Intent = "streak_query"
	IntentProgressQuery Intent = "progress_query"
	IntentDashboard     Intent = "dashboard"
	IntentConfirm       Intent = "confirm"
	IntentCancel        Intent = "cancel"
	IntentHelp          Intent = "help"
	IntentExport        Intent = "export"
	IntentQuery         Intent = "query"
)

// Command is the normalized result of interpreting raw command text.
// Habits only ever contains taxonomy-known names, deduplicated, in the
// order they were first seen.
type Command struct {
	Intent   Intent   `json:"intent"`
	Habits   []string `json:"habits"`
	Duration string   `json:"duration"`
	Target   int      `json:"target"`
}

// Mutating reports whether the command's intent requires explicit user
// confirmation before it is applied.
func (c Command) Mutating() bool {
	switch c.Intent {
	case IntentLog, IntentAdd, IntentDelete:
		return true
	}
	return false
}

// PendingAction is a proposed mutation awaiting user confirmation. A
// session holds at most one; a newer proposal replaces it.
type PendingAction struct {
	Habit      string
	Duration   string
	ActionText string
	ActionType Intent
	User       string
	Timestamp  time.Time
}
