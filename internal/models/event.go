package models

import "time"

type EventType string

const (
	EventLog EventType = "log"
	EventAdd EventType = "add"
)

// HabitEvent is a single entry in a user's append-only habit log.
// Events are only created by the executor after confirmation; deletion
// removes every event for a habit rather than marking them.
type HabitEvent struct {
	ID       string    `json:"id"`
	Habit    string    `json:"habit"`
	Action   string    `json:"action"`
	Time     time.Time `json:"time"`
	Type     EventType `json:"type"`
	Duration string    `json:"duration,omitempty"`
}

// WeeklyGoal is a per-habit weekly completion target. There is at most
// one goal per habit per user; setting a goal again overwrites it.
type WeeklyGoal struct {
	Habit         string    `json:"habit"`
	TargetPerWeek int       `json:"target_per_week"`
	Created       time.Time `json:"created"`
	Category      string    `json:"category"`
}
