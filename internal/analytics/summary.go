package analytics

import (
	"time"

	"habitual/internal/models"
	"habitual/internal/taxonomy"
)

// Summary aggregates the headline metrics shown on the dashboard and
// in exported reports.
type Summary struct {
	TotalCompletions int     `json:"total_completions"`
	UniqueHabits     int     `json:"unique_habits"`
	DaysActive       int     `json:"days_active"`
	BestStreak       int     `json:"best_streak"`
	AveragePerDay    float64 `json:"average_per_day"`
}

// Summarize computes headline totals over log-type events.
func Summarize(events []models.HabitEvent, now time.Time) Summary {
	var s Summary
	habits := make(map[string]bool)
	days := make(map[time.Time]bool)
	for _, e := range events {
		if e.Type != models.EventLog {
			continue
		}
		s.TotalCompletions++
		habits[e.Habit] = true
		days[midnight(e.Time.In(now.Location()))] = true
	}
	s.UniqueHabits = len(habits)
	s.DaysActive = len(days)
	for _, streak := range CurrentStreaks(events, now) {
		if streak > s.BestStreak {
			s.BestStreak = streak
		}
	}
	if s.DaysActive > 0 {
		s.AveragePerDay = float64(s.TotalCompletions) / float64(s.DaysActive)
	}
	return s
}

const maxSuggestions = 5

// Suggestions recommends up to five habits the user has not logged
// yet: first unstarted habits from categories they are already active
// in, then popular starters. An empty log gets the full starter list;
// a log with no completions yet gets the first three starters.
func Suggestions(events []models.HabitEvent) []string {
	active := make(map[string]bool)
	for _, e := range events {
		if e.Type == models.EventLog {
			active[e.Habit] = true
		}
	}
	if len(active) == 0 {
		if len(events) == 0 {
			return append([]string(nil), taxonomy.Starters...)
		}
		return append([]string(nil), taxonomy.Starters[:3]...)
	}

	categories := make(map[string]bool)
	for habit := range active {
		categories[taxonomy.CategoryOf(habit)] = true
	}

	var out []string
	seen := make(map[string]bool)
	for _, cat := range taxonomy.Categories() {
		if !categories[cat.Name] {
			continue
		}
		for _, habit := range cat.Habits {
			if active[habit] || seen[habit] {
				continue
			}
			out = append(out, habit)
			seen[habit] = true
			if len(out) >= 3 {
				break
			}
		}
	}
	for _, habit := range taxonomy.Starters {
		if len(out) >= maxSuggestions {
			break
		}
		if active[habit] || seen[habit] {
			continue
		}
		out = append(out, habit)
		seen[habit] = true
	}
	// The category phase can overshoot when several categories are active.
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}
