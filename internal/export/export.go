// Package export serializes a user's events and goals as CSV, JSON
// with a summary envelope, or a plain-text progress report.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"habitual/internal/analytics"
	"habitual/internal/models"
)

// CSV renders the raw event log, one row per event.
func CSV(events []models.HabitEvent) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	if err := w.Write([]string{"id", "habit", "action", "time", "type", "duration"}); err != nil {
		return "", err
	}
	for _, e := range events {
		row := []string{e.ID, e.Habit, e.Action, e.Time.Format(time.RFC3339), string(e.Type), e.Duration}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return b.String(), nil
}

type envelope struct {
	User       string                       `json:"user"`
	ExportDate string                       `json:"export_date"`
	Events     []models.HabitEvent          `json:"events"`
	Goals      map[string]models.WeeklyGoal `json:"goals"`
	Summary    summary                      `json:"summary"`
}

type summary struct {
	TotalCompletions int            `json:"total_completions"`
	UniqueHabits     int            `json:"unique_habits"`
	CurrentStreaks   map[string]int `json:"current_streaks"`
}

// JSON renders the full export envelope: events, goals, and a summary
// with current streaks.
func JSON(events []models.HabitEvent, goals map[string]models.WeeklyGoal, user string, now time.Time) (string, error) {
	sum := analytics.Summarize(events, now)
	env := envelope{
		User:       user,
		ExportDate: now.Format(time.RFC3339),
		Events:     events,
		Goals:      goals,
		Summary: summary{
			TotalCompletions: sum.TotalCompletions,
			UniqueHabits:     sum.UniqueHabits,
			CurrentStreaks:   analytics.CurrentStreaks(events, now),
		},
	}
	if env.Events == nil {
		env.Events = []models.HabitEvent{}
	}
	if env.Goals == nil {
		env.Goals = map[string]models.WeeklyGoal{}
	}

	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize export: %w", err)
	}
	return string(data), nil
}

// Report renders a human-readable progress report.
func Report(events []models.HabitEvent, goals map[string]models.WeeklyGoal, user string, now time.Time) string {
	sum := analytics.Summarize(events, now)
	current := analytics.CurrentStreaks(events, now)
	longest := analytics.LongestStreaks(events)
	progress := analytics.WeeklyProgress(events, goals, now)

	var b strings.Builder
	fmt.Fprintf(&b, "HABITUAL PROGRESS REPORT\n")
	fmt.Fprintf(&b, "User: %s\n", user)
	fmt.Fprintf(&b, "Generated: %s\n\n", now.Format("2006-01-02 15:04:05"))

	section(&b, "SUMMARY")
	fmt.Fprintf(&b, "Total Completions: %d\n", sum.TotalCompletions)
	fmt.Fprintf(&b, "Unique Habits: %d\n", sum.UniqueHabits)
	fmt.Fprintf(&b, "Days Active: %d\n", sum.DaysActive)
	fmt.Fprintf(&b, "Best Streak: %d days\n", sum.BestStreak)

	section(&b, "CURRENT STREAKS")
	writeStreaks(&b, current, "No active streaks")

	section(&b, "LONGEST STREAKS")
	writeStreaks(&b, longest, "No streak records yet")

	section(&b, "WEEKLY PROGRESS")
	if len(progress) == 0 {
		b.WriteString("No weekly goals set\n")
	} else {
		habits := make([]string, 0, len(progress))
		for h := range progress {
			habits = append(habits, h)
		}
		sort.Strings(habits)
		for _, h := range habits {
			p := progress[h]
			fmt.Fprintf(&b, "%s: %d/%d (%d%%)\n", h, p.Completed, p.Target, p.Percentage)
		}
	}

	return b.String()
}

func section(b *strings.Builder, title string) {
	fmt.Fprintf(b, "\n==================== %s ====================\n", title)
}

// writeStreaks lists streaks longest-first, habit name as tie-break.
func writeStreaks(b *strings.Builder, streaks map[string]int, empty string) {
	if len(streaks) == 0 {
		b.WriteString(empty + "\n")
		return
	}
	habits := make([]string, 0, len(streaks))
	for h := range streaks {
		habits = append(habits, h)
	}
	sort.Slice(habits, func(i, j int) bool {
		if streaks[habits[i]] != streaks[habits[j]] {
			return streaks[habits[i]] > streaks[habits[j]]
		}
		return habits[i] < habits[j]
	})
	for _, h := range habits {
		fmt.Fprintf(b, "%s: %d days\n", h, streaks[h])
	}
}
