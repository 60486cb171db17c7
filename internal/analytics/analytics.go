// Package analytics computes streaks, weekly progress, and summary
// metrics from a user's event log. All functions are pure: they take
// the event list and an explicit reference time and never mutate their
// inputs. Calendar arithmetic uses the reference time's location, so
// callers passing time.Now() get system-local day boundaries.
package analytics

import (
	"sort"
	"time"

	"habitual/internal/models"
)

// ProgressStatus describes where a habit stands against its weekly goal.
type ProgressStatus string

const (
	StatusCompleted  ProgressStatus = "completed"
	StatusInProgress ProgressStatus = "in_progress"
	StatusNotStarted ProgressStatus = "not_started"
)

// Progress is one habit's standing for the current week.
type Progress struct {
	Completed  int            `json:"completed"`
	Target     int            `json:"target"`
	Percentage int            `json:"percentage"`
	Status     ProgressStatus `json:"status"`
}

// midnight truncates t to 00:00:00 in its own location.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// logDates collects the distinct calendar dates each habit was logged
// on, as midnights in today's location.
func logDates(events []models.HabitEvent, loc *time.Location) map[string][]time.Time {
	seen := make(map[string]map[time.Time]bool)
	for _, e := range events {
		if e.Type != models.EventLog {
			continue
		}
		d := midnight(e.Time.In(loc))
		if seen[e.Habit] == nil {
			seen[e.Habit] = make(map[time.Time]bool)
		}
		seen[e.Habit][d] = true
	}

	dates := make(map[string][]time.Time, len(seen))
	for habit, set := range seen {
		ds := make([]time.Time, 0, len(set))
		for d := range set {
			ds = append(ds, d)
		}
		sort.Slice(ds, func(i, j int) bool { return ds[i].Before(ds[j]) })
		dates[habit] = ds
	}
	return dates
}

// CurrentStreaks returns each habit's run of consecutive logged days
// ending at the reference date. A habit logged yesterday but not yet
// today keeps its streak (one-day grace); any larger gap breaks it.
// Habits with no active streak are omitted.
func CurrentStreaks(events []models.HabitEvent, today time.Time) map[string]int {
	loc := today.Location()
	todayDate := midnight(today)

	streaks := make(map[string]int)
	for habit, dates := range logDates(events, loc) {
		// Walk dates descending from the most recent.
		expected := todayDate
		streak := 0
		for i := len(dates) - 1; i >= 0; i-- {
			d := dates[i]
			if d.Equal(expected) {
				streak++
				expected = expected.AddDate(0, 0, -1)
				continue
			}
			// Grace day: nothing logged today, but yesterday counts.
			if streak == 0 && d.Equal(todayDate.AddDate(0, 0, -1)) {
				streak++
				expected = d.AddDate(0, 0, -1)
				continue
			}
			break
		}
		if streak > 0 {
			streaks[habit] = streak
		}
	}
	return streaks
}

// LongestStreaks returns each habit's longest-ever run of consecutive
// logged days. A single logged date counts as a streak of 1.
func LongestStreaks(events []models.HabitEvent) map[string]int {
	longest := make(map[string]int)
	for habit, dates := range logDates(events, time.Local) {
		best, run := 1, 1
		for i := 1; i < len(dates); i++ {
			if dates[i].Equal(dates[i-1].AddDate(0, 0, 1)) {
				run++
			} else {
				run = 1
			}
			if run > best {
				best = run
			}
		}
		if len(dates) > 0 {
			longest[habit] = best
		}
	}
	return longest
}

// weekStart returns Monday 00:00:00 of now's week in now's location.
func weekStart(now time.Time) time.Time {
	daysSinceMonday := (int(now.Weekday()) + 6) % 7
	return midnight(now).AddDate(0, 0, -daysSinceMonday)
}

// WeeklyProgress reports each goal-holding habit's completions since
// Monday 00:00:00 of the current week against its weekly target.
func WeeklyProgress(events []models.HabitEvent, goals map[string]models.WeeklyGoal, now time.Time) map[string]Progress {
	start := weekStart(now)

	completed := make(map[string]int)
	for _, e := range events {
		if e.Type != models.EventLog {
			continue
		}
		if !e.Time.In(now.Location()).Before(start) {
			completed[e.Habit]++
		}
	}

	progress := make(map[string]Progress, len(goals))
	for habit, goal := range goals {
		p := Progress{Completed: completed[habit], Target: goal.TargetPerWeek}
		if p.Target > 0 {
			pct := 100 * p.Completed / p.Target
			if pct > 100 {
				pct = 100
			}
			p.Percentage = pct
		}
		switch {
		case p.Target > 0 && p.Completed >= p.Target:
			p.Status = StatusCompleted
		case p.Completed > 0:
			p.Status = StatusInProgress
		default:
			p.Status = StatusNotStarted
		}
		progress[habit] = p
	}
	return progress
}
