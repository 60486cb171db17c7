package session

import (
	"fmt"
	"sort"
	"strings"

	"habitual/internal/analytics"
)

const helpText = `Here's what I understand:
  "I did reading for 30 minutes"         log a completion
  "add yoga"                             start tracking a habit
  "delete gym"                           remove a habit and its logs
  "set goal for reading 5 times a week"  set a weekly goal
  "what's my reading streak"             current streak
  "how am I doing this week"             weekly progress
  "show my dashboard"                    overall stats
Confirm proposed actions with "yes", or "no" to cancel.`

// streakReport renders current streaks, either for the named habit or
// for every habit with an active streak.
func (s *Session) streakReport(habits []string) Result {
	streaks := analytics.CurrentStreaks(s.Events, s.now())

	if len(habits) > 0 {
		habit := habits[0]
		if n, ok := streaks[habit]; ok {
			return Result{ResultOK, fmt.Sprintf("Your %s streak is %d %s. Keep it going!", habit, n, days(n))}
		}
		return Result{ResultInfo, fmt.Sprintf("No active streak for %s yet. Log it today to start one!", habit)}
	}

	if len(streaks) == 0 {
		return Result{ResultInfo, "No active streaks yet. Log a habit today to start one!"}
	}

	var b strings.Builder
	b.WriteString("Current streaks:\n")
	for _, habit := range sortedKeys(streaks) {
		fmt.Fprintf(&b, "  %s: %d %s\n", habit, streaks[habit], days(streaks[habit]))
	}
	return Result{ResultOK, strings.TrimRight(b.String(), "\n")}
}

// progressReport renders this week's goal progress.
func (s *Session) progressReport() Result {
	progress := analytics.WeeklyProgress(s.Events, s.Goals, s.now())
	if len(progress) == 0 {
		return Result{ResultInfo, "No weekly goals set. Try 'set goal for reading 5 times a week'."}
	}

	var b strings.Builder
	b.WriteString("This week:\n")
	for _, habit := range sortedKeys(progress) {
		p := progress[habit]
		fmt.Fprintf(&b, "  %s: %d/%d (%d%%) %s\n", habit, p.Completed, p.Target, p.Percentage, statusLabel(p.Status))
	}
	return Result{ResultOK, strings.TrimRight(b.String(), "\n")}
}

// dashboardReport renders the summary totals plus streaks and progress.
func (s *Session) dashboardReport() Result {
	sum := analytics.Summarize(s.Events, s.now())
	if sum.TotalCompletions == 0 {
		return Result{ResultInfo, "Nothing logged yet. Tell me about a habit you completed to get started!"}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Completions: %d across %d habits on %d days (%.1f/day). Best streak: %d %s.",
		sum.TotalCompletions, sum.UniqueHabits, sum.DaysActive, sum.AveragePerDay, sum.BestStreak, days(sum.BestStreak))

	if r := s.streakReport(nil); r.Kind == ResultOK {
		b.WriteString("\n")
		b.WriteString(r.Message)
	}
	if r := s.progressReport(); r.Kind == ResultOK {
		b.WriteString("\n")
		b.WriteString(r.Message)
	}
	return Result{ResultOK, b.String()}
}

const recentLimit = 5

// recentActivity lists the most recent events, optionally filtered to
// the named habits.
func (s *Session) recentActivity(habits []string) Result {
	wanted := make(map[string]bool, len(habits))
	for _, h := range habits {
		wanted[h] = true
	}

	var lines []string
	for i := len(s.Events) - 1; i >= 0 && len(lines) < recentLimit; i-- {
		e := s.Events[i]
		if len(wanted) > 0 && !wanted[e.Habit] {
			continue
		}
		lines = append(lines, fmt.Sprintf("  %s  %s", e.Time.Format("Mon Jan 2 15:04"), e.Action))
	}

	if len(lines) == 0 {
		return Result{ResultInfo, "No matching activity yet."}
	}
	return Result{ResultOK, "Recent activity:\n" + strings.Join(lines, "\n")}
}

func statusLabel(status analytics.ProgressStatus) string {
	switch status {
	case analytics.StatusCompleted:
		return "done!"
	case analytics.StatusInProgress:
		return "in progress"
	}
	return "not started"
}

func days(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
