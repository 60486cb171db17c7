package analytics

import (
	"reflect"
	"testing"
	"time"

	"habitual/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func logEvent(habit string, at time.Time) models.HabitEvent {
	return models.HabitEvent{Habit: habit, Action: "Completed " + habit, Time: at, Type: models.EventLog}
}

func TestCurrentStreaks(t *testing.T) {
	today := day(2024, time.January, 3)

	tests := []struct {
		name   string
		events []models.HabitEvent
		want   map[string]int
	}{
		{
			name: "three consecutive days ending today",
			events: []models.HabitEvent{
				logEvent("reading", day(2024, time.January, 1)),
				logEvent("reading", day(2024, time.January, 2)),
				logEvent("reading", day(2024, time.January, 3)),
			},
			want: map[string]int{"reading": 3},
		},
		{
			name: "gap resets streak to today only",
			events: []models.HabitEvent{
				logEvent("reading", day(2024, time.January, 1)),
				logEvent("reading", day(2024, time.January, 3)),
			},
			want: map[string]int{"reading": 1},
		},
		{
			name: "grace day keeps yesterday's streak",
			events: []models.HabitEvent{
				logEvent("yoga", day(2024, time.January, 2)),
			},
			want: map[string]int{"yoga": 1},
		},
		{
			name: "grace day extends backward",
			events: []models.HabitEvent{
				logEvent("yoga", day(2023, time.December, 31)),
				logEvent("yoga", day(2024, time.January, 1)),
				logEvent("yoga", day(2024, time.January, 2)),
			},
			want: map[string]int{"yoga": 3},
		},
		{
			name: "two day old log has no streak",
			events: []models.HabitEvent{
				logEvent("workout", day(2024, time.January, 1)),
			},
			want: map[string]int{},
		},
		{
			name: "duplicate logs on one day count once",
			events: []models.HabitEvent{
				logEvent("reading", day(2024, time.January, 3)),
				logEvent("reading", time.Date(2024, time.January, 3, 20, 0, 0, 0, time.UTC)),
			},
			want: map[string]int{"reading": 1},
		},
		{
			name:   "empty log",
			events: nil,
			want:   map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CurrentStreaks(tt.events, today)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CurrentStreaks = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCurrentStreaksIgnoresNonLogEvents(t *testing.T) {
	today := day(2024, time.January, 3)
	events := []models.HabitEvent{
		logEvent("reading", day(2024, time.January, 2)),
		logEvent("reading", day(2024, time.January, 3)),
		{Habit: "reading", Action: "Added habit: reading", Time: day(2024, time.January, 1), Type: models.EventAdd},
	}

	want := CurrentStreaks(events, today)

	// Moving the add event around must not change the result.
	reordered := []models.HabitEvent{events[2], events[0], events[1]}
	if got := CurrentStreaks(reordered, today); !reflect.DeepEqual(got, want) {
		t.Errorf("reordering non-log events changed streaks: %v vs %v", got, want)
	}
	if want["reading"] != 2 {
		t.Errorf("streak = %d, want 2", want["reading"])
	}
}

func TestLongestStreaks(t *testing.T) {
	events := []models.HabitEvent{
		logEvent("reading", day(2024, time.January, 1)),
		logEvent("reading", day(2024, time.January, 2)),
		logEvent("reading", day(2024, time.January, 5)),
		logEvent("reading", day(2024, time.January, 6)),
		logEvent("reading", day(2024, time.January, 7)),
		logEvent("yoga", day(2024, time.January, 1)),
	}

	want := map[string]int{"reading": 3, "yoga": 1}
	if got := LongestStreaks(events); !reflect.DeepEqual(got, want) {
		t.Errorf("LongestStreaks = %v, want %v", got, want)
	}
}

func TestWeeklyProgress(t *testing.T) {
	// Wednesday 2024-01-10; week starts Monday 2024-01-08.
	now := time.Date(2024, time.January, 10, 15, 0, 0, 0, time.UTC)
	goals := map[string]models.WeeklyGoal{
		"reading": {Habit: "reading", TargetPerWeek: 5},
		"yoga":    {Habit: "yoga", TargetPerWeek: 2},
		"workout": {Habit: "workout", TargetPerWeek: 3},
	}
	events := []models.HabitEvent{
		// Sunday of last week, same month: must not count.
		logEvent("reading", day(2024, time.January, 7)),
		logEvent("reading", day(2024, time.January, 8)),
		logEvent("reading", day(2024, time.January, 9)),
		logEvent("yoga", day(2024, time.January, 9)),
		logEvent("yoga", day(2024, time.January, 10)),
		logEvent("yoga", time.Date(2024, time.January, 10, 18, 0, 0, 0, time.UTC)),
	}

	got := WeeklyProgress(events, goals, now)
	want := map[string]Progress{
		"reading": {Completed: 2, Target: 5, Percentage: 40, Status: StatusInProgress},
		"yoga":    {Completed: 3, Target: 2, Percentage: 100, Status: StatusCompleted},
		"workout": {Completed: 0, Target: 3, Percentage: 0, Status: StatusNotStarted},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WeeklyProgress = %v, want %v", got, want)
	}
}

func TestWeeklyProgressMondayBoundary(t *testing.T) {
	// Reference time is exactly Monday midnight.
	now := time.Date(2024, time.January, 8, 0, 0, 0, 0, time.UTC)
	goals := map[string]models.WeeklyGoal{"reading": {Habit: "reading", TargetPerWeek: 1}}
	events := []models.HabitEvent{
		logEvent("reading", time.Date(2024, time.January, 7, 23, 59, 59, 0, time.UTC)),
		logEvent("reading", now),
	}

	got := WeeklyProgress(events, goals, now)
	if got["reading"].Completed != 1 {
		t.Errorf("completed = %d, want 1 (Sunday event excluded, Monday 00:00 included)", got["reading"].Completed)
	}
}

func TestWeeklyProgressZeroTarget(t *testing.T) {
	now := day(2024, time.January, 10)
	goals := map[string]models.WeeklyGoal{"reading": {Habit: "reading", TargetPerWeek: 0}}
	events := []models.HabitEvent{logEvent("reading", now)}

	got := WeeklyProgress(events, goals, now)
	if got["reading"].Percentage != 0 {
		t.Errorf("percentage = %d, want 0 for target <= 0", got["reading"].Percentage)
	}
	if got["reading"].Status != StatusInProgress {
		t.Errorf("status = %q, want in_progress", got["reading"].Status)
	}
}

func TestSummarize(t *testing.T) {
	now := day(2024, time.January, 3)
	events := []models.HabitEvent{
		logEvent("reading", day(2024, time.January, 2)),
		logEvent("reading", day(2024, time.January, 3)),
		logEvent("yoga", day(2024, time.January, 3)),
		{Habit: "gym", Action: "Added habit: gym", Time: day(2024, time.January, 3), Type: models.EventAdd},
	}

	got := Summarize(events, now)
	want := Summary{TotalCompletions: 3, UniqueHabits: 2, DaysActive: 2, BestStreak: 2, AveragePerDay: 1.5}
	if got != want {
		t.Errorf("Summarize = %+v, want %+v", got, want)
	}
}

func TestSuggestionsEmptyLog(t *testing.T) {
	got := Suggestions(nil)
	want := []string{"reading", "workout", "meditating", "journaling", "drinking water"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Suggestions(empty) = %v, want starter list %v", got, want)
	}
}

func TestSuggestionsNoCompletionsYet(t *testing.T) {
	// A log holding only add-type events gets the short starter list.
	events := []models.HabitEvent{
		{Habit: "yoga", Action: "Added habit: yoga", Time: day(2024, time.January, 1), Type: models.EventAdd},
	}

	got := Suggestions(events)
	want := []string{"reading", "workout", "meditating"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Suggestions(no completions) = %v, want %v", got, want)
	}
}

func TestSuggestionsCappedAtFive(t *testing.T) {
	// Active in four categories: each category scan can add one more
	// suggestion past three, so the cap has to hold at the end.
	events := []models.HabitEvent{
		logEvent("workout", day(2024, time.January, 1)),
		logEvent("reading", day(2024, time.January, 1)),
		logEvent("coding", day(2024, time.January, 1)),
		logEvent("drawing", day(2024, time.January, 1)),
	}

	got := Suggestions(events)
	if len(got) > 5 {
		t.Fatalf("got %d suggestions %v, want at most 5", len(got), got)
	}
	seen := make(map[string]bool)
	for _, h := range got {
		if seen[h] {
			t.Errorf("duplicate suggestion %q in %v", h, got)
		}
		seen[h] = true
	}
}

func TestSuggestionsSameCategoryFirst(t *testing.T) {
	events := []models.HabitEvent{logEvent("workout", day(2024, time.January, 1))}

	got := Suggestions(events)
	if len(got) == 0 || len(got) > 5 {
		t.Fatalf("got %d suggestions, want 1..5", len(got))
	}
	// workout is Health & Fitness; the first suggestion should be
	// another habit from that category.
	if got[0] != "yoga" {
		t.Errorf("first suggestion = %q, want yoga (same category)", got[0])
	}
	for _, h := range got {
		if h == "workout" {
			t.Errorf("suggested an already-active habit: %v", got)
		}
	}
}
