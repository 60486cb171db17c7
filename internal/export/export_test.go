package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"habitual/internal/models"
)

func fixtures() ([]models.HabitEvent, map[string]models.WeeklyGoal, time.Time) {
	now := time.Date(2024, time.March, 6, 12, 0, 0, 0, time.UTC) // Wednesday
	events := []models.HabitEvent{
		{ID: "e1", Habit: "reading", Action: "Completed reading", Time: now.AddDate(0, 0, -1), Type: models.EventLog},
		{ID: "e2", Habit: "reading", Action: "Completed reading for 1 hour", Time: now, Type: models.EventLog, Duration: "1 hour"},
		{ID: "e3", Habit: "yoga", Action: "Added habit: yoga", Time: now, Type: models.EventAdd},
	}
	goals := map[string]models.WeeklyGoal{
		"reading": {Habit: "reading", TargetPerWeek: 5, Created: now, Category: "Mental & Learning"},
	}
	return events, goals, now
}

func TestCSV(t *testing.T) {
	events, _, _ := fixtures()

	out, err := CSV(events)
	if err != nil {
		t.Fatalf("CSV: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header + 3 rows", len(lines))
	}
	if lines[0] != "id,habit,action,time,type,duration" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[2], "Completed reading for 1 hour") {
		t.Errorf("row = %q", lines[2])
	}
}

func TestCSVEmpty(t *testing.T) {
	out, err := CSV(nil)
	if err != nil {
		t.Fatalf("CSV: %v", err)
	}
	if strings.TrimRight(out, "\n") != "id,habit,action,time,type,duration" {
		t.Errorf("empty export = %q, want header only", out)
	}
}

func TestJSONEnvelope(t *testing.T) {
	events, goals, now := fixtures()

	out, err := JSON(events, goals, "alice", now)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var env struct {
		User    string `json:"user"`
		Events  []any  `json:"events"`
		Summary struct {
			TotalCompletions int            `json:"total_completions"`
			UniqueHabits     int            `json:"unique_habits"`
			CurrentStreaks   map[string]int `json:"current_streaks"`
		} `json:"summary"`
	}
	if err := json.Unmarshal([]byte(out), &env); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if env.User != "alice" {
		t.Errorf("user = %q", env.User)
	}
	if len(env.Events) != 3 {
		t.Errorf("events = %d, want 3", len(env.Events))
	}
	if env.Summary.TotalCompletions != 2 || env.Summary.UniqueHabits != 1 {
		t.Errorf("summary = %+v", env.Summary)
	}
	if env.Summary.CurrentStreaks["reading"] != 2 {
		t.Errorf("streaks = %v, want reading: 2", env.Summary.CurrentStreaks)
	}
}

func TestReport(t *testing.T) {
	events, goals, now := fixtures()

	report := Report(events, goals, "alice", now)

	for _, want := range []string{
		"HABITUAL PROGRESS REPORT",
		"User: alice",
		"Total Completions: 2",
		"CURRENT STREAKS",
		"reading: 2 days",
		"LONGEST STREAKS",
		"WEEKLY PROGRESS",
		"reading: 2/5 (40%)",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestReportEmpty(t *testing.T) {
	report := Report(nil, nil, "alice", time.Now())
	for _, want := range []string{"No active streaks", "No streak records yet", "No weekly goals set"} {
		if !strings.Contains(report, want) {
			t.Errorf("empty report missing %q", want)
		}
	}
}
