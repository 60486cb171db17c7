package interpreter

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"habitual/internal/models"
)

// stubOracle returns a canned reply or error for every completion.
type stubOracle struct {
	reply string
	err   error
	calls int
}

func (s *stubOracle) Complete(_ context.Context, _, _ string) (string, error) {
	s.calls++
	return s.reply, s.err
}

func TestInterpretGoalPatterns(t *testing.T) {
	tests := []struct {
		text   string
		habit  string
		target int
	}{
		{"set goal for yoga 4 times per week", "yoga", 4},
		{"set goal yoga 4 times a week", "yoga", 4},
		{"i want to do running 3 times each week", "running", 3},
		{"goal for reading is 5 per week", "reading", 5},
		{"meditating goal 7 times weekly", "meditating", 7},
		{"target workout 5 times per week", "workout", 5},
	}

	in := New(nil, false)
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			cmd := in.Interpret(context.Background(), tt.text)
			if cmd.Intent != models.IntentSetGoal {
				t.Fatalf("intent = %q, want set_goal", cmd.Intent)
			}
			if len(cmd.Habits) != 1 || cmd.Habits[0] != tt.habit {
				t.Errorf("habits = %v, want [%s]", cmd.Habits, tt.habit)
			}
			if cmd.Target != tt.target {
				t.Errorf("target = %d, want %d", cmd.Target, tt.target)
			}
		})
	}
}

func TestInterpretGoalUnknownHabitFallsThrough(t *testing.T) {
	in := New(nil, false)
	cmd := in.Interpret(context.Background(), "set goal for basket weaving 3 times per week")
	if cmd.Intent == models.IntentSetGoal {
		t.Fatalf("unknown habit should not produce set_goal, got %+v", cmd)
	}
}

func TestInterpretKeywordIntents(t *testing.T) {
	tests := []struct {
		text   string
		intent models.Intent
		habits []string
	}{
		{"what's my reading streak", models.IntentStreakQuery, []string{"reading"}},
		{"how many days in a row", models.IntentStreakQuery, []string{}},
		{"how am i doing this week", models.IntentProgressQuery, []string{}},
		{"show my progress report", models.IntentProgressQuery, []string{}},
		{"show dashboard", models.IntentDashboard, []string{}},
		{"my stats", models.IntentDashboard, []string{}},
		{"yes", models.IntentConfirm, []string{}},
		{"that's right", models.IntentConfirm, []string{}},
		{"cancel", models.IntentCancel, []string{}},
		{"no", models.IntentCancel, []string{}},
		{"help", models.IntentHelp, []string{}},
		{"what can i say", models.IntentHelp, []string{}},
		{"export my data", models.IntentExport, []string{}},
	}

	in := New(nil, false)
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			cmd := in.Interpret(context.Background(), tt.text)
			if cmd.Intent != tt.intent {
				t.Fatalf("intent = %q, want %q", cmd.Intent, tt.intent)
			}
			if !reflect.DeepEqual(cmd.Habits, tt.habits) {
				t.Errorf("habits = %v, want %v", cmd.Habits, tt.habits)
			}
		})
	}
}

func TestInterpretCancelBeatsConfirm(t *testing.T) {
	// "not correct" contains the affirmation word "correct"; the
	// negation must win.
	in := New(nil, false)
	cmd := in.Interpret(context.Background(), "no that's not correct")
	if cmd.Intent != models.IntentCancel {
		t.Fatalf("intent = %q, want cancel", cmd.Intent)
	}
}

func TestInterpretWholeWordKeywords(t *testing.T) {
	// "now" must not trigger the cancel word "no".
	in := New(nil, false)
	cmd := in.Interpret(context.Background(), "i did yoga just now")
	if cmd.Intent == models.IntentCancel {
		t.Fatalf("substring of a word matched cancel: %+v", cmd)
	}
}

func TestInterpretOracleSuccess(t *testing.T) {
	st := &stubOracle{reply: `{"intent": "log", "habits": ["reading"], "duration": "1 hour", "target": 0}`}
	in := New(st, false)

	cmd := in.Interpret(context.Background(), "finished a chapter of my book")
	if st.calls != 1 {
		t.Fatalf("oracle calls = %d, want 1", st.calls)
	}
	want := models.Command{Intent: models.IntentLog, Habits: []string{"reading"}, Duration: "1 hour"}
	if !reflect.DeepEqual(cmd, want) {
		t.Errorf("cmd = %+v, want %+v", cmd, want)
	}
}

func TestInterpretOracleFencedReply(t *testing.T) {
	st := &stubOracle{reply: "```json\n{\"intent\": \"add\", \"habits\": [\"Yoga\", \"yoga\", \"skydiving\"], \"duration\": \"\", \"target\": 0}\n```"}
	in := New(st, false)

	cmd := in.Interpret(context.Background(), "i'd like to start doing some stretching poses")
	if cmd.Intent != models.IntentAdd {
		t.Fatalf("intent = %q, want add", cmd.Intent)
	}
	// Case-folded, deduplicated, unknown names dropped.
	if !reflect.DeepEqual(cmd.Habits, []string{"yoga"}) {
		t.Errorf("habits = %v, want [yoga]", cmd.Habits)
	}
}

func TestInterpretOracleNotCalledForKeywordMatch(t *testing.T) {
	st := &stubOracle{reply: `{"intent": "log", "habits": [], "duration": "", "target": 0}`}
	in := New(st, false)

	in.Interpret(context.Background(), "show dashboard")
	if st.calls != 0 {
		t.Errorf("oracle called %d times for keyword-resolvable text", st.calls)
	}
}

func TestInterpretOracleFailureFallsBack(t *testing.T) {
	tests := []struct {
		name   string
		oracle *stubOracle
	}{
		{"transport error", &stubOracle{err: errors.New("connection refused")}},
		{"invalid json", &stubOracle{reply: "I think you did a workout!"}},
		{"unknown intent", &stubOracle{reply: `{"intent": "celebrate", "habits": [], "duration": "", "target": 0}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := New(tt.oracle, false)
			cmd := in.Interpret(context.Background(), "did reading and workout today")
			if cmd.Intent != models.IntentLog {
				t.Fatalf("intent = %q, want log from fallback", cmd.Intent)
			}
			if !reflect.DeepEqual(cmd.Habits, []string{"workout", "reading"}) {
				t.Errorf("habits = %v, want [workout reading]", cmd.Habits)
			}
		})
	}
}

func TestFallbackParse(t *testing.T) {
	tests := []struct {
		text string
		want models.Command
	}{
		{"i did reading and workout", models.Command{Intent: models.IntentLog, Habits: []string{"workout", "reading"}}},
		{"did yoga for 30 minutes", models.Command{Intent: models.IntentLog, Habits: []string{"yoga"}, Duration: "30 minutes"}},
		{"add gym", models.Command{Intent: models.IntentAdd, Habits: []string{"gym"}}},
		{"create a journaling habit", models.Command{Intent: models.IntentAdd, Habits: []string{"journaling"}}},
		{"remove running", models.Command{Intent: models.IntentDelete, Habits: []string{"running"}}},
		{"reading goal 5", models.Command{Intent: models.IntentSetGoal, Habits: []string{"reading"}, Target: 5}},
		{"something about a goal", models.Command{Intent: models.IntentLog, Habits: []string{}}},
		{"hello there", models.Command{Intent: models.IntentLog, Habits: []string{}}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := fallbackParse(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("fallbackParse(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractDuration(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"did yoga for 30 minutes", "30 minutes"},
		{"workout for 1 hour", "1 hour"},
		{"ran 45 min", "45 min"},
		{"did some reading", ""},
	}
	for _, tt := range tests {
		if got := extractDuration(tt.text); got != tt.want {
			t.Errorf("extractDuration(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare json", `{"a": 1}`, `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"plain fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"leading prose then fence", "Sure:\n```json\n{\"a\": 1}\n```", `{"a": 1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripFences(tt.in); got != tt.want {
				t.Errorf("stripFences = %q, want %q", got, tt.want)
			}
		})
	}
}
