package interpreter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"habitual/internal/models"
	"habitual/internal/taxonomy"
)

const oracleSystemPrompt = "You are a habit tracking assistant. Always respond with valid JSON only."

// oracleIntents is the set of intents the oracle is allowed to return.
var oracleIntents = map[models.Intent]bool{
	models.IntentAdd:           true,
	models.IntentLog:           true,
	models.IntentDelete:        true,
	models.IntentQuery:         true,
	models.IntentDashboard:     true,
	models.IntentSetGoal:       true,
	models.IntentStreakQuery:   true,
	models.IntentProgressQuery: true,
}

type oracleReply struct {
	Intent   string   `json:"intent"`
	Habits   []string `json:"habits"`
	Duration string   `json:"duration"`
	Target   int      `json:"target"`
}

func oraclePrompt(rawText string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Parse this command for a habit tracker: %q\n\n", rawText)
	fmt.Fprintf(&b, "Available habits: %s\n\n", strings.Join(taxonomy.All(), ", "))
	b.WriteString(`Return JSON with these fields:
- intent: 'add', 'log', 'delete', 'query', 'dashboard', 'set_goal', 'streak_query', 'progress_query'
- habits: list of habit names (only from available habits)
- duration: time mentioned (e.g. "1 hour", "30 minutes") or empty string
- target: number for goal setting, or 0

Intent guidelines:
- 'add': "add reading", "create workout habit"
- 'log': "I did reading", "completed workout for 1 hour"
- 'delete': "delete reading", "remove workout"
- 'query': "show reading logs"
- 'dashboard': "show progress", "my stats"
- 'set_goal': "goal for reading is 5 per week"
- 'streak_query': "what's my reading streak"
- 'progress_query': "how am I doing this week"

Examples:
{"intent": "log", "habits": ["reading"], "duration": "1 hour", "target": 0}
{"intent": "set_goal", "habits": ["workout"], "duration": "", "target": 5}
{"intent": "dashboard", "habits": [], "duration": "", "target": 0}
`)
	return b.String()
}

func (in *Interpreter) consultOracle(ctx context.Context, rawText string) (models.Command, error) {
	reply, err := in.oracle.Complete(ctx, oracleSystemPrompt, oraclePrompt(rawText))
	if err != nil {
		return models.Command{}, err
	}
	return parseOracleReply(reply)
}

// parseOracleReply normalizes the oracle's structured payload into a
// Command. Fenced markdown is stripped, habit names are lowercased,
// trimmed, and filtered to taxonomy-known names, and missing fields get
// zero values. Anything unparsable is an error so the caller can fall
// back.
func parseOracleReply(raw string) (models.Command, error) {
	payload := stripFences(raw)

	var r oracleReply
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		return models.Command{}, fmt.Errorf("unparsable oracle reply: %w", err)
	}

	intent := models.Intent(strings.TrimSpace(r.Intent))
	if !oracleIntents[intent] {
		return models.Command{}, fmt.Errorf("oracle returned unknown intent %q", r.Intent)
	}

	habits := []string{}
	seen := make(map[string]bool)
	for _, h := range r.Habits {
		h = strings.ToLower(strings.TrimSpace(h))
		if h == "" || seen[h] || !taxonomy.IsKnown(h) {
			continue
		}
		seen[h] = true
		habits = append(habits, h)
	}

	target := r.Target
	if target < 0 {
		target = 0
	}

	return models.Command{
		Intent:   intent,
		Habits:   habits,
		Duration: strings.TrimSpace(r.Duration),
		Target:   target,
	}, nil
}

// stripFences removes surrounding markdown code-fence markers that
// chat models commonly wrap JSON in.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, "```json"); i >= 0 {
		s = s[i+len("```json"):]
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
	} else if strings.HasPrefix(s, "```") {
		s = strings.ReplaceAll(s, "```", "")
	}
	return strings.TrimSpace(s)
}
