// Package interpreter turns free-form command text into a normalized
// Command. Cheap deterministic layers (regex goal extraction, keyword
// intent detection) are tried first; only genuinely ambiguous phrasing
// is sent to the remote oracle, and any oracle failure degrades to a
// deterministic keyword parse. Interpret never fails outward.
package interpreter

import (
	"context"
	"fmt"
	"os"
	"strings"

	"habitual/internal/models"
	"habitual/internal/oracle"
)

type Interpreter struct {
	oracle oracle.Client
	debug  bool
}

// New creates an interpreter. The oracle client may be nil, in which
// case the deterministic fallback parse handles everything the keyword
// layers miss.
func New(client oracle.Client, debug bool) *Interpreter {
	return &Interpreter{oracle: client, debug: debug}
}

// Interpret resolves raw command text into a Command. Resolution order:
// goal-setting patterns, keyword intent rules (fixed priority), oracle
// fallback, deterministic fallback parse. First match wins.
func (in *Interpreter) Interpret(ctx context.Context, rawText string) models.Command {
	text := strings.ToLower(strings.TrimSpace(rawText))
	words := wordSet(text)

	if habit, target, ok := extractGoal(text); ok {
		return models.Command{Intent: models.IntentSetGoal, Habits: []string{habit}, Target: target}
	}

	for _, rule := range intentRules {
		if !matchKeywords(text, words, rule.keywords) {
			continue
		}
		cmd := models.Command{Intent: rule.intent, Habits: []string{}}
		if rule.scanHabit {
			if h, ok := firstHabit(text); ok {
				cmd.Habits = []string{h}
			}
		}
		return cmd
	}

	if in.oracle != nil {
		cmd, err := in.consultOracle(ctx, rawText)
		if err == nil {
			return cmd
		}
		if in.debug {
			fmt.Fprintf(os.Stderr, "habitual: oracle parse failed: %v (using fallback)\n", err)
		}
	}

	return fallbackParse(text)
}
