package interpreter

import (
	"strings"

	"habitual/internal/models"
)

// fallbackParse is the last-resort parse used when neither the
// deterministic layers nor the oracle produced a Command. It always
// succeeds: unrecognized text becomes a log command with whatever
// habits and duration are extractable.
func fallbackParse(text string) models.Command {
	cmd := models.Command{
		Intent:   models.IntentLog,
		Habits:   scanHabits(text),
		Duration: extractDuration(text),
	}

	switch {
	case strings.Contains(text, "add") || strings.Contains(text, "create"):
		cmd.Intent = models.IntentAdd
	case strings.Contains(text, "delete") || strings.Contains(text, "remove"):
		cmd.Intent = models.IntentDelete
	case strings.Contains(text, "goal") && containsDigit(text):
		cmd.Intent = models.IntentSetGoal
		cmd.Target = firstInteger(text, 7)
	}

	return cmd
}

func containsDigit(text string) bool {
	return strings.ContainsAny(text, "0123456789")
}
