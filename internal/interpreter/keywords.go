package interpreter

import (
	"strings"
	"unicode"

	"habitual/internal/models"
)

var (
	streakKeywords    = []string{"streak", "how many days", "consecutive", "in a row", "daily streak"}
	progressKeywords  = []string{"how am i doing", "weekly progress", "this week", "my progress", "progress report"}
	dashboardKeywords = []string{"progress", "dashboard", "stats", "analytics", "how am i doing", "show my", "report"}
	cancelWords       = []string{"no", "cancel", "wrong", "not correct", "nope"}
	confirmWords      = []string{"yes", "confirm", "correct", "that's right", "yep"}
	helpWords         = []string{"help", "how to use", "instructions", "what can i say"}
	exportWords       = []string{"export", "download", "backup", "save data"}
)

// intentRule pairs a keyword set with the intent it resolves to. Rules
// are evaluated in slice order, which encodes the tie-breaks:
//   - progress_query keywords are checked before the broader dashboard
//     set they overlap with;
//   - cancel is checked before confirm because negations ("not
//     correct") contain the affirmation word.
type intentRule struct {
	keywords  []string
	intent    models.Intent
	scanHabit bool
}

var intentRules = []intentRule{
	{streakKeywords, models.IntentStreakQuery, true},
	{progressKeywords, models.IntentProgressQuery, false},
	{dashboardKeywords, models.IntentDashboard, false},
	{cancelWords, models.IntentCancel, false},
	{confirmWords, models.IntentConfirm, false},
	{helpWords, models.IntentHelp, false},
	{exportWords, models.IntentExport, false},
}

// wordSet splits lowercased text into words, stripping punctuation, for
// whole-word keyword matching.
func wordSet(text string) map[string]bool {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	words := make(map[string]bool, len(fields))
	for _, f := range fields {
		words[f] = true
	}
	return words
}

// matchKeywords reports whether any keyword is present in the text.
// Multi-word keywords match as substrings; single words must match a
// whole word so that e.g. "now" does not trigger "no".
func matchKeywords(text string, words map[string]bool, keywords []string) bool {
	for _, k := range keywords {
		if strings.ContainsRune(k, ' ') || strings.ContainsRune(k, '\'') {
			if strings.Contains(text, k) {
				return true
			}
			continue
		}
		if words[k] {
			return true
		}
	}
	return false
}
