package interpreter

import (
	"regexp"
	"strconv"
	"strings"

	"habitual/internal/taxonomy"
)

// goalPatterns is an ordered table of goal-setting phrasings. Every
// pattern captures (habit, target) in groups 1 and 2; patterns are
// tried in order and the first match wins. New phrasings go at the end
// so existing matches keep their priority.
var goalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`set goal (?:for )?([a-z ]+?) (\d+) times? (?:per|a|each) week`),
	regexp.MustCompile(`i want to do ([a-z ]+?) (\d+) times? (?:per|a|each) week`),
	regexp.MustCompile(`goal for ([a-z ]+?) is (\d+) (?:per|a|each) week`),
	regexp.MustCompile(`([a-z ]+?) goal (\d+) times? weekly`),
	regexp.MustCompile(`target ([a-z ]+?) (\d+) times? (?:per|a) week`),
}

var (
	durationPattern = regexp.MustCompile(`(\d+)\s*(hour|minute|min)s?`)
	integerPattern  = regexp.MustCompile(`\d+`)
)

// extractGoal scans the goal pattern table against lowercased text.
// Matches whose captured habit is not taxonomy-known are ignored so the
// later layers get a chance at the text.
func extractGoal(text string) (string, int, bool) {
	for _, p := range goalPatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		habit := strings.TrimSpace(m[1])
		if !taxonomy.IsKnown(habit) {
			continue
		}
		target, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		return habit, target, true
	}
	return "", 0, false
}

// extractDuration returns the first duration mention, e.g. "30 minutes",
// or "" if none.
func extractDuration(text string) string {
	return durationPattern.FindString(text)
}

// firstInteger returns the first integer in the text, or fallback if
// there is none or it does not parse.
func firstInteger(text string, fallback int) int {
	m := integerPattern.FindString(text)
	if m == "" {
		return fallback
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return fallback
	}
	return n
}

// firstHabit returns the first taxonomy habit that appears as a
// substring of the text, in canonical taxonomy order.
func firstHabit(text string) (string, bool) {
	for _, h := range taxonomy.All() {
		if strings.Contains(text, h) {
			return h, true
		}
	}
	return "", false
}

// scanHabits returns every taxonomy habit appearing as a substring of
// the text, in canonical taxonomy order.
func scanHabits(text string) []string {
	habits := []string{}
	for _, h := range taxonomy.All() {
		if strings.Contains(text, h) {
			habits = append(habits, h)
		}
	}
	return habits
}
