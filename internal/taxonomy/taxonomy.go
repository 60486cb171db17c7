// Package taxonomy holds the static registry of recognized habit names,
// their categories, and default weekly targets. It is fixed at process
// start and shared read-only by every other component.
package taxonomy

// Category groups related canonical habit names. Declaration order is
// the canonical iteration order for habit scans.
type Category struct {
	Name   string
	Habits []string
}

var categories = []Category{
	{Name: "Health & Fitness", Habits: []string{"workout", "yoga", "running", "gym", "walking", "stretching", "sports"}},
	{Name: "Mental & Learning", Habits: []string{"reading", "meditating", "journaling", "learning", "studying", "gratitude"}},
	{Name: "Productivity", Habits: []string{"coding", "writing", "planning", "organizing", "learning english"}},
	{Name: "Lifestyle", Habits: []string{"sleep early", "no phone", "drinking water", "healthy eating", "cleaning", "cooking"}},
	{Name: "Creative", Habits: []string{"drawing", "music", "photography", "crafting", "dancing"}},
	{Name: "Social", Habits: []string{"calling family", "meeting friends", "networking", "volunteering"}},
}

var defaultGoals = map[string]int{
	"workout": 5, "running": 4, "yoga": 6, "gym": 4,
	"reading": 7, "meditating": 7, "journaling": 7,
	"coding": 5, "learning": 5, "studying": 5,
	"drinking water": 7, "sleep early": 7, "healthy eating": 7,
}

// Starters is shown to new users with no habit history.
var Starters = []string{"reading", "workout", "meditating", "journaling", "drinking water"}

var (
	all           []string
	categoryIndex map[string]string
)

func init() {
	categoryIndex = make(map[string]string)
	for _, c := range categories {
		for _, h := range c.Habits {
			all = append(all, h)
			categoryIndex[h] = c.Name
		}
	}
}

// All returns every known habit name in canonical iteration order.
func All() []string {
	out := make([]string, len(all))
	copy(out, all)
	return out
}

// Categories returns the ordered category list.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// IsKnown reports whether the habit name is in the registry.
func IsKnown(habit string) bool {
	_, ok := categoryIndex[habit]
	return ok
}

// CategoryOf returns the category for a habit, or "Other" for names
// outside the registry.
func CategoryOf(habit string) string {
	if c, ok := categoryIndex[habit]; ok {
		return c
	}
	return "Other"
}

// DefaultGoal returns the default weekly target for a habit, if one is
// defined.
func DefaultGoal(habit string) (int, bool) {
	n, ok := defaultGoals[habit]
	return n, ok
}
