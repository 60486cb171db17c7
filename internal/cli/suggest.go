package cli

import (
	"fmt"

	"habitual/internal/analytics"
	"habitual/internal/taxonomy"
)

type SuggestCmd struct {
	All bool `help:"List every recognized habit by category instead of personalized suggestions."`
}

func (c *SuggestCmd) Run(ctx *Context) error {
	if c.All {
		for _, cat := range taxonomy.Categories() {
			fmt.Printf("%s:\n", cat.Name)
			for _, habit := range cat.Habits {
				if target, ok := taxonomy.DefaultGoal(habit); ok {
					fmt.Printf("  %s (default goal: %dx/week)\n", habit, target)
				} else {
					fmt.Printf("  %s\n", habit)
				}
			}
		}
		return nil
	}

	sess, err := ctx.Session()
	if err != nil {
		return err
	}

	suggestions := analytics.Suggestions(sess.Events)
	if len(suggestions) == 0 {
		fmt.Println("You're already tracking everything I know about!")
		return nil
	}

	fmt.Println("You might like to try:")
	for _, habit := range suggestions {
		fmt.Printf("  %s\n", habit)
	}
	return nil
}
