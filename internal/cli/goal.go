package cli

import (
	"fmt"
	"strings"

	"habitual/internal/models"
	"habitual/internal/taxonomy"
)

type GoalSetCmd struct {
	Habit  string `arg:"" help:"Habit to set the goal for."`
	Target int    `arg:"" help:"Times per week."`
}

func (c *GoalSetCmd) Run(ctx *Context) error {
	habit := strings.ToLower(strings.TrimSpace(c.Habit))
	if !taxonomy.IsKnown(habit) {
		return fmt.Errorf("unknown habit %q, run 'habitual suggest' to see recognized habits", c.Habit)
	}

	sess, err := ctx.Session()
	if err != nil {
		return err
	}
	printResult(sess.Handle(models.Command{
		Intent: models.IntentSetGoal,
		Habits: []string{habit},
		Target: c.Target,
	}))
	return nil
}
