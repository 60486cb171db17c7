package cli

import (
	"habitual/internal/models"
)

type StreaksCmd struct {
	Habit string `arg:"" optional:"" help:"Show only this habit's streak."`
}

func (c *StreaksCmd) Run(ctx *Context) error {
	return runQuery(ctx, models.Command{Intent: models.IntentStreakQuery, Habits: habitArg(c.Habit)})
}

type ProgressCmd struct{}

func (c *ProgressCmd) Run(ctx *Context) error {
	return runQuery(ctx, models.Command{Intent: models.IntentProgressQuery, Habits: []string{}})
}

type DashboardCmd struct{}

func (c *DashboardCmd) Run(ctx *Context) error {
	return runQuery(ctx, models.Command{Intent: models.IntentDashboard, Habits: []string{}})
}

func runQuery(ctx *Context, cmd models.Command) error {
	sess, err := ctx.Session()
	if err != nil {
		return err
	}
	printResult(sess.Handle(cmd))
	return nil
}

func habitArg(habit string) []string {
	if habit == "" {
		return []string{}
	}
	return []string{habit}
}
