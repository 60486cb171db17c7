package cli

import (
	"context"
	"fmt"
	"strings"

	"habitual/internal/models"
	"habitual/internal/session"

	"github.com/charmbracelet/huh"
)

type DoCmd struct {
	Text []string `arg:"" help:"Natural-language command, e.g. 'I did reading for 30 minutes'."`
	Yes  bool     `short:"y" help:"Apply without asking for confirmation."`
}

func (c *DoCmd) Run(ctx *Context) error {
	sess, err := ctx.Session()
	if err != nil {
		return err
	}

	text := strings.Join(c.Text, " ")
	cmd := ctx.Interpreter().Interpret(context.Background(), text)
	res := sess.Handle(cmd)

	if res.Kind == session.ResultConfirm {
		confirmed := c.Yes
		if !confirmed {
			pending := sess.Pending()
			form := huh.NewForm(huh.NewGroup(
				huh.NewConfirm().
					Title(pending.ActionText).
					Affirmative("Yes").
					Negative("No").
					Value(&confirmed),
			))
			if err := form.Run(); err != nil {
				return err
			}
		}

		followUp := models.IntentCancel
		if confirmed {
			followUp = models.IntentConfirm
		}
		res = sess.Handle(models.Command{Intent: followUp, Habits: []string{}})
	}

	printResult(res)
	return nil
}

func printResult(res session.Result) {
	switch res.Kind {
	case session.ResultWarning, session.ResultTimeout:
		fmt.Printf("! %s\n", res.Message)
	default:
		fmt.Println(res.Message)
	}
}
