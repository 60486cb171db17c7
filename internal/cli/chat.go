package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"habitual/internal/tui"
)

type ChatCmd struct{}

func (c *ChatCmd) Run(ctx *Context) error {
	sess, err := ctx.Session()
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(sess, ctx.Interpreter()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}

	// Flush anything the auto-save interval hasn't caught yet
	return sess.Save()
}
