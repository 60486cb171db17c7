package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"

	"habitual/internal/session"
)

func newViewport(width, height int) viewport.Model {
	vp := viewport.New(width, height)
	vp.MouseWheelEnabled = true
	return vp
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	title := titleStyle.Render(fmt.Sprintf("habitual — %s", m.sess.User))
	hint := hintStyle.Render(m.promptHint())

	return fmt.Sprintf("%s\n%s\n%s %s\n%s",
		title,
		m.vp.View(),
		promptStyle.Render(">"),
		m.input.View(),
		hint,
	)
}

func renderEntry(e entry, width int) string {
	if e.role == roleUser {
		return userStyle.Render("you: " + e.text)
	}
	style := assistantStyle
	switch e.kind {
	case session.ResultWarning:
		style = warningStyle
	case session.ResultTimeout:
		style = timeoutStyle
	case session.ResultConfirm:
		style = confirmStyle
	}
	if width > 4 {
		style = style.Width(width - 2)
	}
	return style.Render(e.text)
}
