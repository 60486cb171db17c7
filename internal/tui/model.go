// Package tui is the interactive chat surface: a transcript viewport
// over a text prompt, feeding typed commands through the interpreter
// into the session.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"habitual/internal/interpreter"
	"habitual/internal/session"
)

type role int

const (
	roleUser role = iota
	roleAssistant
)

type entry struct {
	role role
	kind session.ResultKind
	text string
}

// replyMsg carries the session's response to one submitted command.
type replyMsg struct {
	result session.Result
}

type Model struct {
	sess    *session.Session
	interp  *interpreter.Interpreter
	input   textinput.Model
	vp      viewport.Model
	entries []entry
	waiting bool
	ready   bool
	width   int
	height  int
}

func NewModel(sess *session.Session, interp *interpreter.Interpreter) Model {
	ti := textinput.New()
	ti.Placeholder = "Tell me what you did, or ask how you're doing..."
	ti.Focus()
	ti.CharLimit = 200

	return Model{
		sess:   sess,
		interp: interp,
		input:  ti,
		entries: []entry{{
			role: roleAssistant,
			kind: session.ResultInfo,
			text: "Hi! Tell me about a habit you completed, or say 'help'.",
		}},
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// submit interprets the raw text and runs it through the session. The
// oracle call inside Interpret can block on the network, so this runs
// as a command rather than inline in Update.
func (m *Model) submit(text string) tea.Cmd {
	sess, interp := m.sess, m.interp
	return func() tea.Msg {
		cmd := interp.Interpret(context.Background(), text)
		result := sess.Handle(cmd)
		// Opportunistic save; failures surface on mutation results
		_ = sess.AutoSave()
		return replyMsg{result: result}
	}
}

func (m *Model) push(e entry) {
	m.entries = append(m.entries, e)
	if m.ready {
		m.vp.SetContent(m.transcript())
		m.vp.GotoBottom()
	}
}

func (m *Model) transcript() string {
	var b strings.Builder
	for i, e := range m.entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderEntry(e, m.width))
	}
	return b.String()
}
