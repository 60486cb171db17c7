package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const chromeHeight = 4 // title, blank line, input, hint

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.vp = newViewport(msg.Width, msg.Height-chromeHeight)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - chromeHeight
		}
		m.input.Width = msg.Width - 4
		m.vp.SetContent(m.transcript())
		m.vp.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			text := strings.TrimSpace(m.input.Value())
			if text == "" || m.waiting {
				return m, nil
			}
			m.input.Reset()
			m.waiting = true
			m.push(entry{role: roleUser, text: text})
			return m, m.submit(text)
		}

	case replyMsg:
		m.waiting = false
		m.push(entry{role: roleAssistant, kind: msg.result.Kind, text: msg.result.Message})
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	if m.ready {
		m.vp, cmd = m.vp.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// promptHint tells the user what kind of answer the session expects.
func (m Model) promptHint() string {
	if m.waiting {
		return "thinking..."
	}
	if m.sess.Pending() != nil {
		return "awaiting yes/no"
	}
	return "enter to send, esc to quit"
}
