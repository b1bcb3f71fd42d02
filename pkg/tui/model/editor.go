package model

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// EditorModel is the inline sample-message editor.
type EditorModel struct {
	input textinput.Model
}

// NewMessageEditor creates an editor pre-filled with the current
// sample message.
func NewMessageEditor(current string) *EditorModel {
	ti := textinput.New()
	ti.Placeholder = "sample message"
	ti.SetValue(current)
	ti.CharLimit = 128
	return &EditorModel{input: ti}
}

// Focus gives the input focus and returns its blink command.
func (e *EditorModel) Focus() tea.Cmd {
	e.input.Focus()
	return textinput.Blink
}

// HandleKey processes key events in editor mode.
func (e *EditorModel) HandleKey(a App, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = ModeNormal
		a.editor = nil
		return a, nil

	case "enter":
		if v := e.input.Value(); v != "" {
			a.sample = v
		}
		a.mode = ModeNormal
		a.editor = nil
		return a, nil

	default:
		var cmd tea.Cmd
		e.input, cmd = e.input.Update(msg)
		return a, cmd
	}
}

// View renders the editor form.
func (e *EditorModel) View(width int) string {
	s := titleStyle.Render(" Sample Message ") + "\n\n"
	s += "  " + e.input.View() + "\n"
	s += "\n" + helpStyle.Render("  enter:apply  esc:cancel")
	return s
}
