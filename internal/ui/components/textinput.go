package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quiztime/internal/ui/theme"
)

// LineInput is a single-line editor that finishes on Enter. Ctrl+C, Ctrl+D
// and Esc abort it.
type LineInput struct {
	Model   textinput.Model
	done    bool
	aborted bool
}

// NewLineInput creates a focused line editor.
func NewLineInput(placeholder string, maxWidth int) LineInput {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = placeholder
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return LineInput{Model: ti}
}

// Init returns the initial command.
func (t LineInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t LineInput) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if t.done || t.aborted {
		return t, nil
	}
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			t.done = true
			return t, tea.Quit
		case "ctrl+c", "ctrl+d", "esc":
			t.aborted = true
			return t, tea.Quit
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the editor, or the submitted text once finished.
func (t LineInput) View() tea.View {
	switch {
	case t.aborted:
		return tea.NewView("")
	case t.done:
		return tea.NewView(lipgloss.NewStyle().Foreground(theme.TextDim).Render("> "+t.Value()) + "\n")
	}
	return tea.NewView(t.Model.View())
}

// Value returns the current input value.
func (t LineInput) Value() string {
	return t.Model.Value()
}

// Done reports whether the line was submitted with Enter.
func (t LineInput) Done() bool { return t.done }

// Aborted reports whether the user abandoned input.
func (t LineInput) Aborted() bool { return t.aborted }
