package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// openFileMsg asks the model to load a new file.
type openFileMsg struct {
	path string
}

// openModal prompts for the path of a temperature log.
type openModal struct {
	input textinput.Model
}

func newOpenModal(current string) openModal {
	in := textinput.New()
	in.Placeholder = "/var/log/temperature.log"
	in.Prompt = "› "
	in.CharLimit = 4096
	in.Width = 50
	in.SetValue(current)
	in.CursorEnd()
	in.Focus()
	return openModal{input: in}
}

func (o openModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.Cancel):
			return o, nil, true
		case key.Matches(k, keys.Confirm):
			path := strings.TrimSpace(o.input.Value())
			if path == "" {
				return o, nil, true
			}
			return o, func() tea.Msg { return openFileMsg{path: path} }, true
		}
	}
	var cmd tea.Cmd
	o.input, cmd = o.input.Update(msg)
	return o, cmd, false
}

func (o openModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	o.input.PromptStyle = styles.AccentText
	o.input.TextStyle = styles.Text
	o.input.PlaceholderStyle = styles.FaintText

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Open temperature log"))
	b.WriteString("\n\n")
	b.WriteString(o.input.View())
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("enter to load · esc to cancel"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2).
		Width(60)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box.Render(b.String()))
}
