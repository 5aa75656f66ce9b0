package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type passwordModel struct {
	prompt    string
	textInput *textinput.Model
	cancelled bool
}

func newPasswordModel(prompt string) passwordModel {
	ti := textinput.New()
	ti.Placeholder = "..."
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 32
	ti.EchoMode = textinput.EchoPassword

	return passwordModel{prompt: prompt, textInput: &ti}
}

func (m passwordModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m passwordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	*m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m passwordModel) View() string {
	return fmt.Sprintf("%s\n\n%s\n", m.prompt, m.textInput.View())
}

// AskPassword reads a secret from the terminal without echoing it.
// A cancelled prompt returns an empty string.
func AskPassword(prompt string) (string, error) {
	final, err := tea.NewProgram(newPasswordModel(prompt)).Run()
	if err != nil {
		return "", err
	}
	m := final.(passwordModel)
	if m.cancelled {
		return "", nil
	}
	return m.textInput.Value(), nil
}
