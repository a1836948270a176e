package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrPromptCancelled = errors.New("prompt cancelled")

// PromptModel asks for one line of text and validates it before accepting.
type PromptModel struct {
	label     string
	input     textinput.Model
	validate  func(string) error
	Err       error
	Value     string
	Cancelled bool
}

func NewPromptModel(label, placeholder string, validate func(string) error) PromptModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Width = 50
	ti.Focus()

	return PromptModel{label: label, input: ti, validate: validate}
}

func (m PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.Cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				m.Err = errors.New("a value is required")
				return m, nil
			}
			if m.validate != nil {
				if err := m.validate(value); err != nil {
					m.Err = err
					return m, nil
				}
			}
			m.Value = value
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m PromptModel) View() string {
	var b strings.Builder
	b.WriteString(promptLabelStyle.Render(m.label))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.Err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("%s %v", iconError, m.Err)))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("Enter to confirm • Esc to cancel"))
	b.WriteString("\n")
	return b.String()
}

// Prompt runs a PromptModel on the terminal and returns the accepted value.
func Prompt(label, placeholder string, validate func(string) error) (string, error) {
	final, err := tea.NewProgram(NewPromptModel(label, placeholder, validate)).Run()
	if err != nil {
		return "", err
	}
	model := final.(PromptModel)
	if model.Cancelled {
		return "", ErrPromptCancelled
	}
	return model.Value, nil
}
