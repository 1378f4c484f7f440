package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/alexanderramin/krisis/internal/cli/formatter"
	"github.com/alexanderramin/krisis/internal/contract"
	"github.com/alexanderramin/krisis/internal/service"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// chatModel is the bubbletea model for the interactive chat loop. Each
// question is answered synchronously; replies are sub-millisecond, so no
// spinner or async command plumbing is needed.
type chatModel struct {
	app      *App
	input    textinput.Model
	messages []string
}

func newChatModel(app *App) *chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = "> "
	ti.CharLimit = 500

	return &chatModel{app: app, input: ti}
}

func (m *chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			question := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if question == "" {
				return m, nil
			}
			if question == "exit" || question == "quit" {
				return m, tea.Quit
			}
			m.answer(question)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *chatModel) answer(question string) {
	m.messages = append(m.messages, formatter.FormatChatQuestion(question))

	reply, err := m.app.Chat.Ask(context.Background(), contract.ChatRequest{Message: question})
	switch {
	case errors.Is(err, service.ErrMessageTooShort):
		m.messages = append(m.messages, formatter.Dim("That question is too short."))
	case err != nil:
		m.messages = append(m.messages, formatter.Dim("error: "+err.Error()))
	default:
		m.messages = append(m.messages, formatter.FormatChatReply(reply.Text))
	}
}

func (m *chatModel) View() string {
	var b strings.Builder
	b.WriteString(formatter.FormatChatWelcome())
	for _, msg := range m.messages {
		b.WriteString(msg)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	return b.String()
}
