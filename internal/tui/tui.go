package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func NewApp(opts Options) *Model {
	if opts.Mode == "" {
		opts.Mode = "development"
	}

	return &Model{
		state:   StateWelcome,
		mode:    opts.Mode,
		width:   opts.Width,
		height:  opts.Height,
		welcome: NewWelcome(opts.Mode),
		chat:    NewChatModel(opts),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			// ctrl+c leaves the chat first, then quits
			if m.state == StateChat {
				m.state = StateWelcome
				return m, nil
			}

			return m, tea.Quit
		}

		// any key dismisses an error
		if m.err != nil {
			m.err = nil
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)

		return m, cmd

	case ErrorMsg:
		m.err = msg.err
		return m, nil

	case EnterChatMsg:
		m.state = StateChat
		return m, m.chat.Enter(m.width, m.height, msg.showHistory)
	}

	switch m.state {
	case StateWelcome:
		var cmd tea.Cmd
		m.welcome, cmd = m.welcome.Update(msg)
		return m, cmd

	case StateChat:
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		return m, cmd

	default:
		return m, nil
	}
}

func (m *Model) View() string {
	if m.err != nil {
		return errorView(m.err)
	}

	switch m.state {
	case StateWelcome:
		return m.welcome.View()

	case StateChat:
		return m.chat.View()

	default:
		return "Unknown state"
	}
}

func errorView(err error) string {
	return fmt.Sprintf("\n  %s\n\n  press any key to continue, ctrl+c to exit\n",
		errorStyle.Render(fmt.Sprintf("Error: %v", err)))
}
