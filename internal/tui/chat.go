package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const (
	greeting = "Hi! 👋 I can:\n\n" +
		"- create components (try *create a todo app*)\n" +
		"- answer questions\n" +
		"- deploy a project with `/deploy <name>`\n\n" +
		"What can I help you with?"

	clearedGreeting = "Chat cleared! What can I help you with?"

	// lines taken by header, input box and status line
	chromeHeight = 7
)

// returns a new chat screen
func NewChatModel(opts Options) *ChatModel {
	ti := textinput.New()
	ti.Placeholder = "describe an app or ask a question..."
	ti.Focus()
	ti.CharLimit = 2000
	ti.Width = 80
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(colorLightGray)
	ti.TextStyle = lipgloss.NewStyle().Foreground(colorWhite)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPurple)

	return &ChatModel{
		input:      ti,
		spinner:    sp,
		width:      opts.Width,
		height:     opts.Height,
		messages:   []ChatMessage{assistantMessage(greeting)},
		client:     NewAPIClient(opts.Endpoint, opts.ClientID),
		store:      opts.Store,
		previewDir: opts.PreviewDir,
	}
}

// prepares the screen for display, optionally opening the project list
func (m *ChatModel) Enter(width, height int, showHistory bool) tea.Cmd {
	m.resize(width, height)
	m.input.Focus()

	if showHistory {
		m.showHistory = true
		return tea.Batch(textinput.Blink, m.loadHistory())
	}

	return textinput.Blink
}

func (m *ChatModel) Update(msg tea.Msg) (*ChatModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m, m.submit()

		case "ctrl+l":
			m.messages = []ChatMessage{assistantMessage(clearedGreeting)}
			m.lastPreview = ""
			m.status = ""
			m.refresh()
			return m, nil

		case "ctrl+h":
			m.showHistory = !m.showHistory
			if m.showHistory {
				return m, m.loadHistory()
			}
			m.refresh()
			return m, nil

		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case chatReplyMsg:
		m.finish(assistantMessage(msg.reply))
		return m, nil

	case generateReplyMsg:
		m.finish(assistantMessage(describeGeneration(msg)))
		if msg.previewPath != "" {
			m.lastPreview = msg.previewPath
		}
		return m, nil

	case requestErrorMsg:
		m.finish(assistantMessage(fmt.Sprintf("❌ Error: %v", msg.err)))
		return m, nil

	case deployEventMsg:
		return m, m.handleDeployEvent(msg)

	case deployClosedMsg:
		if m.loading {
			m.finish(assistantMessage("❌ Deployment ended unexpectedly"))
		}
		return m, nil

	case historyLoadedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("could not load history: %v", msg.err)
		}
		m.projects = msg.entries
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

// sends the typed message. submissions are ignored while a request is
// in flight.
func (m *ChatModel) submit() tea.Cmd {
	text := strings.TrimSpace(m.input.Value())
	if text == "" || m.loading {
		return nil
	}

	// the server gets the conversation as it was before this message
	conversation := recentMessages(m.messages, chatContextMessages)

	m.input.SetValue("")
	m.messages = append(m.messages, ChatMessage{Role: roleUser, Content: text, Timestamp: time.Now()})
	m.loading = true
	m.status = ""
	m.showHistory = false
	m.refresh()

	var request tea.Cmd

	switch {
	case strings.HasPrefix(text, "/deploy"):
		name := strings.TrimSpace(strings.TrimPrefix(text, "/deploy"))
		if name == "" {
			m.finish(assistantMessage("usage: `/deploy <project name>`"))
			return nil
		}
		m.status = "deploying..."
		request = m.client.DeployCmd(name)

	case IsCodeRequest(text):
		m.status = "generating component..."
		request = m.client.GenerateCmd(text, m.store, m.previewDir)

	default:
		m.status = "thinking..."
		request = m.client.ChatCmd(text, conversation)
	}

	return tea.Batch(m.spinner.Tick, request)
}

func (m *ChatModel) handleDeployEvent(msg deployEventMsg) tea.Cmd {
	switch msg.event.Type {
	case deployEventStep:
		m.status = msg.event.Step
		m.refresh()
		return waitForDeployEvent(msg.events)

	case deployEventComplete:
		m.finish(assistantMessage(fmt.Sprintf("🚀 Deployed: %s\n\n%s",
			msg.event.DeploymentURL, strings.Join(msg.event.Steps, "\n"))))

	default:
		m.finish(assistantMessage(fmt.Sprintf("❌ Deployment failed: %s", msg.event.Error)))
	}

	return nil
}

func (m *ChatModel) finish(reply ChatMessage) {
	m.messages = append(m.messages, reply)
	m.loading = false
	m.status = ""
	m.input.Focus()
	m.refresh()
}

func (m *ChatModel) loadHistory() tea.Cmd {
	store := m.store

	return func() tea.Msg {
		if store == nil {
			return historyLoadedMsg{}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		entries, err := store.List(ctx, localOwner)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

func (m *ChatModel) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	m.width = width
	m.height = height
	m.input.Width = max(10, width-10)

	vpHeight := max(3, height-chromeHeight)

	if !m.ready {
		m.viewport = viewport.New(width-2, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = width - 2
		m.viewport.Height = vpHeight
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(20, width-6)),
	)
	if err == nil {
		m.renderer = renderer
	}

	m.refresh()
}

// re-renders the conversation (or project list) into the viewport
func (m *ChatModel) refresh() {
	if !m.ready {
		return
	}

	var content string
	if m.showHistory {
		content = m.renderHistory()
	} else {
		content = m.renderMessages()
	}

	m.viewport.SetContent(content)
	m.viewport.GotoBottom()
}

func (m *ChatModel) renderMessages() string {
	var b strings.Builder

	for _, msg := range m.messages {
		speaker := "**Assistant**"
		if msg.Role == roleUser {
			speaker = "**You**"
		}

		fmt.Fprintf(&b, "%s\n\n%s\n\n---\n\n", speaker, msg.Content)
	}

	return m.render(b.String())
}

func (m *ChatModel) renderHistory() string {
	if len(m.projects) == 0 {
		return infoStyle.Render("no projects yet. ask me to create something!")
	}

	var b strings.Builder
	b.WriteString("## Recent projects\n\n")

	for i, p := range m.projects {
		fmt.Fprintf(&b, "%d. **%s** (%s)\n", i+1,
			truncate(p.Prompt, 60), p.CreatedAt.Local().Format("Jan 2 15:04"))
	}

	return m.render(b.String())
}

func (m *ChatModel) render(markdown string) string {
	if m.renderer == nil {
		return markdown
	}

	out, err := m.renderer.Render(markdown)
	if err != nil {
		return markdown
	}

	return out
}

func (m *ChatModel) View() string {
	var b strings.Builder

	title := "CHAT"
	if m.showHistory {
		title = "HISTORY"
	}

	help := infoStyle.Render("[Enter: Send] [Ctrl+H: History] [Ctrl+L: Clear] [Ctrl+C: Back]")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Left,
		headerStyle.Render(title),
		strings.Repeat(" ", max(1, m.width-lipgloss.Width(title)-lipgloss.Width(help)-2)),
		help,
	))
	b.WriteString("\n")

	if m.ready {
		b.WriteString(m.viewport.View())
	}
	b.WriteString("\n")

	b.WriteString(boxStyle.Width(max(10, m.width-2)).Render(m.input.View()))
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " " + infoStyle.Render(m.status))
	case m.status != "":
		b.WriteString(errorStyle.Render(m.status))
	case m.lastPreview != "":
		b.WriteString(infoStyle.Render("preview: " + m.lastPreview))
	}

	return b.String()
}

func assistantMessage(content string) ChatMessage {
	return ChatMessage{Role: roleAssistant, Content: content, Timestamp: time.Now()}
}

func describeGeneration(msg generateReplyMsg) string {
	var b strings.Builder

	b.WriteString("✅ Code generated!")
	if msg.result.Template != "" {
		fmt.Fprintf(&b, " (built-in %s template)", msg.result.Template)
	}

	if msg.previewPath != "" {
		fmt.Fprintf(&b, "\n\nOpen the preview: `%s`", msg.previewPath)
	}

	if msg.saveErr != nil {
		fmt.Fprintf(&b, "\n\n⚠️ %v", msg.saveErr)
	}

	fmt.Fprintf(&b, "\n\n```jsx\n%s\n```", msg.result.Code)

	return b.String()
}
