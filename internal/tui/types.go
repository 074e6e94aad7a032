package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"

	"codeberg.org/promptforge/server/internal/history"
)

// represents the current state of the TUI
type AppState int

const (
	StateWelcome AppState = iota
	StateChat
)

const (
	// messages sent along with a chat request
	chatContextMessages = 5

	requestTimeout = 90 * time.Second
	deployTimeout  = 2 * time.Minute

	previewFileName = "preview.html"

	// history owner for the local project list
	localOwner = "local"
)

const (
	roleUser      = "user"
	roleAssistant = "assistant"
)

// main TUI application model
type Model struct {
	state   AppState
	mode    string
	width   int
	height  int
	err     error
	welcome *Welcome
	chat    *ChatModel
}

// everything the TUI needs from its environment
type Options struct {
	Mode       string
	Endpoint   string
	ClientID   string
	Store      history.Store
	PreviewDir string
	Width      int
	Height     int
}

// one entry of the conversation
type ChatMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"-"`
}

// chat screen
type ChatModel struct {
	input       textinput.Model
	viewport    viewport.Model
	spinner     spinner.Model
	renderer    *glamour.TermRenderer
	width       int
	height      int
	ready       bool
	messages    []ChatMessage
	loading     bool
	status      string
	client      *APIClient
	store       history.Store
	previewDir  string
	lastPreview string
	showHistory bool
	projects    []history.Entry
}

// welcome screen model
type Welcome struct {
	mode     string
	input    string
	commands []Command
}

// represents an available TUI command
type Command struct {
	Name        string
	Description string
	Available   bool
}

// sent when an error occurs
type ErrorMsg struct {
	err error
}

// sent to transition to the chat state
type EnterChatMsg struct {
	showHistory bool
}

// sent when the server starts
type ServerStartedMsg struct{}

type chatReplyMsg struct {
	reply string
}

type generateReplyMsg struct {
	result      *GenerateResult
	previewPath string
	saveErr     error
}

type requestErrorMsg struct {
	err error
}

type historyLoadedMsg struct {
	entries []history.Entry
	err     error
}

type deployEventMsg struct {
	event  DeployEvent
	events <-chan DeployEvent
}

type deployClosedMsg struct{}
