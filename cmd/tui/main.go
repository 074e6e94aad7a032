package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"codeberg.org/promptforge/server/internal/history"
	"codeberg.org/promptforge/server/internal/logger"
	"codeberg.org/promptforge/server/internal/tui"
)

func main() {
	_ = godotenv.Load() //nolint:errcheck // a missing .env is fine

	// log output would corrupt the alt screen
	logger.Discard()

	env := os.Getenv("PROMPTFORGE_ENV")
	if env == "" {
		env = "development"
	}

	historyPath, err := history.DefaultPath()
	if err != nil {
		fmt.Printf("error locating history file: %v\n", err)
		os.Exit(1)
	}

	width, height, err := term.GetSize(os.Stdout.Fd())
	if err != nil {
		width, height = 100, 30
	}

	app := tui.NewApp(tui.Options{
		Mode:       env,
		Endpoint:   os.Getenv("PROMPTFORGE_API_ENDPOINT"),
		ClientID:   uuid.NewString(),
		Store:      history.NewFileStore(historyPath),
		PreviewDir: filepath.Join(filepath.Dir(historyPath), "preview"),
		Width:      width,
		Height:     height,
	})

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		fmt.Printf("error running promptforge: %v\n", err)
		os.Exit(1)
	}
}
