package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// words that mark a message as a request for generated code
var codeRequestKeywords = []string{
	"შექმენი", "გააკეთე", "დაწერე",
	"create", "make", "build", "generate", "app", "page",
	"აპი", "აპლიკაცია", "საიტი", "გვერდი",
}

// reports whether the message should go to the generator instead of chat
func IsCodeRequest(message string) bool {
	lower := strings.ToLower(message)

	for _, keyword := range codeRequestKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}

	return false
}

// returns at most the last n messages
func recentMessages(messages []ChatMessage, n int) []ChatMessage {
	if len(messages) > n {
		messages = messages[len(messages)-n:]
	}

	out := make([]ChatMessage, len(messages))
	copy(out, messages)

	return out
}

// writes the preview document into dir and returns its path
func savePreview(dir, preview string) (string, error) {
	if dir == "" || preview == "" {
		return "", nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create preview directory: %w", err)
	}

	path := filepath.Join(dir, previewFileName)
	if err := os.WriteFile(path, []byte(preview), 0o600); err != nil {
		return "", fmt.Errorf("failed to write preview: %w", err)
	}

	return path, nil
}

// shortens s to n runes for one-line listings
func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")

	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:max(0, n-1)]) + "…"
}
