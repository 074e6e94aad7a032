package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// document written by FileStore, one history list per owner
type fileDocument struct {
	ProjectHistory map[string][]Entry `json:"projectHistory"`
}

// JSON file on disk, the terminal client's local persistence
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// returns the default location under the user config directory
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config dir: %w", err)
	}

	return filepath.Join(dir, "promptforge", "project-store.json"), nil
}

func (s *FileStore) Add(_ context.Context, owner string, entry Entry) error {
	if owner == "" {
		return ErrInvalidOwner
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	doc.ProjectHistory[owner] = prepend(doc.ProjectHistory[owner], prepare(entry))

	return s.save(doc)
}

func (s *FileStore) List(_ context.Context, owner string) ([]Entry, error) {
	if owner == "" {
		return nil, ErrInvalidOwner
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	entries := doc.ProjectHistory[owner]
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}

	return entries, nil
}

func (s *FileStore) Clear(_ context.Context, owner string) error {
	if owner == "" {
		return ErrInvalidOwner
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	delete(doc.ProjectHistory, owner)

	return s.save(doc)
}

func (s *FileStore) load() (*fileDocument, error) {
	doc := &fileDocument{ProjectHistory: make(map[string][]Entry)}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return doc, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}

	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to parse history file: %w", err)
	}

	if doc.ProjectHistory == nil {
		doc.ProjectHistory = make(map[string][]Entry)
	}

	return doc, nil
}

// replaces the file via rename of a temp file
func (s *FileStore) save(doc *fileDocument) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("failed to create history dir: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history file: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace history file: %w", err)
	}

	return nil
}
