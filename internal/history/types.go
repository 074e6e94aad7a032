package history

import (
	"context"
	"errors"
	"time"
)

// most entries kept per owner; adding beyond it evicts the oldest
const MaxEntries = 10

// request header naming the history owner on the HTTP API
const ClientIDHeader = "X-Client-ID"

var ErrInvalidOwner = errors.New("history owner is required")

// one previously generated project
type Entry struct {
	ID        string    `json:"id"`
	Prompt    string    `json:"prompt,omitempty"`
	Code      string    `json:"code"`
	Preview   string    `json:"preview"`
	CreatedAt time.Time `json:"created_at"`
}

// keeps a capped, newest-first project list per owner
type Store interface {
	Add(ctx context.Context, owner string, entry Entry) error
	List(ctx context.Context, owner string) ([]Entry, error)
	Clear(ctx context.Context, owner string) error
}
