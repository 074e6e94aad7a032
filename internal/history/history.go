package history

import (
	"time"

	"github.com/google/uuid"
)

// fills in the id and timestamp when the caller left them empty
func prepare(entry Entry) Entry {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	return entry
}

// puts entry at the front and drops whatever falls beyond MaxEntries
func prepend(entries []Entry, entry Entry) []Entry {
	keep := len(entries)
	if keep > MaxEntries-1 {
		keep = MaxEntries - 1
	}

	out := make([]Entry, 0, keep+1)
	out = append(out, entry)

	return append(out, entries[:keep]...)
}
