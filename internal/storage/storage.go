package storage

import "context"

// Interaction describes one handled chat event and the text the user got
// back. Rows are append-only; nothing in the bot ever reads them back.
type Interaction struct {
	UserID   int64
	Username string
	Query    string
	Response string
	Language string
}

// Recorder persists interactions. Implementations must be safe for
// concurrent use.
type Recorder interface {
	RecordInteraction(ctx context.Context, ev Interaction) error
}
