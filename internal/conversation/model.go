package conversation

import "time"

const DefaultTitle = "New conversation"

// Conversation is a chat thread owned by a parent account. Messages are not
// part of this package.
type Conversation struct {
	ID        int64
	UserID    int64
	Title     string
	StartedAt time.Time
	UpdatedAt time.Time
}
