package conversation

import (
	"context"
	"errors"
	"fmt"

	"github.com/ferdiebergado/parentdesk/internal/platform/db"
)

var (
	ErrNotFound    = errors.New("conversation repository: conversation not found")
	ErrQueryFailed = errors.New("conversation repository: query failed")
)

type SQLRepository struct {
	db db.Executor
}

var _ Repository = (*SQLRepository)(nil)

func NewRepository(dbExec db.Executor) *SQLRepository {
	return &SQLRepository{db: dbExec}
}

const QueryConversationList = `
SELECT id, user_id, title, started_at, updated_at
FROM chat_conversations
WHERE user_id = $1
ORDER BY updated_at DESC, id DESC
`

func (r *SQLRepository) List(ctx context.Context, ownerID int64) ([]Conversation, error) {
	rows, err := db.Conn(ctx, r.db).QueryContext(ctx, QueryConversationList, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: list conversations of user %d: %v", ErrQueryFailed, ownerID, err)
	}
	defer rows.Close()

	conversations := make([]Conversation, 0)
	for rows.Next() {
		var c Conversation
		if err := rows.Scan(&c.ID, &c.UserID, &c.Title, &c.StartedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("conversation repository: scan row: %w", err)
		}
		conversations = append(conversations, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("conversation repository: iterate over conversation rows: %w", err)
	}

	return conversations, nil
}

const QueryConversationCreate = `
INSERT INTO chat_conversations (user_id, title)
VALUES ($1, $2)
RETURNING id, user_id, title, started_at, updated_at
`

func (r *SQLRepository) Create(ctx context.Context, ownerID int64, title string) (*Conversation, error) {
	var c Conversation
	row := db.Conn(ctx, r.db).QueryRowContext(ctx, QueryConversationCreate, ownerID, title)
	if err := row.Scan(&c.ID, &c.UserID, &c.Title, &c.StartedAt, &c.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: create conversation of user %d: %v", ErrQueryFailed, ownerID, err)
	}
	return &c, nil
}

const QueryConversationDelete = "DELETE FROM chat_conversations WHERE id = $1 AND user_id = $2"

func (r *SQLRepository) Delete(ctx context.Context, conversationID, ownerID int64) error {
	res, err := db.Conn(ctx, r.db).ExecContext(ctx, QueryConversationDelete, conversationID, ownerID)
	if err != nil {
		return fmt.Errorf("%w: delete conversation %d: %v", ErrQueryFailed, conversationID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: delete conversation %d: %v", ErrQueryFailed, conversationID, err)
	}

	if n == 0 {
		return ErrNotFound
	}

	return nil
}
