package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ferdiebergado/parentdesk/internal/platform/db"
)

var (
	ErrNotFound    = errors.New("user repository: user not found")
	ErrQueryFailed = errors.New("user repository: query failed")
)

type SQLRepository struct {
	db db.Executor
}

var _ Repository = (*SQLRepository)(nil)

func NewRepository(dbExec db.Executor) *SQLRepository {
	return &SQLRepository{db: dbExec}
}

const QueryUserList = `
SELECT id, name, email, role, created_at FROM users
WHERE role <> 'admin'
ORDER BY created_at DESC, id DESC
`

func (r *SQLRepository) List(ctx context.Context) ([]User, error) {
	rows, err := db.Conn(ctx, r.db).QueryContext(ctx, QueryUserList)
	if err != nil {
		return nil, fmt.Errorf("%w: list users: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("user repository: scan row: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("user repository: iterate over user rows: %w", err)
	}

	return users, nil
}

const QueryUserFind = "SELECT id, name, email, role, created_at FROM users WHERE id = $1"

func (r *SQLRepository) Find(ctx context.Context, userID int64) (*User, error) {
	row := db.Conn(ctx, r.db).QueryRowContext(ctx, QueryUserFind, userID)
	var u User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: find user with id %d: %v", ErrQueryFailed, userID, err)
	}
	return &u, nil
}

const QueryUserCounts = `
SELECT
    (SELECT COUNT(*) FROM children WHERE user_id = $1),
    (SELECT COUNT(*) FROM chat_conversations WHERE user_id = $1)
`

func (r *SQLRepository) Counts(ctx context.Context, userID int64) (children, conversations int, err error) {
	row := db.Conn(ctx, r.db).QueryRowContext(ctx, QueryUserCounts, userID)
	if err := row.Scan(&children, &conversations); err != nil {
		return 0, 0, fmt.Errorf("%w: count records of user %d: %v", ErrQueryFailed, userID, err)
	}
	return children, conversations, nil
}

const QueryUserDelete = "DELETE FROM users WHERE id = $1"

func (r *SQLRepository) Delete(ctx context.Context, userID int64) error {
	res, err := db.Conn(ctx, r.db).ExecContext(ctx, QueryUserDelete, userID)
	if err != nil {
		return fmt.Errorf("%w: delete user with id %d: %v", ErrQueryFailed, userID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: delete user with id %d: %v", ErrQueryFailed, userID, err)
	}

	if n == 0 {
		return ErrNotFound
	}

	return nil
}

const QueryAdminLogCreate = `
INSERT INTO admin_logs (admin_id, action, details, ip_address)
VALUES ($1, $2, $3, $4)
`

func (r *SQLRepository) LogAdminAction(ctx context.Context, entry AdminLog) error {
	_, err := db.Conn(ctx, r.db).ExecContext(ctx, QueryAdminLogCreate, entry.AdminID, entry.Action, entry.Details, entry.IPAddress)
	if err != nil {
		return fmt.Errorf("%w: log admin action %s: %v", ErrQueryFailed, entry.Action, err)
	}
	return nil
}

const QueryStats = `
SELECT
    (SELECT COUNT(*) FROM users),
    (SELECT COUNT(*) FROM children),
    (SELECT COUNT(*) FROM chat_conversations)
`

func (r *SQLRepository) Stats(ctx context.Context) (Stats, error) {
	var s Stats
	row := db.Conn(ctx, r.db).QueryRowContext(ctx, QueryStats)
	if err := row.Scan(&s.Users, &s.Children, &s.Conversations); err != nil {
		return Stats{}, fmt.Errorf("%w: stats: %v", ErrQueryFailed, err)
	}
	return s, nil
}
