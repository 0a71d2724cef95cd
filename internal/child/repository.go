package child

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ferdiebergado/parentdesk/internal/platform/db"
)

var (
	ErrNotFound    = errors.New("child repository: child not found")
	ErrQueryFailed = errors.New("child repository: query failed")
)

type SQLRepository struct {
	db db.Executor
}

var _ Repository = (*SQLRepository)(nil)

func NewRepository(dbExec db.Executor) *SQLRepository {
	return &SQLRepository{db: dbExec}
}

const childColumns = `id, user_id, first_name, COALESCE(last_name, ''), birth_date, gender,
    COALESCE(school_year, ''), COALESCE(school_name, ''), COALESCE(address, ''), created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanChild(row scanner) (*Child, error) {
	var c Child
	err := row.Scan(&c.ID, &c.UserID, &c.FirstName, &c.LastName, &c.BirthDate, &c.Gender,
		&c.SchoolYear, &c.SchoolName, &c.Address, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

const QueryChildList = `
SELECT ` + childColumns + `
FROM children
WHERE user_id = $1
ORDER BY first_name ASC, id ASC
`

func (r *SQLRepository) List(ctx context.Context, ownerID int64) ([]Child, error) {
	rows, err := db.Conn(ctx, r.db).QueryContext(ctx, QueryChildList, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: list children of user %d: %v", ErrQueryFailed, ownerID, err)
	}
	defer rows.Close()

	children := make([]Child, 0)
	for rows.Next() {
		c, err := scanChild(rows)
		if err != nil {
			return nil, fmt.Errorf("child repository: scan row: %w", err)
		}
		children = append(children, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("child repository: iterate over child rows: %w", err)
	}

	return children, nil
}

const QueryChildCreate = `
INSERT INTO children (user_id, first_name, last_name, birth_date, gender, school_year, school_name, address)
VALUES ($1, $2, NULLIF($3, ''), $4, $5, NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''))
RETURNING ` + childColumns

func (r *SQLRepository) Create(ctx context.Context, params Params) (*Child, error) {
	row := db.Conn(ctx, r.db).QueryRowContext(ctx, QueryChildCreate,
		params.OwnerID, params.FirstName, params.LastName, params.BirthDate, params.Gender,
		params.SchoolYear, params.SchoolName, params.Address)

	c, err := scanChild(row)
	if err != nil {
		return nil, fmt.Errorf("%w: create child of user %d: %v", ErrQueryFailed, params.OwnerID, err)
	}
	return c, nil
}

// QueryChildUpdate only touches a row owned by the caller, so a child of
// another user looks exactly like a missing one.
const QueryChildUpdate = `
UPDATE children
SET first_name = $3,
    last_name = NULLIF($4, ''),
    birth_date = $5,
    gender = $6,
    school_year = NULLIF($7, ''),
    school_name = NULLIF($8, ''),
    address = NULLIF($9, '')
WHERE id = $1 AND user_id = $2
RETURNING ` + childColumns

func (r *SQLRepository) Update(ctx context.Context, childID int64, params Params) (*Child, error) {
	row := db.Conn(ctx, r.db).QueryRowContext(ctx, QueryChildUpdate,
		childID, params.OwnerID, params.FirstName, params.LastName, params.BirthDate, params.Gender,
		params.SchoolYear, params.SchoolName, params.Address)

	c, err := scanChild(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: update child %d: %v", ErrQueryFailed, childID, err)
	}
	return c, nil
}

const QueryChildDelete = "DELETE FROM children WHERE id = $1 AND user_id = $2"

func (r *SQLRepository) Delete(ctx context.Context, childID, ownerID int64) error {
	res, err := db.Conn(ctx, r.db).ExecContext(ctx, QueryChildDelete, childID, ownerID)
	if err != nil {
		return fmt.Errorf("%w: delete child %d: %v", ErrQueryFailed, childID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: delete child %d: %v", ErrQueryFailed, childID, err)
	}

	if n == 0 {
		return ErrNotFound
	}

	return nil
}
