package user

import (
	"context"
	"fmt"

	"github.com/ferdiebergado/parentdesk/internal/platform/db"
)

type Repository interface {
	List(ctx context.Context) ([]User, error)
	Find(ctx context.Context, userID int64) (*User, error)
	Counts(ctx context.Context, userID int64) (children, conversations int, err error)
	Delete(ctx context.Context, userID int64) error
	LogAdminAction(ctx context.Context, entry AdminLog) error
	Stats(ctx context.Context) (Stats, error)
}

type Service interface {
	// List returns every user that is not an administrator, newest first.
	List(ctx context.Context) ([]User, error)
	Find(ctx context.Context, userID int64) (*User, error)
	Details(ctx context.Context, userID int64) (*Details, error)
	// Delete removes a user and records the action in the admin log, atomically.
	Delete(ctx context.Context, params DeleteParams) error
	Stats(ctx context.Context) (Stats, error)
}

type DeleteParams struct {
	AdminID   int64
	UserID    int64
	IPAddress string
}

type service struct {
	repo  Repository
	txMgr db.TxManager
}

var _ Service = (*service)(nil)

//nolint:ireturn // handlers depend on the interface.
func NewService(repo Repository, txMgr db.TxManager) Service {
	return &service{
		repo:  repo,
		txMgr: txMgr,
	}
}

func (s *service) List(ctx context.Context) ([]User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *service) Find(ctx context.Context, userID int64) (*User, error) {
	u, err := s.repo.Find(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

func (s *service) Details(ctx context.Context, userID int64) (*Details, error) {
	u, err := s.repo.Find(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	children, conversations, err := s.repo.Counts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count user records: %w", err)
	}

	return &Details{
		User:              *u,
		ChildrenCount:     children,
		ConversationCount: conversations,
	}, nil
}

func (s *service) Delete(ctx context.Context, params DeleteParams) error {
	err := s.txMgr.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.Delete(txCtx, params.UserID); err != nil {
			return err
		}

		return s.repo.LogAdminAction(txCtx, AdminLog{
			AdminID:   params.AdminID,
			Action:    ActionDeleteUser,
			Details:   fmt.Sprintf("Deleted user ID: %d", params.UserID),
			IPAddress: params.IPAddress,
		})
	})
	if err != nil {
		return fmt.Errorf("delete user %d: %w", params.UserID, err)
	}

	return nil
}

func (s *service) Stats(ctx context.Context) (Stats, error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("get stats: %w", err)
	}
	return stats, nil
}
