package child

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrBirthDateInFuture = errors.New("birth date is in the future")

type Repository interface {
	List(ctx context.Context, ownerID int64) ([]Child, error)
	Create(ctx context.Context, params Params) (*Child, error)
	Update(ctx context.Context, childID int64, params Params) (*Child, error)
	Delete(ctx context.Context, childID, ownerID int64) error
}

// Service manages the children of the calling parent. Every operation is
// scoped to params.OwnerID or ownerID; rows of other users are reported as
// ErrNotFound.
type Service interface {
	List(ctx context.Context, ownerID int64) ([]Child, error)
	Create(ctx context.Context, params Params) (*Child, error)
	Update(ctx context.Context, childID int64, params Params) (*Child, error)
	Delete(ctx context.Context, childID, ownerID int64) error
}

type service struct {
	repo Repository
	now  func() time.Time
}

var _ Service = (*service)(nil)

//nolint:ireturn // handlers depend on the interface.
func NewService(repo Repository, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{
		repo: repo,
		now:  now,
	}
}

func (s *service) List(ctx context.Context, ownerID int64) ([]Child, error) {
	children, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list children: %w", err)
	}
	return children, nil
}

func (s *service) Create(ctx context.Context, params Params) (*Child, error) {
	if err := s.checkBirthDate(params.BirthDate); err != nil {
		return nil, err
	}

	c, err := s.repo.Create(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("create child: %w", err)
	}
	return c, nil
}

func (s *service) Update(ctx context.Context, childID int64, params Params) (*Child, error) {
	if err := s.checkBirthDate(params.BirthDate); err != nil {
		return nil, err
	}

	c, err := s.repo.Update(ctx, childID, params)
	if err != nil {
		return nil, fmt.Errorf("update child %d: %w", childID, err)
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, childID, ownerID int64) error {
	if err := s.repo.Delete(ctx, childID, ownerID); err != nil {
		return fmt.Errorf("delete child %d: %w", childID, err)
	}
	return nil
}

// checkBirthDate compares calendar days, so a child born today is accepted.
func (s *service) checkBirthDate(birthDate time.Time) error {
	today := s.now().UTC().Format(time.DateOnly)
	if birthDate.UTC().Format(time.DateOnly) > today {
		return fmt.Errorf("%w: %s", ErrBirthDateInFuture, birthDate.Format(time.DateOnly))
	}
	return nil
}
