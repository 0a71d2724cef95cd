package user

import (
	"context"
	"errors"
)

type StubService struct {
	ListFunc    func(ctx context.Context) ([]User, error)
	FindFunc    func(ctx context.Context, userID int64) (*User, error)
	DetailsFunc func(ctx context.Context, userID int64) (*Details, error)
	DeleteFunc  func(ctx context.Context, params DeleteParams) error
	StatsFunc   func(ctx context.Context) (Stats, error)
}

var _ Service = (*StubService)(nil)

func (s *StubService) List(ctx context.Context) ([]User, error) {
	if s.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return s.ListFunc(ctx)
}

func (s *StubService) Find(ctx context.Context, userID int64) (*User, error) {
	if s.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return s.FindFunc(ctx, userID)
}

func (s *StubService) Details(ctx context.Context, userID int64) (*Details, error) {
	if s.DetailsFunc == nil {
		return nil, errors.New("Details() not implemented by stub")
	}
	return s.DetailsFunc(ctx, userID)
}

func (s *StubService) Delete(ctx context.Context, params DeleteParams) error {
	if s.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return s.DeleteFunc(ctx, params)
}

func (s *StubService) Stats(ctx context.Context) (Stats, error) {
	if s.StatsFunc == nil {
		return Stats{}, errors.New("Stats() not implemented by stub")
	}
	return s.StatsFunc(ctx)
}

type StubRepo struct {
	ListFunc           func(ctx context.Context) ([]User, error)
	FindFunc           func(ctx context.Context, userID int64) (*User, error)
	CountsFunc         func(ctx context.Context, userID int64) (int, int, error)
	DeleteFunc         func(ctx context.Context, userID int64) error
	LogAdminActionFunc func(ctx context.Context, entry AdminLog) error
	StatsFunc          func(ctx context.Context) (Stats, error)
}

var _ Repository = (*StubRepo)(nil)

func (r *StubRepo) List(ctx context.Context) ([]User, error) {
	if r.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return r.ListFunc(ctx)
}

func (r *StubRepo) Find(ctx context.Context, userID int64) (*User, error) {
	if r.FindFunc == nil {
		return nil, errors.New("Find() not implemented by stub")
	}
	return r.FindFunc(ctx, userID)
}

func (r *StubRepo) Counts(ctx context.Context, userID int64) (children, conversations int, err error) {
	if r.CountsFunc == nil {
		return 0, 0, errors.New("Counts() not implemented by stub")
	}
	return r.CountsFunc(ctx, userID)
}

func (r *StubRepo) Delete(ctx context.Context, userID int64) error {
	if r.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return r.DeleteFunc(ctx, userID)
}

func (r *StubRepo) LogAdminAction(ctx context.Context, entry AdminLog) error {
	if r.LogAdminActionFunc == nil {
		return errors.New("LogAdminAction() not implemented by stub")
	}
	return r.LogAdminActionFunc(ctx, entry)
}

func (r *StubRepo) Stats(ctx context.Context) (Stats, error) {
	if r.StatsFunc == nil {
		return Stats{}, errors.New("Stats() not implemented by stub")
	}
	return r.StatsFunc(ctx)
}
