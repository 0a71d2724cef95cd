package child

import (
	"context"
	"errors"
)

type StubService struct {
	ListFunc   func(ctx context.Context, ownerID int64) ([]Child, error)
	CreateFunc func(ctx context.Context, params Params) (*Child, error)
	UpdateFunc func(ctx context.Context, childID int64, params Params) (*Child, error)
	DeleteFunc func(ctx context.Context, childID, ownerID int64) error
}

var _ Service = (*StubService)(nil)

func (s *StubService) List(ctx context.Context, ownerID int64) ([]Child, error) {
	if s.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return s.ListFunc(ctx, ownerID)
}

func (s *StubService) Create(ctx context.Context, params Params) (*Child, error) {
	if s.CreateFunc == nil {
		return nil, errors.New("Create() not implemented by stub")
	}
	return s.CreateFunc(ctx, params)
}

func (s *StubService) Update(ctx context.Context, childID int64, params Params) (*Child, error) {
	if s.UpdateFunc == nil {
		return nil, errors.New("Update() not implemented by stub")
	}
	return s.UpdateFunc(ctx, childID, params)
}

func (s *StubService) Delete(ctx context.Context, childID, ownerID int64) error {
	if s.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return s.DeleteFunc(ctx, childID, ownerID)
}

type StubRepo struct {
	ListFunc   func(ctx context.Context, ownerID int64) ([]Child, error)
	CreateFunc func(ctx context.Context, params Params) (*Child, error)
	UpdateFunc func(ctx context.Context, childID int64, params Params) (*Child, error)
	DeleteFunc func(ctx context.Context, childID, ownerID int64) error
}

var _ Repository = (*StubRepo)(nil)

func (r *StubRepo) List(ctx context.Context, ownerID int64) ([]Child, error) {
	if r.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return r.ListFunc(ctx, ownerID)
}

func (r *StubRepo) Create(ctx context.Context, params Params) (*Child, error) {
	if r.CreateFunc == nil {
		return nil, errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, params)
}

func (r *StubRepo) Update(ctx context.Context, childID int64, params Params) (*Child, error) {
	if r.UpdateFunc == nil {
		return nil, errors.New("Update() not implemented by stub")
	}
	return r.UpdateFunc(ctx, childID, params)
}

func (r *StubRepo) Delete(ctx context.Context, childID, ownerID int64) error {
	if r.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return r.DeleteFunc(ctx, childID, ownerID)
}
