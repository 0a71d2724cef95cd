package conversation

import (
	"context"
	"errors"
)

type StubService struct {
	ListFunc   func(ctx context.Context, ownerID int64) ([]Conversation, error)
	CreateFunc func(ctx context.Context, ownerID int64, title string) (*Conversation, error)
	DeleteFunc func(ctx context.Context, conversationID, ownerID int64) error
}

var _ Service = (*StubService)(nil)

func (s *StubService) List(ctx context.Context, ownerID int64) ([]Conversation, error) {
	if s.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return s.ListFunc(ctx, ownerID)
}

func (s *StubService) Create(ctx context.Context, ownerID int64, title string) (*Conversation, error) {
	if s.CreateFunc == nil {
		return nil, errors.New("Create() not implemented by stub")
	}
	return s.CreateFunc(ctx, ownerID, title)
}

func (s *StubService) Delete(ctx context.Context, conversationID, ownerID int64) error {
	if s.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return s.DeleteFunc(ctx, conversationID, ownerID)
}

type StubRepo struct {
	ListFunc   func(ctx context.Context, ownerID int64) ([]Conversation, error)
	CreateFunc func(ctx context.Context, ownerID int64, title string) (*Conversation, error)
	DeleteFunc func(ctx context.Context, conversationID, ownerID int64) error
}

var _ Repository = (*StubRepo)(nil)

func (r *StubRepo) List(ctx context.Context, ownerID int64) ([]Conversation, error) {
	if r.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return r.ListFunc(ctx, ownerID)
}

func (r *StubRepo) Create(ctx context.Context, ownerID int64, title string) (*Conversation, error) {
	if r.CreateFunc == nil {
		return nil, errors.New("Create() not implemented by stub")
	}
	return r.CreateFunc(ctx, ownerID, title)
}

func (r *StubRepo) Delete(ctx context.Context, conversationID, ownerID int64) error {
	if r.DeleteFunc == nil {
		return errors.New("Delete() not implemented by stub")
	}
	return r.DeleteFunc(ctx, conversationID, ownerID)
}
