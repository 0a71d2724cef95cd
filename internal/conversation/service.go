package conversation

import (
	"context"
	"fmt"
	"strings"
)

type Repository interface {
	List(ctx context.Context, ownerID int64) ([]Conversation, error)
	Create(ctx context.Context, ownerID int64, title string) (*Conversation, error)
	Delete(ctx context.Context, conversationID, ownerID int64) error
}

type Service interface {
	// List returns the caller's conversations, most recently active first.
	List(ctx context.Context, ownerID int64) ([]Conversation, error)
	// Create starts a conversation. A blank title becomes DefaultTitle.
	Create(ctx context.Context, ownerID int64, title string) (*Conversation, error)
	Delete(ctx context.Context, conversationID, ownerID int64) error
}

type service struct {
	repo Repository
}

var _ Service = (*service)(nil)

//nolint:ireturn // handlers depend on the interface.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, ownerID int64) ([]Conversation, error) {
	conversations, err := s.repo.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return conversations, nil
}

func (s *service) Create(ctx context.Context, ownerID int64, title string) (*Conversation, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultTitle
	}

	c, err := s.repo.Create(ctx, ownerID, title)
	if err != nil {
		return nil, fmt.Errorf("create conversation: %w", err)
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, conversationID, ownerID int64) error {
	if err := s.repo.Delete(ctx, conversationID, ownerID); err != nil {
		return fmt.Errorf("delete conversation %d: %w", conversationID, err)
	}
	return nil
}
