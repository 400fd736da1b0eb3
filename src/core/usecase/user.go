package usecase

import (
	"context"
	"log/slog"
	"strings"

	"faqhub/src/core/domain"
	"faqhub/src/core/ports"
)

// UserService handles account creation and role transitions.
type UserService struct {
	repo ports.KnowledgeBaseRepository
	log  *slog.Logger
}

func NewUserService(repo ports.KnowledgeBaseRepository, log *slog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// Add creates an account with the default role and returns the role assigned.
// The id is externally supplied, so zero and negative values are rejected here
// rather than trusted to the store.
func (s *UserService) Add(ctx context.Context, id int64, displayName string) (*domain.Role, error) {
	if id <= 0 {
		return nil, domain.NewInvalidInputError("UserId must be positive and not null")
	}
	if len([]rune(displayName)) > domain.MaxNameLength {
		return nil, domain.NewInvalidInputError("Name must be shorter than 400 characters")
	}
	role, err := s.repo.AddUser(ctx, id, strings.TrimSpace(displayName))
	if err != nil {
		return nil, err
	}
	s.log.Info("user created", "user_id", id, "role", role.Name)
	return role, nil
}

// GetRole returns the role of the given user.
func (s *UserService) GetRole(ctx context.Context, id int64) (*domain.Role, error) {
	if id <= 0 {
		return nil, domain.NewInvalidInputError("UserId must be positive and not null")
	}
	return s.repo.GetRole(ctx, id)
}

// Promote raises the user to admin.
func (s *UserService) Promote(ctx context.Context, id int64) error {
	return s.transition(ctx, id, "promote", s.repo.PromoteUser)
}

// Demote returns the user to the default role.
func (s *UserService) Demote(ctx context.Context, id int64) error {
	return s.transition(ctx, id, "demote", s.repo.DemoteUser)
}

// Block moves the user to the blocked role.
func (s *UserService) Block(ctx context.Context, id int64) error {
	return s.transition(ctx, id, "block", s.repo.BlockUser)
}

// Unblock returns the user to the default role. Converges with Demote on the
// same target role.
func (s *UserService) Unblock(ctx context.Context, id int64) error {
	return s.transition(ctx, id, "unblock", s.repo.UnblockUser)
}

func (s *UserService) transition(ctx context.Context, id int64, name string, op func(context.Context, int64) error) error {
	if id <= 0 {
		return domain.NewInvalidInputError("UserId must be positive and not null")
	}
	if err := op(ctx, id); err != nil {
		return err
	}
	s.log.Info("user role transition", "user_id", id, "transition", name)
	return nil
}
