package usecase

import (
	"context"
	"log/slog"
	"strings"

	"faqhub/src/core/domain"
	"faqhub/src/core/ports"
)

// UserQuestionService handles user-submitted questions.
type UserQuestionService struct {
	repo ports.KnowledgeBaseRepository
	log  *slog.Logger
}

func NewUserQuestionService(repo ports.KnowledgeBaseRepository, log *slog.Logger) *UserQuestionService {
	return &UserQuestionService{repo: repo, log: log}
}

// Add records a question for an existing user.
func (s *UserQuestionService) Add(ctx context.Context, userID int64, question string) (*domain.UserQuestion, error) {
	if strings.TrimSpace(question) == "" {
		return nil, domain.NewInvalidInputError("Question cannot be empty")
	}
	if len([]rune(question)) > domain.MaxQuestionLength {
		return nil, domain.NewInvalidInputError("Question must be shorter than 500 characters")
	}
	q, err := s.repo.AddNewQuestion(ctx, userID, question)
	if err != nil {
		return nil, err
	}
	s.log.Info("user question created", "question_id", q.ID, "user_id", userID)
	return q, nil
}

// ListByUser returns every question of an existing user ordered by id.
func (s *UserQuestionService) ListByUser(ctx context.Context, userID int64) ([]domain.UserQuestion, error) {
	if userID <= 0 {
		return nil, domain.NewInvalidInputError("UserId cannot be negative")
	}
	return s.repo.GetAllQuestions(ctx, userID)
}

// RemoveByUser bulk-deletes every question owned by the user.
func (s *UserQuestionService) RemoveByUser(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return domain.NewInvalidInputError("UserId cannot be negative")
	}
	return s.repo.RemoveAllQuestionsByUser(ctx, userID)
}
