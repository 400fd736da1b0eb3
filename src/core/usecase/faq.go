package usecase

import (
	"context"
	"log/slog"
	"strings"

	"faqhub/src/core/domain"
	"faqhub/src/core/ports"
)

// FAQService handles curated question-answer flows.
type FAQService struct {
	repo ports.KnowledgeBaseRepository
	log  *slog.Logger
}

func NewFAQService(repo ports.KnowledgeBaseRepository, log *slog.Logger) *FAQService {
	return &FAQService{repo: repo, log: log}
}

// Add creates a FAQ bound to an existing theme.
func (s *FAQService) Add(ctx context.Context, question, answer string, themeID int32) (*domain.FAQ, error) {
	if err := validateFAQInput(question, answer, themeID); err != nil {
		return nil, err
	}
	faq, err := s.repo.AddNewFAQ(ctx, question, answer, themeID)
	if err != nil {
		return nil, err
	}
	s.log.Info("faq created", "faq_id", faq.ID, "theme_id", themeID)
	return faq, nil
}

// Update overwrites an existing FAQ in full.
func (s *FAQService) Update(ctx context.Context, id int64, question, answer string, themeID int32) (*domain.FAQ, error) {
	if id <= 0 {
		return nil, domain.NewInvalidInputError("Id cannot be null or empty")
	}
	if err := validateFAQInput(question, answer, themeID); err != nil {
		return nil, err
	}
	return s.repo.UpdateFAQ(ctx, id, question, answer, themeID)
}

// Delete removes a single FAQ by id.
func (s *FAQService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewInvalidInputError("Id cannot be null or empty")
	}
	return s.repo.DeleteFAQByID(ctx, id)
}

// ListByTheme returns all FAQs of an existing theme ordered by id.
func (s *FAQService) ListByTheme(ctx context.Context, themeID int32) ([]domain.FAQ, error) {
	if themeID <= 0 {
		return nil, domain.NewInvalidInputError("Theme Id cannot be null or negative")
	}
	return s.repo.FindByThemeID(ctx, themeID)
}

func validateFAQInput(question, answer string, themeID int32) error {
	if strings.TrimSpace(question) == "" || strings.TrimSpace(answer) == "" || themeID <= 0 {
		return domain.NewInvalidInputError("Invalid input data.")
	}
	if len([]rune(question)) > domain.MaxQuestionLength {
		return domain.NewInvalidInputError("Question must be shorter than 500 characters")
	}
	if len([]rune(answer)) > domain.MaxAnswerLength {
		return domain.NewInvalidInputError("Answer must be shorter than 2000 characters")
	}
	return nil
}
