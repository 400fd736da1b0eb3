package usecase

import (
	"context"
	"log/slog"
	"strings"

	"faqhub/src/core/domain"
	"faqhub/src/core/ports"
)

// ThemeService handles topic management flows.
type ThemeService struct {
	repo ports.KnowledgeBaseRepository
	log  *slog.Logger
}

func NewThemeService(repo ports.KnowledgeBaseRepository, log *slog.Logger) *ThemeService {
	return &ThemeService{repo: repo, log: log}
}

// ListAll returns every theme ordered by name.
func (s *ThemeService) ListAll(ctx context.Context) ([]domain.Theme, error) {
	return s.repo.ListAllSortedByName(ctx)
}

// Delete removes a theme by id.
func (s *ThemeService) Delete(ctx context.Context, id int32) error {
	if id <= 0 {
		return domain.NewInvalidInputError("Id must be a positive number")
	}
	return s.repo.DeleteThemeByID(ctx, id)
}

// Add creates a new theme from the trimmed name.
func (s *ThemeService) Add(ctx context.Context, name string) (*domain.Theme, error) {
	if name == "" {
		return nil, domain.NewInvalidInputError("Name of theme can not be null or empty")
	}
	if len([]rune(name)) > domain.MaxNameLength {
		return nil, domain.NewInvalidInputError("Name must be shorter than 400 characters")
	}
	theme, err := s.repo.Add(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, err
	}
	s.log.Info("theme created", "theme_id", theme.ID, "name", theme.Name)
	return theme, nil
}
