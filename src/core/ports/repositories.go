// Package ports defines interfaces (ports) that connect core domain to
// infrastructure, following the ports and adapters pattern. Implementations
// live in src/infra/repo so the core has no dependency on storage.
package ports

import (
	"context"

	"faqhub/src/core/domain"
)

// Repository is the base interface for all repositories.
type Repository interface {
	// Health checks if the underlying storage is reachable.
	Health(ctx context.Context) error
}

// ThemeRepository manages FAQ topics.
type ThemeRepository interface {
	// ListAllSortedByName returns every theme ordered by name ascending.
	// An empty slice is a valid result, not an error.
	ListAllSortedByName(ctx context.Context) ([]domain.Theme, error)

	// DeleteThemeByID removes a theme. Deleting a theme does not cascade to
	// FAQs referencing it.
	DeleteThemeByID(ctx context.Context, id int32) error

	// Add persists a new theme with the trimmed name. The existence check and
	// the insert run in one transaction; a concurrent duplicate surfaces as
	// an already-exists failure via the unique constraint.
	Add(ctx context.Context, name string) (*domain.Theme, error)
}

// UserRepository manages accounts and their role transitions. Role rows are
// fixed reference data resolved by name inside the same transaction as the
// mutation that needs them.
type UserRepository interface {
	// AddUser creates an account with the default "user" role and returns the
	// role it was assigned.
	AddUser(ctx context.Context, id int64, displayName string) (*domain.Role, error)

	// GetRole returns the role of the given user.
	GetRole(ctx context.Context, id int64) (*domain.Role, error)

	// PromoteUser sets the user's role to admin. Idempotent at the role level.
	PromoteUser(ctx context.Context, id int64) error

	// DemoteUser sets the user's role back to the default user role.
	DemoteUser(ctx context.Context, id int64) error

	// BlockUser sets the user's role to blocked.
	BlockUser(ctx context.Context, id int64) error

	// UnblockUser sets the user's role back to the default user role.
	UnblockUser(ctx context.Context, id int64) error
}

// FAQRepository manages curated question-answer pairs.
type FAQRepository interface {
	// AddNewFAQ creates a FAQ bound to an existing theme and returns it with
	// the theme name attached.
	AddNewFAQ(ctx context.Context, question, answer string, themeID int32) (*domain.FAQ, error)

	// UpdateFAQ overwrites question, answer, and theme reference in place
	// (full replace, not a partial patch).
	UpdateFAQ(ctx context.Context, id int64, question, answer string, themeID int32) (*domain.FAQ, error)

	// DeleteFAQByID removes a single FAQ.
	DeleteFAQByID(ctx context.Context, id int64) error

	// FindByThemeID returns all FAQs of an existing theme ordered by id.
	// A theme with zero FAQs yields an empty slice; a missing theme is an
	// error.
	FindByThemeID(ctx context.Context, themeID int32) ([]domain.FAQ, error)
}

// UserQuestionRepository manages user-submitted questions.
type UserQuestionRepository interface {
	// AddNewQuestion records a question for an existing user with a
	// server-assigned timestamp and a null answer.
	AddNewQuestion(ctx context.Context, userID int64, question string) (*domain.UserQuestion, error)

	// GetAllQuestions returns every question of an existing user ordered by id.
	GetAllQuestions(ctx context.Context, userID int64) ([]domain.UserQuestion, error)

	// RemoveAllQuestionsByUser deletes every question owned by the user as one
	// bulk operation. Zero deleted rows is still a success.
	RemoveAllQuestionsByUser(ctx context.Context, userID int64) error
}

// KnowledgeBaseRepository is the composite repository covering all domain
// operations of the service.
type KnowledgeBaseRepository interface {
	Repository
	ThemeRepository
	UserRepository
	FAQRepository
	UserQuestionRepository
}
