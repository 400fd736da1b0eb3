package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"faqhub/src/core/domain"
	"faqhub/src/core/ports"
)

// fakeRepo is an in-memory ports.KnowledgeBaseRepository used by the service
// tests. It mirrors the storage-level behavior the services rely on: existence
// checks, duplicate detection, and the canonical error messages.
type fakeRepo struct {
	themes    map[int32]domain.Theme
	users     map[int64]domain.User
	faqs      map[int64]domain.FAQ
	questions map[int64]domain.UserQuestion

	nextThemeID    int32
	nextFAQID      int64
	nextQuestionID int64

	healthErr error
	// forcedErr, when set, is returned from every call to simulate storage
	// failures.
	forcedErr error
}

var _ ports.KnowledgeBaseRepository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		themes:         map[int32]domain.Theme{},
		users:          map[int64]domain.User{},
		faqs:           map[int64]domain.FAQ{},
		questions:      map[int64]domain.UserQuestion{},
		nextThemeID:    1,
		nextFAQID:      1,
		nextQuestionID: 1,
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (f *fakeRepo) Health(ctx context.Context) error { return f.healthErr }

func (f *fakeRepo) ListAllSortedByName(ctx context.Context) ([]domain.Theme, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	themes := []domain.Theme{}
	for _, t := range f.themes {
		themes = append(themes, t)
	}
	sort.Slice(themes, func(i, j int) bool { return themes[i].Name < themes[j].Name })
	return themes, nil
}

func (f *fakeRepo) DeleteThemeByID(ctx context.Context, id int32) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	if _, ok := f.themes[id]; !ok {
		return domain.NewNotFoundError("Theme not found")
	}
	delete(f.themes, id)
	return nil
}

func (f *fakeRepo) Add(ctx context.Context, name string) (*domain.Theme, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	for _, t := range f.themes {
		if t.Name == name {
			return nil, domain.NewAlreadyExistsError("Theme with such name already exist")
		}
	}
	theme := domain.Theme{ID: f.nextThemeID, Name: name}
	f.nextThemeID++
	f.themes[theme.ID] = theme
	return &theme, nil
}

func (f *fakeRepo) AddUser(ctx context.Context, id int64, displayName string) (*domain.Role, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	if _, ok := f.users[id]; ok {
		return nil, domain.NewAlreadyExistsError("User already exists")
	}
	role := domain.Role{ID: 1, Name: domain.RoleUser}
	u := domain.User{ID: id, RoleID: role.ID, Role: &role}
	if displayName != "" {
		u.DisplayName = &displayName
	}
	f.users[id] = u
	return &role, nil
}

func (f *fakeRepo) GetRole(ctx context.Context, id int64) (*domain.Role, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, domain.NewNotFoundError("User not found")
	}
	return u.Role, nil
}

func (f *fakeRepo) PromoteUser(ctx context.Context, id int64) error {
	return f.setRole(id, 2, domain.RoleAdmin, "User not found")
}

func (f *fakeRepo) DemoteUser(ctx context.Context, id int64) error {
	return f.setRole(id, 1, domain.RoleUser, "Target user not found")
}

func (f *fakeRepo) BlockUser(ctx context.Context, id int64) error {
	return f.setRole(id, 3, domain.RoleBlocked, "Target user not found")
}

func (f *fakeRepo) UnblockUser(ctx context.Context, id int64) error {
	return f.setRole(id, 1, domain.RoleUser, "Target user not found")
}

func (f *fakeRepo) setRole(id int64, roleID int32, roleName, missingMsg string) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	u, ok := f.users[id]
	if !ok {
		return domain.NewNotFoundError(missingMsg)
	}
	u.RoleID = roleID
	u.Role = &domain.Role{ID: roleID, Name: roleName}
	f.users[id] = u
	return nil
}

func (f *fakeRepo) AddNewFAQ(ctx context.Context, question, answer string, themeID int32) (*domain.FAQ, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	theme, ok := f.themes[themeID]
	if !ok {
		return nil, domain.NewNotFoundError(themeMissing(themeID))
	}
	faq := domain.FAQ{ID: f.nextFAQID, Question: question, Answer: answer, ThemeID: themeID, ThemeName: theme.Name}
	f.nextFAQID++
	f.faqs[faq.ID] = faq
	return &faq, nil
}

func (f *fakeRepo) UpdateFAQ(ctx context.Context, id int64, question, answer string, themeID int32) (*domain.FAQ, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	if _, ok := f.faqs[id]; !ok {
		return nil, domain.NewNotFoundError(faqMissing(id))
	}
	theme, ok := f.themes[themeID]
	if !ok {
		return nil, domain.NewNotFoundError(themeMissing(themeID))
	}
	faq := domain.FAQ{ID: id, Question: question, Answer: answer, ThemeID: themeID, ThemeName: theme.Name}
	f.faqs[id] = faq
	return &faq, nil
}

func (f *fakeRepo) DeleteFAQByID(ctx context.Context, id int64) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	if _, ok := f.faqs[id]; !ok {
		return domain.NewNotFoundError(faqMissing(id))
	}
	delete(f.faqs, id)
	return nil
}

func (f *fakeRepo) FindByThemeID(ctx context.Context, themeID int32) ([]domain.FAQ, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	if _, ok := f.themes[themeID]; !ok {
		return nil, domain.NewNotFoundError(themeMissing(themeID))
	}
	faqs := []domain.FAQ{}
	for _, faq := range f.faqs {
		if faq.ThemeID == themeID {
			faqs = append(faqs, faq)
		}
	}
	sort.Slice(faqs, func(i, j int) bool { return faqs[i].ID < faqs[j].ID })
	return faqs, nil
}

func (f *fakeRepo) AddNewQuestion(ctx context.Context, userID int64, question string) (*domain.UserQuestion, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	if _, ok := f.users[userID]; !ok {
		return nil, domain.NewNotFoundError("Target user not found")
	}
	q := domain.UserQuestion{ID: f.nextQuestionID, Question: question, UserID: userID, CreatedAt: time.Now()}
	f.nextQuestionID++
	f.questions[q.ID] = q
	return &q, nil
}

func (f *fakeRepo) GetAllQuestions(ctx context.Context, userID int64) ([]domain.UserQuestion, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	if _, ok := f.users[userID]; !ok {
		return nil, domain.NewNotFoundError(userMissing(userID))
	}
	questions := []domain.UserQuestion{}
	for _, q := range f.questions {
		if q.UserID == userID {
			questions = append(questions, q)
		}
	}
	sort.Slice(questions, func(i, j int) bool { return questions[i].ID < questions[j].ID })
	return questions, nil
}

func (f *fakeRepo) RemoveAllQuestionsByUser(ctx context.Context, userID int64) error {
	if f.forcedErr != nil {
		return f.forcedErr
	}
	if _, ok := f.users[userID]; !ok {
		return domain.NewNotFoundError("Target user not found")
	}
	for id, q := range f.questions {
		if q.UserID == userID {
			delete(f.questions, id)
		}
	}
	return nil
}

func themeMissing(id int32) string {
	return fmt.Sprintf("Theme with Id = %d not found", id)
}

func faqMissing(id int64) string {
	return fmt.Sprintf("FAQ with Id = %d not found", id)
}

func userMissing(id int64) string {
	return fmt.Sprintf("User with id = %d not found", id)
}
