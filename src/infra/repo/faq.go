package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"faqhub/src/core/domain"
)

func (r *PostgresRepository) AddNewFAQ(ctx context.Context, question, answer string, themeID int32) (*domain.FAQ, error) {
	if strings.TrimSpace(question) == "" || strings.TrimSpace(answer) == "" || themeID <= 0 {
		return nil, domain.NewInvalidInputError("Invalid input data.")
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, classify(err)
	}
	defer tx.Rollback(ctx)

	themeName, err := themeNameByID(ctx, tx, themeID)
	if err != nil {
		return nil, err
	}

	faq := domain.FAQ{Question: question, Answer: answer, ThemeID: themeID, ThemeName: themeName}
	err = tx.QueryRow(ctx,
		`INSERT INTO faq (question, answer, theme_id) VALUES ($1, $2, $3) RETURNING id`,
		question, answer, themeID,
	).Scan(&faq.ID)
	if err != nil {
		return nil, classify(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, classify(err)
	}
	return &faq, nil
}

func (r *PostgresRepository) UpdateFAQ(ctx context.Context, id int64, question, answer string, themeID int32) (*domain.FAQ, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, classify(err)
	}
	defer tx.Rollback(ctx)

	var existingID int64
	err = tx.QueryRow(ctx, `SELECT id FROM faq WHERE id = $1`, id).Scan(&existingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError(fmt.Sprintf("FAQ with Id = %d not found", id))
		}
		return nil, classify(err)
	}

	themeName, err := themeNameByID(ctx, tx, themeID)
	if err != nil {
		return nil, err
	}

	// Full replace, not a partial patch.
	if _, err := tx.Exec(ctx,
		`UPDATE faq SET question = $2, answer = $3, theme_id = $4 WHERE id = $1`,
		id, question, answer, themeID,
	); err != nil {
		return nil, classify(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, classify(err)
	}
	return &domain.FAQ{ID: id, Question: question, Answer: answer, ThemeID: themeID, ThemeName: themeName}, nil
}

func (r *PostgresRepository) DeleteFAQByID(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewInvalidInputError("Id cannot be null or empty")
	}
	res, err := r.pool.Exec(ctx, `DELETE FROM faq WHERE id = $1`, id)
	if err != nil {
		return classify(err)
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("FAQ with Id = %d not found", id))
	}
	return nil
}

func (r *PostgresRepository) FindByThemeID(ctx context.Context, themeID int32) ([]domain.FAQ, error) {
	if themeID <= 0 {
		return nil, domain.NewInvalidInputError("Theme Id cannot be null or negative")
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, classify(err)
	}
	defer tx.Rollback(ctx)

	// A theme with zero FAQs returns an empty list; a missing theme is an
	// error, so the existence check comes first.
	themeName, err := themeNameByID(ctx, tx, themeID)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx,
		`SELECT id, question, answer FROM faq WHERE theme_id = $1 ORDER BY id ASC`,
		themeID,
	)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	faqs := []domain.FAQ{}
	for rows.Next() {
		f := domain.FAQ{ThemeID: themeID, ThemeName: themeName}
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer); err != nil {
			return nil, classify(err)
		}
		faqs = append(faqs, f)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, classify(err)
	}
	return faqs, nil
}

func themeNameByID(ctx context.Context, tx pgx.Tx, themeID int32) (string, error) {
	var name string
	err := tx.QueryRow(ctx, `SELECT name FROM themes WHERE id = $1`, themeID).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.NewNotFoundError(fmt.Sprintf("Theme with Id = %d not found", themeID))
		}
		return "", classify(err)
	}
	return name, nil
}
