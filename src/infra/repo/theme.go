package repo

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"faqhub/src/core/domain"
)

func (r *PostgresRepository) ListAllSortedByName(ctx context.Context) ([]domain.Theme, error) {
	const q = `
		SELECT id, name
		FROM themes
		ORDER BY name ASC
	`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	themes := []domain.Theme{}
	for rows.Next() {
		var t domain.Theme
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, classify(err)
		}
		themes = append(themes, t)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}
	return themes, nil
}

func (r *PostgresRepository) DeleteThemeByID(ctx context.Context, id int32) error {
	if id <= 0 {
		return domain.NewInvalidInputError("Id must be a positive number")
	}
	res, err := r.pool.Exec(ctx, `DELETE FROM themes WHERE id = $1`, id)
	if err != nil {
		return classify(err)
	}
	if res.RowsAffected() == 0 {
		return domain.NewNotFoundError("Theme not found")
	}
	return nil
}

func (r *PostgresRepository) Add(ctx context.Context, name string) (*domain.Theme, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, domain.NewInvalidInputError("Name of theme can not be null or empty")
	}
	if len([]rune(trimmed)) > domain.MaxNameLength {
		return nil, domain.NewInvalidInputError("Name must be shorter than 400 characters")
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, classify(err)
	}
	defer tx.Rollback(ctx)

	// Check-then-insert in one transaction. A concurrent insert with the same
	// name can still race past this check; the unique index turns that into a
	// constraint violation below.
	var existingID int32
	err = tx.QueryRow(ctx, `SELECT id FROM themes WHERE name = $1`, trimmed).Scan(&existingID)
	if err == nil {
		return nil, domain.NewAlreadyExistsError("Theme with such name already exist")
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, classify(err)
	}

	var t domain.Theme
	err = tx.QueryRow(ctx, `INSERT INTO themes (name) VALUES ($1) RETURNING id, name`, trimmed).Scan(&t.ID, &t.Name)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewAlreadyExistsError("Theme with such name already exist")
		}
		return nil, classify(err)
	}

	if err := tx.Commit(ctx); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewAlreadyExistsError("Theme with such name already exist")
		}
		return nil, classify(err)
	}
	return &t, nil
}
