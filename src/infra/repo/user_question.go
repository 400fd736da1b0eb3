package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"faqhub/src/core/domain"
)

func (r *PostgresRepository) AddNewQuestion(ctx context.Context, userID int64, question string) (*domain.UserQuestion, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, classify(err)
	}
	defer tx.Rollback(ctx)

	if err := userExists(ctx, tx, userID, "Target user not found"); err != nil {
		return nil, err
	}

	q := domain.UserQuestion{Question: question, UserID: userID}
	err = tx.QueryRow(ctx,
		`INSERT INTO user_questions (question, user_id, created_at) VALUES ($1, $2, now()) RETURNING id, created_at`,
		question, userID,
	).Scan(&q.ID, &q.CreatedAt)
	if err != nil {
		return nil, classify(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, classify(err)
	}
	return &q, nil
}

func (r *PostgresRepository) GetAllQuestions(ctx context.Context, userID int64) ([]domain.UserQuestion, error) {
	if userID <= 0 {
		return nil, domain.NewInvalidInputError("UserId cannot be negative")
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, classify(err)
	}
	defer tx.Rollback(ctx)

	if err := userExists(ctx, tx, userID, fmt.Sprintf("User with id = %d not found", userID)); err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx,
		`SELECT id, question, answer, created_at FROM user_questions WHERE user_id = $1 ORDER BY id ASC`,
		userID,
	)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	questions := []domain.UserQuestion{}
	for rows.Next() {
		q := domain.UserQuestion{UserID: userID}
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.CreatedAt); err != nil {
			return nil, classify(err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, classify(err)
	}
	return questions, nil
}

func (r *PostgresRepository) RemoveAllQuestionsByUser(ctx context.Context, userID int64) error {
	if userID <= 0 {
		return domain.NewInvalidInputError("UserId cannot be negative")
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return classify(err)
	}
	defer tx.Rollback(ctx)

	if err := userExists(ctx, tx, userID, "Target user not found"); err != nil {
		return err
	}

	// One bulk delete; zero affected rows is still a success.
	if _, err := tx.Exec(ctx, `DELETE FROM user_questions WHERE user_id = $1`, userID); err != nil {
		return classify(err)
	}

	return classify(tx.Commit(ctx))
}

func userExists(ctx context.Context, tx pgx.Tx, userID int64, missingMsg string) error {
	var id int64
	err := tx.QueryRow(ctx, `SELECT id FROM users WHERE id = $1`, userID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NewNotFoundError(missingMsg)
		}
		return classify(err)
	}
	return nil
}
