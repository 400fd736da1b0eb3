package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"faqhub/src/core/domain"
)

func (r *PostgresRepository) AddUser(ctx context.Context, id int64, displayName string) (*domain.Role, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, classify(err)
	}
	defer tx.Rollback(ctx)

	var existingID int64
	err = tx.QueryRow(ctx, `SELECT id FROM users WHERE id = $1`, id).Scan(&existingID)
	if err == nil {
		return nil, domain.NewAlreadyExistsError("User already exists")
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, classify(err)
	}

	// The default role is reference data seeded at deployment; its absence is
	// a deployment precondition failure, not a normal runtime outcome.
	role, err := roleByName(ctx, tx, domain.RoleUser, "Default user role not found")
	if err != nil {
		return nil, err
	}

	var name *string
	if displayName != "" {
		name = &displayName
	}
	if _, err := tx.Exec(ctx, `INSERT INTO users (id, name, role_id) VALUES ($1, $2, $3)`, id, name, role.ID); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.NewAlreadyExistsError("User already exists")
		}
		return nil, classify(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, classify(err)
	}
	return role, nil
}

func (r *PostgresRepository) GetRole(ctx context.Context, id int64) (*domain.Role, error) {
	if id <= 0 {
		return nil, domain.NewInvalidInputError("UserId must be positive and not null")
	}
	const q = `
		SELECT r.id, r.name
		FROM users u
		LEFT JOIN user_roles r ON r.id = u.role_id
		WHERE u.id = $1
	`
	var roleID *int32
	var roleName *string
	if err := r.pool.QueryRow(ctx, q, id).Scan(&roleID, &roleName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("User not found")
		}
		return nil, classify(err)
	}
	// Unreachable while the role FK holds; kept as a guard against manual
	// data edits.
	if roleID == nil || roleName == nil {
		return nil, domain.NewNotFoundError("User has no role assigned")
	}
	return &domain.Role{ID: *roleID, Name: *roleName}, nil
}

func (r *PostgresRepository) PromoteUser(ctx context.Context, id int64) error {
	return r.setUserRole(ctx, id, domain.RoleAdmin, "User not found", "Admin user role not found")
}

func (r *PostgresRepository) DemoteUser(ctx context.Context, id int64) error {
	return r.setUserRole(ctx, id, domain.RoleUser, "Target user not found", "Default user role not found")
}

func (r *PostgresRepository) BlockUser(ctx context.Context, id int64) error {
	return r.setUserRole(ctx, id, domain.RoleBlocked, "Target user not found", "Blocked user role not found")
}

func (r *PostgresRepository) UnblockUser(ctx context.Context, id int64) error {
	return r.setUserRole(ctx, id, domain.RoleUser, "Target user not found", "Default user role not found")
}

// setUserRole implements the read-then-mutate role transitions. Two concurrent
// transitions on the same user are last-writer-wins; re-applying a transition
// the user already has is a no-op success.
func (r *PostgresRepository) setUserRole(ctx context.Context, id int64, roleName, userMissingMsg, roleMissingMsg string) error {
	if id <= 0 {
		return domain.NewInvalidInputError("UserId must be positive and not null")
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return classify(err)
	}
	defer tx.Rollback(ctx)

	var currentRoleID int32
	if err := tx.QueryRow(ctx, `SELECT role_id FROM users WHERE id = $1`, id).Scan(&currentRoleID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NewNotFoundError(userMissingMsg)
		}
		return classify(err)
	}

	role, err := roleByName(ctx, tx, roleName, roleMissingMsg)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `UPDATE users SET role_id = $2 WHERE id = $1`, id, role.ID); err != nil {
		return classify(err)
	}

	return classify(tx.Commit(ctx))
}

func roleByName(ctx context.Context, tx pgx.Tx, name, missingMsg string) (*domain.Role, error) {
	var role domain.Role
	err := tx.QueryRow(ctx, `SELECT id, name FROM user_roles WHERE name = $1`, name).Scan(&role.ID, &role.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError(missingMsg)
		}
		return nil, classify(err)
	}
	return &role, nil
}
