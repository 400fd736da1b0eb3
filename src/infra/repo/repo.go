// Package repo contains the PostgreSQL implementation of the repository
// ports. Every operation runs inside one transaction scope and resolves to
// either a success value or exactly one kind from the domain error taxonomy;
// no raw driver error crosses this boundary.
package repo

import (
	"context"
	"errors"
	"log/slog"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"faqhub/src/core/domain"
	"faqhub/src/infra/db"
)

// PostgresRepository implements ports.KnowledgeBaseRepository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewPostgresRepository constructs a repository backed by Postgres.
func NewPostgresRepository(pg *db.Postgres, log *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		pool: pg.Pool,
		log:  log,
	}
}

func (r *PostgresRepository) Health(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

// classify maps a driver-level failure onto the taxonomy. Errors that are
// already domain errors pass through untouched, so call sites may attach
// entity-specific messages first.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var de *domain.DomainError
	if errors.As(err, &de) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return domain.NewTimeoutError()
	}

	var connErr *pgconn.ConnectError
	var netErr *net.OpError
	if errors.As(err, &connErr) || errors.As(err, &netErr) {
		return domain.NewStorageUnavailableError()
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Class 08 covers connection exceptions raised server-side.
		if len(pgErr.Code) >= 2 && pgErr.Code[:2] == "08" {
			return domain.NewStorageUnavailableError()
		}
		if pgErr.Code == "23505" {
			return domain.NewAlreadyExistsError("resource already exists")
		}
		return domain.NewStorageFaultError(pgErr.Message)
	}

	return domain.NewUnknownError(err)
}
