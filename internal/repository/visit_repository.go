package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devhive-labs/portfolio-service/internal/domain"
)

// VisitRepository encapsulates visit-ledger persistence.
type VisitRepository interface {
	Create(ctx context.Context, visit *domain.Visit) error
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Visit, error)
	// TrimToNewest deletes every visit for the owner except the newest keep
	// rows, in one statement, and reports how many rows were removed.
	TrimToNewest(ctx context.Context, ownerID string, keep int) (int64, error)
	Delete(ctx context.Context, ownerID, visitID string) (int64, error)
	DeleteAllByOwner(ctx context.Context, ownerID string) (int64, error)
}

type visitRepository struct {
	pool *pgxpool.Pool
}

// NewVisitRepository returns a Postgres-backed implementation.
func NewVisitRepository(pool *pgxpool.Pool) VisitRepository {
	return &visitRepository{pool: pool}
}

func (r *visitRepository) Create(ctx context.Context, visit *domain.Visit) error {
	const query = `
        INSERT INTO visits (owner_id, ip, user_agent, page)
        VALUES ($1, $2, $3, $4)
        RETURNING id, visited_at`

	return r.pool.QueryRow(ctx, query,
		visit.OwnerID,
		visit.IP,
		visit.UserAgent,
		visit.Page,
	).Scan(&visit.ID, &visit.VisitedAt)
}

func (r *visitRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Visit, error) {
	const query = `
        SELECT id, owner_id, ip, user_agent, page, visited_at
        FROM visits WHERE owner_id=$1
        ORDER BY visited_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Visit
	for rows.Next() {
		var visit domain.Visit
		if err := rows.Scan(
			&visit.ID,
			&visit.OwnerID,
			&visit.IP,
			&visit.UserAgent,
			&visit.Page,
			&visit.VisitedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, visit)
	}
	return result, rows.Err()
}

func (r *visitRepository) TrimToNewest(ctx context.Context, ownerID string, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}
	// Single windowed delete; no count-then-delete race between concurrent
	// tracking calls for the same owner.
	const query = `
        DELETE FROM visits
        WHERE owner_id=$1 AND id NOT IN (
            SELECT id FROM visits WHERE owner_id=$1
            ORDER BY visited_at DESC, id DESC
            LIMIT $2
        )`

	cmd, err := r.pool.Exec(ctx, query, ownerID, keep)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (r *visitRepository) Delete(ctx context.Context, ownerID, visitID string) (int64, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM visits WHERE id=$1 AND owner_id=$2`, visitID, ownerID)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (r *visitRepository) DeleteAllByOwner(ctx context.Context, ownerID string) (int64, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM visits WHERE owner_id=$1`, ownerID)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}
