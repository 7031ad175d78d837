package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devhive-labs/portfolio-service/internal/domain"
)

// UserRepository defines persistence access for portfolio owners.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	UpdateApproval(ctx context.Context, id string, state domain.ApprovalState) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id string) error
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

const userColumns = `
        id, email, username, password_hash, role, approval, title, image,
        phone, portfolio_link, notes, resume_pdf, cv_pdf,
        bio, social, skills, current_status, projects, experience,
        education, certificates, created_at, updated_at`

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (email, username, password_hash, role, approval, title, image,
                           phone, portfolio_link, notes, resume_pdf, cv_pdf,
                           bio, social, skills, current_status, projects, experience,
                           education, certificates)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		user.Email,
		user.Username,
		user.PasswordHash,
		user.Role,
		user.Approval,
		user.Title,
		user.Image,
		user.Phone,
		user.PortfolioLink,
		user.Notes,
		user.ResumePDF,
		user.CVPDF,
		user.Bio,
		user.Social,
		user.Skills,
		user.CurrentStatus,
		user.Projects,
		user.Experience,
		user.Education,
		user.Certificates,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	const query = `
        UPDATE users SET email=$1, username=$2, password_hash=$3, role=$4, approval=$5,
            title=$6, image=$7, phone=$8, portfolio_link=$9, notes=$10,
            resume_pdf=$11, cv_pdf=$12, bio=$13, social=$14, skills=$15,
            current_status=$16, projects=$17, experience=$18, education=$19,
            certificates=$20, updated_at=NOW()
        WHERE id=$21`

	cmd, err := r.pool.Exec(ctx, query,
		user.Email,
		user.Username,
		user.PasswordHash,
		user.Role,
		user.Approval,
		user.Title,
		user.Image,
		user.Phone,
		user.PortfolioLink,
		user.Notes,
		user.ResumePDF,
		user.CVPDF,
		user.Bio,
		user.Social,
		user.Skills,
		user.CurrentStatus,
		user.Projects,
		user.Experience,
		user.Education,
		user.Certificates,
		user.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) UpdateApproval(ctx context.Context, id string, state domain.ApprovalState) error {
	const query = `UPDATE users SET approval=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, state, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	return r.fetchSingle(ctx, query, email)
}

func (r *userRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	if err := scanUser(r.pool.QueryRow(ctx, query, arg), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.User
	for rows.Next() {
		var user domain.User
		if err := scanUser(rows, &user); err != nil {
			return nil, err
		}
		result = append(result, user)
	}
	return result, rows.Err()
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanUser(row pgx.Row, user *domain.User) error {
	return row.Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.PasswordHash,
		&user.Role,
		&user.Approval,
		&user.Title,
		&user.Image,
		&user.Phone,
		&user.PortfolioLink,
		&user.Notes,
		&user.ResumePDF,
		&user.CVPDF,
		&user.Bio,
		&user.Social,
		&user.Skills,
		&user.CurrentStatus,
		&user.Projects,
		&user.Experience,
		&user.Education,
		&user.Certificates,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
}
