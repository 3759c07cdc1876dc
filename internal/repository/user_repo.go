package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"aula-match/internal/domain"
)

// UserRepository define el contrato de persistencia para docentes.
type UserRepository interface {
	Create(ctx context.Context, user domain.User) error
	GetByID(ctx context.Context, id string) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	UpdateOTP(ctx context.Context, id, codeHash string, expiresAt time.Time) error
	VerifyEmail(ctx context.Context, id string, verifiedAt time.Time) error
}

// PgUserRepository implementa UserRepository usando pgxpool.
type PgUserRepository struct {
	pool *pgxpool.Pool
}

func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

func (r *PgUserRepository) Create(ctx context.Context, user domain.User) error {
	const query = `
		INSERT INTO users (id, email, display_name, password_hash, email_verified_at, otp_code_hash, otp_expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		user.ID,
		user.Email,
		user.DisplayName,
		user.PasswordHash,
		user.EmailVerifiedAt,
		user.OtpCodeHash,
		user.OtpExpiresAt,
		user.CreatedAt,
	)
	return err
}

func (r *PgUserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	return r.getBy(ctx, "id", id)
}

func (r *PgUserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *PgUserRepository) getBy(ctx context.Context, column, value string) (domain.User, error) {
	query := `
		SELECT id, email, display_name, password_hash, email_verified_at, otp_code_hash, otp_expires_at, created_at
		FROM users
		WHERE ` + column + ` = $1
	`
	var u domain.User
	err := r.pool.QueryRow(ctx, query, value).Scan(
		&u.ID,
		&u.Email,
		&u.DisplayName,
		&u.PasswordHash,
		&u.EmailVerifiedAt,
		&u.OtpCodeHash,
		&u.OtpExpiresAt,
		&u.CreatedAt,
	)
	return u, err
}

func (r *PgUserRepository) UpdateOTP(ctx context.Context, id, codeHash string, expiresAt time.Time) error {
	const query = `
		UPDATE users SET otp_code_hash = $2, otp_expires_at = $3 WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query, id, codeHash, expiresAt)
	return err
}

func (r *PgUserRepository) VerifyEmail(ctx context.Context, id string, verifiedAt time.Time) error {
	const query = `
		UPDATE users SET email_verified_at = $2, otp_code_hash = '', otp_expires_at = NULL WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query, id, verifiedAt)
	return err
}
