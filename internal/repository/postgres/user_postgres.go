package postgres

import (
	"context"
	"database/sql"

	"zoomboom/internal/model"
	"zoomboom/internal/repository"
)

const userColumns = `email, name, photo_url, role, created_at, last_login_at`

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
type UserPostgres struct {
	db *sql.DB
}

func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

func scanUser(s rowScanner) (*model.User, error) {
	var u model.User
	if err := s.Scan(
		&u.Email,
		&u.Name,
		&u.PhotoURL,
		&u.Role,
		&u.CreatedAt,
		&u.LastLoginAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

// Upsert relies on ON CONFLICT so concurrent sign-ins for one email resolve to a single row.
func (r *UserPostgres) Upsert(ctx context.Context, u *model.User) (*model.User, error) {
	const q = `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (email) DO UPDATE SET
			name = EXCLUDED.name,
			photo_url = EXCLUDED.photo_url,
			last_login_at = EXCLUDED.last_login_at
		RETURNING ` + userColumns
	row := r.db.QueryRowContext(ctx, q,
		u.Email,
		u.Name,
		u.PhotoURL,
		u.Role,
		u.CreatedAt,
		u.LastLoginAt,
	)
	return scanUser(row)
}

func (r *UserPostgres) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRowContext(ctx, q, email))
}

// UpdateProfile leaves nil fields untouched.
func (r *UserPostgres) UpdateProfile(ctx context.Context, email string, p repository.ProfileUpdate) (int64, error) {
	const q = `UPDATE users SET name = COALESCE($2, name), photo_url = COALESCE($3, photo_url) WHERE email = $1`
	res, err := r.db.ExecContext(ctx, q, email, nullString(p.Name), nullString(p.PhotoURL))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
