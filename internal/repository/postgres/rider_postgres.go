package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"zoomboom/internal/model"
	"zoomboom/internal/repository"
)

const riderColumns = `id, email, full_name, phone, nid, region, district, license,
		bike_details, bike_reg, bio, rider_image, user_photo, status, role, applied_at, updated_at`

// RiderPostgres is a PostgreSQL implementation of repository.RiderRepository.
type RiderPostgres struct {
	db *sql.DB
}

func NewRiderPostgres(db *sql.DB) *RiderPostgres {
	return &RiderPostgres{db: db}
}

var _ repository.RiderRepository = (*RiderPostgres)(nil)

func scanRider(s rowScanner) (*model.Rider, error) {
	var r model.Rider
	if err := s.Scan(
		&r.ID,
		&r.Email,
		&r.FullName,
		&r.Phone,
		&r.NID,
		&r.Region,
		&r.District,
		&r.License,
		&r.BikeDetails,
		&r.BikeReg,
		&r.Bio,
		&r.RiderImage,
		&r.UserPhoto,
		&r.Status,
		&r.Role,
		&r.AppliedAt,
		&r.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &r, nil
}

// Create inserts a rider application. The email column is unique.
func (r *RiderPostgres) Create(ctx context.Context, rd *model.Rider) (*model.Rider, error) {
	const q = `
		INSERT INTO riders (` + riderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING ` + riderColumns
	row := r.db.QueryRowContext(ctx, q,
		rd.ID,
		rd.Email,
		rd.FullName,
		rd.Phone,
		rd.NID,
		rd.Region,
		rd.District,
		rd.License,
		rd.BikeDetails,
		rd.BikeReg,
		rd.Bio,
		rd.RiderImage,
		rd.UserPhoto,
		rd.Status,
		rd.Role,
		rd.AppliedAt,
		rd.UpdatedAt,
	)
	out, err := scanRider(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, repository.ErrDuplicate
		}
		return nil, err
	}
	return out, nil
}

func (r *RiderPostgres) FindByID(ctx context.Context, id string) (*model.Rider, error) {
	if !validID(id) {
		return nil, sql.ErrNoRows
	}
	const q = `SELECT ` + riderColumns + ` FROM riders WHERE id = $1`
	return scanRider(r.db.QueryRowContext(ctx, q, id))
}

// List returns applications ordered by application time, newest first.
func (r *RiderPostgres) List(ctx context.Context, f repository.RiderFilter) ([]model.Rider, error) {
	var (
		conds []string
		args  []any
	)
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		args = append(args, "%"+s+"%")
		conds = append(conds, fmt.Sprintf("(full_name ILIKE $%d OR email ILIKE $%d)", len(args), len(args)))
	}

	q := `SELECT ` + riderColumns + ` FROM riders`
	if len(conds) > 0 {
		q += ` WHERE ` + strings.Join(conds, " AND ")
	}
	q += ` ORDER BY applied_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Rider, 0)
	for rows.Next() {
		rd, err := scanRider(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *rd)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// ChangeStatus updates the application and, when c.Role is set, the owner's user role.
func (r *RiderPostgres) ChangeStatus(ctx context.Context, id string, c repository.StatusChange) (int64, error) {
	if !validID(id) {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var role sql.NullString
	if c.Role != nil {
		role = sql.NullString{String: string(*c.Role), Valid: true}
	}

	const qRider = `
		UPDATE riders SET status = $2, role = COALESCE($3, role), updated_at = $4
		WHERE id = $1 AND status = $5
		RETURNING email
	`
	var email string
	err = tx.QueryRowContext(ctx, qRider, id, c.To, role, c.At, c.From).Scan(&email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}

	// Admins keep their role whatever happens to a rider application they own.
	if role.Valid {
		const qUser = `UPDATE users SET role = $2 WHERE email = $1 AND role <> $3`
		if _, err := tx.ExecContext(ctx, qUser, email, role, string(model.RoleAdmin)); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return 1, nil
}
