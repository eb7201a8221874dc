package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"zoomboom/internal/model"
	"zoomboom/internal/repository"
)

// PaymentPostgres is a PostgreSQL implementation of repository.PaymentRepository.
type PaymentPostgres struct {
	db *sql.DB
}

func NewPaymentPostgres(db *sql.DB) *PaymentPostgres {
	return &PaymentPostgres{db: db}
}

var _ repository.PaymentRepository = (*PaymentPostgres)(nil)

// CreateForParcel records the payment and marks the parcel Paid atomically.
func (r *PaymentPostgres) CreateForParcel(ctx context.Context, p *model.Payment) (int64, error) {
	if !validID(p.ParcelID) {
		return 0, sql.ErrNoRows
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const qParcel = `UPDATE parcels SET status = $2, updated_at = $3 WHERE id = $1 AND status = $4`
	res, err := tx.ExecContext(ctx, qParcel, p.ParcelID, model.ParcelStatusPaid, p.Date, model.ParcelStatusPending)
	if err != nil {
		return 0, err
	}
	modified, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if modified == 0 {
		return 0, repository.ErrStale
	}

	const qPayment = `
		INSERT INTO payments (id, parcel_id, email, transaction_id, price, status, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := tx.ExecContext(ctx, qPayment,
		p.ID,
		p.ParcelID,
		p.Email,
		p.TransactionID,
		p.Price,
		p.Status,
		p.Date,
	); err != nil {
		if isUniqueViolation(err) {
			return 0, repository.ErrDuplicate
		}
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return modified, nil
}

// List returns payments ordered by payment time, newest first.
func (r *PaymentPostgres) List(ctx context.Context, f repository.PaymentFilter) ([]model.Payment, error) {
	q := `SELECT id, email, transaction_id, price, parcel_id, status, paid_at FROM payments`
	var args []any
	if f.Email != "" {
		q += ` WHERE email = $1`
		args = append(args, f.Email)
	}
	q += ` ORDER BY paid_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Payment, 0)
	for rows.Next() {
		var p model.Payment
		if err := rows.Scan(
			&p.ID,
			&p.Email,
			&p.TransactionID,
			&p.Price,
			&p.ParcelID,
			&p.Status,
			&p.Date,
		); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
